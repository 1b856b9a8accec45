package schedule

import (
	"fmt"

	"jma-forecast/internal/application/session"
	"jma-forecast/pkg/log"
	"jma-forecast/pkg/msg"

	"github.com/robfig/cron/v3"
)

type SessionScheduler struct {
	cron  *cron.Cron
	store *session.Store
}

func NewSessionScheduler(store *session.Store) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), store: store}
}

// InitSessionScheduleTasks registers the idle session sweep under cronExpr and starts the cron
func (scheduler *SessionScheduler) InitSessionScheduleTasks(cronExpr string) error {
	if _, err := scheduler.cron.AddFunc(cronExpr, scheduler.SweepIdleSessions); err != nil {
		return fmt.Errorf("invalid session sweep schedule %q: %w", cronExpr, err)
	}

	scheduler.cron.Start()
	return nil
}

func (scheduler *SessionScheduler) SweepIdleSessions() {
	log.Debug(msg.GetMessage("session.cron.start"))

	removed, remaining := scheduler.store.Sweep()

	log.Info(msg.GetMessage("session.cron.end", removed, remaining))
}

// Stop waits for a running sweep and stops the cron
func (scheduler *SessionScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}
