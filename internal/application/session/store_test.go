package session

import (
	"testing"
	"time"

	"jma-forecast/internal/application/page"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(idleTimeout time.Duration) (*Store, *time.Time) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	store := NewStore(func() *page.Controller {
		return page.NewController(nil, nil)
	}, idleTimeout)
	store.now = func() time.Time { return now }
	return store, &now
}

func TestCreateAndGet(t *testing.T) {
	store, _ := newTestStore(time.Minute)

	id, controller := store.Create()

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	got, ok := store.Get(id)
	assert.True(t, ok)
	assert.Same(t, controller, got)

	_, ok = store.Get("unknown")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestSweepDropsIdleSessions(t *testing.T) {
	store, now := newTestStore(30 * time.Minute)

	idle, _ := store.Create()
	*now = now.Add(20 * time.Minute)
	active, _ := store.Create()
	*now = now.Add(15 * time.Minute)

	removed, remaining := store.Sweep()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, remaining)
	_, ok := store.Get(idle)
	assert.False(t, ok)
	_, ok = store.Get(active)
	assert.True(t, ok)
}

func TestGetKeepsSessionAlive(t *testing.T) {
	store, now := newTestStore(30 * time.Minute)

	id, _ := store.Create()
	*now = now.Add(25 * time.Minute)
	store.Get(id)
	*now = now.Add(25 * time.Minute)

	removed, _ := store.Sweep()

	assert.Zero(t, removed)
}

func TestSweepDisabled(t *testing.T) {
	store, now := newTestStore(0)

	store.Create()
	*now = now.Add(24 * time.Hour)

	removed, remaining := store.Sweep()
	assert.Zero(t, removed)
	assert.Equal(t, 1, remaining)
}
