package configs

import (
	"bytes"
	_ "embed"
	"fmt"

	"jma-forecast/pkg/msg"
	"jma-forecast/pkg/resource"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

// Load initializes application properties and messages. Files named by
// PROPERTIES_FILE_PATH and MESSAGES_FILE_PATH win over the embedded defaults.
func Load() error {
	var err error
	if Env.PropertiesFilePath != "" {
		err = resource.Init(Env.PropertiesFilePath)
	} else {
		err = resource.Load(bytes.NewReader(applicationYAML))
	}
	if err != nil {
		return fmt.Errorf("load properties: %w", err)
	}

	if Env.MessagesFilePath != "" {
		err = msg.Init(Env.MessagesFilePath)
	} else {
		err = msg.Load(bytes.NewReader(messagesYAML))
	}
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	if Env.ContextPath != "" {
		resource.Set("app.server.context-path", Env.ContextPath)
	}
	return nil
}

// MustLoad is Load for tests and tools that cannot continue without configuration.
func MustLoad() {
	if err := Load(); err != nil {
		panic(err)
	}
}
