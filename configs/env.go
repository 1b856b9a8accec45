package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName    string
	ContextPath        string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault("APPLICATION_NAME", "jma-forecast"),
		ContextPath:        getStringOrDefault("CONTEXT_PATH", ""),
		PropertiesFilePath: viper.GetString("PROPERTIES_FILE_PATH"),
		MessagesFilePath:   viper.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
