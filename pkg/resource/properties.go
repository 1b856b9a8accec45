package resource

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from the YAML file at filepath.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}
	return install(v)
}

// Load reads application properties in YAML format from r.
func Load(r io.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}
	return install(v)
}

func install(v *viper.Viper) error {
	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	for key, value := range resolved {
		v.Set(key, value)
	}

	mu.Lock()
	properties = v
	mu.Unlock()
	return nil
}

// parsePropertiesMap reads recursively the YAML tree, resolving ${ENV:default} placeholders
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} occurrence with the environment value or its default
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

// Set overrides a single property.
func Set(key string, value any) {
	current().Set(key, value)
}

func Get(key string) any {
	return current().Get(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}

func GetFloat64(key string) float64 {
	return current().GetFloat64(key)
}

func GetStringOrDefault(key, defaultValue string) string {
	if value := GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}
