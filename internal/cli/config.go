// Package cli holds configuration shared by the tradesync CLI commands.
package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ananidze/tradesync/pkg/dashsdk"
)

type Config struct {
	APIURL        string        // Base URL of the TradeSync backend API (default: http://localhost:8080/api)
	DataDir       string        // Directory holding the credentials database (default: ~/.tradesync)
	LogLevel      string        // Log level (debug, info, warn, error) (default: warn)
	LogFormat     string        // Log format (json, text) (default: text)
	WatchInterval time.Duration // Refresh interval for the watch command (default: 5s)
}

func LoadConfig() Config {
	return Config{
		APIURL:        getEnvOrDefault("TRADESYNC_API_URL", dashsdk.DefaultBaseURL),
		DataDir:       getEnvOrDefault("TRADESYNC_DATA_DIR", defaultDataDir()),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat:     getEnvOrDefault("LOG_FORMAT", "text"),
		WatchInterval: getEnvDurationOrDefault("TRADESYNC_WATCH_INTERVAL", 5*time.Second),
	}
}

// CredentialsFile is the path of the durable token database.
func (c Config) CredentialsFile() string {
	return filepath.Join(c.DataDir, "credentials.db")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tradesync"
	}
	return filepath.Join(home, ".tradesync")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
