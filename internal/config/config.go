package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Logging LoggingConfig
	Output  OutputConfig
}

type LoggingConfig struct {
	Level string
}

type OutputConfig struct {
	// Indent is the YAML indentation width. Zero keeps the input's own.
	Indent int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Logging: LoggingConfig{
			Level: getEnv("SKILLSHAPE_LOG_LEVEL", "info"),
		},
		Output: OutputConfig{
			Indent: getEnvInt("SKILLSHAPE_INDENT", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("SKILLSHAPE_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	if c.Output.Indent < 0 || c.Output.Indent > 9 {
		return fmt.Errorf("SKILLSHAPE_INDENT must be between 0 and 9, got %d", c.Output.Indent)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
