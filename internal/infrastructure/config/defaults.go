package config

import (
	"time"

	"github.com/bnema/smartkeys/internal/domain/entity"
)

// Default configuration constants
const (
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultTimeFormat = time.TimeOnly
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			TimeFormat: defaultTimeFormat,
		},
		Typing: TypingConfig{
			CaretPolicy: entity.CaretAfterReplacement,
		},
	}
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.time_format", defaults.Logging.TimeFormat)

	m.viper.SetDefault("typing.caret_policy", string(defaults.Typing.CaretPolicy))
}
