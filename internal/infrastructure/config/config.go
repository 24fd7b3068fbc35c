// Package config loads, validates, watches and writes the smartkeys
// configuration file.
package config

import (
	"github.com/bnema/smartkeys/internal/domain/entity"
)

const (
	appName        = "smartkeys"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
	envPrefix      = "SMARTKEYS"

	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config is the complete smartkeys configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging" jsonschema:"description=Diagnostic logging"`
	Typing  TypingConfig  `mapstructure:"typing" yaml:"typing" toml:"typing" json:"typing" jsonschema:"description=Typographic substitution behaviour"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format     string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	TimeFormat string `mapstructure:"time_format" yaml:"time_format" toml:"time_format" json:"time_format,omitempty"`
}

// TypingConfig holds the substitution settings.
type TypingConfig struct {
	// CaretPolicy decides where the caret lands in plain fields after a
	// substitution.
	CaretPolicy entity.CaretPolicy `mapstructure:"caret_policy" yaml:"caret_policy" toml:"caret_policy" json:"caret_policy" jsonschema:"enum=after-replacement,enum=legacy,default=after-replacement"`
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
