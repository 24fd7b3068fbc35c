package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level must be one of",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Logging.Format = "yaml" },
			wantErr: "logging.format must be one of",
		},
		{
			name:    "unknown caret policy",
			mutate:  func(c *Config) { c.Typing.CaretPolicy = "middle" },
			wantErr: "typing.caret_policy",
		},
		{
			name:   "legacy caret policy",
			mutate: func(c *Config) { c.Typing.CaretPolicy = "legacy" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
