// Package cli wires configuration, logging and the smart keys use case for
// the command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/smartkeys/internal/application/usecase"
	"github.com/bnema/smartkeys/internal/cli/styles"
	"github.com/bnema/smartkeys/internal/domain/build"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/infrastructure/config"
	"github.com/bnema/smartkeys/internal/infrastructure/document"
	"github.com/bnema/smartkeys/internal/logging"
)

// Options configures NewApp.
type Options struct {
	// ConfigFile overrides the XDG config file location.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := cfg.LoggingConfig()
	if opts.LogLevel != "" {
		logCfg.Level = logging.ParseLevel(opts.LogLevel)
	}
	logCfg.Output = os.Stderr
	logger := logging.New(logCfg)

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "cli")

	logger.Debug().
		Str("config_file", mgr.ConfigFile()).
		Str("caret_policy", string(cfg.Typing.CaretPolicy)).
		Msg("configuration loaded")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		ctx:           ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// CaretPolicy returns the configured caret policy.
func (a *App) CaretPolicy() entity.CaretPolicy {
	if a.Config == nil {
		return entity.CaretAfterReplacement
	}
	return a.Config.Typing.CaretPolicy
}

// InstallSmartKeys creates the use case for doc and installs it. Config
// reloads update its caret policy.
func (a *App) InstallSmartKeys(doc *document.Document, policy entity.CaretPolicy) (*usecase.SmartKeysUseCase, error) {
	uc := usecase.NewSmartKeysUseCase(doc, policy)
	if err := uc.Install(a.ctx, doc); err != nil {
		return nil, fmt.Errorf("install smart keys: %w", err)
	}

	if a.ConfigManager != nil {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			uc.SetCaretPolicy(cfg.Typing.CaretPolicy)
			logging.FromContext(a.ctx).Info().
				Str("caret_policy", string(cfg.Typing.CaretPolicy)).
				Msg("configuration reloaded")
		})
	}
	return uc, nil
}

// WatchConfig reloads the configuration when the file changes. Running
// without a config file is not an error.
func (a *App) WatchConfig() error {
	if a.ConfigManager == nil {
		return nil
	}
	err := a.ConfigManager.Watch()
	if errors.Is(err, config.ErrNoConfigFile) {
		logging.FromContext(a.ctx).Debug().Msg("no config file, watch disabled")
		return nil
	}
	return err
}
