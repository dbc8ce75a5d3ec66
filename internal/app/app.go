package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/mendgrid/internal/config"
	"github.com/vk/mendgrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	runID    string
	registry *registry.Registry
	config   *Config
	loader   config.Loader
}

// NewApp is the constructor for the main application. Completion messages go
// to outW and logs to logW. Each App gets its own logger, tagged with a fresh
// run id, and its own registry.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	runID := uuid.NewString()
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW).With("run_id", runID)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "types", reg.Types())

	return &App{
		outW:     outW,
		logger:   logger,
		runID:    runID,
		registry: reg,
		config:   appConfig,
		loader:   loader,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// RunID returns the identifier attached to every log record of this App.
func (a *App) RunID() string {
	return a.runID
}
