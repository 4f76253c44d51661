package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/vbaemu/internal/action"
	"github.com/vk/vbaemu/internal/callexpr"
	"github.com/vk/vbaemu/internal/config"
	"github.com/vk/vbaemu/internal/ctxlog"
	"github.com/vk/vbaemu/internal/library"
	"github.com/vk/vbaemu/internal/registry"
	"github.com/vk/vbaemu/internal/vbaconst"
)

// App encapsulates one emulator instance: its registry, constants, action
// log and the evaluator bound to them.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	registry  *registry.Registry
	constants *vbaconst.Table
	actions   *action.Log
	evaluator *callexpr.Evaluator
}

// NewApp is the constructor for the main application. Results and the action
// report go to outW, logs to logW. It panics when the profile cannot be
// loaded or applied, since nothing can be evaluated without it.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	consts := vbaconst.New()
	library.Bootstrap(reg, consts, modules...)
	logger.Debug("Function modules registered.", "functions", reg.Len(), "constants", consts.Len())

	actions := action.NewLog()
	env := &registry.Env{Reporter: actions, Environment: library.DefaultEnvironment()}

	if cfg.ProfilePath != "" {
		profile, err := loader.Load(ctx, cfg.ProfilePath)
		if err != nil {
			panic(fmt.Errorf("failed to load profile: %w", err))
		}
		if err := profile.Apply(ctx, reg, consts, env); err != nil {
			panic(fmt.Errorf("failed to apply profile: %w", err))
		}
	}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		registry:  reg,
		constants: consts,
		actions:   actions,
		evaluator: callexpr.NewEvaluator(reg, consts, env),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Actions returns the application's action log.
func (a *App) Actions() *action.Log {
	return a.actions
}
