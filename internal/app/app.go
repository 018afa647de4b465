package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/metaprop/internal/ctxlog"
	"github.com/specialistvlad/metaprop/internal/introspect"
	"github.com/specialistvlad/metaprop/internal/object"
	"github.com/specialistvlad/metaprop/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. Property output goes
// to outW and logs to logW. It panics if a compiled class disagrees with its
// manifest, since that is a programmer error.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Run instantiates the configured class, applies the requested assignments
// and prints every property of the instance.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ManifestsPath != "" {
		if err := a.registry.LoadManifests(ctx, a.config.ManifestsPath); err != nil {
			return fmt.Errorf("failed to load manifests: %w", err)
		}
	}

	class, err := a.registry.Lookup(a.config.ClassName)
	if err != nil {
		return fmt.Errorf("%w (known classes: %v)", err, a.registry.ClassNames())
	}

	// The root owns the instance for the duration of the run.
	root := object.New("root")
	defer root.Destroy()

	inst := class.New()
	if holder, ok := inst.(object.Holder); ok {
		if err := root.AddChild(holder); err != nil {
			return err
		}
		holder.Base().OnDestroy(func() {
			a.logger.Debug("Instance destroyed.", "class", a.config.ClassName)
		})
	}
	a.logger.Info("Instance created.", "class", a.config.ClassName, "properties", class.Meta.PropertyCount())

	for _, asg := range a.config.Assignments {
		if err := introspect.SetString(inst, asg.Property, asg.Value); err != nil {
			return fmt.Errorf("failed to set %s: %w", asg.Property, err)
		}
		a.logger.Debug("Property assigned.", "property", asg.Property, "value", asg.Value)
	}

	if err := introspect.Print(ctx, a.outW, inst); err != nil {
		return fmt.Errorf("failed to print properties: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
