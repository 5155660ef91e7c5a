// Package app implements the application layer for tiago.
package app

import (
	"context"
	"sort"

	"go.trai.ch/tiago/internal/core/domain"
	"go.trai.ch/tiago/internal/core/ports"
	"go.trai.ch/zerr"
)

// App wires the launch domain to the adapters: it builds resolution
// contexts from launch files and overrides, and drives the description
// generator through the runner.
type App struct {
	loader ports.ConfigLoader
	runner ports.Runner
	share  ports.ShareResolver
	store  ports.DescriptionStore
	logger ports.Logger
	base   domain.BaseProvider
}

// New creates a new App instance. The base-hardware provider defaults to
// domain.BaseArguments.
func New(
	loader ports.ConfigLoader,
	runner ports.Runner,
	share ports.ShareResolver,
	store ports.DescriptionStore,
	logger ports.Logger,
) *App {
	return &App{
		loader: loader,
		runner: runner,
		share:  share,
		store:  store,
		logger: logger,
		base:   domain.BaseArguments,
	}
}

// WithBaseProvider swaps the base-hardware provider. Used when the robot
// sits on a different mobile base.
func (a *App) WithBaseProvider(base domain.BaseProvider) *App {
	a.base = base
	return a
}

// DescribeOptions controls a Describe call.
type DescribeOptions struct {
	// LaunchFile is the optional path of the YAML launch file. Empty means
	// the default profile (every dimension declared, no overrides).
	LaunchFile string
	// Overrides are argument values from the command line. They are applied
	// after the launch file and validated against the declared choices.
	Overrides map[string]string
	// ShareDir bypasses share resolution when non-empty.
	ShareDir string
	// Force bypasses the description cache read.
	Force bool
}

// Arguments returns the launch arguments a profile declares, in
// declaration order.
func (a *App) Arguments(launchFile string) ([]domain.Argument, error) {
	profile, err := a.loadProfile(launchFile)
	if err != nil {
		return nil, err
	}
	return domain.HardwareArguments(a.base, profile.Hardware), nil
}

// Suffix resolves the hardware suffix for the selected dimensions.
func (a *App) Suffix(launchFile string, fields domain.SuffixOptions, overrides map[string]string) (string, error) {
	lctx, err := a.buildContext(launchFile, overrides)
	if err != nil {
		return "", err
	}

	sub := domain.HardwareSuffix(fields)
	a.logger.Info("hardware suffix: " + sub.Describe())

	suffix, err := sub.Perform(lctx)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve hardware suffix")
	}
	return suffix, nil
}

// Describe renders the robot description by invoking the templating
// executable against the installed template, passing the resolved hardware
// arguments as xacro variables. The captured stdout is the document.
func (a *App) Describe(ctx context.Context, opts DescribeOptions) (string, error) {
	lctx, err := a.buildContext(opts.LaunchFile, opts.Overrides)
	if err != nil {
		return "", err
	}

	shareDir := opts.ShareDir
	if shareDir == "" {
		shareDir, err = a.share.ShareDirectory(domain.DescriptionPackage)
		if err != nil {
			return "", err
		}
	}

	inv, err := domain.NewDescriptionCommand(shareDir).Render(lctx)
	if err != nil {
		return "", err
	}

	if !opts.Force {
		if doc, ok := a.store.Get(inv); ok {
			a.logger.Info("using cached robot description")
			return doc, nil
		}
	}

	a.logger.Info("rendering robot description: " + inv.String())
	doc, err := a.runner.Run(ctx, inv.Executable, inv.Args)
	if err != nil {
		return "", zerr.Wrap(err, "failed to render robot description")
	}

	if err := a.store.Put(inv, doc); err != nil {
		// The document is already rendered; a failed cache write is not
		// worth failing the launch over.
		a.logger.Warn("failed to cache robot description: " + err.Error())
	}

	return doc, nil
}

// loadProfile loads the launch file, or the default profile when no path is
// given.
func (a *App) loadProfile(launchFile string) (domain.LaunchProfile, error) {
	if launchFile == "" {
		return domain.DefaultProfile(), nil
	}
	profile, err := a.loader.Load(launchFile)
	if err != nil {
		return domain.LaunchProfile{}, zerr.Wrap(err, "failed to load launch profile")
	}
	return profile, nil
}

// buildContext runs the construction phase: declare the profile's
// arguments, then apply launch-file and command-line overrides in that
// order.
func (a *App) buildContext(launchFile string, overrides map[string]string) (*domain.Context, error) {
	profile, err := a.loadProfile(launchFile)
	if err != nil {
		return nil, err
	}

	lctx := domain.NewContext()
	if err := lctx.Declare(domain.HardwareArguments(a.base, profile.Hardware)...); err != nil {
		return nil, err
	}

	for _, set := range []map[string]string{profile.Overrides, overrides} {
		for _, name := range sortedKeys(set) {
			if err := lctx.Set(name, set[name]); err != nil {
				return nil, err
			}
		}
	}

	return lctx, nil
}

// sortedKeys keeps override application deterministic so the first error
// reported does not depend on map iteration order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
