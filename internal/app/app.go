// Package app implements the application layer for glslpp.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"glslpp/internal/adapters/source"
	"glslpp/internal/adapters/watcher"
	"glslpp/internal/core/domain"
	"glslpp/internal/core/ports"
	"glslpp/internal/engine/processor"
)

// debounceWindow is how long the watcher waits after the last file system
// event before reprocessing.
const debounceWindow = 250 * time.Millisecond

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	hasher       ports.Hasher
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, hasher ports.Hasher) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		hasher:       hasher,
	}
}

// ProcessOptions configuration for the Process and Watch methods.
type ProcessOptions struct {
	// ConfigPath is the path to the manifest file.
	ConfigPath string
	// OutDir overrides the manifest's output directory when non-empty.
	OutDir string
	// CacheMode selects the source retrieval caching strategy.
	CacheMode domain.CacheMode
	// Force rewrites outputs even when their content is unchanged.
	Force bool
	// Shaders restricts processing to the named sources. Empty means all
	// sources listed in the manifest.
	Shaders []string
}

// logSink forwards engine diagnostics to the application logger as warnings.
type logSink struct {
	log ports.Logger
}

func (s logSink) Report(msg string) {
	s.log.Warn(msg)
}

// Process flattens all configured shaders and writes them to the output
// directory. Outputs whose content is unchanged are skipped unless Force is
// set.
func (a *App) Process(ctx context.Context, opts ProcessOptions) error {
	manifest, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	outDir := manifest.OutDir
	if opts.OutDir != "" {
		outDir = opts.OutDir
	}
	if err := os.MkdirAll(outDir, domain.OutputDirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrOutputWriteFailed, err), "dir", outDir)
	}

	proc := a.buildProcessor(manifest, opts.CacheMode)

	shaders := opts.Shaders
	if len(shaders) == 0 {
		shaders = manifest.Sources
	}

	for _, name := range shaders {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.processOne(proc, outDir, name, opts.Force); err != nil {
			return err
		}
	}

	return nil
}

// buildProcessor assembles the retrieval chain and the directive engine from
// the manifest.
func (a *App) buildProcessor(manifest *domain.Manifest, mode domain.CacheMode) *processor.Processor {
	sink := logSink{log: a.logger}

	retriever := source.NewRetriever(
		source.NewProvider(mode, source.NewOSFS(), sink),
		source.NewSplitDirsAt(manifest.SrcRoot, manifest.IncludeRoot),
	)

	proc := processor.New(retriever,
		processor.WithVersion(manifest.Version),
		processor.WithDiagnostics(sink),
	)
	for name, value := range manifest.Defines {
		if value == "" {
			proc.DefineFlag(name)
			continue
		}
		proc.Define(name, value)
	}
	return proc
}

// processOne resolves a single shader and writes the result, skipping the
// write when the existing output already has the same fingerprint.
func (a *App) processOne(proc *processor.Processor, outDir, name string, force bool) error {
	flat, ok := proc.ResolveSource(name)
	if !ok {
		return zerr.With(domain.ErrProcessFailed, "shader", name)
	}

	target := filepath.Join(outDir, name)
	if dir := filepath.Dir(target); dir != outDir {
		if err := os.MkdirAll(dir, domain.OutputDirPerm); err != nil {
			return zerr.With(errors.Join(domain.ErrOutputWriteFailed, err), "shader", name)
		}
	}

	data := []byte(flat)
	if !force {
		if existing, err := a.hasher.FingerprintFile(target); err == nil && existing == a.hasher.Fingerprint(data) {
			a.logger.Info(fmt.Sprintf("up to date %s", name))
			return nil
		}
	}

	if err := os.WriteFile(target, data, domain.OutputFilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrOutputWriteFailed, err), "shader", name)
	}
	a.logger.Info(fmt.Sprintf("processed %s", name))
	return nil
}

// Watch processes all configured shaders, then reprocesses them whenever a
// file under the source or include root changes. It blocks until the context
// is cancelled.
func (a *App) Watch(ctx context.Context, opts ProcessOptions) error {
	manifest, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	w, err := watcher.NewWatcher()
	if err != nil {
		return errors.Join(domain.ErrWatchFailed, err)
	}
	defer w.Stop() //nolint:errcheck // Best effort close in defer

	if err := w.Start(ctx, manifest.SrcRoot, manifest.IncludeRoot); err != nil {
		return errors.Join(domain.ErrWatchFailed, err)
	}

	// A processing failure in watch mode is reported and watching continues;
	// the next save gets another chance.
	if err := a.Process(ctx, opts); err != nil {
		a.logger.Error(err)
	}

	runs := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(debounceWindow, func(paths []string) {
		select {
		case runs <- paths:
		case <-ctx.Done():
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case paths := <-runs:
				a.logger.Info(fmt.Sprintf("%d file(s) changed, reprocessing", len(paths)))
				if err := a.Process(gctx, opts); err != nil {
					a.logger.Error(err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
