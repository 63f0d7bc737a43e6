// Package app wires one codegen invocation: it builds the logger, the
// template engine, the output sinks and the pipeline from a validated
// Config, and drives the passes.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/codegengo/internal/ctxlog"
	"github.com/specialistvlad/codegengo/internal/diag"
	"github.com/specialistvlad/codegengo/internal/fssink"
	"github.com/specialistvlad/codegengo/internal/memsink"
	"github.com/specialistvlad/codegengo/internal/options"
	"github.com/specialistvlad/codegengo/internal/pipeline"
	"github.com/specialistvlad/codegengo/internal/render"
	"github.com/specialistvlad/codegengo/internal/sink"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	pipe   *pipeline.Pipeline

	// Memory sinks, populated only in dry-run mode, for the summary.
	memSources   *memsink.SourceStore
	memResources *memsink.ResourceStore
	memFiles     *memsink.FileStore
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and pipeline.
func NewApp(outW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	opts := options.Map(config.Options)
	reporter := diag.LogReporter{}

	a := &App{
		outW:   outW,
		logger: logger,
		config: config,
	}

	var sources sink.SourceSink
	var resources sink.ResourceSink
	var files sink.FileSink
	if config.DryRun {
		a.memSources = memsink.NewSourceStore()
		a.memResources = memsink.NewResourceStore(config.ResourceCompanion != "" && config.ResourceCompanion != config.ResourceOutput)
		a.memFiles = memsink.NewFileStore()
		sources, resources, files = a.memSources, a.memResources, a.memFiles
	} else {
		sources = fssink.NewSourceDir(config.SourceOutput, pipeline.DefaultSourceSuffix)
		resources = fssink.NewResourceDir(config.ResourceOutput, config.ResourceCompanion)
		files = genericFileSink(ctx, opts, reporter)
	}

	a.pipe = pipeline.New(pipeline.Config{
		SearchPath: config.ManifestPaths,
		Engine:     render.NewGoTemplateEngine(config.TemplatePath),
		Options:    opts,
		Reporter:   reporter,
		Sources:    sources,
		Resources:  resources,
		Files:      files,
	})
	logger.Debug("Pipeline constructed.", "manifest_paths", config.ManifestPaths)
	return a
}

// genericFileSink resolves the physical output root for generic files. A
// configured root that is missing or not a directory is reported once; the
// pipeline then skips generic writes for the whole run.
func genericFileSink(ctx context.Context, opts options.Map, reporter diag.Reporter) sink.FileSink {
	root, ok := opts.OutputDir(ctx)
	if !ok {
		return nil
	}
	info, err := os.Stat(root)
	if err != nil {
		reporter.Report(ctx, diag.Diagnostic{
			Severity: diag.SeverityError,
			Message:  fmt.Sprintf("Output directory %s does not exist", root),
		})
		return nil
	}
	if !info.IsDir() {
		reporter.Report(ctx, diag.Diagnostic{
			Severity: diag.SeverityError,
			Message:  fmt.Sprintf("Output directory %s is not a directory", root),
		})
		return nil
	}
	return fssink.NewFileDir(root)
}

// Pipeline returns the app's pipeline. This is primarily for testing.
func (a *App) Pipeline() *pipeline.Pipeline {
	return a.pipe
}
