package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/codegengo/internal/ctxlog"
	"github.com/specialistvlad/codegengo/internal/model"
)

// Run executes one whole generation batch: a single intermediate pass over
// the models discovered on disk, then the terminal pass.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	provider := model.NewFileProvider(a.config.ModelPath)
	if err := a.pipe.Process(ctx, provider); err != nil {
		return fmt.Errorf("generation pass failed: %w", err)
	}
	if err := a.pipe.Finish(ctx); err != nil {
		return fmt.Errorf("terminal pass failed: %w", err)
	}

	if a.config.DryRun {
		a.logDryRunSummary()
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// logDryRunSummary reports what a real run would have written.
func (a *App) logDryRunSummary() {
	for fqn := range a.memSources.Written() {
		a.logger.Info("Would write source.", "fqn", fqn)
	}
	for path := range a.memResources.Primary() {
		a.logger.Info("Would write resource.", "path", path)
	}
	for path := range a.memFiles.Written() {
		a.logger.Info("Would write file.", "path", path)
	}
}
