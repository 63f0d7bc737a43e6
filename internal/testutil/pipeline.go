package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/codegengo/internal/diag"
	"github.com/specialistvlad/codegengo/internal/memsink"
	"github.com/specialistvlad/codegengo/internal/model"
	"github.com/specialistvlad/codegengo/internal/options"
	"github.com/specialistvlad/codegengo/internal/pipeline"
	"github.com/specialistvlad/codegengo/internal/render"
)

// PipelineOptions configures a pipeline harness run.
type PipelineOptions struct {
	// Files maps relative paths to contents; manifests go under
	// "manifests/", templates under "templates/".
	Files map[string]string
	// Options is the raw option map for the invocation.
	Options map[string]string
	// ExistingSources seeds fully-qualified names that count as already
	// compiled.
	ExistingSources []string
	// CompanionDistinct makes the in-memory resource sink treat its
	// companion location as physically separate.
	CompanionDistinct bool
}

// PipelineHarness bundles a pipeline wired to in-memory sinks and a
// diagnostics recorder.
type PipelineHarness struct {
	Ctx       context.Context
	Logs      *SafeBuffer
	Recorder  *diag.Recorder
	Sources   *memsink.SourceStore
	Resources *memsink.ResourceStore
	Files     *memsink.FileStore
	Pipe      *pipeline.Pipeline
}

// NewPipeline materializes the harness files in a temp dir and builds a
// pipeline over them.
func NewPipeline(t *testing.T, o PipelineOptions) *PipelineHarness {
	t.Helper()

	root := WriteFiles(t, o.Files)
	ctx, logs := Context(t)

	h := &PipelineHarness{
		Ctx:       ctx,
		Logs:      logs,
		Recorder:  &diag.Recorder{},
		Sources:   memsink.NewSourceStore(o.ExistingSources...),
		Resources: memsink.NewResourceStore(o.CompanionDistinct),
		Files:     memsink.NewFileStore(),
	}
	h.Pipe = pipeline.New(pipeline.Config{
		SearchPath: []string{filepath.Join(root, "manifests")},
		Engine:     render.NewGoTemplateEngine(filepath.Join(root, "templates")),
		Options:    options.Map(o.Options),
		Reporter:   h.Recorder,
		Sources:    h.Sources,
		Resources:  h.Resources,
		Files:      h.Files,
	})
	return h
}

// Run drives one intermediate pass over the given models followed by the
// terminal pass.
func (h *PipelineHarness) Run(t *testing.T, models ...*model.Model) {
	t.Helper()
	if err := h.Pipe.Process(h.Ctx, model.StaticProvider(models)); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if err := h.Pipe.Finish(h.Ctx); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
}
