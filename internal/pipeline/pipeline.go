// Package pipeline implements the generation orchestrator: it iterates
// models against the loaded generators, evaluates each generator's
// output-path expression, classifies the result, accumulates assignments
// into generation units, and renders the units to the output sinks.
//
// The pipeline is pass-oriented. The external driver calls Process once per
// pass while models keep being discovered; generated sources are written
// eagerly at the end of every pass so they can themselves be type-checked
// by later passes. Finish is the terminal pass: it writes the resource and
// generic-file units accumulated across the whole batch.
//
// All work inside a pass is sequential. Failures are contained at the
// smallest possible granularity (one model, one unit) and surface through
// the diagnostics reporter; the batch always completes.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/codegengo/internal/ctxlog"
	"github.com/specialistvlad/codegengo/internal/diag"
	"github.com/specialistvlad/codegengo/internal/generator"
	"github.com/specialistvlad/codegengo/internal/manifest"
	"github.com/specialistvlad/codegengo/internal/model"
	"github.com/specialistvlad/codegengo/internal/options"
	"github.com/specialistvlad/codegengo/internal/render"
	"github.com/specialistvlad/codegengo/internal/sink"
)

// Config wires one pipeline invocation.
type Config struct {
	// SearchPath lists the roots scanned for generator manifests.
	SearchPath []string
	// Engine resolves and renders templates.
	Engine render.Engine
	// Options is the raw option map for this invocation.
	Options options.Map
	// Reporter receives all diagnostics.
	Reporter diag.Reporter
	// Sources receives generated source files, keyed by fqn.
	Sources sink.SourceSink
	// Resources receives generated resources.
	Resources sink.ResourceSink
	// Files receives generic generated files. Nil means no physical output
	// root is configured; generic units are then silently skipped at the
	// terminal pass.
	Files sink.FileSink
	// SourceSuffix overrides the generated-source suffix recognized by the
	// classifier. Empty selects DefaultSourceSuffix.
	SourceSuffix string
}

// Pipeline is the orchestrator for one whole multi-pass invocation. It is
// not safe for concurrent use; all passes run sequentially.
type Pipeline struct {
	cfg Config

	// generators is built lazily, once, on the first pass.
	generators []*generator.Descriptor
	loaded     bool
	classifier *classifier

	// resourceUnits and fileUnits persist across passes until the terminal
	// pass. Source units are per-pass: they are rendered and written
	// eagerly at the end of the pass that produced them.
	resourceUnits map[string]*Unit
	fileUnits     map[string]*Unit
}

// New creates a pipeline for one invocation. State is scoped to the
// pipeline instance; construct a fresh one per batch.
func New(cfg Config) *Pipeline {
	if cfg.Reporter == nil {
		cfg.Reporter = diag.LogReporter{}
	}
	return &Pipeline{
		cfg:           cfg,
		resourceUnits: make(map[string]*Unit),
		fileUnits:     make(map[string]*Unit),
	}
}

// Generators exposes the loaded descriptors, loading them on first use.
func (p *Pipeline) Generators(ctx context.Context) []*generator.Descriptor {
	p.load(ctx)
	return p.generators
}

// load discovers manifests and builds the generator list, once.
func (p *Pipeline) load(ctx context.Context) {
	if p.loaded {
		return
	}
	p.loaded = true

	manifests := manifest.NewLoader(p.cfg.Reporter).Load(ctx, p.cfg.SearchPath...)
	entries := manifest.Entries(ctx, manifests)
	p.generators = generator.Build(ctx, entries, p.cfg.Engine, p.cfg.Options, p.cfg.Reporter)
	p.classifier = newClassifier(p.cfg.SourceSuffix, p.cfg.Options.Relocations())

	ctxlog.FromContext(ctx).Info("Generation pipeline ready.",
		"generators", len(p.generators), "search_path", p.cfg.SearchPath)
}

// Process runs one intermediate pass over the models currently available:
// every (model, kind-matched generator) pair is evaluated, classified and
// routed into a unit table, then all source units produced this pass are
// rendered and written eagerly.
func (p *Pipeline) Process(ctx context.Context, provider model.Provider) error {
	p.load(ctx)

	models, err := provider.Models(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	srcUnits := make(map[string]*Unit)
	for _, m := range models {
		if err := p.processModel(ctx, m, srcUnits); err != nil {
			p.reportModelFailure(ctx, m, err)
		}
	}

	p.writeSourceUnits(ctx, srcUnits)
	return nil
}

// processModel routes one model through every matching generator. The first
// failure aborts this model's remaining generators; sibling models are
// unaffected.
func (p *Pipeline) processModel(ctx context.Context, m *model.Model, srcUnits map[string]*Unit) error {
	env := buildEnv(m, p.cfg.Options)

	for _, gen := range p.generators {
		if gen.Kind != m.Kind {
			continue
		}

		rawPath, ok, err := evalPath(gen.PathExpr, withGenerator(env, gen.Name))
		if err != nil {
			return diag.WrapGenError(m.Element, err)
		}
		if !ok {
			// The generator opts out for this model.
			continue
		}

		kind, finalPath := p.classifier.classify(rawPath, gen.Name)
		assignment := Assignment{Model: m, Generator: gen}

		switch kind {
		case KindSource:
			fqn := p.classifier.stripSuffix(finalPath)
			// Avoid recreating the same type: source trees are unzipped
			// and recompiled across incremental rebuilds.
			if p.cfg.Sources.Exists(fqn) {
				continue
			}
			addAssignment(srcUnits, fqn, assignment)
		case KindResource:
			addAssignment(p.resourceUnits, finalPath, assignment)
		default:
			addAssignment(p.fileUnits, finalPath, assignment)
		}
	}
	return nil
}

// writeSourceUnits renders and writes every source unit produced this pass.
// Sources must be visible to the compiler before the run completes, so they
// are not deferred to the terminal pass.
func (p *Pipeline) writeSourceUnits(ctx context.Context, srcUnits map[string]*Unit) {
	logger := ctxlog.FromContext(ctx)
	for _, fqn := range sortedKeys(srcUnits) {
		unit := srcUnits[fqn]
		content, err := unit.Render()
		if err != nil {
			p.reportUnitFailure(ctx, unit, err)
			continue
		}
		if content == "" {
			continue
		}
		if err := p.cfg.Sources.Write(ctx, fqn, content); err != nil {
			p.reportUnitFailure(ctx, unit, err)
			continue
		}
		logger.Info("Generated model.", "fqn", unit.First().Model.Fqn, "uri", fqn)
	}
}

// Finish runs the terminal pass: resource units are written to the resource
// sink (and to its companion location when that is physically distinct),
// then generic-file units are written under the configured output root.
func (p *Pipeline) Finish(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for _, path := range sortedKeys(p.resourceUnits) {
		unit := p.resourceUnits[path]
		content, err := unit.Render()
		if err != nil {
			p.reportUnitFailure(ctx, unit, err)
			continue
		}
		if content == "" {
			continue
		}
		if err := p.cfg.Resources.Write(ctx, path, content); err != nil {
			p.reportUnitFailure(ctx, unit, err)
			continue
		}
		if p.cfg.Resources.CompanionDistinct() {
			if err := p.cfg.Resources.WriteCompanion(ctx, path, content); err != nil {
				p.reportUnitFailure(ctx, unit, err)
				continue
			}
		}
		logger.Info("Generated model.", "fqn", unit.First().Model.Fqn, "uri", path)
	}

	if p.cfg.Files == nil {
		if len(p.fileUnits) > 0 {
			logger.Warn("No output directory configured, skipping generated files.",
				"skipped", len(p.fileUnits))
		}
		return nil
	}

	for _, path := range sortedKeys(p.fileUnits) {
		unit := p.fileUnits[path]
		content, err := unit.Render()
		if err != nil {
			p.reportUnitFailure(ctx, unit, err)
			continue
		}
		if content == "" {
			continue
		}
		if err := p.cfg.Files.Write(ctx, path, content); err != nil {
			p.reportUnitFailure(ctx, unit, err)
			continue
		}
		logger.Info("Generated model.", "fqn", unit.First().Model.Fqn, "uri", path)
	}
	return nil
}

// addAssignment appends to the unit for key, creating it on first use.
func addAssignment(units map[string]*Unit, key string, a Assignment) {
	unit, ok := units[key]
	if !ok {
		unit = NewUnit(key)
		units[key] = unit
	}
	unit.Add(a)
}

// reportModelFailure converts a per-model failure into one ERROR diagnostic
// tied to the originating declaration.
func (p *Pipeline) reportModelFailure(ctx context.Context, m *model.Model, err error) {
	var genErr *diag.GenError
	if errors.As(err, &genErr) {
		p.cfg.Reporter.Report(ctx, diag.Diagnostic{
			Severity: diag.SeverityError,
			Message:  fmt.Sprintf("Could not generate model for %s: %s", genErr.Element, genErr.Msg),
			Element:  genErr.Element,
		})
		return
	}
	p.cfg.Reporter.Report(ctx, diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("Could not generate element for %s: %s", m.Element, err),
		Element:  m.Element,
	})
}

// reportUnitFailure reports a failed unit render or write against the unit's
// first assignment.
func (p *Pipeline) reportUnitFailure(ctx context.Context, unit *Unit, err error) {
	element := unit.First().Model.Element
	var genErr *diag.GenError
	if errors.As(err, &genErr) {
		element = genErr.Element
	}
	p.cfg.Reporter.Report(ctx, diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("Could not generate %s: %s", unit.Path, err),
		Element:  element,
	})
}

// sortedKeys returns the unit table's keys in ascending order, for a stable
// write order.
func sortedKeys(units map[string]*Unit) []string {
	keys := make([]string, 0, len(units))
	for k := range units {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
