// Package manifest loads generator manifests from a resource search path.
//
// A manifest is declarative data contributed by a module: a module name plus
// a list of generator entries. Manifests exist in two formats, HCL
// (codegen.hcl) and YAML (codegen.yaml / codegen.yml); both parse into the
// same format-agnostic model. Loading is local-failure-tolerant: a malformed
// manifest is reported as a diagnostic and skipped, the rest of the run
// continues.
package manifest

import (
	"context"
	"fmt"

	"github.com/specialistvlad/codegengo/internal/ctxlog"
	"github.com/specialistvlad/codegengo/internal/diag"
)

// Manifest is the format-agnostic representation of one manifest file.
type Manifest struct {
	// Name is the contributing module's identifier.
	Name string
	// Path is the manifest's on-disk locator, used in diagnostics.
	Path string
	// Generators are the declared generator entries, in file order.
	Generators []GeneratorEntry
}

// GeneratorEntry is one declared generator. Legacy field spellings
// (templateFileName, fileName) are normalized away at parse time; the rest
// of the pipeline only ever sees these fields.
type GeneratorEntry struct {
	// Kind is the model kind this generator applies to.
	Kind string
	// TemplateFilename identifies the template; it is also the global
	// deduplication key across all manifests.
	TemplateFilename string
	// Filename is the output-path expression source, compiled later.
	Filename string
	// Incremental generators accumulate into a unit alongside others
	// instead of replacing prior assignments.
	Incremental bool
}

// validate checks the required fields of one entry.
func (e *GeneratorEntry) validate() error {
	if e.Kind == "" {
		return fmt.Errorf("generator entry is missing 'kind'")
	}
	if e.TemplateFilename == "" {
		return fmt.Errorf("generator entry is missing 'templateFilename'")
	}
	if e.Filename == "" {
		return fmt.Errorf("generator entry is missing 'filename'")
	}
	return nil
}

// Loader discovers and parses every manifest visible on the search path.
type Loader struct {
	reporter diag.Reporter
}

// NewLoader creates a manifest loader reporting failures to the given
// reporter.
func NewLoader(reporter diag.Reporter) *Loader {
	return &Loader{reporter: reporter}
}

// Load walks every search path entry for manifest files and parses them.
// It never fails: each unreadable or malformed manifest yields one ERROR
// diagnostic and is skipped.
func (l *Loader) Load(ctx context.Context, searchPath ...string) []Manifest {
	logger := ctxlog.FromContext(ctx)

	var manifests []Manifest
	for _, root := range searchPath {
		paths, err := discover(root)
		if err != nil {
			l.reporter.Report(ctx, diag.Diagnostic{
				Severity: diag.SeverityWarning,
				Message:  fmt.Sprintf("Could not load code generator descriptors from %s: %v", root, err),
			})
			continue
		}
		for _, path := range paths {
			m, err := parseFile(path)
			if err != nil {
				l.reporter.Report(ctx, diag.Diagnostic{
					Severity: diag.SeverityError,
					Message:  fmt.Sprintf("Could not load code generator %s: %v", path, err),
				})
				continue
			}
			logger.Debug("Loaded generator manifest.", "path", path, "name", m.Name, "entries", len(m.Generators))
			manifests = append(manifests, m)
		}
	}
	return manifests
}

// Entries flattens manifests into generator entries, deduplicating globally
// by template filename: if two entries across any manifests reference the
// same template, only the first encountered is kept. The same physical
// template must not be registered twice even when multiple modules declare
// it, or the output would be duplicated.
func Entries(ctx context.Context, manifests []Manifest) []NamedEntry {
	logger := ctxlog.FromContext(ctx)

	templates := make(map[string]struct{})
	var entries []NamedEntry
	for _, m := range manifests {
		for _, e := range m.Generators {
			if _, dup := templates[e.TemplateFilename]; dup {
				logger.Debug("Skipping duplicate template registration.",
					"template", e.TemplateFilename, "manifest", m.Path)
				continue
			}
			templates[e.TemplateFilename] = struct{}{}
			entries = append(entries, NamedEntry{Name: m.Name, GeneratorEntry: e})
		}
	}
	return entries
}

// NamedEntry pairs a generator entry with its contributing module name, which
// becomes the generator's name.
type NamedEntry struct {
	Name string
	GeneratorEntry
}
