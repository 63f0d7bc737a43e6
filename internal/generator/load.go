package generator

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/specialistvlad/codegengo/internal/ctxlog"
	"github.com/specialistvlad/codegengo/internal/diag"
	"github.com/specialistvlad/codegengo/internal/manifest"
	"github.com/specialistvlad/codegengo/internal/options"
	"github.com/specialistvlad/codegengo/internal/render"
)

// Build constructs descriptors from deduplicated manifest entries: the name
// filter is applied first, then each surviving entry gets its output-path
// expression compiled and its template resolved. An entry that fails to
// compile or resolve is reported and skipped; the rest keep loading.
func Build(ctx context.Context, entries []manifest.NamedEntry, engine render.Engine, opts options.Map, reporter diag.Reporter) []*Descriptor {
	logger := ctxlog.FromContext(ctx)

	filter := newFilter(ctx, opts, reporter)

	var descriptors []*Descriptor
	for _, entry := range entries {
		if !filter.keep(entry.Name) {
			logger.Debug("Generator filtered out by name pattern.", "name", entry.Name)
			continue
		}

		pathExpr, err := compilePathExpr(entry.Filename)
		if err != nil {
			reporter.Report(ctx, diag.Diagnostic{
				Severity: diag.SeverityError,
				Message:  fmt.Sprintf("Could not compile filename expression for generator %s: %v", entry.Name, err),
			})
			continue
		}

		tmpl, err := engine.Resolve(entry.TemplateFilename, opts)
		if err != nil {
			reporter.Report(ctx, diag.Diagnostic{
				Severity: diag.SeverityError,
				Message:  fmt.Sprintf("Could not resolve template for generator %s: %v", entry.Name, err),
			})
			continue
		}

		descriptors = append(descriptors, &Descriptor{
			Name:        entry.Name,
			Kind:        entry.Kind,
			Incremental: entry.Incremental,
			PathExpr:    pathExpr,
			Template:    tmpl,
		})
		logger.Info("Loaded code generator.", "name", entry.Name, "kind", entry.Kind, "template", entry.TemplateFilename)
	}
	return descriptors
}

// compilePathExpr compiles the manifest's filename string as an HCL
// expression.
func compilePathExpr(src string) (hcl.Expression, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "filename", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}
	return expr, nil
}
