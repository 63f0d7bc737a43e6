// Package render defines the template engine contract used by the pipeline
// and ships the default text/template implementation. The engine is a
// pluggable collaborator: the pipeline only ever sees resolved Template
// handles and calls Render on them.
package render

import (
	"github.com/specialistvlad/codegengo/internal/model"
)

// Template is a renderable handle, resolved once at generator load time.
type Template interface {
	// Render produces text from a model and a variable environment. An
	// empty result means the template contributes nothing to the unit.
	Render(m *model.Model, vars map[string]any) (string, error)
}

// Engine resolves template identifiers from manifests into Template handles.
type Engine interface {
	// Resolve binds a template to its identifier. The caller's option map
	// is propagated into the template's render environment.
	Resolve(name string, options map[string]string) (Template, error)
}
