// Package generator turns normalized manifest entries into immutable
// generator descriptors: the output-path expression compiled, the template
// resolved, the name filter applied. Descriptors are constructed once per
// invocation and never mutated afterwards.
package generator

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/specialistvlad/codegengo/internal/render"
)

// Descriptor is the immutable definition of one generator.
type Descriptor struct {
	// Name is the generator's unique identifier, taken from the
	// contributing manifest's module name.
	Name string
	// Kind is the model kind this generator fires for.
	Kind string
	// Incremental generators accumulate into a unit alongside others;
	// non-incremental ones take the unit over.
	Incremental bool
	// PathExpr is the compiled output-path expression. Evaluated per model
	// against the pipeline's variable environment; an empty or null result
	// means the generator opts out for that model.
	PathExpr hcl.Expression
	// Template is the resolved render handle.
	Template render.Template
}
