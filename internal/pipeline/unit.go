package pipeline

import (
	"sort"
	"strings"

	"github.com/specialistvlad/codegengo/internal/diag"
	"github.com/specialistvlad/codegengo/internal/generator"
	"github.com/specialistvlad/codegengo/internal/model"
)

// Assignment pairs a model with the generator invoked for it. Created when a
// model's evaluated path places it into a unit; never mutated afterwards.
type Assignment struct {
	Model     *model.Model
	Generator *generator.Descriptor
}

// Unit accumulates every assignment destined for one output artifact. It is
// created on first assignment to a path, lives in one of the three unit
// tables for the invocation, and is rendered exactly once.
type Unit struct {
	// Path is the resolved output path, the unit's identity in its table.
	Path string

	assignments []Assignment
	// session is shared mutable scratch space visible to every incremental
	// assignment rendered from this unit. It persists across render steps
	// within the unit but never across units.
	session map[string]any
}

// NewUnit creates an empty unit for the given output path.
func NewUnit(path string) *Unit {
	return &Unit{Path: path, session: make(map[string]any)}
}

// Add appends an assignment. A non-incremental generator fully owns its
// output: its contribution discards everything accumulated before it and
// starts the unit over.
func (u *Unit) Add(a Assignment) {
	if !a.Generator.Incremental {
		u.assignments = u.assignments[:0]
	}
	u.assignments = append(u.assignments, a)
}

// Len returns the number of accumulated assignments.
func (u *Unit) Len() int {
	return len(u.assignments)
}

// First returns the first accumulated assignment. It panics on an empty
// unit; units only exist once they have at least one assignment.
func (u *Unit) First() Assignment {
	return u.assignments[0]
}

// Render produces the unit's full content. Assignments are rendered in
// ascending order of the owning model's simple declared name (stable sort,
// insertion order breaks ties), so multi-model output is reproducible
// regardless of upstream traversal order. Incremental assignments
// additionally see a zero-based index, the total count, and the shared
// session map. Non-empty fragments are concatenated with no separator; a
// separator, if desired, is the template's responsibility.
//
// A render failure of one assignment aborts this unit's render as a whole.
func (u *Unit) Render() (string, error) {
	sort.SliceStable(u.assignments, func(i, j int) bool {
		return u.assignments[i].Model.Name() < u.assignments[j].Model.Name()
	})

	index := 0
	var buffer strings.Builder
	for _, a := range u.assignments {
		vars := map[string]any{
			"generator": a.Generator.Name,
		}
		if a.Generator.Incremental {
			vars["incrementalIndex"] = index
			vars["incrementalSize"] = len(u.assignments)
			vars["session"] = u.session
			index++
		}
		part, err := a.Generator.Template.Render(a.Model, vars)
		if err != nil {
			if genErr, ok := err.(*diag.GenError); ok {
				return "", genErr
			}
			return "", diag.WrapGenError(a.Model.Element, err)
		}
		buffer.WriteString(part)
	}
	return buffer.String(), nil
}
