package pipeline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/codegengo/internal/diag"
	"github.com/specialistvlad/codegengo/internal/generator"
	"github.com/specialistvlad/codegengo/internal/model"
)

// fakeTemplate renders a fixed prefix plus the model name, and records the
// vars it saw.
type fakeTemplate struct {
	prefix string
	err    error
	seen   []map[string]any
}

func (f *fakeTemplate) Render(m *model.Model, vars map[string]any) (string, error) {
	f.seen = append(f.seen, vars)
	if f.err != nil {
		return "", f.err
	}
	return f.prefix + m.Name() + ";", nil
}

func newDescriptor(name string, incremental bool, tmpl *fakeTemplate) *generator.Descriptor {
	return &generator.Descriptor{Name: name, Kind: "class", Incremental: incremental, Template: tmpl}
}

func newModel(fqn string) *model.Model {
	return &model.Model{Fqn: fqn, Kind: "class", Element: fqn}
}

func TestUnitNonIncrementalTakesOver(t *testing.T) {
	inc := newDescriptor("inc", true, &fakeTemplate{prefix: "i:"})
	full := newDescriptor("full", false, &fakeTemplate{prefix: "f:"})

	u := NewUnit("out.txt")
	u.Add(Assignment{Model: newModel("a.A"), Generator: inc})
	u.Add(Assignment{Model: newModel("a.B"), Generator: inc})
	require.Equal(t, 2, u.Len())

	// A non-incremental append discards everything before it.
	u.Add(Assignment{Model: newModel("a.C"), Generator: full})
	require.Equal(t, 1, u.Len())

	// Incremental contributions after the takeover accumulate again.
	u.Add(Assignment{Model: newModel("a.D"), Generator: inc})
	require.Equal(t, 2, u.Len())

	content, err := u.Render()
	require.NoError(t, err)
	assert.Equal(t, "f:C;i:D;", content)
}

func TestUnitRenderSortsBySimpleName(t *testing.T) {
	tmpl := &fakeTemplate{}
	gen := newDescriptor("gen", true, tmpl)

	u := NewUnit("out.txt")
	u.Add(Assignment{Model: newModel("x.Zeta"), Generator: gen})
	u.Add(Assignment{Model: newModel("y.Alpha"), Generator: gen})
	u.Add(Assignment{Model: newModel("z.Mid"), Generator: gen})

	content, err := u.Render()
	require.NoError(t, err)
	assert.Equal(t, "Alpha;Mid;Zeta;", content)
}

func TestUnitIncrementalVars(t *testing.T) {
	tmpl := &fakeTemplate{}
	gen := newDescriptor("gen", true, tmpl)

	u := NewUnit("out.txt")
	for i := 0; i < 3; i++ {
		u.Add(Assignment{Model: newModel(fmt.Sprintf("a.M%d", i)), Generator: gen})
	}

	_, err := u.Render()
	require.NoError(t, err)
	require.Len(t, tmpl.seen, 3)

	var session map[string]any
	for i, vars := range tmpl.seen {
		assert.Equal(t, i, vars["incrementalIndex"])
		assert.Equal(t, 3, vars["incrementalSize"])
		assert.Equal(t, "gen", vars["generator"])
		got, ok := vars["session"].(map[string]any)
		require.True(t, ok)
		if session == nil {
			session = got
		}
		// The shared session map instance is identical across all
		// assignments of one render call.
		got["mark"] = i
		assert.Equal(t, i, session["mark"])
	}
}

func TestUnitNonIncrementalSeesNoIncrementalVars(t *testing.T) {
	tmpl := &fakeTemplate{}
	gen := newDescriptor("gen", false, tmpl)

	u := NewUnit("out.txt")
	u.Add(Assignment{Model: newModel("a.A"), Generator: gen})

	_, err := u.Render()
	require.NoError(t, err)
	require.Len(t, tmpl.seen, 1)
	assert.NotContains(t, tmpl.seen[0], "incrementalIndex")
	assert.NotContains(t, tmpl.seen[0], "session")
}

func TestUnitRenderFailureAbortsUnit(t *testing.T) {
	good := newDescriptor("good", true, &fakeTemplate{prefix: "ok:"})
	bad := newDescriptor("bad", true, &fakeTemplate{err: errors.New("boom")})

	u := NewUnit("out.txt")
	u.Add(Assignment{Model: newModel("a.A"), Generator: good})
	u.Add(Assignment{Model: newModel("a.B"), Generator: bad})

	_, err := u.Render()
	require.Error(t, err)

	var genErr *diag.GenError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "a.B", genErr.Element)
}
