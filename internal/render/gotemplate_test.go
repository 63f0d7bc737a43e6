package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/codegengo/internal/model"
	"github.com/specialistvlad/codegengo/internal/render"
	"github.com/specialistvlad/codegengo/internal/testutil"
)

func TestResolveAndRender(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"class.tmpl": "// {{.fqn}} ({{.kind}}) in {{.module}}: {{.vars.greeting}} opt={{index .options \"flavor\"}}",
	})
	engine := render.NewGoTemplateEngine(root)

	tmpl, err := engine.Resolve("class.tmpl", map[string]string{"flavor": "dark"})
	require.NoError(t, err)

	out, err := tmpl.Render(&model.Model{
		Fqn:    "com.acme.Foo",
		Module: "acme",
		Kind:   "class",
		Vars:   map[string]cty.Value{"greeting": cty.StringVal("hi")},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "// com.acme.Foo (class) in acme: hi opt=dark", out)
}

func TestResolveMissingTemplate(t *testing.T) {
	engine := render.NewGoTemplateEngine(t.TempDir())
	_, err := engine.Resolve("nope.tmpl", nil)
	assert.Error(t, err)
}

func TestResolveCachesTemplates(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"a.tmpl": "x"})
	engine := render.NewGoTemplateEngine(root)

	first, err := engine.Resolve("a.tmpl", nil)
	require.NoError(t, err)
	second, err := engine.Resolve("a.tmpl", nil)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestExtraVarsShadowAndSessionFuncs(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"inc.tmpl": `{{if not (sessionHas .session "header")}}{{sessionPut .session "header" true}}HEADER
{{end}}{{.incrementalIndex}}/{{.incrementalSize}} {{.name}}
`,
	})
	engine := render.NewGoTemplateEngine(root)
	tmpl, err := engine.Resolve("inc.tmpl", nil)
	require.NoError(t, err)

	session := map[string]any{}
	m := &model.Model{Fqn: "a.Foo"}

	first, err := tmpl.Render(m, map[string]any{
		"incrementalIndex": 0, "incrementalSize": 2, "session": session,
	})
	require.NoError(t, err)
	second, err := tmpl.Render(m, map[string]any{
		"incrementalIndex": 1, "incrementalSize": 2, "session": session,
	})
	require.NoError(t, err)

	// The header is emitted once per unit, guarded through the session.
	assert.Equal(t, "HEADER\n0/2 Foo\n", first)
	assert.Equal(t, "1/2 Foo\n", second)
}

func TestStringHelpers(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"h.tmpl": `{{upper .name}} {{camel "foo_bar-baz"}} {{snake "fooBarBaz"}} {{trimSuffix ".java" "Foo.java"}}`,
	})
	engine := render.NewGoTemplateEngine(root)
	tmpl, err := engine.Resolve("h.tmpl", nil)
	require.NoError(t, err)

	out, err := tmpl.Render(&model.Model{Fqn: "a.Foo"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "FOO fooBarBaz foo_bar_baz Foo", out)
}
