package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/codegengo/internal/model"
	"github.com/specialistvlad/codegengo/internal/testutil"
)

func TestName(t *testing.T) {
	testCases := []struct {
		fqn      string
		expected string
	}{
		{"com.acme.Foo", "Foo"},
		{"Foo", "Foo"},
		{"a.b.c.D", "D"},
		{"", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.fqn, func(t *testing.T) {
			m := &model.Model{Fqn: tc.fqn}
			assert.Equal(t, tc.expected, m.Name())
		})
	}
}

func TestLoadModels(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"svc/models.hcl": `
model "class" "com.acme.AuthService" {
  module = "acme"
  vars = {
    concrete = true
    methods  = ["login", "logout"]
  }
}

model "module" "com.acme" {
  module = "acme"
}
`,
	})
	ctx, _ := testutil.Context(t)

	models, err := model.LoadModelsRecursively(ctx, root)
	require.NoError(t, err)
	require.Len(t, models, 2)

	auth := models[0]
	assert.Equal(t, "class", auth.Kind)
	assert.Equal(t, "com.acme.AuthService", auth.Fqn)
	assert.Equal(t, "com.acme.AuthService", auth.Element)
	assert.Equal(t, "acme", auth.Module)
	assert.Equal(t, cty.True, auth.Vars["concrete"])

	native, err := auth.NativeVars()
	require.NoError(t, err)
	assert.Equal(t, []any{"login", "logout"}, native["methods"])

	assert.Equal(t, "module", models[1].Kind)
	assert.Empty(t, models[1].Vars)
}

func TestLoadModelsBadFile(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"bad.hcl": `model "class" {`,
	})
	ctx, _ := testutil.Context(t)

	_, err := model.LoadModelsRecursively(ctx, root)
	assert.Error(t, err)
}

func TestFileProviderLoadsOnce(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"m.hcl": `model "class" "a.Foo" {}`,
	})
	ctx, _ := testutil.Context(t)

	p := model.NewFileProvider(root)
	first, err := p.Models(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := p.Models(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCtyToNative(t *testing.T) {
	v, err := model.CtyToNative(cty.ObjectVal(map[string]cty.Value{
		"s": cty.StringVal("x"),
		"n": cty.NumberIntVal(3),
		"f": cty.NumberFloatVal(1.5),
		"b": cty.True,
		"l": cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(2)}),
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"s": "x",
		"n": 3,
		"f": 1.5,
		"b": true,
		"l": []any{"a", 2},
	}, v)
}
