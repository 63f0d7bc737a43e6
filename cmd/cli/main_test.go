package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/codegengo/internal/testutil"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"manifests/core/codegen.hcl": `
manifest "core" {
  generator {
    kind              = "class"
    template_filename = "class.tmpl"
    filename          = "\"${fqn}.java\""
  }
}
`,
		"templates/class.tmpl": "// {{.fqn}}\n",
		"models/models.hcl":    `model "class" "com.acme.User" {}`,
	})
	out := &bytes.Buffer{}
	args := []string{
		"-manifests", filepath.Join(root, "manifests"),
		"-templates", filepath.Join(root, "templates"),
		"-source-output", filepath.Join(root, "out"),
		filepath.Join(root, "models"),
	}

	err := run(out, args)

	require.NoError(t, err)
	require.FileExists(t, filepath.Join(root, "out", "com", "acme", "User.java"))
}
