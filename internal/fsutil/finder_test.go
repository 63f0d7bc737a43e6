package fsutil_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/codegengo/internal/fsutil"
	"github.com/specialistvlad/codegengo/internal/testutil"
)

func TestFindFilesByExtension(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"a.tmpl":        "",
		"sub/b.tmpl":    "",
		"sub/ignore.md": "",
	})

	files, err := fsutil.FindFilesByExtension(root, ".tmpl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.tmpl"),
		filepath.Join(root, "sub", "b.tmpl"),
	}, files)
}

func TestFindFilesByName(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"codegen.hcl":        "",
		"mod/codegen.yaml":   "",
		"mod/other.yaml":     "",
		"deep/x/codegen.hcl": "",
	})

	files, err := fsutil.FindFilesByName(root, "codegen.hcl", "codegen.yaml")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "codegen.hcl"),
		filepath.Join(root, "mod", "codegen.yaml"),
		filepath.Join(root, "deep", "x", "codegen.hcl"),
	}, files)
}

func TestFindMissingRoot(t *testing.T) {
	files, err := fsutil.FindFilesByExtension(filepath.Join(t.TempDir(), "absent"), ".tmpl")
	require.NoError(t, err)
	assert.Empty(t, files)
}
