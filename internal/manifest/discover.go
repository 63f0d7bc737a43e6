package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/codegengo/internal/fsutil"
)

// Manifest file base names recognized on the search path. One per
// contributing module; a path may carry many.
const (
	hclManifestName   = "codegen.hcl"
	yamlManifestName  = "codegen.yaml"
	yamlManifestName2 = "codegen.yml"
)

// discover returns every manifest file under root, in walk order.
func discover(root string) ([]string, error) {
	return fsutil.FindFilesByName(root, hclManifestName, yamlManifestName, yamlManifestName2)
}

// parseFile parses a single manifest file, dispatching on its extension.
func parseFile(path string) (Manifest, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return parseHCLFile(path)
	case ".yaml", ".yml":
		return parseYAMLFile(path)
	default:
		return Manifest{}, fmt.Errorf("unsupported manifest format: %s", path)
	}
}
