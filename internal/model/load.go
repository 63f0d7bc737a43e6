package model

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/codegengo/internal/ctxlog"
	"github.com/specialistvlad/codegengo/internal/fsutil"
)

// modelsFile is the HCL schema of a model definition file.
type modelsFile struct {
	Models []modelBlock `hcl:"model,block"`
}

type modelBlock struct {
	Kind   string         `hcl:"kind,label"`
	Fqn    string         `hcl:"fqn,label"`
	Module string         `hcl:"module,optional"`
	Vars   hcl.Expression `hcl:"vars,optional"`
}

// FileProvider discovers model definition files recursively under a root
// path and loads every `model` block. Loading happens once, on the first
// Models call.
type FileProvider struct {
	root   string
	loaded []*Model
	done   bool
}

// NewFileProvider creates a provider rooted at the given path.
func NewFileProvider(root string) *FileProvider {
	return &FileProvider{root: root}
}

// Models implements Provider.
func (p *FileProvider) Models(ctx context.Context) ([]*Model, error) {
	if p.done {
		return p.loaded, nil
	}
	models, err := LoadModelsRecursively(ctx, p.root)
	if err != nil {
		return nil, err
	}
	p.loaded = models
	p.done = true
	return p.loaded, nil
}

// LoadModelsRecursively walks the root path for .hcl files and decodes every
// model block found. A malformed file fails the whole load: model files are
// first-party input, unlike generator manifests.
func LoadModelsRecursively(ctx context.Context, root string) ([]*Model, error) {
	logger := ctxlog.FromContext(ctx)

	filePaths, err := fsutil.FindFilesByExtension(root, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to walk model path %s: %w", root, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl model files found in path", "path", root)
		return nil, nil
	}

	parser := hclparse.NewParser()
	var models []*Model
	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse model file %s: %w", filePath, diags)
		}
		var f modelsFile
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode model file %s: %w", filePath, diags)
		}
		for _, blk := range f.Models {
			m, err := blk.translate()
			if err != nil {
				return nil, fmt.Errorf("in model file %s: %w", filePath, err)
			}
			models = append(models, m)
		}
		logger.Debug("Loaded model definitions from file.", "file", filePath)
	}

	logger.Info("Models loaded successfully.", "models_found", len(models))
	return models, nil
}

// translate converts the decoded HCL block into a Model, evaluating the
// vars attribute into the cty value space.
func (b *modelBlock) translate() (*Model, error) {
	m := &Model{
		Kind:    b.Kind,
		Fqn:     b.Fqn,
		Module:  b.Module,
		Element: b.Fqn,
		Vars:    map[string]cty.Value{},
	}
	if b.Vars == nil {
		return m, nil
	}
	val, diags := b.Vars.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid vars for model '%s': %w", b.Fqn, diags)
	}
	if val.IsNull() {
		return m, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("vars for model '%s' must be an object", b.Fqn)
	}
	it := val.ElementIterator()
	for it.Next() {
		key, elem := it.Element()
		m.Vars[key.AsString()] = elem
	}
	return m, nil
}
