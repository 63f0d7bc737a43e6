// This file contains the HCL manifest schema and its translation into the
// format-agnostic manifest model.

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclManifestFile is the top-level HCL schema of a codegen.hcl file.
type hclManifestFile struct {
	Manifests []hclManifestBlock `hcl:"manifest,block"`
}

type hclManifestBlock struct {
	Name       string              `hcl:"name,label"`
	Generators []hclGeneratorBlock `hcl:"generator,block"`
}

// hclGeneratorBlock accepts both historical spellings of the template and
// filename attributes; normalization happens in translate.
type hclGeneratorBlock struct {
	Kind             string  `hcl:"kind"`
	TemplateFilename *string `hcl:"template_filename,optional"`
	TemplateFileName *string `hcl:"template_file_name,optional"`
	Filename         *string `hcl:"filename,optional"`
	FileName         *string `hcl:"file_name,optional"`
	Incremental      *bool   `hcl:"incremental,optional"`
}

// parseHCLFile parses one codegen.hcl manifest. Each file carries exactly
// one manifest block; the block label is the contributing module's name.
func parseHCLFile(path string) (Manifest, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Manifest{}, fmt.Errorf("failed to parse HCL manifest: %w", diags)
	}

	var f hclManifestFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return Manifest{}, fmt.Errorf("failed to decode HCL manifest: %w", diags)
	}
	if len(f.Manifests) != 1 {
		return Manifest{}, fmt.Errorf("expected exactly one manifest block, found %d", len(f.Manifests))
	}

	blk := f.Manifests[0]
	m := Manifest{Name: blk.Name, Path: path}
	for _, g := range blk.Generators {
		entry, err := g.translate()
		if err != nil {
			return Manifest{}, fmt.Errorf("in manifest '%s': %w", blk.Name, err)
		}
		m.Generators = append(m.Generators, entry)
	}
	return m, nil
}

// translate normalizes the legacy attribute spellings into the canonical
// entry fields. The canonical spelling wins when both are present.
func (g *hclGeneratorBlock) translate() (GeneratorEntry, error) {
	entry := GeneratorEntry{
		Kind:             g.Kind,
		TemplateFilename: firstNonNil(g.TemplateFilename, g.TemplateFileName),
		Filename:         firstNonNil(g.Filename, g.FileName),
	}
	if g.Incremental != nil {
		entry.Incremental = *g.Incremental
	}
	if err := entry.validate(); err != nil {
		return GeneratorEntry{}, err
	}
	return entry, nil
}

func firstNonNil(values ...*string) string {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return ""
}
