// This file contains the YAML manifest schema. It mirrors the historical
// JSON descriptor layout, including both field spellings.

package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlManifest struct {
	Name       string          `yaml:"name"`
	Generators []yamlGenerator `yaml:"generators"`
}

type yamlGenerator struct {
	Kind             string `yaml:"kind"`
	TemplateFilename string `yaml:"templateFilename"`
	TemplateFileName string `yaml:"templateFileName"`
	Filename         string `yaml:"filename"`
	FileName         string `yaml:"fileName"`
	Incremental      bool   `yaml:"incremental"`
}

// parseYAMLFile parses one codegen.yaml / codegen.yml manifest.
func parseYAMLFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read YAML manifest: %w", err)
	}

	var y yamlManifest
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Manifest{}, fmt.Errorf("failed to decode YAML manifest: %w", err)
	}
	if y.Name == "" {
		return Manifest{}, fmt.Errorf("manifest is missing 'name'")
	}

	m := Manifest{Name: y.Name, Path: path}
	for _, g := range y.Generators {
		entry := GeneratorEntry{
			Kind:             g.Kind,
			TemplateFilename: first(g.TemplateFilename, g.TemplateFileName),
			Filename:         first(g.Filename, g.FileName),
			Incremental:      g.Incremental,
		}
		if err := entry.validate(); err != nil {
			return Manifest{}, fmt.Errorf("in manifest '%s': %w", y.Name, err)
		}
		m.Generators = append(m.Generators, entry)
	}
	return m, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
