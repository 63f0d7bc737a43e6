package render

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/specialistvlad/codegengo/internal/model"
)

// GoTemplateEngine is the default Engine: template identifiers are file
// paths relative to a root directory, parsed with text/template. Templates
// are parsed once, at Resolve time.
type GoTemplateEngine struct {
	root  string
	cache map[string]*goTemplate
}

// NewGoTemplateEngine creates an engine loading templates under root.
func NewGoTemplateEngine(root string) *GoTemplateEngine {
	return &GoTemplateEngine{
		root:  root,
		cache: make(map[string]*goTemplate),
	}
}

// Resolve implements Engine.
func (e *GoTemplateEngine) Resolve(name string, options map[string]string) (Template, error) {
	if t, ok := e.cache[name]; ok {
		return t, nil
	}
	path := filepath.Join(e.root, filepath.FromSlash(name))
	tmpl, err := template.New(filepath.Base(path)).Funcs(funcMap()).ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	t := &goTemplate{name: name, tmpl: tmpl, options: options}
	e.cache[name] = t
	return t, nil
}

// goTemplate is one parsed text/template bound to its manifest identifier.
type goTemplate struct {
	name    string
	tmpl    *template.Template
	options map[string]string
}

// Render implements Template. The data root exposes the model's identity,
// its native vars, the propagated options, and the caller's extra variables
// at the top level.
func (t *goTemplate) Render(m *model.Model, vars map[string]any) (string, error) {
	native, err := m.NativeVars()
	if err != nil {
		return "", fmt.Errorf("template %s: %w", t.name, err)
	}

	data := map[string]any{
		"fqn":     m.Fqn,
		"module":  m.Module,
		"name":    m.Name(),
		"kind":    m.Kind,
		"vars":    native,
		"options": t.options,
	}
	for k, v := range vars {
		data[k] = v
	}

	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("template %s: %w", t.name, err)
	}
	return sb.String(), nil
}
