// Package model defines the semantic model consumed by the generation
// pipeline: one Model per annotated declaration, exposing named values for
// template consumption. The pipeline only depends on the Provider interface;
// this package also ships the file-backed provider used by the CLI.
package model

import (
	"context"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Model is the semantic representation of one declaration.
type Model struct {
	// Fqn is the fully-qualified name of the declaration, e.g. "io.acme.Foo".
	Fqn string
	// Module is the owning module identifier.
	Module string
	// Kind tags which generators apply: a generator only fires for models
	// whose kind matches its own.
	Kind string
	// Element identifies the originating declaration for diagnostics.
	// Defaults to Fqn when models are loaded from files.
	Element string
	// Vars are the model's named values, exposed to path expressions and
	// templates.
	Vars map[string]cty.Value
}

// Name returns the simple declared name: the last dot-separated segment of
// the fully-qualified name. Units sort their assignments by this name.
func (m *Model) Name() string {
	if i := strings.LastIndexByte(m.Fqn, '.'); i >= 0 {
		return m.Fqn[i+1:]
	}
	return m.Fqn
}

// Provider supplies the models available for one processing pass.
type Provider interface {
	Models(ctx context.Context) ([]*Model, error)
}

// StaticProvider is a Provider over a fixed slice of models.
type StaticProvider []*Model

// Models implements Provider.
func (p StaticProvider) Models(context.Context) ([]*Model, error) {
	return p, nil
}
