// Package sink defines the low-level output interfaces the pipeline writes
// through. The three kinds of generated output have different identity rules
// and different persistence semantics, so each gets its own interface:
// sources are keyed by fully-qualified type name, resources by relative path
// with an optional companion location, generic files by plain path.
package sink

import "context"

// SourceSink persists generated source files, keyed by fully-qualified name.
type SourceSink interface {
	// Exists reports whether a declaration with this fully-qualified name
	// is already present in the current compilation context. The pipeline
	// skips assignments whose target already exists, so previously
	// generated and compiled sources are not regenerated across
	// incremental rebuilds.
	Exists(fqn string) bool

	// Write persists the rendered source for the given type.
	Write(ctx context.Context, fqn string, content string) error
}

// ResourceSink persists generated resources by relative path. Some build
// layouts keep a separate source-adjacent copy of resources; the companion
// location models that.
type ResourceSink interface {
	Write(ctx context.Context, relPath string, content string) error

	// CompanionDistinct reports whether the companion location is a
	// physically different place from the primary one. When it is not,
	// writing the companion copy would be redundant and is skipped.
	CompanionDistinct() bool

	// WriteCompanion persists a second copy at the companion location.
	WriteCompanion(ctx context.Context, relPath string, content string) error
}

// FileSink persists arbitrary generated files by relative path, creating
// parent directories as needed.
type FileSink interface {
	Write(ctx context.Context, relPath string, content string) error
}
