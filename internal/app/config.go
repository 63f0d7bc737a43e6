package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestPaths is the search path scanned for generator manifests.
	ManifestPaths []string
	// ModelPath is the root of the model definition files.
	ModelPath string
	// TemplatePath is the root directory templates are resolved under.
	TemplatePath string

	// SourceOutput is the directory generated sources are written to.
	SourceOutput string
	// ResourceOutput is the primary directory for generated resources.
	ResourceOutput string
	// ResourceCompanion is an optional second resource location. Empty or
	// equal to ResourceOutput means no companion copies are written.
	ResourceCompanion string

	// Options is the raw option map passed through to expressions and
	// templates; well-known keys configure the pipeline (see the options
	// package).
	Options map[string]string

	LogFormat string
	LogLevel  string
	// DryRun routes all sinks to memory and reports what would be written.
	DryRun bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
	}
	if len(cfg.ManifestPaths) == 0 {
		return nil, errors.New("at least one manifest path is required")
	}
	if cfg.Options == nil {
		cfg.Options = map[string]string{}
	}
	return &cfg, nil
}
