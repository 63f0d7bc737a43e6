// Package options interprets the string key/value options supplied by the
// invoking build step. Well-known keys configure the pipeline; everything
// else is passed through verbatim into every template's environment.
package options

import (
	"context"
	"sort"
	"strings"

	"github.com/specialistvlad/codegengo/internal/ctxlog"
)

// Well-known option keys. The legacy aliases are accepted with a warning.
const (
	KeyOutput     = "codegen.output"
	KeyGenerators = "codegen.generators"

	legacyOutput     = "outputDirectory"
	legacyGenerators = "codeGenerators"

	relocationPrefix = "codegen.output."
)

// Map is the raw option set for one invocation.
type Map map[string]string

// OutputDir returns the configured filesystem root for generic file output,
// honoring the legacy alias.
func (o Map) OutputDir(ctx context.Context) (string, bool) {
	return o.lookup(ctx, KeyOutput, legacyOutput)
}

// GeneratorPatterns returns the comma-separated generator name patterns,
// split and trimmed, honoring the legacy alias. A nil slice means no filter
// is configured and every generator passes.
func (o Map) GeneratorPatterns(ctx context.Context) []string {
	raw, ok := o.lookup(ctx, KeyGenerators, legacyGenerators)
	if !ok {
		return nil
	}
	parts := strings.Split(raw, ",")
	patterns := make([]string, 0, len(parts))
	for _, p := range parts {
		patterns = append(patterns, strings.TrimSpace(p))
	}
	return patterns
}

// Relocations returns the per-generator relocation roots, keyed by generator
// name, from options of the form "codegen.output.<generatorName>".
func (o Map) Relocations() map[string]string {
	relocations := make(map[string]string)
	for key, value := range o {
		if strings.HasPrefix(key, relocationPrefix) {
			relocations[key[len(relocationPrefix):]] = value
		}
	}
	return relocations
}

// Keys returns all option keys in sorted order.
func (o Map) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o Map) lookup(ctx context.Context, key, legacyKey string) (string, bool) {
	if v, ok := o[key]; ok {
		return v, true
	}
	if v, ok := o[legacyKey]; ok {
		ctxlog.FromContext(ctx).Warn("Please use the new option name instead of the legacy alias.",
			"option", key, "legacy", legacyKey)
		return v, true
	}
	return "", false
}
