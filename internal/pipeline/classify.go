package pipeline

import "strings"

// OutputKind is the three-way split of generated output. The kinds have
// different sinks with different identity rules: source identity is a
// fully-qualified type name, the others are plain relative paths.
type OutputKind int

const (
	// KindSource is a generated source file, written through the source sink.
	KindSource OutputKind = iota
	// KindResource is a generated resource, written through the resource sink.
	KindResource
	// KindFile is any other generated file, written to the filesystem.
	KindFile
)

// DefaultSourceSuffix is the generated-source suffix the classifier
// recognizes when none is configured.
const DefaultSourceSuffix = ".java"

// resourcePrefix marks an evaluated path as resource output.
const resourcePrefix = "resources/"

// classifier decides which output kind an evaluated relative path belongs to
// and rewrites the path accordingly.
type classifier struct {
	sourceSuffix string
	// relocations maps a generator name to an alternate root for its
	// simple-name source outputs.
	relocations map[string]string
}

func newClassifier(sourceSuffix string, relocations map[string]string) *classifier {
	if sourceSuffix == "" {
		sourceSuffix = DefaultSourceSuffix
	}
	return &classifier{sourceSuffix: sourceSuffix, relocations: relocations}
}

// classify applies the classification rules in order:
//
//   - a path with the source suffix and no separator is SOURCE, unless the
//     generator has a relocation configured, in which case the simple name is
//     expanded to a nested path under the relocation root and the output
//     becomes a plain file (it now carries an explicit directory, so it must
//     not go through the source sink);
//   - a path starting with "resources/" is RESOURCE, with the prefix stripped;
//   - anything else is a plain file, unchanged.
func (c *classifier) classify(rawPath, generatorName string) (OutputKind, string) {
	if strings.HasSuffix(rawPath, c.sourceSuffix) && !strings.Contains(rawPath, "/") {
		relocation, ok := c.relocations[generatorName]
		if !ok {
			return KindSource, rawPath
		}
		fqn := strings.TrimSuffix(rawPath, c.sourceSuffix)
		return KindFile, relocation + "/" + strings.ReplaceAll(fqn, ".", "/") + c.sourceSuffix
	}
	if strings.HasPrefix(rawPath, resourcePrefix) {
		return KindResource, strings.TrimPrefix(rawPath, resourcePrefix)
	}
	return KindFile, rawPath
}

// stripSuffix removes the source suffix, turning "a.b.Foo.java" into the
// fully-qualified name "a.b.Foo".
func (c *classifier) stripSuffix(rawPath string) string {
	return strings.TrimSuffix(rawPath, c.sourceSuffix)
}
