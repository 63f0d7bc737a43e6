// Package fssink provides filesystem-backed implementations of the sink
// interfaces, used for real CLI runs.
package fssink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/codegengo/internal/ctxlog"
	"github.com/specialistvlad/codegengo/internal/sink"
)

// SourceDir writes generated sources under a root directory, mapping the
// fully-qualified name to a nested path. Existence queries consult the root
// itself plus any configured directories of already-compiled sources.
type SourceDir struct {
	root     string
	suffix   string
	existing []string
}

// NewSourceDir creates a source sink rooted at root. suffix is the source
// file suffix appended to the fqn-derived path (e.g. ".java"). existing
// lists additional roots whose sources count as already present.
func NewSourceDir(root, suffix string, existing ...string) *SourceDir {
	return &SourceDir{root: root, suffix: suffix, existing: existing}
}

// Exists implements sink.SourceSink.
func (s *SourceDir) Exists(fqn string) bool {
	rel := fqnToPath(fqn, s.suffix)
	for _, dir := range append([]string{s.root}, s.existing...) {
		if _, err := os.Stat(filepath.Join(dir, rel)); err == nil {
			return true
		}
	}
	return false
}

// Write implements sink.SourceSink.
func (s *SourceDir) Write(ctx context.Context, fqn string, content string) error {
	path := filepath.Join(s.root, fqnToPath(fqn, s.suffix))
	if err := writeFile(path, content); err != nil {
		return fmt.Errorf("failed to write source %s: %w", fqn, err)
	}
	ctxlog.FromContext(ctx).Debug("Wrote generated source.", "fqn", fqn, "path", path)
	return nil
}

// fqnToPath converts "a.b.Foo" into "a/b/Foo<suffix>".
func fqnToPath(fqn, suffix string) string {
	return filepath.FromSlash(strings.ReplaceAll(fqn, ".", "/")) + suffix
}

// ResourceDir writes generated resources under a primary directory and,
// optionally, a companion directory.
type ResourceDir struct {
	primary   string
	companion string
}

// NewResourceDir creates a resource sink. companion may be empty or equal to
// primary, in which case no companion copies are written.
func NewResourceDir(primary, companion string) *ResourceDir {
	return &ResourceDir{primary: primary, companion: companion}
}

// Write implements sink.ResourceSink.
func (s *ResourceDir) Write(ctx context.Context, relPath string, content string) error {
	path := filepath.Join(s.primary, filepath.FromSlash(relPath))
	if err := writeFile(path, content); err != nil {
		return fmt.Errorf("failed to write resource %s: %w", relPath, err)
	}
	ctxlog.FromContext(ctx).Debug("Wrote generated resource.", "path", path)
	return nil
}

// CompanionDistinct implements sink.ResourceSink.
func (s *ResourceDir) CompanionDistinct() bool {
	return s.companion != "" && s.companion != s.primary
}

// WriteCompanion implements sink.ResourceSink.
func (s *ResourceDir) WriteCompanion(ctx context.Context, relPath string, content string) error {
	path := filepath.Join(s.companion, filepath.FromSlash(relPath))
	if err := writeFile(path, content); err != nil {
		return fmt.Errorf("failed to write companion resource %s: %w", relPath, err)
	}
	ctxlog.FromContext(ctx).Debug("Wrote companion resource.", "path", path)
	return nil
}

// FileDir writes arbitrary generated files under a root directory.
type FileDir struct {
	root string
}

// NewFileDir creates a file sink rooted at root.
func NewFileDir(root string) *FileDir {
	return &FileDir{root: root}
}

// Write implements sink.FileSink.
func (s *FileDir) Write(ctx context.Context, relPath string, content string) error {
	path := filepath.Join(s.root, filepath.FromSlash(relPath))
	if err := writeFile(path, content); err != nil {
		return fmt.Errorf("failed to write file %s: %w", relPath, err)
	}
	ctxlog.FromContext(ctx).Debug("Wrote generated file.", "path", path)
	return nil
}

// writeFile writes content, creating parent directories first.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

var (
	_ sink.SourceSink   = (*SourceDir)(nil)
	_ sink.ResourceSink = (*ResourceDir)(nil)
	_ sink.FileSink     = (*FileDir)(nil)
)
