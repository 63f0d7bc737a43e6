// Package memsink provides ephemeral, in-memory implementations of the sink
// interfaces. They back tests and the CLI's dry-run mode, where writes are
// recorded instead of persisted.
package memsink

import (
	"context"
	"sync"

	"github.com/specialistvlad/codegengo/internal/sink"
)

// SourceStore records generated sources by fully-qualified name.
type SourceStore struct {
	mu       sync.Mutex
	written  map[string]string
	existing map[string]struct{}
}

// NewSourceStore creates an empty in-memory source sink. existing seeds the
// set of fully-qualified names that count as already compiled.
func NewSourceStore(existing ...string) *SourceStore {
	s := &SourceStore{
		written:  make(map[string]string),
		existing: make(map[string]struct{}, len(existing)),
	}
	for _, fqn := range existing {
		s.existing[fqn] = struct{}{}
	}
	return s
}

// Exists implements sink.SourceSink.
func (s *SourceStore) Exists(fqn string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.existing[fqn]; ok {
		return true
	}
	_, ok := s.written[fqn]
	return ok
}

// Write implements sink.SourceSink.
func (s *SourceStore) Write(_ context.Context, fqn string, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written[fqn] = content
	return nil
}

// Written returns a copy of everything written so far, keyed by fqn.
func (s *SourceStore) Written() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.written))
	for k, v := range s.written {
		out[k] = v
	}
	return out
}

// ResourceStore records generated resources by relative path.
type ResourceStore struct {
	mu        sync.Mutex
	primary   map[string]string
	companion map[string]string
	// distinct controls whether the companion location is treated as a
	// physically separate place.
	distinct bool
}

// NewResourceStore creates an empty in-memory resource sink.
func NewResourceStore(companionDistinct bool) *ResourceStore {
	return &ResourceStore{
		primary:   make(map[string]string),
		companion: make(map[string]string),
		distinct:  companionDistinct,
	}
}

// Write implements sink.ResourceSink.
func (s *ResourceStore) Write(_ context.Context, relPath string, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primary[relPath] = content
	return nil
}

// CompanionDistinct implements sink.ResourceSink.
func (s *ResourceStore) CompanionDistinct() bool {
	return s.distinct
}

// WriteCompanion implements sink.ResourceSink.
func (s *ResourceStore) WriteCompanion(_ context.Context, relPath string, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companion[relPath] = content
	return nil
}

// Primary returns a copy of the primary writes.
func (s *ResourceStore) Primary() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.primary))
	for k, v := range s.primary {
		out[k] = v
	}
	return out
}

// Companion returns a copy of the companion writes.
func (s *ResourceStore) Companion() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.companion))
	for k, v := range s.companion {
		out[k] = v
	}
	return out
}

// FileStore records generated files by relative path.
type FileStore struct {
	mu      sync.Mutex
	written map[string]string
}

// NewFileStore creates an empty in-memory file sink.
func NewFileStore() *FileStore {
	return &FileStore{written: make(map[string]string)}
}

// Write implements sink.FileSink.
func (s *FileStore) Write(_ context.Context, relPath string, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written[relPath] = content
	return nil
}

// Written returns a copy of everything written so far, keyed by path.
func (s *FileStore) Written() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.written))
	for k, v := range s.written {
		out[k] = v
	}
	return out
}

var (
	_ sink.SourceSink   = (*SourceStore)(nil)
	_ sink.ResourceSink = (*ResourceStore)(nil)
	_ sink.FileSink     = (*FileStore)(nil)
)
