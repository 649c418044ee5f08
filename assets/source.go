// Package assets exposes a runtime content store to scripts: a path-keyed
// map of byte blobs and decoded images, registered as a source in the
// host's content-resolution system.
package assets

import (
	"image"
	"sort"
	"sync"
)

// MemorySource is a shared, mutable, path-keyed store of bytes and decoded
// images. It carries a name and free-form metadata for introspection
// tooling. All operations are safe for concurrent use.
type MemorySource struct {
	mu       sync.RWMutex
	name     string
	metadata map[string]string
	entries  map[string]sourceEntry
}

type sourceEntry struct {
	data []byte
	img  image.Image
}

// NewMemorySource creates an empty source.
func NewMemorySource(name string, metadata map[string]string) *MemorySource {
	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}
	return &MemorySource{
		name:     name,
		metadata: meta,
		entries:  make(map[string]sourceEntry),
	}
}

// Name returns the source name.
func (s *MemorySource) Name() string { return s.name }

// Metadata returns a copy of the source metadata.
func (s *MemorySource) Metadata() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.metadata))
	for k, v := range s.metadata {
		out[k] = v
	}
	return out
}

// Set stores raw bytes at a path, replacing any existing entry.
func (s *MemorySource) Set(path string, data []byte) {
	s.mu.Lock()
	s.entries[path] = sourceEntry{data: data}
	s.mu.Unlock()
}

// SetImage stores a decoded image at a path, replacing any existing entry.
func (s *MemorySource) SetImage(path string, img image.Image) {
	s.mu.Lock()
	s.entries[path] = sourceEntry{img: img}
	s.mu.Unlock()
}

// Read returns a copy of the bytes stored at a path, so callers cannot
// mutate the store through the result. Image entries and missing paths
// both report false.
func (s *MemorySource) Read(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[path]
	if !ok || e.data == nil {
		return nil, false
	}
	out := make([]byte, len(e.data))
	copy(out, e.data)
	return out, true
}

// Image returns the decoded image stored at a path, if the entry is an
// image entry.
func (s *MemorySource) Image(path string) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[path]
	if !ok || e.img == nil {
		return nil, false
	}
	return e.img, true
}

// Contains reports whether any entry exists at a path.
func (s *MemorySource) Contains(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[path]
	return ok
}

// Erase removes an entry and reports whether it existed.
func (s *MemorySource) Erase(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[path]
	if ok {
		delete(s.entries, path)
	}
	return ok
}

// Paths returns all stored paths in sorted order.
func (s *MemorySource) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.entries))
	for p := range s.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of entries.
func (s *MemorySource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
