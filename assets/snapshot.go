package assets

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Store snapshots give introspection tooling a stable, compact view of
// what scripts have created, without exposing the live source handle.

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("assets: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// SnapshotEntry describes one stored entry.
type SnapshotEntry struct {
	Path   string `cbor:"path"`
	Kind   string `cbor:"kind"` // "bytes" or "image"
	Size   int    `cbor:"size,omitempty"`
	Width  int    `cbor:"width,omitempty"`
	Height int    `cbor:"height,omitempty"`
}

// Snapshot describes the whole source at one point in time.
type Snapshot struct {
	Name     string            `cbor:"name"`
	Metadata map[string]string `cbor:"metadata"`
	Entries  []SnapshotEntry   `cbor:"entries"`
}

// Snapshot serializes the current source state to canonical CBOR.
func (s *Service) Snapshot() ([]byte, error) {
	src := s.Source()
	snap := Snapshot{
		Name:     src.Name(),
		Metadata: src.Metadata(),
	}
	for _, path := range src.Paths() {
		if data, ok := src.Read(path); ok {
			snap.Entries = append(snap.Entries, SnapshotEntry{
				Path: path, Kind: "bytes", Size: len(data),
			})
		} else if img, ok := src.Image(path); ok {
			bounds := img.Bounds()
			snap.Entries = append(snap.Entries, SnapshotEntry{
				Path: path, Kind: "image", Width: bounds.Dx(), Height: bounds.Dy(),
			})
		}
	}
	return cborEncMode.Marshal(&snap)
}

// DecodeSnapshot deserializes a snapshot produced by Snapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("assets: unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
