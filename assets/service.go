package assets

import (
	"fmt"
	"image"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/hollis/imscript/script"
)

var log = commonlog.GetLogger("imscript.assets")

// PathPrefix is the namespace every temporary asset path must live under.
const PathPrefix = "/temp/"

// DefaultMount is the mount point the source registers under in the
// content-resolution system.
const DefaultMount = "/temp"

// PathError reports a path outside the temporary namespace, raised before
// any store mutation.
type PathError struct {
	Path   string
	Prefix string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("temporary asset path must start with %q, got: %s", e.Prefix, e.Path)
}

// Service owns the temporary asset source and exposes it to scripts. The
// source is created lazily on first use and registered with the resolver;
// the resolver and codec are injected so the service carries no process
// globals. All operations, including the lazy first construction and the
// whole-store swap in ClearTemporaryAssets, run under one mutex.
type Service struct {
	mu       sync.Mutex
	resolver Resolver
	codec    Codec
	source   *MemorySource

	sourceName  string
	description string
	mount       string
}

// Option configures a Service.
type Option func(*Service)

// WithSourceName overrides the diagnostic name of the temporary source.
func WithSourceName(name string) Option {
	return func(s *Service) { s.sourceName = name }
}

// WithDescription overrides the diagnostic description.
func WithDescription(desc string) Option {
	return func(s *Service) { s.description = desc }
}

// WithMount overrides the resolver mount point.
func WithMount(mount string) Option {
	return func(s *Service) { s.mount = mount }
}

// NewService creates the asset service over its collaborators.
func NewService(resolver Resolver, codec Codec, opts ...Option) *Service {
	s := &Service{
		resolver:    resolver,
		codec:       codec,
		sourceName:  "Temporary Assets",
		description: "Runtime-created assets from scripts",
		mount:       DefaultMount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func checkPath(path string) error {
	if len(path) < len(PathPrefix) || path[:len(PathPrefix)] != PathPrefix {
		return &PathError{Path: path, Prefix: PathPrefix}
	}
	return nil
}

// temporarySource returns the shared source, creating and registering it
// on first use. Caller must hold s.mu.
func (s *Service) temporarySource() *MemorySource {
	if s.source == nil {
		s.source = s.newSource()
		s.resolver.AddRuntimeSource(s.mount, s.source)
		log.Info("Initialized temporary asset source")
	}
	return s.source
}

func (s *Service) newSource() *MemorySource {
	return NewMemorySource("temp", map[string]string{
		"name":        s.sourceName,
		"description": s.description,
	})
}

// register re-registers the current source under the mount point. It is
// idempotent and repeated on every mutating call, matching the resolver's
// supersede semantics. Caller must hold s.mu.
func (s *Service) register() {
	s.resolver.AddRuntimeSource(s.mount, s.source)
}

// MakeAsset stores a dynamic value under a temporary path. Dispatch order
// is fixed: a string stores raw bytes, an image stores the decoded image,
// anything else stores its canonical structured-data form as bytes. The
// destination path is returned for chaining.
func (s *Service) MakeAsset(path string, v script.Value) (string, error) {
	if err := checkPath(path); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.temporarySource()

	if str, ok := v.TryString(); ok {
		src.Set(path, []byte(str))
		log.Infof("Created temporary asset (bytes): %s (%d bytes)", path, len(str))
	} else if img, ok := v.TryImage(); ok {
		bounds := img.Bounds()
		log.Infof("Created temporary asset (image): %s (%dx%d)", path, bounds.Dx(), bounds.Dy())
		src.SetImage(path, img)
	} else {
		repr, err := v.Repr()
		if err != nil {
			return "", fmt.Errorf("makeAsset: %s: %w", path, err)
		}
		src.Set(path, []byte(repr))
		log.Infof("Created temporary asset (JSON): %s (%d bytes)", path, len(repr))
	}

	s.register()
	return path, nil
}

// MakeAssetFromBytes stores raw bytes under a temporary path.
func (s *Service) MakeAssetFromBytes(path string, data []byte) (string, error) {
	if err := checkPath(path); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.temporarySource()
	buf := make([]byte, len(data))
	copy(buf, data)
	src.Set(path, buf)

	log.Infof("Created temporary asset: %s (%d bytes)", path, len(data))

	s.register()
	return path, nil
}

// MakeImageFromBytes decodes an encoded image and stores it under a
// temporary path. A zero-area result is a decode failure, reported with
// the input byte count, distinct from a malformed stream.
func (s *Service) MakeImageFromBytes(path string, data []byte) (string, error) {
	if err := checkPath(path); err != nil {
		return "", err
	}
	img, err := s.codec.Decode(data)
	if err != nil {
		return "", &DecodeError{ByteCount: len(data), Err: err}
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return "", &DecodeError{ByteCount: len(data), Err: ErrZeroAreaImage}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.temporarySource()
	src.SetImage(path, img)

	log.Infof("Created temporary image: %s (%dx%d)", path, width, height)

	s.register()
	return path, nil
}

// TemporaryAsset returns the bytes stored at a path. A missing path is
// not an error, just an absent result.
func (s *Service) TemporaryAsset(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.temporarySource().Read(path)
}

// TemporaryImage returns the image stored at a path, absent when missing.
func (s *Service) TemporaryImage(path string) (image.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.temporarySource().Image(path)
}

// HasTemporaryAsset reports whether any entry exists at a path.
func (s *Service) HasTemporaryAsset(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.temporarySource().Contains(path)
}

// RemoveTemporaryAsset erases an entry. The removal is logged only when
// something actually existed.
func (s *Service) RemoveTemporaryAsset(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.temporarySource().Erase(path) {
		log.Infof("Removed temporary asset: %s", path)
	}
	return nil
}

// ClearTemporaryAssets swaps in a freshly constructed empty source and
// re-registers it, rather than erasing entries in place. Collaborators
// that captured the previous source keep reading it until they re-resolve
// through the mount point.
//
// TODO: find reason why temp assets are not being cleared
func (s *Service) ClearTemporaryAssets() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = s.newSource()
	s.register()
	log.Info("Cleared all temporary assets")
}

// Source returns the current source handle, creating it if needed. Other
// subsystems that hold on to the returned handle will not observe a
// subsequent ClearTemporaryAssets.
func (s *Service) Source() *MemorySource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.temporarySource()
}
