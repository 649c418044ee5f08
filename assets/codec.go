package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // registers the PNG format with image.Decode
)

// Resolver is the content-resolution system the store registers into.
// AddRuntimeSource is idempotent: re-invoking with the same mount point
// and a new source fully supersedes the prior source for future
// resolution.
type Resolver interface {
	AddRuntimeSource(mount string, source *MemorySource)
}

// Codec decodes encoded image bytes.
type Codec interface {
	Decode(data []byte) (image.Image, error)
}

// ErrZeroAreaImage marks a decode that technically succeeded but produced
// an image with no pixels. It is a decode failure, distinct from a
// malformed byte stream.
var ErrZeroAreaImage = errors.New("decoded image has zero area")

// DecodeError wraps an image decode failure with the input byte count.
type DecodeError struct {
	ByteCount int
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding image from %d bytes: %v", e.ByteCount, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StdCodec decodes through the registered stdlib image formats (PNG by
// default; hosts import further format packages to extend it).
type StdCodec struct{}

// Decode decodes the byte stream into an image.
func (StdCodec) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}
