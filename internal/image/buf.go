// Package image holds the 8-bit packed pixel buffers that feed texture
// construction: decoding from common file formats, PNG encoding and the
// bottom-up row order used by the framebuffer.
package image

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")
)

// Buf is a tightly packed 8-bit image: width*channels bytes per row, rows
// stored one after another with no padding.
//
// Buf is not safe for concurrent writes.
type Buf struct {
	data   []byte
	width  int
	height int
	format Format
}

// NewBuf creates a zeroed buffer with the given dimensions and format.
func NewBuf(width, height int, format Format) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &Buf{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Width returns the image width in pixels.
func (b *Buf) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *Buf) Height() int { return b.height }

// Format returns the pixel format.
func (b *Buf) Format() Format { return b.format }

// Channels returns the number of samples per pixel.
func (b *Buf) Channels() int { return b.format.Channels() }

// Data returns the packed samples. The slice aliases the buffer.
func (b *Buf) Data() []byte { return b.data }

// Row returns the samples of row y. The slice aliases the buffer.
func (b *Buf) Row(y int) []byte {
	stride := b.format.RowBytes(b.width)
	return b.data[y*stride : (y+1)*stride]
}

// FlipVertical reverses the row order in place.
func (b *Buf) FlipVertical() {
	tmp := make([]byte, b.format.RowBytes(b.width))
	for top, bottom := 0, b.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		copy(tmp, b.Row(top))
		copy(b.Row(top), b.Row(bottom))
		copy(b.Row(bottom), tmp)
	}
}
