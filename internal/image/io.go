package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrUnsupportedFormat is returned when the image format is not supported.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// Load decodes the image file at path. Rows are returned top-down, as
// stored in the file. Supported formats: PNG, JPEG, BMP, TIFF, WebP.
func Load(path string) (*Buf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Buf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// FromStdImage packs a standard library image into a Buf.
//
// Grayscale images become FormatGray8, opaque images FormatBGR8 and all
// others FormatBGRA8 with straight (non-premultiplied) alpha.
func FromStdImage(img image.Image) *Buf {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	format := FormatBGRA8
	switch src := img.(type) {
	case *image.Gray, *image.Gray16:
		format = FormatGray8
	case interface{ Opaque() bool }:
		if src.Opaque() {
			format = FormatBGR8
		}
	}

	buf, _ := NewBuf(width, height, format)
	n := format.Channels()
	for y := range height {
		row := buf.Row(y)
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			p := row[x*n : x*n+n]
			if format == FormatGray8 {
				p[0] = color.GrayModel.Convert(c).(color.Gray).Y
				continue
			}
			nc := color.NRGBAModel.Convert(c).(color.NRGBA)
			p[0], p[1], p[2] = nc.B, nc.G, nc.R
			if n == 4 {
				p[3] = nc.A
			}
		}
	}
	return buf
}

// ToStdImage converts the buffer to a standard library image.
// Returns *image.Gray for FormatGray8 and *image.NRGBA otherwise.
func (b *Buf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	if b.format == FormatGray8 {
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.Row(y))
		}
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	n := b.format.Channels()
	for y := range b.height {
		row := b.Row(y)
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x := range b.width {
			src := row[x*n : x*n+n]
			d := dst[x*4 : x*4+4]
			switch b.format {
			case FormatGrayAlpha8:
				d[0], d[1], d[2], d[3] = src[0], src[0], src[0], src[1]
			case FormatBGR8:
				d[0], d[1], d[2], d[3] = src[2], src[1], src[0], 255
			default:
				d[0], d[1], d[2], d[3] = src[2], src[1], src[0], src[3]
			}
		}
	}
	return nrgba
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *Buf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the image as a PNG file.
func (b *Buf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
