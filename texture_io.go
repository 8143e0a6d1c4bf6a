package swr

import (
	"fmt"

	"github.com/gogpu/swr/internal/color"
	"github.com/gogpu/swr/internal/image"
)

// TextureUsage tells LoadTexture how to interpret the stored values.
type TextureUsage uint8

const (
	// UsageColor marks sRGB-encoded colour data; RGB is converted to linear
	// on load. Alpha is left as stored.
	UsageColor TextureUsage = iota
	// UsageData marks non-colour data (masks, normal or specular maps);
	// values are kept as stored.
	UsageData
)

// String returns the usage name.
func (u TextureUsage) String() string {
	switch u {
	case UsageColor:
		return "color"
	case UsageData:
		return "data"
	default:
		return "unknown"
	}
}

// LoadTexture decodes the image file at path into a texture.
//
// Rows are flipped so that v = 0 samples the bottom of the picture, the same
// orientation as the framebuffer. Supported formats are those of the
// internal image package: PNG, JPEG, BMP, TIFF and WebP.
func LoadTexture(path string, usage TextureUsage) (*Texture, error) {
	buf, err := image.Load(path)
	if err != nil {
		return nil, fmt.Errorf("swr: load texture %q: %w", path, err)
	}
	buf.FlipVertical()

	decode := color.U8ToF32
	if usage == UsageColor {
		decode = color.SRGBToLinearFast
	}
	t := newTextureFromImage(buf.Data(), buf.Width(), buf.Height(), buf.Channels(), decode)

	Logger().Info("swr: texture loaded",
		"path", path,
		"width", t.width,
		"height", t.height,
		"format", buf.Format().String(),
		"usage", usage.String())
	return t, nil
}
