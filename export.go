package swr

import (
	"fmt"
	stdimage "image"

	"github.com/gogpu/swr/internal/color"
	"github.com/gogpu/swr/internal/image"
)

// Image converts the color surface to an 8-bit image.
//
// Rows are flipped so that the top of the returned image is the last
// framebuffer row. Channels are clamped to [0,1] and quantised with
// rounding; WithSRGBEncoding additionally sRGB-encodes RGB.
func (fb *Framebuffer) Image(opts ...ImageOption) *stdimage.NRGBA {
	return fb.blit(opts).ToStdImage().(*stdimage.NRGBA)
}

// SavePNG writes the color surface to a PNG file.
func (fb *Framebuffer) SavePNG(path string, opts ...ImageOption) error {
	if err := fb.blit(opts).SavePNG(path); err != nil {
		return fmt.Errorf("swr: save PNG: %w", err)
	}
	return nil
}

// blit packs the color surface top row first into a B,G,R,A buffer.
func (fb *Framebuffer) blit(opts []ImageOption) *image.Buf {
	var o imageOptions
	for _, opt := range opts {
		opt(&o)
	}
	quantise := color.F32ToU8
	if o.srgb {
		quantise = color.F32ToSRGBU8
	}

	buf, err := image.NewBuf(fb.width, fb.height, image.FormatBGRA8)
	if err != nil {
		panic("swr: framebuffer used after Release")
	}
	for r := range fb.height {
		src := fb.color[(fb.height-1-r)*fb.width:]
		dst := buf.Row(r)
		for c := range fb.width {
			u := quantise(src[c])
			dst[c*4], dst[c*4+1], dst[c*4+2], dst[c*4+3] = u.B, u.G, u.R, u.A
		}
	}
	return buf
}
