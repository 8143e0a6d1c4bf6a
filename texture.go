package swr

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swr/internal/color"
	"github.com/gogpu/swr/internal/image"
)

// Texture is an immutable 2D RGBA float image sampled with nearest-texel
// lookup. Values are conventionally in [0,1] but this is not enforced.
//
// A Texture may be sampled concurrently from any number of goroutines.
type Texture struct {
	width  int
	height int
	texels []mgl32.Vec4
}

func newTexture(width, height int) *Texture {
	return &Texture{
		width:  width,
		height: height,
		texels: make([]mgl32.Vec4, width*height),
	}
}

// NewTextureFromImage converts 8-bit packed pixels into a texture.
//
// channels selects the layout of each pixel:
//
//	1: L        -> (L, L, L, 1)
//	2: L, A     -> (L, L, L, A)
//	3: B, G, R  -> (R, G, B, 1)
//	4: B, G, R, A -> (R, G, B, A)
//
// Colour layouts are stored in reverse byte order, matching the image codec
// collaborators. It panics if channels is not in [1,4], if either dimension
// is not positive, or if pixels holds fewer than width*height*channels bytes.
func NewTextureFromImage(pixels []byte, width, height, channels int) *Texture {
	return newTextureFromImage(pixels, width, height, channels, color.U8ToF32)
}

// newTextureFromImage is NewTextureFromImage with a custom decoding of the
// colour samples. Alpha is always mapped linearly.
func newTextureFromImage(pixels []byte, width, height, channels int, decode func(uint8) float32) *Texture {
	format, ok := image.FormatForChannels(channels)
	if !ok {
		panic(fmt.Sprintf("swr: unsupported channel count %d", channels))
	}
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("swr: invalid texture size %dx%d", width, height))
	}
	if need := format.ImageBytes(width, height); len(pixels) < need {
		panic(fmt.Sprintf("swr: texture data has %d bytes, need %d", len(pixels), need))
	}

	t := newTexture(width, height)
	for i := range t.texels {
		p := pixels[i*channels : i*channels+channels]
		switch format {
		case image.FormatGray8:
			l := decode(p[0])
			t.texels[i] = mgl32.Vec4{l, l, l, 1}
		case image.FormatGrayAlpha8:
			l := decode(p[0])
			t.texels[i] = mgl32.Vec4{l, l, l, color.U8ToF32(p[1])}
		case image.FormatBGR8:
			t.texels[i] = mgl32.Vec4{decode(p[2]), decode(p[1]), decode(p[0]), 1}
		case image.FormatBGRA8:
			t.texels[i] = mgl32.Vec4{decode(p[2]), decode(p[1]), decode(p[0]), color.U8ToF32(p[3])}
		}
	}
	return t
}

// NewTextureFromColorbuffer copies the framebuffer's color surface into a
// new texture, so a rendered pass can be sampled by a later one.
func NewTextureFromColorbuffer(fb *Framebuffer) *Texture {
	t := newTexture(fb.width, fb.height)
	copy(t.texels, fb.color)
	return t
}

// NewTextureFromDepthbuffer exposes the framebuffer's depth surface as a
// texture with R = G = B = depth and A = 1, typically for shadow mapping.
func NewTextureFromDepthbuffer(fb *Framebuffer) *Texture {
	t := newTexture(fb.width, fb.height)
	for i, d := range fb.depth {
		t.texels[i] = mgl32.Vec4{d, d, d, 1}
	}
	return t
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// At returns the texel at column x, row y.
func (t *Texture) At(x, y int) mgl32.Vec4 {
	return t.texels[y*t.width+x]
}

// Sample returns the texel nearest to (u, v).
//
// Coordinates outside [0,1], and NaN coordinates, return transparent black
// (0, 0, 0, 0). Inside the range the texel index on each axis is
// (size-1)*coord rounded half up.
func (t *Texture) Sample(u, v float32) mgl32.Vec4 {
	if !(u >= 0 && u <= 1 && v >= 0 && v <= 1) {
		return mgl32.Vec4{}
	}
	c := int(float32(t.width-1)*u + 0.5)
	r := int(float32(t.height-1)*v + 0.5)
	return t.texels[r*t.width+c]
}

// SampleVec is Sample taking the coordinate as a vector.
func (t *Texture) SampleVec(uv mgl32.Vec2) mgl32.Vec4 {
	return t.Sample(uv[0], uv[1])
}

// Release frees the texel buffer. The texture must not be used afterwards.
func (t *Texture) Release() {
	t.texels = nil
	t.width = 0
	t.height = 0
}
