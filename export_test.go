package swr

import (
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferImageFlipsRows(t *testing.T) {
	fb := NewFramebuffer(2, 3)
	fb.color[0] = mgl32.Vec4{1, 0, 0, 1} // bottom-left
	fb.color[5] = mgl32.Vec4{0, 0, 1, 1} // top-right

	img := fb.Image()

	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(0, 2))
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(0, 0))
}

func TestFramebufferImageQuantises(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.color[0] = mgl32.Vec4{0.5, 2, -1, 0.5}

	assert.Equal(t, color.NRGBA{R: 128, G: 255, B: 0, A: 128}, fb.Image().NRGBAAt(0, 0))
}

func TestFramebufferImageSRGB(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.color[0] = mgl32.Vec4{0.5, 0, 1, 1}

	got := fb.Image(WithSRGBEncoding()).NRGBAAt(0, 0)

	assert.InDelta(t, 188, int(got.R), 1)
	assert.Equal(t, uint8(0), got.G)
	assert.Equal(t, uint8(255), got.B)
	assert.Equal(t, uint8(255), got.A)
}

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	p, _ := newTestProgram()
	setTriangle(p, green, lowerLeftA, lowerLeftB, lowerLeftC)
	DrawTriangle(fb, p)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, fb.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// Bottom-left framebuffer pixel is the last image row.
	r, g, b, _ := img.At(0, 3).RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0}, []uint32{r, g, b})
	r, g, b, _ = img.At(3, 0).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
}

func TestFramebufferSavePNGBadPath(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	err := fb.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"))
	assert.ErrorContains(t, err, "swr: save PNG")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
