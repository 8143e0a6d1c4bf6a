package swr

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ClearMask selects the surfaces reset by Framebuffer.Clear.
type ClearMask uint8

const (
	// ClearColor resets the color surface to (0, 0, 0, 1).
	ClearColor ClearMask = 1 << iota
	// ClearDepth resets the depth surface to 1 (far).
	ClearDepth
)

var defaultColor = mgl32.Vec4{0, 0, 0, 1}

const defaultDepth = 1

// Framebuffer owns a float RGBA color surface and a depth surface of the
// same size. Both are row-major and row 0 is the bottom of the image.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	width  int
	height int
	color  []mgl32.Vec4
	depth  []float32
}

// NewFramebuffer allocates a framebuffer and clears both surfaces.
// It panics if width or height is not positive.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("swr: invalid framebuffer size %dx%d", width, height))
	}
	n := width * height
	fb := &Framebuffer{
		width:  width,
		height: height,
		color:  make([]mgl32.Vec4, n),
		depth:  make([]float32, n),
	}
	fb.Clear(ClearColor | ClearDepth)

	Logger().Debug("swr: framebuffer created", "width", width, "height", height)
	return fb
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Clear resets the selected surfaces. Surfaces not named in mask are left
// untouched.
func (fb *Framebuffer) Clear(mask ClearMask) {
	if mask&ClearColor != 0 {
		for i := range fb.color {
			fb.color[i] = defaultColor
		}
	}
	if mask&ClearDepth != 0 {
		for i := range fb.depth {
			fb.depth[i] = defaultDepth
		}
	}
}

// ColorAt returns the color stored at pixel (x, y).
func (fb *Framebuffer) ColorAt(x, y int) mgl32.Vec4 {
	return fb.color[y*fb.width+x]
}

// DepthAt returns the depth stored at pixel (x, y).
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	return fb.depth[y*fb.width+x]
}

// Release frees both surfaces. The framebuffer must not be used afterwards.
func (fb *Framebuffer) Release() {
	fb.color = nil
	fb.depth = nil
	fb.width = 0
	fb.height = 0
}
