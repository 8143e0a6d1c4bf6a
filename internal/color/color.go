// Package color provides the colour conversions used by the swr pipeline:
// saturation on write-back, byte quantisation for image export and sRGB
// transfer functions for colour textures.
//
// Float colours are mgl32.Vec4 values in (R, G, B, A) order. Alpha is always
// linear and never gamma-encoded.
package color

import "github.com/go-gl/mathgl/mgl32"

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// Saturate clamps every channel of c to [0,1].
func Saturate(c mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{
		saturate(c[0]),
		saturate(c[1]),
		saturate(c[2]),
		saturate(c[3]),
	}
}

func saturate(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
