package color

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}

// U8ToF32 maps a byte in [0,255] to a float in [0,1] by dividing by 255.
func U8ToF32(b uint8) float32 {
	return float32(b) / 255.0
}

// F32ToU8 converts a float colour to ColorU8.
// Each component is clamped to [0,1] and mapped to [0,255] with rounding.
func F32ToU8(c mgl32.Vec4) ColorU8 {
	return ColorU8{
		R: clampAndRound(c[0]),
		G: clampAndRound(c[1]),
		B: clampAndRound(c[2]),
		A: clampAndRound(c[3]),
	}
}

// F32ToSRGBU8 converts a linear float colour to ColorU8 with the RGB
// channels sRGB-encoded through the lookup table. Alpha is quantised linearly.
func F32ToSRGBU8(c mgl32.Vec4) ColorU8 {
	return ColorU8{
		R: LinearToSRGBFast(c[0]),
		G: LinearToSRGBFast(c[1]),
		B: LinearToSRGBFast(c[2]),
		A: clampAndRound(c[3]),
	}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
