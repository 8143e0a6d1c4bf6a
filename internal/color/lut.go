package color

import "github.com/chewxy/math32"

// sRGBToLinearLUT converts an sRGB byte to a linear float32.
// Pre-computed 256 entries, 1KB memory cost.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT converts a linear float32 to an sRGB byte.
// Uses 4096 entries for 12-bit precision (sufficient for 8-bit sRGB).
var linearToSRGBLUT [4096]uint8

func init() {
	for i := 0; i < 256; i++ {
		sRGBToLinearLUT[i] = SRGBToLinear(float32(i) / 255.0)
	}

	for i := 0; i < 4096; i++ {
		s := LinearToSRGB(float32(i) / 4095.0)
		srgb := int(math32.Floor(s*255.0 + 0.5))
		if srgb < 0 {
			srgb = 0
		}
		if srgb > 255 {
			srgb = 255
		}
		//nolint:gosec // G115: srgb is clamped to [0,255] range
		linearToSRGBLUT[i] = uint8(srgb)
	}
}

// SRGBToLinearFast converts an sRGB byte to linear float32 using a lookup table.
//
// Example:
//
//	r := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts a linear float32 to an sRGB byte using a lookup table.
//
// Input is clamped to [0.0, 1.0] range automatically.
//
// Example:
//
//	s := LinearToSRGBFast(0.5) // 188 (not 128!)
func LinearToSRGBFast(l float32) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	index := int(l*4095.0 + 0.5)
	if index > 4095 {
		index = 4095
	}
	return linearToSRGBLUT[index]
}
