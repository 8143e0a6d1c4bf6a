package image

// Format describes how a Buf packs its 8-bit samples.
//
// Colour formats store their samples in B,G,R[,A] order. This is the byte
// order produced by the TGA-style codecs the renderer was built around, and
// swr.NewTextureFromImage reverses it on read.
type Format uint8

const (
	// FormatGray8 is 8-bit luminance (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGrayAlpha8 is 8-bit luminance followed by 8-bit alpha.
	FormatGrayAlpha8

	// FormatBGR8 is 24-bit colour stored as B, G, R.
	FormatBGR8

	// FormatBGRA8 is 32-bit colour stored as B, G, R, A.
	FormatBGRA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatForChannels returns the format with the given channel count.
// The second result is false when channels is not in [1,4].
func FormatForChannels(channels int) (Format, bool) {
	if channels < 1 || channels > int(formatCount) {
		return 0, false
	}
	return Format(channels - 1), true
}

// Channels returns the number of samples per pixel, or 0 for an invalid
// format.
func (f Format) Channels() int {
	if !f.IsValid() {
		return 0
	}
	return int(f) + 1
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGrayAlpha8:
		return "GrayAlpha8"
	case FormatBGR8:
		return "BGR8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
