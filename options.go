package swr

// ProgramOption configures a Program during creation.
//
// Example:
//
//	p := swr.NewProgram[Attribs, Varyings, Uniforms](shader,
//	    swr.WithDoubleSided(true),
//	)
type ProgramOption func(*programOptions)

type programOptions struct {
	doubleSided bool
	enableBlend bool
}

// WithDoubleSided disables back-face culling. Back-facing triangles are
// rasterized and the fragment shader receives backface == true, so shading
// code can flip its normal.
func WithDoubleSided(enabled bool) ProgramOption {
	return func(o *programOptions) {
		o.doubleSided = enabled
	}
}

// WithBlend marks the program as translucent. The pipeline itself never
// blends; the flag is read by frame drivers that order draws.
func WithBlend(enabled bool) ProgramOption {
	return func(o *programOptions) {
		o.enableBlend = enabled
	}
}

// ImageOption configures framebuffer image export.
type ImageOption func(*imageOptions)

type imageOptions struct {
	srgb bool
}

// WithSRGBEncoding encodes the exported RGB channels from linear to sRGB.
// Alpha is quantised linearly.
func WithSRGBEncoding() ImageOption {
	return func(o *imageOptions) {
		o.srgb = true
	}
}
