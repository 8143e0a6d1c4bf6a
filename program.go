package swr

import "github.com/go-gl/mathgl/mgl32"

// Interpolator combines the three per-vertex varyings of a triangle into
// dst using barycentric weights (w0, w1, w2).
type Interpolator[V any] interface {
	Interpolate(dst *V, src *[3]V, weights mgl32.Vec3)
}

// Shader is the contract between the pipeline and a shading model with
// attribute type A, varying type V and uniform type U.
//
// ShadeVertex returns the clip-space position of one vertex and may fill its
// varyings. ShadeFragment returns the colour of one pixel from interpolated
// varyings; returning discard == true leaves the pixel untouched. Both must
// not retain the pointers they are given.
type Shader[A, V, U any] interface {
	Interpolator[V]
	ShadeVertex(attribs *A, varyings *V, uniforms *U) mgl32.Vec4
	ShadeFragment(varyings *V, uniforms *U, backface bool) (color mgl32.Vec4, discard bool)
}

// Program holds the per-draw state of one shading model: three attribute
// blocks, three per-vertex varying blocks plus the interpolated one, the
// uniform block and the render-state flags.
//
// The caller fills Attribs(0..2) and Uniforms() before each DrawTriangle.
// A Program is reused across triangles sequentially and is not safe for
// concurrent use.
type Program[A, V, U any] struct {
	shader   Shader[A, V, U]
	attribs  [3]A
	varyings [3]V
	interp   V
	uniforms U

	doubleSided bool
	enableBlend bool
}

// NewProgram creates a program bound to shader.
func NewProgram[A, V, U any](shader Shader[A, V, U], opts ...ProgramOption) *Program[A, V, U] {
	if shader == nil {
		panic("swr: NewProgram shader is nil")
	}
	var o programOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Program[A, V, U]{
		shader:      shader,
		doubleSided: o.doubleSided,
		enableBlend: o.enableBlend,
	}
}

// Shader returns the bound shading model.
func (p *Program[A, V, U]) Shader() Shader[A, V, U] { return p.shader }

// Attribs returns the attribute block of vertex i (0, 1 or 2).
func (p *Program[A, V, U]) Attribs(i int) *A { return &p.attribs[i] }

// Varyings returns varying block i. Blocks 0..2 are written by the vertex
// shader; block 3 holds the values interpolated for the current pixel.
func (p *Program[A, V, U]) Varyings(i int) *V {
	if i == 3 {
		return &p.interp
	}
	return &p.varyings[i]
}

// Uniforms returns the uniform block.
func (p *Program[A, V, U]) Uniforms() *U { return &p.uniforms }

// DoubleSided reports whether back-face culling is disabled.
func (p *Program[A, V, U]) DoubleSided() bool { return p.doubleSided }

// BlendEnabled reports whether the program was created as translucent.
func (p *Program[A, V, U]) BlendEnabled() bool { return p.enableBlend }

// Release drops the shader and clears all blocks. The program must not be
// drawn afterwards.
func (p *Program[A, V, U]) Release() {
	*p = Program[A, V, U]{}
}
