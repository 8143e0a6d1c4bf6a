package swr

import (
	"github.com/go-gl/mathgl/mgl32"
)

// testAttribs carries clip-space positions straight through the vertex
// stage so tests can place triangles exactly.
type testAttribs struct {
	Position mgl32.Vec4
	Color    mgl32.Vec4
}

type testVaryings struct {
	Color mgl32.Vec4
}

type testUniforms struct {
	Discard bool
}

type testShader struct {
	FieldInterpolator[testVaryings]

	fragments int
	backfaces int
}

func newTestShader() *testShader {
	return &testShader{FieldInterpolator: NewFieldInterpolator[testVaryings]()}
}

func (s *testShader) ShadeVertex(a *testAttribs, v *testVaryings, _ *testUniforms) mgl32.Vec4 {
	v.Color = a.Color
	return a.Position
}

func (s *testShader) ShadeFragment(v *testVaryings, u *testUniforms, backface bool) (mgl32.Vec4, bool) {
	s.fragments++
	if backface {
		s.backfaces++
	}
	return v.Color, u.Discard
}

type testProgram = Program[testAttribs, testVaryings, testUniforms]

func newTestProgram(opts ...ProgramOption) (*testProgram, *testShader) {
	s := newTestShader()
	return NewProgram[testAttribs, testVaryings, testUniforms](s, opts...), s
}

// setTriangle loads three clip-space positions sharing one colour.
func setTriangle(p *testProgram, c mgl32.Vec4, a, b, d mgl32.Vec4) {
	*p.Attribs(0) = testAttribs{Position: a, Color: c}
	*p.Attribs(1) = testAttribs{Position: b, Color: c}
	*p.Attribs(2) = testAttribs{Position: d, Color: c}
}

// ndc builds a clip-space position with w = 1.
func ndc(x, y, z float32) mgl32.Vec4 {
	return mgl32.Vec4{x, y, z, 1}
}

// drawQuad covers the whole viewport at NDC depth z with two
// counter-clockwise triangles.
func drawQuad(fb *Framebuffer, p *testProgram, c mgl32.Vec4, z float32) {
	setTriangle(p, c, ndc(-1, -1, z), ndc(1, -1, z), ndc(1, 1, z))
	DrawTriangle(fb, p)
	setTriangle(p, c, ndc(-1, -1, z), ndc(1, 1, z), ndc(-1, 1, z))
	DrawTriangle(fb, p)
}

// snapshot copies both surfaces for later comparison.
func snapshot(fb *Framebuffer) ([]mgl32.Vec4, []float32) {
	c := make([]mgl32.Vec4, len(fb.color))
	d := make([]float32, len(fb.depth))
	copy(c, fb.color)
	copy(d, fb.depth)
	return c, d
}

var (
	red   = mgl32.Vec4{1, 0, 0, 1}
	green = mgl32.Vec4{0, 1, 0, 1}
	blue  = mgl32.Vec4{0, 0, 1, 1}
)
