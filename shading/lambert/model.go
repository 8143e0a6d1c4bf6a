package lambert

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/mesh"
	"github.com/gogpu/swr/render"
)

// maxIntensity bounds the light intensities taken from a frame.
const maxIntensity = 5

// Material describes the surface of a Model.
type Material struct {
	BaseColor  mgl32.Vec4
	DiffuseMap *swr.Texture

	// AlphaCutoff discards fragments whose alpha is below it; zero disables.
	AlphaCutoff float32

	DoubleSided bool
	EnableBlend bool
}

// DefaultMaterial returns an opaque white, single-sided material.
func DefaultMaterial() Material {
	return Material{BaseColor: mgl32.Vec4{1, 1, 1, 1}}
}

// Model draws a mesh with the lambert shader. It implements render.Model.
type Model struct {
	mesh      *mesh.Mesh
	program   *swr.Program[Attribs, Varyings, Uniforms]
	transform mgl32.Mat4

	// Spin rotates the model about the world y axis by Spin*frame.Time
	// radians before the transform is applied.
	Spin float32
}

var _ render.Model = (*Model)(nil)

// NewModel creates a model. The model does not take ownership of the
// material's textures.
func NewModel(m *mesh.Mesh, transform mgl32.Mat4, material Material) *Model {
	if m == nil {
		panic("lambert: nil mesh")
	}
	program := swr.NewProgram[Attribs, Varyings, Uniforms](Shader{},
		swr.WithDoubleSided(material.DoubleSided),
		swr.WithBlend(material.EnableBlend))

	u := program.Uniforms()
	u.BaseColor = material.BaseColor
	u.DiffuseMap = material.DiffuseMap
	u.AlphaCutoff = material.AlphaCutoff
	u.ModelMatrix = transform
	u.NormalMatrix = normalMatrix(transform)

	return &Model{
		mesh:      m,
		program:   program,
		transform: transform,
	}
}

// SetTransform replaces the model-to-world transform.
func (m *Model) SetTransform(t mgl32.Mat4) { m.transform = t }

// Transform returns the model-to-world transform.
func (m *Model) Transform() mgl32.Mat4 { return m.transform }

// Uniforms exposes the program's uniform block.
func (m *Model) Uniforms() *Uniforms { return m.program.Uniforms() }

// Update copies the frame state into the uniforms.
func (m *Model) Update(frame *render.Frame) {
	model := m.worldMatrix(frame.Time)

	u := m.program.Uniforms()
	u.LightDir = frame.LightDir
	u.CameraPos = frame.CameraPos
	u.ModelMatrix = model
	u.NormalMatrix = normalMatrix(model)
	u.LightVP = frame.LightViewProj()
	u.CameraVP = frame.CameraViewProj()
	u.AmbientIntensity = mgl32.Clamp(frame.AmbientIntensity, 0, maxIntensity)
	u.PunctualIntensity = mgl32.Clamp(frame.PunctualIntensity, 0, maxIntensity)
}

// Draw rasterises every face of the mesh into fb.
func (m *Model) Draw(fb *swr.Framebuffer, frame *render.Frame, pass render.Pass) {
	u := m.program.Uniforms()
	u.ShadowPass = pass == render.PassShadow
	u.ShadowMap = frame.ShadowMap

	vertices := m.mesh.Vertices()
	for i := range m.mesh.NumFaces() {
		for j := range 3 {
			v := &vertices[i*3+j]
			a := m.program.Attribs(j)
			a.Position = v.Position
			a.Texcoord = v.Texcoord
			a.Normal = v.Normal
		}
		swr.DrawTriangle(fb, m.program)
	}
}

// Opaque reports whether the material disables blending.
func (m *Model) Opaque() bool { return !m.program.BlendEnabled() }

// Center returns the world-space centre of the mesh under the current
// transform.
func (m *Model) Center() mgl32.Vec3 {
	return m.program.Uniforms().ModelMatrix.Mul4x1(m.mesh.Center().Vec4(1)).Vec3()
}

// Release frees the program. Textures referenced by the material are left
// to their owner.
func (m *Model) Release() {
	m.program.Release()
}

func (m *Model) worldMatrix(time float32) mgl32.Mat4 {
	if m.Spin == 0 {
		return m.transform
	}
	return mgl32.HomogRotate3DY(m.Spin * time).Mul4(m.transform)
}

func normalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}
