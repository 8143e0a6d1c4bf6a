// Package lambert is a diffuse shading model for the swr pipeline.
//
// It lights surfaces with an ambient term plus one directional light, reads
// an optional diffuse map, discards fragments below an alpha cutoff and
// tests a shadow map produced by a depth-only pass from the light.
package lambert

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swr"
)

// Attribs are the per-vertex inputs.
type Attribs struct {
	Position mgl32.Vec3
	Texcoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// Varyings are the values carried from the vertex to the fragment stage.
type Varyings struct {
	WorldPosition mgl32.Vec3

	// DepthPosition is the position in the light's clip space.
	DepthPosition mgl32.Vec3

	Texcoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// Uniforms are shared by all vertices and fragments of a draw.
type Uniforms struct {
	// LightDir is the direction the light travels, normalized.
	LightDir  mgl32.Vec3
	CameraPos mgl32.Vec3

	ModelMatrix  mgl32.Mat4
	NormalMatrix mgl32.Mat3
	LightVP      mgl32.Mat4
	CameraVP     mgl32.Mat4

	AmbientIntensity  float32
	PunctualIntensity float32
	ShadowMap         *swr.Texture

	BaseColor   mgl32.Vec4
	DiffuseMap  *swr.Texture
	AlphaCutoff float32

	// ShadowPass selects the depth-only variant of both stages.
	ShadowPass bool
}

// Shader implements swr.Shader for the lambert model.
type Shader struct{}

var _ swr.Shader[Attribs, Varyings, Uniforms] = Shader{}

// ShadeVertex transforms a vertex to clip space. In the shadow pass the
// clip space is the light's.
func (Shader) ShadeVertex(a *Attribs, v *Varyings, u *Uniforms) mgl32.Vec4 {
	world := u.ModelMatrix.Mul4x1(a.Position.Vec4(1))
	depth := u.LightVP.Mul4x1(world)
	v.Texcoord = a.Texcoord
	if u.ShadowPass {
		return depth
	}

	v.WorldPosition = world.Vec3()
	v.DepthPosition = depth.Vec3()
	v.Normal = normalize(u.NormalMatrix.Mul3x1(a.Normal))
	return u.CameraVP.Mul4x1(world)
}

// ShadeFragment returns the lit colour of a fragment, or discards it when
// its alpha is below the cutoff.
func (Shader) ShadeFragment(v *Varyings, u *Uniforms, backface bool) (mgl32.Vec4, bool) {
	albedo := u.BaseColor
	if u.DiffuseMap != nil {
		s := u.DiffuseMap.SampleVec(v.Texcoord)
		albedo = mgl32.Vec4{albedo[0] * s[0], albedo[1] * s[1], albedo[2] * s[2], albedo[3] * s[3]}
	}
	if u.AlphaCutoff > 0 && albedo.W() < u.AlphaCutoff {
		return mgl32.Vec4{}, true
	}
	if u.ShadowPass {
		return mgl32.Vec4{}, false
	}

	diffuse := albedo.Vec3()
	color := mgl32.Vec3{}
	if u.AmbientIntensity > 0 {
		color = color.Add(diffuse.Mul(u.AmbientIntensity))
	}
	if u.PunctualIntensity > 0 {
		normal := normalize(v.Normal)
		if backface {
			normal = normal.Mul(-1)
		}
		nDotL := normal.Dot(u.LightDir.Mul(-1))
		if nDotL > 0 && !inShadow(v, u, nDotL) {
			color = color.Add(diffuse.Mul(nDotL * u.PunctualIntensity))
		}
	}
	return color.Vec4(albedo.W()), false
}

// Interpolate blends the three vertex outputs with barycentric weights.
func (Shader) Interpolate(dst *Varyings, src *[3]Varyings, w mgl32.Vec3) {
	dst.WorldPosition = lerp3(src[0].WorldPosition, src[1].WorldPosition, src[2].WorldPosition, w)
	dst.DepthPosition = lerp3(src[0].DepthPosition, src[1].DepthPosition, src[2].DepthPosition, w)
	dst.Normal = lerp3(src[0].Normal, src[1].Normal, src[2].Normal, w)
	for i := range 2 {
		dst.Texcoord[i] = lerp(src[0].Texcoord[i], src[1].Texcoord[i], src[2].Texcoord[i], w)
	}
}

// inShadow compares the fragment's light-space depth, less a slope-scaled
// bias, against the shadow map.
func inShadow(v *Varyings, u *Uniforms, nDotL float32) bool {
	if u.ShadowMap == nil {
		return false
	}
	s := (v.DepthPosition.X() + 1) * 0.5
	t := (v.DepthPosition.Y() + 1) * 0.5
	d := (v.DepthPosition.Z() + 1) * 0.5

	bias := math32.Max(0.05*(1-nDotL), 0.005)
	closest := u.ShadowMap.Sample(s, t).X()
	return d-bias > closest
}

func lerp(a, b, c float32, w mgl32.Vec3) float32 {
	var r float32
	r += a * w[0]
	r += b * w[1]
	r += c * w[2]
	return r
}

func lerp3(a, b, c, w mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		lerp(a[0], b[0], c[0], w),
		lerp(a[1], b[1], c[1], w),
		lerp(a[2], b[2], c[2], w),
	}
}

// normalize returns v scaled to unit length, or v unchanged when it is
// the zero vector.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if l := v.Len(); l > 0 {
		return v.Mul(1 / l)
	}
	return v
}
