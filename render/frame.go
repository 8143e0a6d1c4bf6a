// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swr"
)

// Frame is the state shared by every model for one rendered frame.
type Frame struct {
	Time float32

	// LightDir is the normalized direction the light travels.
	LightDir  mgl32.Vec3
	CameraPos mgl32.Vec3

	LightView  mgl32.Mat4
	LightProj  mgl32.Mat4
	CameraView mgl32.Mat4
	CameraProj mgl32.Mat4

	AmbientIntensity  float32
	PunctualIntensity float32

	// ShadowMap is the depth of the shadow pass, or nil when shadows are
	// disabled or the shadow pass has not run yet.
	ShadowMap *swr.Texture
}

// NewFrame derives the frame state for a scene.
func NewFrame(s *Scene) *Frame {
	return &Frame{
		Time:              s.Time,
		LightDir:          s.Light.Direction.Normalize(),
		CameraPos:         s.Camera.Position,
		LightView:         s.Light.View(),
		LightProj:         s.Light.Projection(),
		CameraView:        s.Camera.View(),
		CameraProj:        s.Camera.Projection(),
		AmbientIntensity:  s.Light.Ambient,
		PunctualIntensity: s.Light.Punctual,
	}
}

// LightViewProj returns LightProj * LightView.
func (f *Frame) LightViewProj() mgl32.Mat4 {
	return f.LightProj.Mul4(f.LightView)
}

// CameraViewProj returns CameraProj * CameraView.
func (f *Frame) CameraViewProj() mgl32.Mat4 {
	return f.CameraProj.Mul4(f.CameraView)
}
