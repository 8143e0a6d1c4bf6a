// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Errors returned by Camera.Validate and Light.Validate.
var (
	ErrInvalidCamera = errors.New("render: invalid camera")
	ErrInvalidLight  = errors.New("render: invalid light")
)

// Camera is a perspective camera looking at a target point. Position must
// differ from Target; Renderer.Render rejects cameras that fail Validate.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3

	// FovY is the vertical field of view in radians.
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultCamera returns a camera 5 units along +z looking at the origin.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{0, 0, 5},
		FovY:     mgl32.DegToRad(60),
		Aspect:   1,
		Near:     0.1,
		Far:      100,
	}
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return lookAt(c.Position, c.Target)
}

// Projection returns the camera's perspective projection.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// Validate reports settings that would produce a degenerate view or
// projection matrix.
func (c Camera) Validate() error {
	switch {
	case c.Position == c.Target:
		return fmt.Errorf("%w: position equals target %v", ErrInvalidCamera, c.Position)
	case !(c.FovY > 0 && c.FovY < math32.Pi):
		return fmt.Errorf("%w: field of view %v out of range (0, pi)", ErrInvalidCamera, c.FovY)
	case !(c.Aspect > 0):
		return fmt.Errorf("%w: aspect %v", ErrInvalidCamera, c.Aspect)
	case !(c.Near > 0 && c.Far > c.Near):
		return fmt.Errorf("%w: depth range [%v, %v]", ErrInvalidCamera, c.Near, c.Far)
	}
	return nil
}

// Light is a directional light with an orthographic shadow volume.
// Direction must be non-zero and Extent positive; see Validate.
type Light struct {
	// Direction points from the light towards the scene.
	Direction mgl32.Vec3

	Ambient  float32
	Punctual float32

	// Target is the point the shadow volume is centred on.
	Target mgl32.Vec3

	// Extent is the half-size of the shadow volume on every axis.
	Extent float32
}

// DefaultLight returns a light shining down and away from a +z camera.
func DefaultLight() Light {
	return Light{
		Direction: mgl32.Vec3{-0.5, -1, -0.5},
		Ambient:   0.2,
		Punctual:  0.8,
		Extent:    5,
	}
}

// View returns the world-to-light matrix. The eye sits Extent units
// behind Target along the light direction.
func (l Light) View() mgl32.Mat4 {
	dir := l.Direction.Normalize()
	eye := l.Target.Sub(dir.Mul(l.Extent))
	return lookAt(eye, l.Target)
}

// Validate reports a zero direction or an empty shadow volume.
func (l Light) Validate() error {
	switch {
	case l.Direction.Len() == 0:
		return fmt.Errorf("%w: zero direction", ErrInvalidLight)
	case !(l.Extent > 0):
		return fmt.Errorf("%w: extent %v", ErrInvalidLight, l.Extent)
	}
	return nil
}

// Projection returns the orthographic projection of the shadow volume.
func (l Light) Projection() mgl32.Mat4 {
	e := l.Extent
	return mgl32.Ortho(-e, e, -e, e, 0, 2*e)
}

// lookAt builds a view matrix, switching the up vector when the view
// direction is (nearly) vertical.
func lookAt(eye, target mgl32.Vec3) mgl32.Mat4 {
	forward := target.Sub(eye)
	up := worldUp
	if forward.Len() > 0 && math32.Abs(forward.Normalize().Dot(worldUp)) > 0.999 {
		up = mgl32.Vec3{0, 0, -1}
	}
	return mgl32.LookAtV(eye, target, up)
}
