// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swr"
)

// Pass identifies which pass a model is being drawn for.
type Pass uint8

const (
	// PassShadow renders depth only, from the light's point of view.
	PassShadow Pass = iota

	// PassColor renders shaded colour from the camera.
	PassColor
)

// String returns the pass name.
func (p Pass) String() string {
	switch p {
	case PassShadow:
		return "shadow"
	case PassColor:
		return "color"
	default:
		return "unknown"
	}
}

// Model is a drawable object.
//
// Update is called once per frame before any pass. Draw may be called once
// per pass; during PassColor, frame.ShadowMap holds the texture produced by
// the shadow pass (nil when shadows are disabled).
type Model interface {
	Update(frame *Frame)
	Draw(fb *swr.Framebuffer, frame *Frame, pass Pass)

	// Opaque reports whether the model is drawn without blending.
	Opaque() bool

	// Center returns the model's centre in world space, used for sorting.
	Center() mgl32.Vec3
}
