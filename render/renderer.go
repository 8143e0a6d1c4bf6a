// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swr"
)

// ErrNilTarget is returned by Render when no framebuffer is given.
var ErrNilTarget = errors.New("render: nil target")

// Stats describes the work done by the last Render call.
type Stats struct {
	Models      int
	ShadowDraws int
	ColorDraws  int

	ShadowTime time.Duration
	ColorTime  time.Duration
}

// Renderer draws scenes into swr framebuffers.
//
// The renderer keeps its shadow framebuffer between frames, so it should
// be reused rather than recreated per frame. Call Release when done.
//
// Thread Safety: Renderers are NOT thread-safe.
type Renderer struct {
	shadowSize int

	shadowFB  *swr.Framebuffer
	shadowMap *swr.Texture

	stats Stats
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithShadowMap enables the shadow pass with a square depth target of the
// given size. A size of zero or less disables shadows.
func WithShadowMap(size int) Option {
	return func(r *Renderer) {
		r.shadowSize = max(size, 0)
	}
}

// NewRenderer creates a renderer. Shadows are disabled by default.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render clears fb and draws the scene into it.
//
// Every model is updated first. With shadows enabled, every model is then
// drawn into the shadow framebuffer from the light and the resulting depth
// is handed to the colour pass as Frame.ShadowMap. The colour pass draws
// opaque models near-to-far, then blended models far-to-near.
//
// A nil or empty scene leaves fb cleared. A scene whose camera or light
// fails validation returns the validation error and leaves fb untouched.
func (r *Renderer) Render(fb *swr.Framebuffer, scene *Scene) error {
	if fb == nil {
		return ErrNilTarget
	}

	if scene != nil {
		if err := scene.Camera.Validate(); err != nil {
			return err
		}
		if err := scene.Light.Validate(); err != nil {
			return err
		}
	}

	fb.Clear(swr.ClearColor | swr.ClearDepth)
	r.stats = Stats{}
	if scene == nil || scene.IsEmpty() {
		return nil
	}

	frame := NewFrame(scene)
	for _, m := range scene.models {
		m.Update(frame)
	}
	models := drawOrder(scene.models, frame.CameraView)
	r.stats.Models = len(models)

	if r.shadowSize > 0 {
		start := time.Now()
		r.ensureShadowTarget()
		r.shadowFB.Clear(swr.ClearDepth)
		for _, m := range models {
			m.Draw(r.shadowFB, frame, PassShadow)
			r.stats.ShadowDraws++
		}
		if r.shadowMap != nil {
			r.shadowMap.Release()
		}
		r.shadowMap = swr.NewTextureFromDepthbuffer(r.shadowFB)
		frame.ShadowMap = r.shadowMap
		r.stats.ShadowTime = time.Since(start)
	}

	start := time.Now()
	for _, m := range models {
		m.Draw(fb, frame, PassColor)
		r.stats.ColorDraws++
	}
	r.stats.ColorTime = time.Since(start)

	swr.Logger().Debug("render: frame done",
		"models", r.stats.Models,
		"shadow_draws", r.stats.ShadowDraws,
		"color_draws", r.stats.ColorDraws,
		"shadow_time", r.stats.ShadowTime,
		"color_time", r.stats.ColorTime)
	return nil
}

// Stats returns statistics for the last Render call.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// ShadowMap returns the shadow texture of the last frame, or nil.
func (r *Renderer) ShadowMap() *swr.Texture {
	return r.shadowMap
}

// Release frees the shadow resources. The renderer may be reused; they are
// recreated on the next Render.
func (r *Renderer) Release() {
	if r.shadowFB != nil {
		r.shadowFB.Release()
		r.shadowFB = nil
	}
	if r.shadowMap != nil {
		r.shadowMap.Release()
		r.shadowMap = nil
	}
}

func (r *Renderer) ensureShadowTarget() {
	if r.shadowFB != nil {
		return
	}
	r.shadowFB = swr.NewFramebuffer(r.shadowSize, r.shadowSize)
}

// drawOrder returns the models sorted for drawing: opaque models by
// increasing view distance, then blended models by decreasing view
// distance. Equal distances keep scene order.
func drawOrder(models []Model, view mgl32.Mat4) []Model {
	type entry struct {
		model    Model
		opaque   bool
		distance float32
	}
	entries := make([]entry, len(models))
	for i, m := range models {
		p := view.Mul4x1(m.Center().Vec4(1))
		entries[i] = entry{model: m, opaque: m.Opaque(), distance: -p.Z()}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		switch {
		case a.opaque != b.opaque:
			if a.opaque {
				return -1
			}
			return 1
		case a.distance == b.distance:
			return 0
		case a.opaque == (a.distance < b.distance):
			return -1
		default:
			return 1
		}
	})

	ordered := make([]Model, len(entries))
	for i, e := range entries {
		ordered[i] = e.model
	}
	return ordered
}
