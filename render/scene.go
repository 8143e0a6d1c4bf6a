// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Scene is an ordered collection of models viewed through a camera and lit
// by a single directional light.
//
// Example:
//
//	scene := render.NewScene()
//	scene.Add(ground)
//	scene.Add(crate)
//	renderer.Render(fb, scene)
type Scene struct {
	// Camera is the viewpoint for the colour pass.
	Camera Camera

	// Light is the directional light used for shading and shadows.
	Light Light

	// Time is the scene time in seconds, forwarded to models via Frame.
	Time float32

	models []Model
}

// NewScene creates an empty scene with a default camera and light.
func NewScene() *Scene {
	return &Scene{
		Camera: DefaultCamera(),
		Light:  DefaultLight(),
		models: make([]Model, 0, 8),
	}
}

// Add appends a model. Nil models are ignored.
func (s *Scene) Add(m Model) {
	if m == nil {
		return
	}
	s.models = append(s.models, m)
}

// Models returns the models in insertion order. Callers must not modify
// the returned slice.
func (s *Scene) Models() []Model {
	return s.models
}

// Len returns the number of models.
func (s *Scene) Len() int {
	return len(s.models)
}

// IsEmpty reports whether the scene has no models.
func (s *Scene) IsEmpty() bool {
	return len(s.models) == 0
}

// Reset removes all models, keeping camera, light and time.
func (s *Scene) Reset() {
	clear(s.models)
	s.models = s.models[:0]
}
