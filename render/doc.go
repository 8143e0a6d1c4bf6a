// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render drives the swr triangle pipeline over a scene of models.
//
// A Renderer owns the per-frame bookkeeping that sits above
// swr.DrawTriangle: it updates every model with the frame state, renders
// an optional depth-only shadow pass from the light, exposes the result as
// a shadow texture and finally draws the models into the colour target.
//
// # Core Types
//
//   - Model: anything that can update itself from a Frame and draw its
//     triangles into a framebuffer
//   - Scene: an ordered set of models plus a Camera and a Light
//   - Frame: the per-frame state handed to every model
//   - Renderer: runs the shadow and colour passes
//
// # Draw Order
//
// Opaque models are drawn first, nearest to the camera first. Models with
// blending enabled follow, farthest first, so each blended surface is
// shaded after whatever lies behind it.
//
// # Usage
//
//	scene := render.NewScene()
//	scene.Camera = render.Camera{Position: mgl32.Vec3{0, 2, 5}, ...}
//	scene.Light = render.Light{Direction: mgl32.Vec3{-1, -2, -1}, ...}
//	scene.Add(model)
//
//	r := render.NewRenderer(render.WithShadowMap(512))
//	defer r.Release()
//
//	fb := swr.NewFramebuffer(640, 480)
//	if err := r.Render(fb, scene); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// A Renderer and the models it draws are not safe for concurrent use.
package render
