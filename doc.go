// Package swr is a CPU software triangle pipeline.
//
// # Overview
//
// swr takes one triangle at a time, described by per-vertex attributes in a
// Program, runs it through the stages of a fixed-function rasterizer and
// writes shaded pixels into a Framebuffer:
//
//	vertex shading -> view-volume rejection -> perspective divide ->
//	back-face culling -> viewport -> scan conversion -> depth test ->
//	varying interpolation -> fragment shading -> write-back
//
// # Quick Start
//
//	fb := swr.NewFramebuffer(640, 480)
//	p := swr.NewProgram[Attribs, Varyings, Uniforms](MyShader{})
//	for _, face := range faces {
//	    for i, v := range face {
//	        *p.Attribs(i) = Attribs{Position: v.Position}
//	    }
//	    swr.DrawTriangle(fb, p)
//	}
//	_ = fb.SavePNG("out.png")
//
// # Shading models
//
// A shading model implements Shader for its own attribute, varying and
// uniform types. Varyings are combined by the model's Interpolate method;
// models whose varyings are plain float32 structs can embed
// FieldInterpolator instead of writing one.
//
// # Simplifications
//
// The pipeline deliberately mirrors a small reference rasterizer rather than
// a full GPU:
//   - triangles with any vertex outside the view volume are dropped whole,
//     there is no polygon clipping;
//   - depth and varyings are interpolated linearly in screen space;
//   - pixels are sampled at integer coordinates and edges are inclusive, so
//     neighbouring triangles may both write a shared edge pixel;
//   - no anti-aliasing and no blending.
//
// # Coordinate System
//
//   - NDC x, y, z in [-1,1] map to pixels [0,width] x [0,height] and depth
//     [0,1], 1 being far.
//   - Row 0 of a Framebuffer or Texture is the bottom row. Image and SavePNG
//     flip rows for display.
//
// # Concurrency
//
// Drawing is single-threaded and synchronous. A Framebuffer or Program must
// not be used from several goroutines at once; Textures are immutable and
// may be sampled concurrently.
package swr

// Version is the current version of the library.
const Version = "0.1.0"
