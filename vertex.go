package swr

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one mesh vertex as supplied by mesh collaborators. The pipeline
// never reads it; shading models copy the fields they need into their
// attribute blocks.
type Vertex struct {
	Position mgl32.Vec3
	Texcoord mgl32.Vec2
	Normal   mgl32.Vec3
	Tangent  mgl32.Vec4
	Joint    mgl32.Vec4
	Weight   mgl32.Vec4
}
