// Package mesh stores triangle lists of swr.Vertex and builds simple
// procedural shapes. Loading meshes from files is left to callers.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swr"
)

// ErrNotTriangles is returned when a vertex list is empty or its length is
// not a multiple of three.
var ErrNotTriangles = errors.New("mesh: vertex count is not a positive multiple of 3")

// Mesh is an immutable, non-indexed triangle list: vertices 3i, 3i+1 and
// 3i+2 form face i, counter-clockwise when seen from the front.
type Mesh struct {
	vertices []swr.Vertex
	center   mgl32.Vec3
}

// New copies vertices into a mesh.
func New(vertices []swr.Vertex) (*Mesh, error) {
	if len(vertices) == 0 || len(vertices)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNotTriangles, len(vertices))
	}
	m := &Mesh{vertices: make([]swr.Vertex, len(vertices))}
	copy(m.vertices, vertices)
	m.center = boundsCenter(m.vertices)
	return m, nil
}

// NumFaces returns the number of triangles.
func (m *Mesh) NumFaces() int { return len(m.vertices) / 3 }

// Vertices returns the vertex list. Callers must not modify it.
func (m *Mesh) Vertices() []swr.Vertex { return m.vertices }

// Face returns the three vertices of face i.
func (m *Mesh) Face(i int) [3]swr.Vertex {
	return [3]swr.Vertex(m.vertices[i*3 : i*3+3])
}

// Center returns the centre of the mesh's axis-aligned bounding box.
func (m *Mesh) Center() mgl32.Vec3 { return m.center }

func boundsCenter(vertices []swr.Vertex) mgl32.Vec3 {
	lo := vertices[0].Position
	hi := lo
	for _, v := range vertices[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return lo.Add(hi).Mul(0.5)
}
