package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swr"
)

// face describes one side of a box: its outward normal and the in-plane
// axes u, v with u x v == normal.
type face struct {
	normal, u, v mgl32.Vec3
}

var cubeFaces = [6]face{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

// appendQuad appends two triangles spanning center +- half*u +- half*v.
// Texture coordinates run from (0,0) at -u-v to (1,1) at +u+v.
func appendQuad(dst []swr.Vertex, center mgl32.Vec3, f face, half float32) []swr.Vertex {
	corner := func(su, sv float32) swr.Vertex {
		return swr.Vertex{
			Position: center.Add(f.u.Mul(su * half)).Add(f.v.Mul(sv * half)),
			Texcoord: mgl32.Vec2{(su + 1) / 2, (sv + 1) / 2},
			Normal:   f.normal,
			Tangent:  f.u.Vec4(1),
			Weight:   mgl32.Vec4{1, 0, 0, 0},
		}
	}
	a, b, c, d := corner(-1, -1), corner(1, -1), corner(1, 1), corner(-1, 1)
	return append(dst, a, b, c, a, c, d)
}

// Cube returns an axis-aligned cube of the given edge length centred on the
// origin, with outward-facing triangles.
func Cube(size float32) *Mesh {
	half := size / 2
	vertices := make([]swr.Vertex, 0, 36)
	for _, f := range cubeFaces {
		vertices = appendQuad(vertices, f.normal.Mul(half), f, half)
	}
	m, _ := New(vertices)
	return m
}

// Plane returns a square in the y = 0 plane facing +y, centred on the
// origin.
func Plane(size float32) *Mesh {
	return Grid(size, 1)
}

// Grid returns a Plane split into n x n square cells. Every cell maps the
// whole [0,1] texture range. Large floors should be drawn as grids, as the
// rasterizer drops any triangle that leaves the view volume.
func Grid(size float32, n int) *Mesh {
	if n < 1 {
		panic("mesh: grid needs at least one cell")
	}
	up := cubeFaces[2]
	cell := size / float32(n)
	vertices := make([]swr.Vertex, 0, n*n*6)
	for i := range n {
		for j := range n {
			center := up.u.Mul((float32(i)+0.5)*cell - size/2).
				Add(up.v.Mul((float32(j)+0.5)*cell - size/2))
			vertices = appendQuad(vertices, center, up, cell/2)
		}
	}
	m, _ := New(vertices)
	return m
}
