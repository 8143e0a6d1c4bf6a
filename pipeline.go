package swr

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swr/internal/color"
)

// DrawTriangle runs the whole pipeline for the triangle whose attributes are
// in p.Attribs(0..2):
//
//  1. shade the three vertices into clip space;
//  2. drop the triangle if any vertex lies outside the view volume
//     (-w <= x, y, z <= w and w > 0); partially visible triangles are not
//     clipped, they are dropped whole;
//  3. divide by w;
//  4. drop back-facing triangles unless the program is double-sided;
//  5. map to the viewport and depth range [0,1];
//  6. scan the clamped bounding box at integer pixel coordinates,
//     keeping pixels whose barycentric weights are all >= 0;
//  7. depth test (closer or equal wins) with screen-space interpolated
//     depth;
//  8. interpolate varyings with the same screen-space weights and shade;
//  9. write the saturated colour and the depth unless the fragment was
//     discarded.
//
// Depth and varyings are interpolated linearly in screen space; no 1/w
// perspective correction is applied. Pixels on a shared edge may be
// written by both triangles.
func DrawTriangle[A, V, U any](fb *Framebuffer, p *Program[A, V, U]) {
	var clip [3]mgl32.Vec4
	for i := range 3 {
		clip[i] = p.shader.ShadeVertex(&p.attribs[i], &p.varyings[i], &p.uniforms)
	}

	for i := range 3 {
		if isVertexInvisible(clip[i]) {
			return
		}
	}

	var ndc [3]mgl32.Vec3
	for i := range 3 {
		ndc[i] = clip[i].Vec3().Mul(1 / clip[i][3])
	}

	backface := isBackFacing(ndc)
	if backface && !p.doubleSided {
		return
	}

	var (
		points [3]mgl32.Vec2
		depths [3]float32
	)
	for i := range 3 {
		s := viewportTransform(fb.width, fb.height, ndc[i])
		points[i] = s.Vec2()
		depths[i] = s[2]
	}

	tri, ok := newBarycentric(points)
	if !ok {
		return
	}

	box := findBoundingBox(points, fb.width, fb.height)
	for x := box.minX; x <= box.maxX; x++ {
		for y := box.minY; y <= box.maxY; y++ {
			weights := tri.weights(mgl32.Vec2{float32(x), float32(y)})
			if weights[0] < 0 || weights[1] < 0 || weights[2] < 0 {
				continue
			}

			index := y*fb.width + x
			depth := interpolateDepth(depths, weights)
			if depth > fb.depth[index] {
				continue
			}

			p.shader.Interpolate(&p.interp, &p.varyings, weights)
			c, discard := p.shader.ShadeFragment(&p.interp, &p.uniforms, backface)
			if discard {
				continue
			}
			fb.color[index] = color.Saturate(c)
			fb.depth[index] = depth
		}
	}
}

// isVertexInvisible tests a clip-space position against the six frustum
// planes and the w > 0 half-space.
func isVertexInvisible(c mgl32.Vec4) bool {
	x, y, z, w := c[0], c[1], c[2], c[3]
	return x < -w || x > w || y < -w || y > w || z < -w || z > w || w <= 0
}

// isBackFacing reports whether the NDC triangle winds clockwise, i.e. the z
// component of (B-A)x(C-A) is negative.
func isBackFacing(ndc [3]mgl32.Vec3) bool {
	ab := ndc[1].Sub(ndc[0])
	ac := ndc[2].Sub(ndc[0])
	return ab.Cross(ac)[2] < 0
}

// viewportTransform maps NDC x, y from [-1,1] to [0,width] x [0,height] and
// z from [-1,1] to [0,1].
func viewportTransform(width, height int, ndc mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		(ndc[0] + 1) * 0.5 * float32(width),
		(ndc[1] + 1) * 0.5 * float32(height),
		(ndc[2] + 1) * 0.5,
	}
}

type bbox struct {
	minX, minY, maxX, maxY int
}

// findBoundingBox returns the integer pixel bounds of the triangle clamped
// to the framebuffer.
func findBoundingBox(points [3]mgl32.Vec2, width, height int) bbox {
	minX := math32.Min(points[0][0], math32.Min(points[1][0], points[2][0]))
	minY := math32.Min(points[0][1], math32.Min(points[1][1], points[2][1]))
	maxX := math32.Max(points[0][0], math32.Max(points[1][0], points[2][0]))
	maxY := math32.Max(points[0][1], math32.Max(points[1][1], points[2][1]))
	return bbox{
		minX: max(int(math32.Floor(minX)), 0),
		minY: max(int(math32.Floor(minY)), 0),
		maxX: min(int(math32.Ceil(maxX)), width-1),
		maxY: min(int(math32.Ceil(maxY)), height-1),
	}
}

// barycentric solves P = A + s*AB + t*AC for screen points P, giving the
// weights (1-s-t, s, t) of A, B and C.
type barycentric struct {
	a, ab, ac mgl32.Vec2
	factor    float32
}

// newBarycentric prepares the solver. ok is false for zero-area triangles,
// which cover no pixels.
func newBarycentric(abc [3]mgl32.Vec2) (barycentric, bool) {
	ab := abc[1].Sub(abc[0])
	ac := abc[2].Sub(abc[0])
	det := ab[0]*ac[1] - ab[1]*ac[0]
	if det == 0 {
		return barycentric{}, false
	}
	return barycentric{a: abc[0], ab: ab, ac: ac, factor: 1 / det}, true
}

func (b barycentric) weights(p mgl32.Vec2) mgl32.Vec3 {
	ap := p.Sub(b.a)
	s := (b.ac[1]*ap[0] - b.ac[0]*ap[1]) * b.factor
	t := (b.ab[0]*ap[1] - b.ab[1]*ap[0]) * b.factor
	return mgl32.Vec3{1 - s - t, s, t}
}

func interpolateDepth(depths [3]float32, w mgl32.Vec3) float32 {
	return depths[0]*w[0] + depths[1]*w[1] + depths[2]*w[2]
}
