package geometry

import (
	"image/color"

	"github.com/df07/go-realtime-raytracer/pkg/core"
)

// Epsilon is the parallel-ray and self-intersection tolerance for triangle hits
const Epsilon = 1e-6

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices, in winding order
	Color      color.RGBA
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, c color.RGBA) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2, Color: c}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t Triangle) Hit(ray core.Ray) (float64, bool) {
	dist, _, _, ok := t.intersect(ray)
	return dist, ok
}

// Barycentric returns the barycentric weights (u, v) of the hit point.
// ok is false whenever Hit would report a miss.
func (t Triangle) Barycentric(ray core.Ray) (u, v float64, ok bool) {
	_, u, v, ok = t.intersect(ray)
	return u, v, ok
}

func (t Triangle) intersect(ray core.Ray) (dist, u, v float64, ok bool) {
	// Calculate two edge vectors
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	// Calculate determinant
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -Epsilon && a < Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u = f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	dist = f * edge2.Dot(q)
	if dist <= Epsilon {
		return 0, 0, 0, false
	}

	return dist, u, v, true
}
