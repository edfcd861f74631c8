package scene

import (
	"image/color"
	"math"

	"github.com/df07/go-realtime-raytracer/pkg/core"
	"github.com/df07/go-realtime-raytracer/pkg/geometry"
)

// PrimitiveKind identifies which primitive list an intersection came from
type PrimitiveKind int

const (
	KindSphere PrimitiveKind = iota
	KindTriangle
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Scene is a single frame's snapshot of renderable geometry
type Scene struct {
	Camera    core.Vec3           // Camera position shared by every primary ray
	Spheres   []geometry.Sphere   // Tested first, in order
	Triangles []geometry.Triangle // Tested after all spheres, in order
}

// Intersection describes the nearest primitive hit along a ray
type Intersection struct {
	Distance float64
	Color    color.RGBA
	Kind     PrimitiveKind
	Index    int // Position within Spheres or Triangles
}

// Trace scans every primitive and returns the nearest hit with a positive distance.
// Ties keep the primitive seen first.
func (s *Scene) Trace(ray core.Ray) (Intersection, bool) {
	nearest := Intersection{Distance: math.Inf(1)}
	hitAnything := false

	for i, sphere := range s.Spheres {
		if t, ok := sphere.Hit(ray); ok && t > 0 && t < nearest.Distance {
			nearest = Intersection{Distance: t, Color: sphere.Color, Kind: KindSphere, Index: i}
			hitAnything = true
		}
	}

	for i, triangle := range s.Triangles {
		if t, ok := triangle.Hit(ray); ok && t > 0 && t < nearest.Distance {
			nearest = Intersection{Distance: t, Color: triangle.Color, Kind: KindTriangle, Index: i}
			hitAnything = true
		}
	}

	return nearest, hitAnything
}

// Resolve returns the color seen along the ray: the nearest primitive's color or the sky gradient
func (s *Scene) Resolve(ray core.Ray) color.RGBA {
	if hit, ok := s.Trace(ray); ok {
		return hit.Color
	}
	return Background(ray)
}

// Background returns the sky gradient for a ray that hit nothing.
// It blends white at direction.y = -1 into blue at direction.y = +1.
func Background(ray core.Ray) color.RGBA {
	t := 0.5 * (ray.Direction.Y + 1.0)
	fade := uint8(255 * (1.0 - t))
	return color.RGBA{R: fade, G: fade, B: 255, A: 255}
}
