package geometry

import (
	"image/color"
	"math"

	"github.com/df07/go-realtime-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  color.RGBA
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, c color.RGBA) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
		Color:  c,
	}
}

// Hit solves |O + tD - C|^2 = r^2 and returns the near root.
// The root is returned even when it lies behind the ray origin;
// callers reject non-positive distances.
func (s Sphere) Hit(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	return (-b - math.Sqrt(discriminant)) / (2.0 * a), true
}
