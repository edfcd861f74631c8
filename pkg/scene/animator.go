package scene

import (
	"github.com/df07/go-realtime-raytracer/pkg/core"
	"github.com/df07/go-realtime-raytracer/pkg/geometry"
)

// RotationRate is the quad's spin around the vertical axis, in radians per second
const RotationRate = 1.0

// Animator derives per-frame scenes from geometry fixed at startup
type Animator struct {
	Camera  core.Vec3
	Spheres []geometry.Sphere
	Base    geometry.Quad // Unrotated quad; never modified
}

// NewAnimator creates an animator over a static sphere set and a base quad
func NewAnimator(camera core.Vec3, spheres []geometry.Sphere, base geometry.Quad) *Animator {
	return &Animator{
		Camera:  camera,
		Spheres: append([]geometry.Sphere(nil), spheres...),
		Base:    base,
	}
}

// Angle returns the quad rotation for the given elapsed time
func (a *Animator) Angle(elapsedSeconds float64) float64 {
	return elapsedSeconds * RotationRate
}

// Frame builds a fresh scene for the given elapsed time.
// The base quad is rotated from scratch every call so error never accumulates across frames.
func (a *Animator) Frame(elapsedSeconds float64) *Scene {
	triangles := a.Base.RotateY(a.Angle(elapsedSeconds)).Triangles()
	return &Scene{
		Camera:    a.Camera,
		Spheres:   append([]geometry.Sphere(nil), a.Spheres...),
		Triangles: triangles[:],
	}
}
