package scene

import (
	"image/color"

	"github.com/df07/go-realtime-raytracer/pkg/core"
	"github.com/df07/go-realtime-raytracer/pkg/geometry"
)

// Palette used by the default scene
var (
	Red    = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Green  = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	Blue   = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	Purple = color.RGBA{R: 200, G: 122, B: 255, A: 255}
)

// DefaultCamera is where every primary ray starts
var DefaultCamera = core.NewVec3(0, 0, -3)

// DefaultSpheres returns the three static spheres
func DefaultSpheres() []geometry.Sphere {
	return []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, Red),
		geometry.NewSphere(core.NewVec3(1, 0, 1), 0.3, Green),
		geometry.NewSphere(core.NewVec3(-1, 0, 1), 0.4, Blue),
	}
}

// DefaultQuad returns the unrotated 3x3 quad standing at z = 1
func DefaultQuad() geometry.Quad {
	return geometry.NewQuad(
		core.NewVec3(-1.5, 1.5, 1),
		core.NewVec3(1.5, 1.5, 1),
		core.NewVec3(1.5, -1.5, 1),
		core.NewVec3(-1.5, -1.5, 1),
		Purple,
	)
}

// NewDefaultAnimator creates the animator for the spinning quad behind three spheres
func NewDefaultAnimator() *Animator {
	return NewAnimator(DefaultCamera, DefaultSpheres(), DefaultQuad())
}
