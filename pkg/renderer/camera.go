package renderer

import (
	"github.com/df07/go-realtime-raytracer/pkg/core"
)

// Camera is a pinhole camera looking down +Z with a fixed focal depth of 1
type Camera struct {
	Origin core.Vec3
	Width  int
	Height int
}

// NewCamera creates a camera for a width x height viewport
func NewCamera(origin core.Vec3, width, height int) Camera {
	return Camera{Origin: origin, Width: width, Height: height}
}

// GetRay generates the primary ray through pixel (x, y).
// Screen y grows downward while world y grows upward, so v is flipped.
func (c Camera) GetRay(x, y int) core.Ray {
	u := float64(x)/float64(c.Width)*2.0 - 1.0
	v := float64(y)/float64(c.Height)*2.0 - 1.0

	direction := core.NewVec3(u, -v, 1.0).Normalize()
	return core.NewRay(c.Origin, direction)
}
