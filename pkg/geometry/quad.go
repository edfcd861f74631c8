package geometry

import (
	"image/color"

	"github.com/df07/go-realtime-raytracer/pkg/core"
)

// Quad is a planar four-cornered surface, rendered as a triangle fan around corner 0
type Quad struct {
	Corners [4]core.Vec3
	Color   color.RGBA
}

// NewQuad creates a quad from four corners given in fan order
func NewQuad(c0, c1, c2, c3 core.Vec3, c color.RGBA) Quad {
	return Quad{
		Corners: [4]core.Vec3{c0, c1, c2, c3},
		Color:   c,
	}
}

// RotateY returns a copy of the quad with every corner rotated around the vertical axis.
// The receiver is left untouched.
func (q Quad) RotateY(angle float64) Quad {
	rotated := Quad{Color: q.Color}
	for i, corner := range q.Corners {
		rotated.Corners[i] = corner.RotateY(angle)
	}
	return rotated
}

// Triangles decomposes the quad into (0,1,2) and (0,2,3)
func (q Quad) Triangles() [2]Triangle {
	return [2]Triangle{
		NewTriangle(q.Corners[0], q.Corners[1], q.Corners[2], q.Color),
		NewTriangle(q.Corners[0], q.Corners[2], q.Corners[3], q.Color),
	}
}
