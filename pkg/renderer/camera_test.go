package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-realtime-raytracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	origin := core.NewVec3(0, 0, -3)
	camera := NewCamera(origin, 800, 600)

	tests := []struct {
		name     string
		x, y     int
		expected core.Vec3
	}{
		{"center pixel looks straight ahead", 400, 300, core.NewVec3(0, 0, 1)},
		{"top-left pixel looks up and left", 0, 0, core.NewVec3(-1, 1, 1).Normalize()},
		{"bottom rows look down", 400, 450, core.NewVec3(0, -0.5, 1).Normalize()},
		{"right columns look right", 600, 300, core.NewVec3(0.5, 0, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.x, tt.y)
			if ray.Origin != origin {
				t.Errorf("Expected origin %v, got %v", origin, ray.Origin)
			}
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-9 {
				t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
			}
		})
	}
}

func TestCamera_DirectionsAreFiniteEverywhere(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, -3), 32, 24)
	for y := 0; y < camera.Height; y++ {
		for x := 0; x < camera.Width; x++ {
			d := camera.GetRay(x, y).Direction
			if math.IsNaN(d.X) || math.IsNaN(d.Y) || math.IsNaN(d.Z) || math.IsInf(d.Length(), 0) {
				t.Fatalf("Pixel (%d,%d) produced non-finite direction %v", x, y, d)
			}
		}
	}
}
