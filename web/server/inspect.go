package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-realtime-raytracer/pkg/renderer"
	"github.com/df07/go-realtime-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit       bool       `json:"hit"`
	Primitive string     `json:"primitive,omitempty"` // "sphere" or "triangle"
	Index     int        `json:"index"`
	Distance  float64    `json:"distance"`
	Point     [3]float64 `json:"point"`
	Direction [3]float64 `json:"direction"`
	Color     string     `json:"color"`
}

// handleInspect reports which primitive the ray through pixel (x, y) hits at time t
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req, err := parseFrameRequest(values)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	x, err := parseIntParam(values, "x", req.Width/2, 0, req.Width-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	y, err := parseIntParam(values, "y", req.Height/2, 0, req.Height-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sc := scene.NewDefaultAnimator().Frame(req.Time)
	ray := renderer.NewCamera(sc.Camera, req.Width, req.Height).GetRay(x, y)

	response := InspectResponse{
		Direction: [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z},
	}
	if hit, ok := sc.Trace(ray); ok {
		p := ray.At(hit.Distance)
		response.Hit = true
		response.Primitive = hit.Kind.String()
		response.Index = hit.Index
		response.Distance = hit.Distance
		response.Point = [3]float64{p.X, p.Y, p.Z}
	}
	c := sc.Resolve(ray)
	response.Color = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
