//go:build !cgo

package display

import (
	"errors"

	"github.com/df07/go-realtime-raytracer/pkg/renderer"
)

// WindowConfig configures the desktop window
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// RunWindow is unavailable without cgo
func RunWindow(_ WindowConfig, _ *renderer.Loop) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
