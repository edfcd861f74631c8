//go:build cgo

package display

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-realtime-raytracer/pkg/renderer"
)

// TargetFPS is the frame pacing requested from the window system
const TargetFPS = 60

// WindowConfig configures the desktop window
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// Window is a desktop display backed by ebiten. Each ebiten tick renders one frame through the loop.
type Window struct {
	loop    *renderer.Loop
	start   time.Time
	closing bool

	pending *image.RGBA
	screen  *ebiten.Image
}

// RunWindow opens the window and steps loop once per tick until the window closes.
// It blocks and must be called from the main goroutine.
func RunWindow(config WindowConfig, loop *renderer.Loop) error {
	w := &Window{loop: loop, start: time.Now()}

	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowSize(config.Width, config.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(TargetFPS)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Present stores the frame for the next Draw
func (w *Window) Present(frame *image.RGBA) error {
	w.pending = frame
	return nil
}

// ElapsedSeconds returns wall time since the window opened
func (w *Window) ElapsedSeconds() float64 {
	return time.Since(w.start).Seconds()
}

// ShouldClose reports whether the user closed the window or pressed Escape
func (w *Window) ShouldClose() bool {
	return w.closing
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.closing = true
	}

	if err := w.loop.Step(w); err != nil {
		if errors.Is(err, renderer.ErrDisplayClosed) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	if w.pending == nil {
		return
	}

	b := w.pending.Bounds()
	if w.screen == nil || w.screen.Bounds().Dx() != b.Dx() || w.screen.Bounds().Dy() != b.Dy() {
		if w.screen != nil {
			w.screen.Deallocate()
		}
		w.screen = ebiten.NewImage(b.Dx(), b.Dy())
	}

	w.screen.WritePixels(w.pending.Pix)
	screen.DrawImage(w.screen, nil)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.0f", ebiten.ActualTPS()), 10, 10)
}

// Layout implements ebiten.Game
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.loop.Width(), w.loop.Height()
}
