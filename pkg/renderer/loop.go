package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-realtime-raytracer/pkg/core"
	"github.com/df07/go-realtime-raytracer/pkg/scene"
)

// ErrDisplayClosed is returned by Step once the display has asked to close
var ErrDisplayClosed = errors.New("display closed")

// Display presents rendered frames and drives animation time
type Display interface {
	Present(frame *image.RGBA) error
	ElapsedSeconds() float64
	ShouldClose() bool
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ReportEvery is how many frames pass between frame-rate log lines
const ReportEvery = 120

// Loop runs the animate, render, present cycle one frame at a time
type Loop struct {
	animator  *scene.Animator
	raytracer *Raytracer
	logger    core.Logger
	frame     *image.RGBA // Reused; fully overwritten every frame

	frames      int
	lastStats   FrameStats
	windowStart time.Time
	windowTime  time.Duration
}

// NewLoop creates a frame loop
func NewLoop(animator *scene.Animator, raytracer *Raytracer, logger core.Logger) *Loop {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Loop{
		animator:  animator,
		raytracer: raytracer,
		logger:    logger,
		frame:     raytracer.NewFrame(),

		windowStart: time.Now(),
	}
}

// Step renders and presents a single frame.
// The presented image is only valid until the next Step.
func (l *Loop) Step(d Display) error {
	if d.ShouldClose() {
		return ErrDisplayClosed
	}

	elapsed := d.ElapsedSeconds()
	sc := l.animator.Frame(elapsed)
	stats := l.raytracer.RenderInto(sc, l.frame)
	l.lastStats = stats

	if err := d.Present(l.frame); err != nil {
		return fmt.Errorf("present frame %d: %w", l.frames, err)
	}

	l.record(stats)
	return nil
}

// Run steps until the display closes or ctx is done
func (l *Loop) Run(ctx context.Context, d Display) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := l.Step(d); err != nil {
			if errors.Is(err, ErrDisplayClosed) {
				l.logger.Printf("Display closed after %d frames\n", l.frames)
				return nil
			}
			return err
		}
	}
}

// Width returns the frame width in pixels
func (l *Loop) Width() int {
	return l.raytracer.Width()
}

// Height returns the frame height in pixels
func (l *Loop) Height() int {
	return l.raytracer.Height()
}

// Frames returns the number of frames presented so far
func (l *Loop) Frames() int {
	return l.frames
}

// LastStats returns statistics for the most recently rendered frame
func (l *Loop) LastStats() FrameStats {
	return l.lastStats
}

func (l *Loop) record(stats FrameStats) {
	l.frames++
	l.windowTime += stats.Duration

	if l.frames%ReportEvery == 0 {
		wall := time.Since(l.windowStart)
		l.logger.Printf("Frame %d: %.1f fps, %.2f ms/frame render, %.1f%% hit\n",
			l.frames,
			float64(ReportEvery)/wall.Seconds(),
			float64(l.windowTime.Microseconds())/1000/float64(ReportEvery),
			stats.HitRatio()*100)
		l.windowStart = time.Now()
		l.windowTime = 0
	}
}
