package display

import (
	"errors"
	"fmt"
	"image"
)

// FrameSink receives frames presented by a headless display
type FrameSink interface {
	WriteFrame(index int, frame *image.RGBA) error
}

// HeadlessConfig configures a Headless display
type HeadlessConfig struct {
	Frames int     // Number of frames before ShouldClose reports true
	FPS    float64 // Simulated frame rate driving the clock
	Start  float64 // Elapsed seconds reported for the first frame
}

// Headless is a display without a window. Its clock advances by exactly 1/FPS per presented frame,
// so output is reproducible regardless of how long rendering takes.
type Headless struct {
	config    HeadlessConfig
	sink      FrameSink
	presented int
}

// NewHeadless creates a headless display writing frames to sink
func NewHeadless(config HeadlessConfig, sink FrameSink) (*Headless, error) {
	if config.Frames <= 0 {
		return nil, fmt.Errorf("headless frame count must be positive, got %d", config.Frames)
	}
	if config.FPS <= 0 {
		return nil, fmt.Errorf("headless fps must be positive, got %f", config.FPS)
	}
	if sink == nil {
		return nil, errors.New("headless display requires a frame sink")
	}
	return &Headless{config: config, sink: sink}, nil
}

// Present hands the frame to the sink
func (h *Headless) Present(frame *image.RGBA) error {
	if err := h.sink.WriteFrame(h.presented, frame); err != nil {
		return fmt.Errorf("write frame %d: %w", h.presented, err)
	}
	h.presented++
	return nil
}

// ElapsedSeconds returns the simulated time for the next frame
func (h *Headless) ElapsedSeconds() float64 {
	return h.config.Start + float64(h.presented)/h.config.FPS
}

// ShouldClose reports whether the configured frame count has been presented
func (h *Headless) ShouldClose() bool {
	return h.presented >= h.config.Frames
}

// Presented returns the number of frames written so far
func (h *Headless) Presented() int {
	return h.presented
}
