package display

import (
	"context"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/df07/go-realtime-raytracer/pkg/renderer"
	"github.com/df07/go-realtime-raytracer/pkg/scene"
)

type recordingSink struct {
	indices []int
	err     error
}

func (r *recordingSink) WriteFrame(index int, frame *image.RGBA) error {
	if r.err != nil {
		return r.err
	}
	r.indices = append(r.indices, index)
	return nil
}

func TestNewHeadless_Validation(t *testing.T) {
	sink := &recordingSink{}
	tests := []struct {
		name   string
		config HeadlessConfig
		sink   FrameSink
	}{
		{"zero frames", HeadlessConfig{Frames: 0, FPS: 30}, sink},
		{"negative fps", HeadlessConfig{Frames: 1, FPS: -1}, sink},
		{"missing sink", HeadlessConfig{Frames: 1, FPS: 30}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHeadless(tt.config, tt.sink); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestHeadless_Clock(t *testing.T) {
	sink := &recordingSink{}
	h, err := NewHeadless(HeadlessConfig{Frames: 3, FPS: 4, Start: 1}, sink)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 1, 1))
	for i, want := range []float64{1, 1.25, 1.5} {
		if h.ShouldClose() {
			t.Fatalf("Closed early after %d frames", i)
		}
		if got := h.ElapsedSeconds(); math.Abs(got-want) > 1e-12 {
			t.Errorf("Frame %d: expected elapsed %f, got %f", i, want, got)
		}
		if err := h.Present(frame); err != nil {
			t.Fatalf("Present failed: %v", err)
		}
	}

	if !h.ShouldClose() {
		t.Error("Expected ShouldClose after configured frames")
	}
	if h.Presented() != 3 || len(sink.indices) != 3 || sink.indices[2] != 2 {
		t.Errorf("Expected frames 0..2 written, got %v", sink.indices)
	}
}

func TestHeadless_DrivesLoop(t *testing.T) {
	sink := &recordingSink{}
	h, err := NewHeadless(HeadlessConfig{Frames: 5, FPS: 30}, sink)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	rt := renderer.NewRaytracer(20, 15, renderer.Config{Workers: 1})
	defer rt.Close()
	loop := renderer.NewLoop(scene.NewDefaultAnimator(), rt, nil)

	if err := loop.Run(context.Background(), h); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if loop.Frames() != 5 || len(sink.indices) != 5 {
		t.Errorf("Expected 5 frames, got loop=%d sink=%d", loop.Frames(), len(sink.indices))
	}
}

func TestHeadless_SinkErrorWrapped(t *testing.T) {
	sinkErr := errors.New("disk full")
	h, err := NewHeadless(HeadlessConfig{Frames: 2, FPS: 30}, &recordingSink{err: sinkErr})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	err = h.Present(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, sinkErr) {
		t.Errorf("Expected wrapped sink error, got %v", err)
	}
	if h.Presented() != 0 {
		t.Errorf("Failed frame should not count as presented")
	}
}
