package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-realtime-raytracer/pkg/scene"
)

func TestRaytracer_RenderFrame_Pixels(t *testing.T) {
	rt := NewRaytracer(80, 60, Config{Workers: 1})
	defer rt.Close()

	sc := scene.NewDefaultAnimator().Frame(0)
	img, stats := rt.RenderFrame(sc)

	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 60 {
		t.Fatalf("Expected 80x60 image, got %v", img.Bounds())
	}
	if stats.Pixels != 80*60 {
		t.Errorf("Expected %d pixels, got %d", 80*60, stats.Pixels)
	}

	// Center pixel looks straight at the red sphere
	if got := img.RGBAAt(40, 30); got != scene.Red {
		t.Errorf("Expected center pixel red %v, got %v", scene.Red, got)
	}

	// Corner rays miss everything and fall back to the sky
	camera := NewCamera(sc.Camera, 80, 60)
	if got, want := img.RGBAAt(0, 0), scene.Background(camera.GetRay(0, 0)); got != want {
		t.Errorf("Expected corner pixel %v, got %v", want, got)
	}

	hits := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 80; x++ {
			ray := camera.GetRay(x, y)
			want := sc.Resolve(ray)
			if _, ok := sc.Trace(ray); ok {
				hits++
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
			if img.RGBAAt(x, y).A != 255 {
				t.Fatalf("Pixel (%d,%d) is not opaque", x, y)
			}
		}
	}
	if stats.Hits != hits {
		t.Errorf("Expected %d hits, got %d", hits, stats.Hits)
	}
}

func TestRaytracer_ParallelMatchesSequential(t *testing.T) {
	animator := scene.NewDefaultAnimator()

	sequential := NewRaytracer(64, 48, Config{Workers: 1})
	defer sequential.Close()

	tests := []struct {
		name   string
		config Config
	}{
		{"four workers", Config{Workers: 4, BandHeight: 8}},
		{"auto workers", Config{Workers: 0}},
		{"uneven bands", Config{Workers: 3, BandHeight: 7}},
		{"one row per band", Config{Workers: 2, BandHeight: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parallel := NewRaytracer(64, 48, tt.config)
			defer parallel.Close()

			for _, elapsed := range []float64{0, 0.7, 2.2, 5.9} {
				sc := animator.Frame(elapsed)
				want, wantStats := sequential.RenderFrame(sc)
				got, gotStats := parallel.RenderFrame(sc)

				if !bytes.Equal(want.Pix, got.Pix) {
					t.Fatalf("elapsed %f: parallel frame differs from sequential frame", elapsed)
				}
				if wantStats.Pixels != gotStats.Pixels || wantStats.Hits != gotStats.Hits {
					t.Errorf("elapsed %f: expected stats %+v, got %+v", elapsed, wantStats, gotStats)
				}
			}
		})
	}
}

func TestRaytracer_RenderIntoOverwritesEveryPixel(t *testing.T) {
	rt := NewRaytracer(16, 12, Config{Workers: 2, BandHeight: 5})
	defer rt.Close()

	img := rt.NewFrame()
	for i := range img.Pix {
		img.Pix[i] = 0x42
	}

	rt.RenderInto(scene.NewDefaultAnimator().Frame(1), img)
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("Alpha at byte %d not overwritten: %d", i, img.Pix[i])
		}
	}
}

func TestSplitBands(t *testing.T) {
	tests := []struct {
		height, bandHeight int
		expected           []Band
	}{
		{10, 4, []Band{{0, 4}, {4, 8}, {8, 10}}},
		{8, 4, []Band{{0, 4}, {4, 8}}},
		{5, 0, []Band{{0, 5}}},
		{3, 10, []Band{{0, 3}}},
	}

	for _, tt := range tests {
		got := splitBands(tt.height, tt.bandHeight)
		if len(got) != len(tt.expected) {
			t.Errorf("splitBands(%d,%d): expected %v, got %v", tt.height, tt.bandHeight, tt.expected, got)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("splitBands(%d,%d): expected %v, got %v", tt.height, tt.bandHeight, tt.expected, got)
			}
		}
	}
}

func TestFrameStats(t *testing.T) {
	stats := FrameStats{}
	if stats.HitRatio() != 0 {
		t.Errorf("Expected zero hit ratio for empty stats")
	}
	stats.Add(FrameStats{Pixels: 10, Hits: 3})
	stats.Add(FrameStats{Pixels: 10, Hits: 1})
	if stats.Pixels != 20 || stats.Hits != 4 {
		t.Errorf("Expected 20 pixels and 4 hits, got %+v", stats)
	}
	if stats.HitRatio() != 0.2 {
		t.Errorf("Expected hit ratio 0.2, got %f", stats.HitRatio())
	}
}
