package renderer

import (
	"image"
	"time"

	"github.com/df07/go-realtime-raytracer/pkg/scene"
)

// Config contains raytracer configuration
type Config struct {
	Workers    int // Number of parallel workers (0 = use CPU count, 1 = render on the calling goroutine)
	BandHeight int // Rows per work unit (0 = DefaultBandHeight)
}

// DefaultBandHeight is the number of rows handed to a worker at a time
const DefaultBandHeight = 16

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers:    0,
		BandHeight: DefaultBandHeight,
	}
}

// Raytracer renders scene snapshots into full-frame RGBA buffers.
// RenderInto must not be called concurrently on the same Raytracer.
type Raytracer struct {
	width  int
	height int
	bands  []Band
	pool   *WorkerPool // nil when rendering sequentially
}

// NewRaytracer creates a raytracer for a fixed width x height viewport
func NewRaytracer(width, height int, config Config) *Raytracer {
	if config.BandHeight <= 0 {
		config.BandHeight = DefaultBandHeight
	}

	rt := &Raytracer{
		width:  width,
		height: height,
		bands:  splitBands(height, config.BandHeight),
	}

	if config.Workers != 1 {
		rt.pool = NewWorkerPool(config.Workers, len(rt.bands))
		rt.pool.Start()
	}
	return rt
}

// Width returns the viewport width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the viewport height in pixels
func (rt *Raytracer) Height() int { return rt.height }

// Close stops the worker pool
func (rt *Raytracer) Close() {
	if rt.pool != nil {
		rt.pool.Stop()
		rt.pool = nil
	}
}

// NewFrame allocates a frame buffer sized for this raytracer
func (rt *Raytracer) NewFrame() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
}

// RenderFrame renders the scene into a newly allocated image
func (rt *Raytracer) RenderFrame(sc *scene.Scene) (*image.RGBA, FrameStats) {
	img := rt.NewFrame()
	stats := rt.RenderInto(sc, img)
	return img, stats
}

// RenderInto overwrites every pixel of img with the color seen through it.
// img must have the raytracer's dimensions and a zero origin.
func (rt *Raytracer) RenderInto(sc *scene.Scene, img *image.RGBA) FrameStats {
	start := time.Now()
	camera := NewCamera(sc.Camera, rt.width, rt.height)

	var stats FrameStats
	if rt.pool == nil {
		stats = renderBand(sc, camera, img, Band{MinY: 0, MaxY: rt.height})
	} else {
		for i, band := range rt.bands {
			rt.pool.SubmitTask(BandTask{Scene: sc, Camera: camera, Image: img, Band: band, TaskID: i})
		}
		for range rt.bands {
			result, _ := rt.pool.GetResult()
			stats.Add(result.Stats)
		}
	}

	stats.Duration = time.Since(start)
	return stats
}
