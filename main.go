package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/df07/go-realtime-raytracer/pkg/config"
	"github.com/df07/go-realtime-raytracer/pkg/display"
	"github.com/df07/go-realtime-raytracer/pkg/export"
	"github.com/df07/go-realtime-raytracer/pkg/renderer"
	"github.com/df07/go-realtime-raytracer/pkg/scene"
)

func main() {
	envFile := flag.String("env", ".env", "Optional .env file with RAYTRACER_* and S3_* settings")
	mode := flag.String("mode", "", "Display mode: 'window' or 'headless' (overrides RAYTRACER_MODE)")
	frames := flag.Int("frames", 0, "Headless: number of frames to render")
	fps := flag.Float64("fps", 0, "Headless: simulated frames per second")
	start := flag.Float64("start", -1, "Headless: elapsed seconds of the first frame")
	output := flag.String("output", "", "Headless: directory for rendered PNG frames")
	scale := flag.Float64("scale", 0, "Headless: resize factor applied to saved frames")
	workers := flag.Int("workers", -1, "Number of render workers (0 = CPU count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Realtime Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Modes:")
		fmt.Println("  window   - 800x600 window, rotating quad behind three spheres (Esc to quit)")
		fmt.Println("  headless - render a fixed number of frames to output/frames/frame_NNNNN.png")
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}
	applyFlags(&cfg, *mode, *frames, *fps, *start, *output, *scale, *workers)

	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// applyFlags overrides cfg with every flag that was given a non-sentinel value
func applyFlags(cfg *config.Config, mode string, frames int, fps, start float64, output string, scale float64, workers int) {
	if mode != "" {
		cfg.Mode = config.Mode(mode)
	}
	if frames > 0 {
		cfg.Frames = frames
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	if start >= 0 {
		cfg.Start = start
	}
	if output != "" {
		cfg.OutputDir = output
	}
	if scale > 0 {
		cfg.Scale = scale
	}
	if workers >= 0 {
		cfg.Workers = workers
	}
}

func run(cfg config.Config) error {
	raytracer := renderer.NewRaytracer(cfg.Width, cfg.Height, renderer.Config{Workers: cfg.Workers})
	defer raytracer.Close()

	logger := renderer.NewDefaultLogger()
	loop := renderer.NewLoop(scene.NewDefaultAnimator(), raytracer, logger)

	switch cfg.Mode {
	case config.ModeHeadless:
		return runHeadless(cfg, loop)
	default:
		log.Printf("Opening %dx%d window %q", cfg.Width, cfg.Height, cfg.Title)
		return display.RunWindow(display.WindowConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Title:  cfg.Title,
		}, loop)
	}
}

func runHeadless(cfg config.Config, loop *renderer.Loop) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sink, err := newFrameSink(ctx, cfg)
	if err != nil {
		return err
	}

	headless, err := display.NewHeadless(display.HeadlessConfig{
		Frames: cfg.Frames,
		FPS:    cfg.FPS,
		Start:  cfg.Start,
	}, sink)
	if err != nil {
		return err
	}

	log.Printf("Rendering %d frames at %.1f fps into %s", cfg.Frames, cfg.FPS, cfg.OutputDir)
	if err := loop.Run(ctx, headless); err != nil {
		return fmt.Errorf("headless render: %w", err)
	}
	log.Printf("Wrote %d frames to %s", headless.Presented(), cfg.OutputDir)
	return nil
}

func newFrameSink(ctx context.Context, cfg config.Config) (*export.PNGWriter, error) {
	opts := []export.PNGOption{export.WithScale(cfg.Scale)}

	if cfg.UploadEnabled() {
		uploader, err := export.NewS3Uploader(export.S3Config{
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
		}, renderer.NewDefaultLogger())
		if err != nil {
			return nil, err
		}
		opts = append(opts, export.WithUploader(ctx, uploader))
	}

	return export.NewPNGWriter(cfg.OutputDir, opts...)
}
