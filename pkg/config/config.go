package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Mode selects the display used by the main program
type Mode string

const (
	ModeWindow   Mode = "window"
	ModeHeadless Mode = "headless"
)

// Config contains all runtime settings
type Config struct {
	Mode    Mode
	Width   int
	Height  int
	Title   string
	Workers int // 0 = use CPU count

	// Headless rendering
	Frames    int
	FPS       float64
	Start     float64 // Elapsed seconds of the first headless frame
	OutputDir string
	Scale     float64

	// Optional S3 upload of headless frames
	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	// Web server
	Port int
}

// Default returns the stock 800x600 window configuration
func Default() Config {
	return Config{
		Mode:      ModeWindow,
		Width:     800,
		Height:    600,
		Title:     "Raytracing - Rotating Rectangle",
		Workers:   0,
		Frames:    60,
		FPS:       30,
		OutputDir: "output/frames",
		Scale:     1,
		S3Region:  "us-east-1",
		Port:      8080,
	}
}

// Load returns Default overridden by envFile (if it exists) and the process environment
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	var err error
	if v, ok := os.LookupEnv("RAYTRACER_MODE"); ok {
		cfg.Mode = Mode(v)
	}
	cfg.Title = getEnv("RAYTRACER_TITLE", cfg.Title)
	if cfg.Width, err = getEnvInt("RAYTRACER_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvInt("RAYTRACER_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getEnvInt("RAYTRACER_WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.Frames, err = getEnvInt("RAYTRACER_FRAMES", cfg.Frames); err != nil {
		return Config{}, err
	}
	if cfg.FPS, err = getEnvFloat("RAYTRACER_FPS", cfg.FPS); err != nil {
		return Config{}, err
	}
	if cfg.Start, err = getEnvFloat("RAYTRACER_START", cfg.Start); err != nil {
		return Config{}, err
	}
	cfg.OutputDir = getEnv("RAYTRACER_OUTPUT", cfg.OutputDir)
	if cfg.Scale, err = getEnvFloat("RAYTRACER_SCALE", cfg.Scale); err != nil {
		return Config{}, err
	}
	if cfg.Port, err = getEnvInt("RAYTRACER_PORT", cfg.Port); err != nil {
		return Config{}, err
	}

	cfg.S3Bucket = getEnv("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Prefix = getEnv("S3_PREFIX", cfg.S3Prefix)
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", cfg.S3SecretKey)

	return cfg, nil
}

// UploadEnabled reports whether headless frames should go to S3
func (c Config) UploadEnabled() bool {
	return c.S3Bucket != ""
}

// Validate checks that the configuration can drive a render
func (c Config) Validate() error {
	if c.Mode != ModeWindow && c.Mode != ModeHeadless {
		return fmt.Errorf("unknown mode %q (want %q or %q)", c.Mode, ModeWindow, ModeHeadless)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %f", c.FPS)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %f", c.Scale)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.UploadEnabled() && (c.S3AccessKey == "") != (c.S3SecretKey == "") {
		return errors.New("S3_ACCESS_KEY and S3_SECRET_KEY must be set together")
	}
	return nil
}

// getEnv returns the environment variable or fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}
