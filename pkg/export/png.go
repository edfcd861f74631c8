package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

// Uploader publishes encoded frames somewhere other than the local disk
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte) error
}

// PNGWriter encodes presented frames as numbered PNG files
type PNGWriter struct {
	dir      string
	scale    float64
	uploader Uploader
	ctx      context.Context
}

// PNGOption configures a PNGWriter
type PNGOption func(*PNGWriter)

// WithScale resizes frames by factor before encoding
func WithScale(factor float64) PNGOption {
	return func(w *PNGWriter) { w.scale = factor }
}

// WithUploader also sends every encoded frame to u
func WithUploader(ctx context.Context, u Uploader) PNGOption {
	return func(w *PNGWriter) {
		w.ctx = ctx
		w.uploader = u
	}
}

// NewPNGWriter creates dir if needed and returns a writer for it
func NewPNGWriter(dir string, opts ...PNGOption) (*PNGWriter, error) {
	w := &PNGWriter{dir: dir, scale: 1, ctx: context.Background()}
	for _, opt := range opts {
		opt(w)
	}
	if w.scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %f", w.scale)
	}
	if dir == "" {
		return nil, errors.New("output directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return w, nil
}

// FrameName returns the file name used for frame index
func FrameName(index int) string {
	return fmt.Sprintf("frame_%05d.png", index)
}

// WriteFrame encodes the frame, writes it to disk and uploads it when configured
func (w *PNGWriter) WriteFrame(index int, frame *image.RGBA) error {
	data, err := Encode(frame, w.scale)
	if err != nil {
		return err
	}

	name := FrameName(index)
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if w.uploader != nil {
		if err := w.uploader.Upload(w.ctx, name, data); err != nil {
			return err
		}
	}
	return nil
}

// Encode returns the PNG encoding of img, resized by scale when it is not 1
func Encode(img image.Image, scale float64) ([]byte, error) {
	if scale != 1 {
		b := img.Bounds()
		width := uint(float64(b.Dx()) * scale)
		height := uint(float64(b.Dy()) * scale)
		if width == 0 || height == 0 {
			return nil, fmt.Errorf("scale %f shrinks %dx%d frame to nothing", scale, b.Dx(), b.Dy())
		}
		img = resize.Resize(width, height, img, resize.Bilinear)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
