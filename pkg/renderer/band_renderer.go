package renderer

import (
	"image"

	"github.com/df07/go-realtime-raytracer/pkg/scene"
)

// Band is a horizontal strip of rows [MinY, MaxY)
type Band struct {
	MinY, MaxY int
}

// splitBands partitions height rows into bands of at most bandHeight rows
func splitBands(height, bandHeight int) []Band {
	if bandHeight <= 0 {
		bandHeight = height
	}
	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{MinY: y, MaxY: min(y+bandHeight, height)})
	}
	return bands
}

// renderBand traces one ray per pixel for every row in the band, in row-major order.
// Bands never overlap, so concurrent calls on the same image are safe.
func renderBand(sc *scene.Scene, camera Camera, img *image.RGBA, band Band) FrameStats {
	stats := FrameStats{}
	for y := band.MinY; y < band.MaxY; y++ {
		for x := 0; x < camera.Width; x++ {
			ray := camera.GetRay(x, y)

			c := scene.Background(ray)
			if hit, ok := sc.Trace(ray); ok {
				c = hit.Color
				stats.Hits++
			}

			idx := img.PixOffset(x, y)
			img.Pix[idx] = c.R
			img.Pix[idx+1] = c.G
			img.Pix[idx+2] = c.B
			img.Pix[idx+3] = c.A
			stats.Pixels++
		}
	}
	return stats
}
