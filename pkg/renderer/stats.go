package renderer

import "time"

// FrameStats contains statistics about a rendered frame
type FrameStats struct {
	Pixels   int           // Total number of pixels rendered
	Hits     int           // Pixels whose ray hit a primitive
	Duration time.Duration // Wall time spent rendering
}

// Add merges band statistics into s. Durations are not summed since bands run concurrently.
func (s *FrameStats) Add(other FrameStats) {
	s.Pixels += other.Pixels
	s.Hits += other.Hits
}

// HitRatio returns the fraction of pixels that hit geometry
func (s FrameStats) HitRatio() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Pixels)
}
