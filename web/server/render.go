package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-realtime-raytracer/pkg/export"
	"github.com/df07/go-realtime-raytracer/pkg/renderer"
	"github.com/df07/go-realtime-raytracer/pkg/scene"
)

// FrameUpdate is a single frame sent via SSE
type FrameUpdate struct {
	Frame      int     `json:"frame"`
	Time       float64 `json:"time"`
	ImageData  string  `json:"imageData"` // Base64 encoded PNG
	Hits       int     `json:"hits"`
	Pixels     int     `json:"pixels"`
	RenderMs   float64 `json:"renderMs"`
	IsComplete bool    `json:"isComplete"`
}

// sseDisplay is a Display that streams every presented frame to an SSE client
type sseDisplay struct {
	w       http.ResponseWriter
	flusher http.Flusher
	r       *http.Request
	fps     float64
	frames  int
	sent    int
	loop    *renderer.Loop
}

func (d *sseDisplay) Present(frame *image.RGBA) error {
	data, err := export.Encode(frame, 1)
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	update := FrameUpdate{
		Frame:      d.sent,
		Time:       d.ElapsedSeconds(),
		ImageData:  base64.StdEncoding.EncodeToString(data),
		IsComplete: d.sent+1 >= d.frames,
	}
	stats := d.loop.LastStats()
	update.Hits = stats.Hits
	update.Pixels = stats.Pixels
	update.RenderMs = float64(stats.Duration.Microseconds()) / 1000

	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}
	if err := sendSSEEvent(d.w, d.flusher, "frame", string(payload)); err != nil {
		return err
	}
	d.sent++
	return nil
}

func (d *sseDisplay) ElapsedSeconds() float64 {
	return float64(d.sent) / d.fps
}

func (d *sseDisplay) ShouldClose() bool {
	return d.sent >= d.frames || d.r.Context().Err() != nil
}

// handleStream renders consecutive frames and streams them as Server-Sent Events
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	values := r.URL.Query()
	req, err := parseFrameRequest(values)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	fps, err := parseFloatParam(values, "fps", 30, 1, 240)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	frames, err := parseIntParam(values, "frames", 30, 1, 10000)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	setSSEHeaders(w)

	rt := renderer.NewRaytracer(req.Width, req.Height, renderer.Config{Workers: s.workers})
	defer rt.Close()
	loop := renderer.NewLoop(scene.NewDefaultAnimator(), rt, nil)

	display := &sseDisplay{w: w, flusher: flusher, r: r, fps: fps, frames: frames, loop: loop}
	startTime := time.Now()

	// Request context detects client disconnection
	if err := loop.Run(r.Context(), display); err != nil {
		log.Printf("Stream ended after %d frames: %v", display.sent, err)
		sendSSEEvent(w, flusher, "error", err.Error())
		return
	}

	log.Printf("Streamed %d frames in %v", display.sent, time.Since(startTime))
	sendSSEEvent(w, flusher, "complete", "Rendering completed")
}

// setSSEHeaders sets the required headers for Server-Sent Events
func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEEvent sends a generic SSE event
func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
