package renderer

import (
	"image"
	"runtime"
	"sync"

	"github.com/df07/go-realtime-raytracer/pkg/scene"
)

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Scene  *scene.Scene
	Camera Camera
	Image  *image.RGBA // Shared frame buffer; each task writes only its own rows
	Band   Band
	TaskID int
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID int
	Stats  FrameStats
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize bounds the number of in-flight tasks.
func NewWorkerPool(numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if queueSize <= 0 {
		queueSize = numWorkers
	}

	return &WorkerPool{
		taskQueue:   make(chan BandTask, queueSize),
		resultQueue: make(chan BandResult, queueSize),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		stats := renderBand(task.Scene, task.Camera, task.Image, task.Band)
		wp.resultQueue <- BandResult{TaskID: task.TaskID, Stats: stats}
	}
}
