package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// RowTask represents one image row for the worker pool
type RowTask struct {
	Row  int   // Sample-space row, 0 is the bottom of the image
	Seed int64 // Seed for the row's private random generator
}

// RowResult contains the averaged colors of a rendered row
type RowResult struct {
	Row     int
	Colors  []core.Color
	Samples int
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// The raytracer is shared read-only between workers.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer every row so workers never block on a slow collector
	rows := raytracer.config.Height

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),
		resultQueue: make(chan RowResult, rows),
		numWorkers:  numWorkers,
	}

	// Create workers
	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers. Tasks already submitted are
// finished and their results stay readable through GetResult.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each row owns its generator so results do not depend on which
		// worker picks the task up
		sampler := core.NewSeededSampler(task.Seed)
		colors := w.raytracer.RenderRow(task.Row, sampler)

		w.resultQueue <- RowResult{
			Row:     task.Row,
			Colors:  colors,
			Samples: len(colors) * w.raytracer.config.SamplesPerPixel,
		}
	}
}
