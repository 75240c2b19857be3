package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/log"
)

// Per-scanline detail, e.g. --log-module worker=debug
var workerLogger = log.New("worker")

// ScanlineTask represents one image row for the worker pool
type ScanlineTask struct {
	Row int
}

// ScanlineResult contains the result from rendering a row
type ScanlineResult struct {
	Row      int
	WorkerID int
	Colors   []core.Color // Averaged linear colors, left to right
	Pixels   []PixelStats // Per-pixel sampling statistics
	Error    error
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool with the specified number of workers,
// defaulting to one per CPU
func NewWorkerPool(raytracer *Raytracer, numRows, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, numRows),   // Buffer for every row
		resultQueue: make(chan ScanlineResult, numRows), // Buffer for every result
		numWorkers:  numWorkers,
	}

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

// Start begins all workers. Workers stop rendering, but keep draining the
// queue, once ctx is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop waits for queued tasks to drain and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result. It returns false once
// the pool has been stopped and every result consumed.
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			workerLogger.Debugf("worker %d skipping scanline %d: %v", w.ID, task.Row, err)
			w.resultQueue <- ScanlineResult{Row: task.Row, WorkerID: w.ID, Error: err}
			continue
		}

		colors, pixels := w.raytracer.RenderRow(task.Row)
		workerLogger.Debugf("worker %d finished scanline %d", w.ID, task.Row)
		w.resultQueue <- ScanlineResult{
			Row:      task.Row,
			WorkerID: w.ID,
			Colors:   colors,
			Pixels:   pixels,
		}
	}
}
