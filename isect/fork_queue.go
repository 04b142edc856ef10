package isect

import (
	"runtime"
	"sync/atomic"
)

type forkQueueTask[T any] struct {
	Started atomic.Bool
	F       func() T
	Result  chan T
}

// A forkQueue runs recursive searches with a fixed maximum number of
// Goroutines. The root task is started with Run(), and any task may call
// Fork() to run two sub-tasks, potentially on separate Goroutines.
type forkQueue[T any] struct {
	queue chan *forkQueueTask[T]
}

func newForkQueue[T any](numWorkers int) *forkQueue[T] {
	if numWorkers == 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	res := &forkQueue[T]{
		queue: make(chan *forkQueueTask[T], numWorkers*1000),
	}
	for i := 0; i < numWorkers; i++ {
		go res.worker()
	}
	return res
}

func (f *forkQueue[T]) Run(fn func() T) T {
	defer close(f.queue)
	task := &forkQueueTask[T]{F: fn, Result: make(chan T, 1)}
	f.queue <- task
	return <-task.Result
}

func (f *forkQueue[T]) Fork(fn1, fn2 func() T) (T, T) {
	task := &forkQueueTask[T]{F: fn2, Result: make(chan T, 1)}
	select {
	case f.queue <- task:
	default:
		// The queue is full, so the second half runs on this Goroutine.
		return fn1(), fn2()
	}
	result1 := fn1()
	if task.Started.CompareAndSwap(false, true) {
		// No worker picked up the task while we were busy.
		return result1, fn2()
	}
	return result1, <-task.Result
}

func (f *forkQueue[T]) worker() {
	for task := range f.queue {
		if !task.Started.CompareAndSwap(false, true) {
			continue
		}
		task.Result <- task.F()
	}
}
