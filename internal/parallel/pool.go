// Package parallel runs per-pixel work on a fixed set of goroutines.
package parallel

import (
	"image"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines consuming work items.
//
// Each worker owns a queue and steals from the others when its own queue
// is empty, which keeps uneven bands from idling cores.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu orders submissions before Close: queues only receive work
	// while done is open.
	mu sync.RWMutex
}

// NewWorkerPool starts a pool of the given size. A size of 0 or less
// uses GOMAXPROCS.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case work := <-own:
			work()
			continue
		default:
		}

		if work := p.steal(id); work != nil {
			work()
			continue
		}
		select {
		case <-p.done:
			drain(own)
			return
		case work := <-own:
			work()
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll runs every item and waits for all of them. A closed pool
// runs the items on the calling goroutine. Items must not call
// ExecuteAll on the same pool.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if len(work) == 1 {
		work[0]()
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			fn()
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ForEachBand splits r into horizontal bands, one per worker at most,
// and calls fn on each band concurrently. Bands are disjoint and cover r.
func (p *WorkerPool) ForEachBand(r image.Rectangle, fn func(band image.Rectangle)) {
	bands := Bands(r, p.workers)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b) }
	}
	p.ExecuteAll(work)
}

// Bands splits r into at most n horizontal bands of near-equal height.
func Bands(r image.Rectangle, n int) []image.Rectangle {
	if r.Empty() {
		return nil
	}
	h := r.Dy()
	n = max(min(n, h), 1)
	out := make([]image.Rectangle, 0, n)
	y := r.Min.Y
	for i := range n {
		next := r.Min.Y + h*(i+1)/n
		out = append(out, image.Rect(r.Min.X, y, r.Max.X, next))
		y = next
	}
	return out
}

// Close stops the workers after running queued work. Close is
// idempotent.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the pool size.
func (p *WorkerPool) Workers() int { return p.workers }

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool { return p.running.Load() }
