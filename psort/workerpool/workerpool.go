// Copyright 2025 The lab2-pap Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a fixed-size, reusable worker pool executing
// synchronous fork/join fan-outs. A Pool is created once per benchmark and
// handed to every parallel sort, so the goroutines are spawned once instead
// of once per sweep or per tournament round.
//
// Every fan-out method blocks until all dispatched work has finished. The
// join is the only synchronization point: all writes made by tasks of one
// fan-out are visible to the caller (and to the next fan-out) once the method
// returns.
//
// Usage:
//
//	pool := workerpool.New(runtime.NumCPU())
//	defer pool.Close()
//
//	changed := pool.AnyOf(len(chunks), func(i int) bool {
//	    return sweep(chunks[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many fan-outs.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one task of a fan-out.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes; later fan-outs run
// sequentially on the calling goroutine. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run executes fn(i) for every task index i in [0, tasks) and blocks until
// all of them return. Tasks are dispatched one per work item, so a caller
// that sizes tasks to NumWorkers gets one task per worker.
func (p *Pool) Run(tasks int, fn func(i int)) {
	if tasks <= 0 {
		return
	}

	if tasks == 1 || p.closed.Load() {
		for i := range tasks {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(tasks)
	for i := range tasks {
		p.workC <- workItem{
			fn: func() {
				fn(i)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// AnyOf executes fn(i) for every task index i in [0, tasks), waits for all
// of them, and returns the logical OR of their results. Each task writes its
// own result slot; the slots are combined only after the join.
func (p *Pool) AnyOf(tasks int, fn func(i int) bool) bool {
	if tasks <= 0 {
		return false
	}

	results := make([]bool, tasks)
	p.Run(tasks, func(i int) {
		results[i] = fn(i)
	})

	changed := false
	for _, r := range results {
		changed = changed || r
	}
	return changed
}

// ParallelFor executes fn over [0, n) split into at most NumWorkers
// contiguous ranges. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	chunkSize := (n + workers - 1) / workers
	ranges := (n + chunkSize - 1) / chunkSize

	p.Run(ranges, func(i int) {
		start := i * chunkSize
		fn(start, min(start+chunkSize, n))
	})
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing, for indices of varying cost.
// Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)

	var nextIdx atomic.Int32
	p.Run(workers, func(int) {
		for {
			idx := int(nextIdx.Add(1)) - 1
			if idx >= n {
				return
			}
			fn(idx)
		}
	})
}
