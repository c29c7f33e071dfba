package ingest

import (
	"context"
	"sync"
	"time"
)

type task func(ctx context.Context) error

type result struct {
	Err error
}

// pool runs upsert tasks across a fixed set of workers with an optional
// requests-per-second cap so a refresh cannot hammer the database.
type pool struct {
	workers int
	tasks   chan task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
}

func newPool(workers, buffer int) *pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &pool{
		workers: workers,
		tasks:   make(chan task, buffer),
	}
}

// setRateLimit must be called before run; swapping the ticker underneath a
// parked worker would strand it on the stopped channel.
func (p *pool) setRateLimit(rps int) {
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	if rps <= 0 {
		return
	}
	t := time.NewTicker(time.Second / time.Duration(rps))
	p.mu.Lock()
	p.ticker = t
	p.rate = t.C
	p.mu.Unlock()
}

func (p *pool) submit(t task) {
	if t == nil {
		return
	}
	p.tasks <- t
}

// close stops intake. The rate ticker must keep running until the workers
// drain: a worker parked on it would otherwise never wake, so teardown
// happens after wg.Wait in run.
func (p *pool) close() {
	close(p.tasks)
}

func (p *pool) stopTicker() {
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
}

func (p *pool) run(ctx context.Context) <-chan result {
	out := make(chan result, p.workers*64)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					p.mu.RLock()
					rate := p.rate
					p.mu.RUnlock()
					if rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-rate:
						}
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- result{Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		p.stopTicker()
		close(out)
	}()

	return out
}
