package gfx

import (
	"context"
	"sync"
	"time"
)

// Animation calls Evolve on the event loop thread once per Period with the
// time elapsed since the previous tick.
type Animation struct {
	Period  time.Duration
	Evolve  func(elapsed time.Duration)
	running bool
}

func NewAnimation(period time.Duration, evolve func(elapsed time.Duration)) *Animation {
	if period <= 0 {
		period = time.Second / 60
	}
	return &Animation{
		Period: period,
		Evolve: evolve,
	}
}

func (a *Animation) Run(ctx context.Context, wg *sync.WaitGroup, updates chan<- func()) {
	if a.running || a.Evolve == nil {
		return
	}
	a.running = true
	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(a.Period)
		defer ticker.Stop()
		last := time.Now()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				elapsed := now.Sub(last)
				last = now
				// the goroutine never touches renderer state itself
				select {
				case updates <- func() { a.Evolve(elapsed) }:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}
