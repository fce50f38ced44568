package widget

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval matches the storefront's refresh cadence for prices
// and bookings.
const DefaultPollInterval = 5 * time.Second

// Task is one unit of poll work.
type Task func(ctx context.Context) error

// Poller runs its tasks immediately and then on every tick until the
// context is cancelled. A failing task is recorded and polling continues;
// transient API errors must not stop the refresh loop.
type Poller struct {
	interval time.Duration
	tasks    []Task

	mu      sync.Mutex
	lastErr error

	wg sync.WaitGroup
}

func NewPoller(interval time.Duration, tasks ...Task) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{interval: interval, tasks: tasks}
}

// Start launches the poll loop. It returns immediately; the loop lives
// until ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.runTasks(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.runTasks(ctx)
			}
		}
	}()
}

func (p *Poller) runTasks(ctx context.Context) {
	for _, task := range p.tasks {
		if err := task(ctx); err != nil {
			p.mu.Lock()
			p.lastErr = err
			p.mu.Unlock()
			continue
		}
	}
}

// LastError returns the most recent task failure, if any.
func (p *Poller) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Wait blocks until the poll loop has exited.
func (p *Poller) Wait() {
	p.wg.Wait()
}
