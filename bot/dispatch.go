package bot

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Dispatcher runs commands on a bounded set of goroutines
type Dispatcher struct {
	ctx    context.Context
	group  errgroup.Group
	logger zerolog.Logger

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher allowing at most workers concurrent
// tasks. Tasks receive ctx.
func NewDispatcher(ctx context.Context, workers int, logger zerolog.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{
		ctx:    ctx,
		logger: logger,
	}
	d.group.SetLimit(workers)
	return d
}

// TryDispatch starts task if a worker is free. It reports false when all
// workers are busy. Task errors are logged and never stop other tasks.
func (d *Dispatcher) TryDispatch(task func(ctx context.Context) error) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return false, ErrDispatcherClosed
	}

	started := d.group.TryGo(func() error {
		if err := task(d.ctx); err != nil {
			d.logger.Error().Err(err).Msg("Command failed")
		}
		return nil
	})
	return started, nil
}

// Close stops accepting tasks and waits for running ones to finish.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	return d.group.Wait()
}
