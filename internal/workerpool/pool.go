// Package workerpool provides the shared worker-task pool owned by the
// application context. It is a thin wrapper over an ants pool; callers that
// need results use Run, which blocks until every task has finished.
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// ErrPoolClosed is returned when submitting to a released pool.
var ErrPoolClosed = ants.ErrPoolClosed

// Pool runs tasks on a bounded set of goroutines.
type Pool struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// printfLogger adapts slog to the ants logger interface.
type printfLogger struct {
	logger *slog.Logger
}

func (l printfLogger) Printf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// New creates a pool with the given number of workers.
func New(size int, logger *slog.Logger) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("worker pool size must be at least 1, got %d", size)
	}

	logger = logger.With("component", "workerpool")
	pool, err := ants.NewPool(size,
		ants.WithLogger(printfLogger{logger: logger}),
		ants.WithPanicHandler(func(r any) {
			logger.Error("worker task panicked", "panic", r)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return &Pool{pool: pool, logger: logger}, nil
}

// Submit queues task. It blocks while every worker is busy.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.pool.Submit(task)
}

// Run executes tasks concurrently and waits for all of them. Errors and
// panics from individual tasks are joined into the returned error.
func (p *Pool) Run(ctx context.Context, tasks ...func() error) error {
	errs := make([]error, len(tasks))
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		err := p.Submit(ctx, func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("task %d panicked: %v", i, r)
				}
			}()
			errs[i] = task()
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Running returns the number of busy workers.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return p.pool.Cap()
}

// Release stops the pool. Further submissions fail with ErrPoolClosed.
func (p *Pool) Release() {
	p.pool.Release()
}
