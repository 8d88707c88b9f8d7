// Package worker provides goroutine pool management.
//
// Naked goroutines are forbidden outside cmd/. All background concurrency
// goes through a Pool so panics are recovered and shutdown is bounded.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/internal/pkg/logger"
)

// ErrPoolClosed is returned when submitting to a closed pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a context-aware task function.
type Task func(ctx context.Context)

// Pool wraps ants.Pool with context-aware submission.
type Pool struct {
	pool *ants.Pool
	name string
}

// Pools is the worker pool collection.
type Pools struct {
	// General serves request-scoped background work.
	General *Pool
	// Events serves fire-and-forget lifecycle event handlers.
	Events *Pool

	// serviceCtx is the service lifecycle context for detached tasks.
	serviceCtx    context.Context
	serviceCancel context.CancelFunc
}

// PoolConfig contains worker pool sizes.
type PoolConfig struct {
	GeneralPoolSize int
	EventPoolSize   int
}

// DefaultPoolConfig returns default configuration.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		GeneralPoolSize: 100,
		EventPoolSize:   25,
	}
}

// NewPools creates the worker pool collection.
func NewPools(ctx context.Context, cfg PoolConfig) (*Pools, error) {
	serviceCtx, serviceCancel := context.WithCancel(ctx)

	panicHandler := func(p interface{}) {
		logger.Error("Worker panic recovered",
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}

	newPool := func(name string, size int, expiry time.Duration) (*Pool, error) {
		p, err := ants.NewPool(size,
			ants.WithPanicHandler(panicHandler),
			ants.WithNonblocking(false),
			ants.WithExpiryDuration(expiry),
		)
		if err != nil {
			return nil, err
		}
		return &Pool{pool: p, name: name}, nil
	}

	general, err := newPool("general", cfg.GeneralPoolSize, 10*time.Second)
	if err != nil {
		serviceCancel()
		return nil, err
	}
	events, err := newPool("events", cfg.EventPoolSize, 10*time.Second)
	if err != nil {
		general.pool.Release()
		serviceCancel()
		return nil, err
	}

	return &Pools{
		General:       general,
		Events:        events,
		serviceCtx:    serviceCtx,
		serviceCancel: serviceCancel,
	}, nil
}

// Submit submits a context-aware task.
// If the context is already cancelled, returns ctx.Err() without submitting.
// Tasks queued behind a full pool re-check the context before running.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return p.pool.Submit(func() {
		select {
		case <-ctx.Done():
			logger.Debug("Task skipped: context cancelled",
				zap.String("pool", p.name),
				zap.Error(ctx.Err()),
			)
			return
		default:
		}
		task(ctx)
	})
}

// SubmitDetached submits a task bound to the service lifecycle context
// instead of a request context. Use for background work that should survive
// request cancellation but still respect graceful shutdown.
func (p *Pools) SubmitDetached(task Task) error {
	return p.Events.pool.Submit(func() {
		select {
		case <-p.serviceCtx.Done():
			logger.Debug("Detached task skipped: service shutting down")
			return
		default:
		}
		task(p.serviceCtx)
	})
}

// Shutdown cancels the service context and waits for running tasks (max 30s).
func (p *Pools) Shutdown() {
	p.serviceCancel()

	const shutdownTimeout = 30 * time.Second
	if err := p.General.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("General pool shutdown timeout", zap.Error(err))
	}
	if err := p.Events.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("Event pool shutdown timeout", zap.Error(err))
	}
}

// Metrics returns pool occupancy for observability.
func (p *Pools) Metrics() map[string]interface{} {
	stats := func(pool *Pool) map[string]int {
		return map[string]int{
			"running": pool.pool.Running(),
			"free":    pool.pool.Free(),
			"cap":     pool.pool.Cap(),
		}
	}
	return map[string]interface{}{
		"general": stats(p.General),
		"events":  stats(p.Events),
	}
}
