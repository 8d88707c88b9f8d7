package domain

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"lattice-cms.io/lattice/internal/pkg/logger"
)

// Handler processes a lifecycle event. A non-empty veto string rejects the
// triggering operation; only handlers of "before" events can veto. A handler
// error is logged and never blocks the operation.
type Handler func(ctx context.Context, event *Event) (veto string, err error)

// AsyncSubmitter schedules a function on a background worker.
// Matches worker.Pools.SubmitDetached.
type AsyncSubmitter func(task func(ctx context.Context)) error

// Dispatcher routes lifecycle events to registered handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[EventName][]Handler
	async    map[EventName][]Handler
	submit   AsyncSubmitter
}

// NewDispatcher creates a Dispatcher. submit may be nil, in which case async
// handlers run inline.
func NewDispatcher(submit AsyncSubmitter) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[EventName][]Handler),
		async:    make(map[EventName][]Handler),
		submit:   submit,
	}
}

// Register registers a synchronous handler for an event.
func (d *Dispatcher) Register(name EventName, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], h)
}

// RegisterAsync registers a fire-and-forget handler executed on the worker
// pool. Async handlers cannot veto; their veto return is ignored.
func (d *Dispatcher) RegisterAsync(name EventName, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.async[name] = append(d.async[name], h)
}

// Dispatch delivers the event to all synchronous handlers in registration
// order and schedules async handlers. It returns the collected non-empty
// veto messages; handler errors are logged best-effort and do not veto.
func (d *Dispatcher) Dispatch(ctx context.Context, event *Event) []string {
	d.mu.RLock()
	sync := d.handlers[event.Name]
	async := d.async[event.Name]
	d.mu.RUnlock()

	var vetoes []string
	for _, h := range sync {
		veto, err := h(ctx, event)
		if err != nil {
			logger.Error("Event handler failed",
				zap.String("event", string(event.Name)),
				zap.String("object_id", event.ObjectID),
				zap.Error(err),
			)
			continue
		}
		if veto != "" {
			vetoes = append(vetoes, veto)
		}
	}

	for _, h := range async {
		h := h
		run := func(ctx context.Context) {
			if _, err := h(ctx, event); err != nil {
				logger.Error("Async event handler failed",
					zap.String("event", string(event.Name)),
					zap.String("object_id", event.ObjectID),
					zap.Error(err),
				)
			}
		}
		if d.submit == nil {
			run(ctx)
			continue
		}
		if err := d.submit(run); err != nil {
			logger.Warn("Failed to schedule async event handler",
				zap.String("event", string(event.Name)),
				zap.Error(err),
			)
		}
	}

	return vetoes
}
