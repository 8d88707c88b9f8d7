package processor

import (
	"context"
	"strings"

	"lattice-cms.io/lattice/internal/domain"
)

// RemoveProcessor deletes an entity: load → beforeRemove → before event
// (vetoable) → delete → afterRemove → after event → audit → success
// carrying the deleted identifier. A delete failure is terminal for the
// request; it is never retried.
type RemoveProcessor[T any] struct {
	Runtime *Runtime
	Props   Properties
	Actor   string

	ObjectType         string
	RequiredPermission string
	LexTopics          []string
	NotFoundKey        string
	NotFoundCode       string
	// RemoveFailedKey is the lexicon key for delete failures. Defaults to
	// "remove_failed".
	RemoveFailedKey string

	BeforeEvent domain.EventName
	AfterEvent  domain.EventName

	Load func(ctx context.Context, id string) (*T, error)
	// BeforeRemove validates that the entity may be removed.
	BeforeRemove func(ctx context.Context, obj *T) error
	// Delete removes the row and any owned children.
	Delete func(ctx context.Context, obj *T) error
	// AfterRemove runs side effects after a successful delete.
	AfterRemove func(ctx context.Context, obj *T) error

	object *T
	id     string
}

// Permission implements Processor.
func (p *RemoveProcessor[T]) Permission() string { return p.RequiredPermission }

// Topics implements Processor.
func (p *RemoveProcessor[T]) Topics() []string { return p.LexTopics }

// Initialize resolves the primary key and loads the doomed entity.
func (p *RemoveProcessor[T]) Initialize(ctx context.Context) error {
	p.id = p.Props.String("id")
	if p.id == "" {
		return missingKeyError(p.Runtime)
	}
	obj, err := p.Load(ctx, p.id)
	if err != nil {
		return notFoundOr(p.Runtime, err, p.NotFoundKey, p.NotFoundCode)
	}
	p.object = obj
	return nil
}

// Process drives the removal pipeline.
func (p *RemoveProcessor[T]) Process(ctx context.Context) *Response {
	failKey := p.RemoveFailedKey
	if failKey == "" {
		failKey = "remove_failed"
	}

	if p.BeforeRemove != nil {
		if err := p.BeforeRemove(ctx, p.object); err != nil {
			return p.Runtime.failureFrom(err, failKey)
		}
	}

	if vetoes := p.Runtime.dispatch(ctx, p.BeforeEvent, p.ObjectType, p.id, p.Actor, nil); len(vetoes) > 0 {
		return Failure(strings.Join(vetoes, "\n"))
	}

	if err := p.Delete(ctx, p.object); err != nil {
		return p.Runtime.failureFrom(err, failKey)
	}

	if p.AfterRemove != nil {
		if err := p.AfterRemove(ctx, p.object); err != nil {
			return p.Runtime.failureFrom(err, failKey)
		}
	}

	p.Runtime.dispatch(ctx, p.AfterEvent, p.ObjectType, p.id, p.Actor, nil)
	p.Runtime.logAudit(ctx, p.ObjectType+".remove", p.ObjectType, p.id, p.Actor, nil)

	return OK(map[string]interface{}{"id": p.id})
}

// Run drives the processor through the shared lifecycle.
func (p *RemoveProcessor[T]) Run(ctx context.Context) *Response {
	return Run(ctx, p.Runtime, p)
}
