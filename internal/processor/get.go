package processor

import (
	"context"
)

// GetProcessor loads a single entity by primary key and projects it into
// the response payload.
type GetProcessor[T any] struct {
	Runtime *Runtime
	Props   Properties

	// RequiredPermission gates the processor; empty means ungated.
	RequiredPermission string
	// LexTopics are loaded before initialization.
	LexTopics []string
	// NotFoundKey is the lexicon key used when Load misses. Defaults to
	// "not_found".
	NotFoundKey string
	// NotFoundCode is the error code attached to a Load miss. Defaults to
	// the generic not-found code.
	NotFoundCode string

	// Load fetches the entity. Implementations return an AppError carrying
	// a localized message for expected misses.
	Load func(ctx context.Context, id string) (*T, error)
	// Project shapes the payload; nil returns the entity as-is.
	Project func(*T) interface{}

	object *T
}

// Permission implements Processor.
func (p *GetProcessor[T]) Permission() string { return p.RequiredPermission }

// Topics implements Processor.
func (p *GetProcessor[T]) Topics() []string { return p.LexTopics }

// Initialize resolves the primary key property and loads the entity.
func (p *GetProcessor[T]) Initialize(ctx context.Context) error {
	id := p.Props.String("id")
	if id == "" {
		return missingKeyError(p.Runtime)
	}
	obj, err := p.Load(ctx, id)
	if err != nil {
		return notFoundOr(p.Runtime, err, p.NotFoundKey, p.NotFoundCode)
	}
	p.object = obj
	return nil
}

// Process projects the loaded entity into a success response.
func (p *GetProcessor[T]) Process(ctx context.Context) *Response {
	if p.Project != nil {
		return OK(p.Project(p.object))
	}
	return OK(p.object)
}

// Run drives the processor through the shared lifecycle.
func (p *GetProcessor[T]) Run(ctx context.Context) *Response {
	return Run(ctx, p.Runtime, p)
}

// Object returns the loaded entity after a successful Initialize.
func (p *GetProcessor[T]) Object() *T { return p.object }
