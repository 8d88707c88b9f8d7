package processor

import (
	"context"

	"lattice-cms.io/lattice/internal/domain"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

// UpdateProcessor loads an existing entity by primary key and drives it
// through the same save pipeline as create.
type UpdateProcessor[T any] struct {
	Runtime *Runtime
	Props   Properties
	Actor   string

	ObjectType         string
	RequiredPermission string
	LexTopics          []string
	NotFoundKey        string
	NotFoundCode       string

	BeforeEvent domain.EventName
	AfterEvent  domain.EventName

	// Load fetches the entity under update.
	Load func(ctx context.Context, id string) (*T, error)
	// BeforeSet validates preconditions with the loaded entity available.
	BeforeSet func(ctx context.Context, obj *T) error
	// Set binds the request properties onto the update builder.
	Set func(ctx context.Context, obj *T) error
	BeforeSave func(ctx context.Context) error
	Validate   func(ctx context.Context) []apperrors.FieldError
	// Save persists the update and returns the stored row.
	Save      func(ctx context.Context) (*T, error)
	AfterSave func(ctx context.Context, obj *T) error
	Project   func(*T) interface{}

	object *T
	id     string
}

// Permission implements Processor.
func (p *UpdateProcessor[T]) Permission() string { return p.RequiredPermission }

// Topics implements Processor.
func (p *UpdateProcessor[T]) Topics() []string { return p.LexTopics }

// Initialize loads the target entity and binds the request properties.
func (p *UpdateProcessor[T]) Initialize(ctx context.Context) error {
	p.id = p.Props.String("id")
	if p.id == "" {
		return missingKeyError(p.Runtime)
	}

	obj, err := p.Load(ctx, p.id)
	if err != nil {
		return notFoundOr(p.Runtime, err, p.NotFoundKey, p.NotFoundCode)
	}
	p.object = obj

	if p.BeforeSet != nil {
		if err := p.BeforeSet(ctx, obj); err != nil {
			return err
		}
	}
	if p.Set != nil {
		return p.Set(ctx, obj)
	}
	return nil
}

// Process drives the save pipeline against the loaded entity.
func (p *UpdateProcessor[T]) Process(ctx context.Context) *Response {
	return runSavePipeline(ctx, savePipeline[T]{
		rt:          p.Runtime,
		actor:       p.Actor,
		objectType:  p.ObjectType,
		objectID:    p.id,
		mode:        "update",
		action:      p.ObjectType + ".update",
		beforeEvent: p.BeforeEvent,
		afterEvent:  p.AfterEvent,
		beforeSave:  p.BeforeSave,
		validate:    p.Validate,
		save:        p.Save,
		afterSave:   p.AfterSave,
		project:     p.Project,
		failKey:     "save_failed",
	})
}

// Run drives the processor through the shared lifecycle.
func (p *UpdateProcessor[T]) Run(ctx context.Context) *Response {
	return Run(ctx, p.Runtime, p)
}

// Object returns the loaded entity after a successful Initialize.
func (p *UpdateProcessor[T]) Object() *T { return p.object }
