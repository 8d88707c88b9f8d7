package processor

import (
	"context"
	"strings"

	"lattice-cms.io/lattice/internal/domain"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

// CreateProcessor persists a new entity through the shared save pipeline:
// beforeSet → bind request fields → beforeSave → validate → before event
// (vetoable) → persist → afterSave → after event → audit → projection.
type CreateProcessor[T any] struct {
	Runtime *Runtime
	Props   Properties
	Actor   string

	// ObjectType names the entity for events and audit, e.g. "property_set".
	ObjectType string
	// ID is the pre-generated primary key of the pending entity.
	ID string

	RequiredPermission string
	LexTopics          []string

	BeforeEvent domain.EventName
	AfterEvent  domain.EventName

	// BeforeSet validates preconditions before any binding happens.
	BeforeSet func(ctx context.Context) error
	// Set binds the request properties onto the pending entity builder.
	Set func(ctx context.Context) error
	// BeforeSave runs after binding, before validation.
	BeforeSave func(ctx context.Context) error
	// Validate returns field-keyed validation messages; a non-empty result
	// aborts persistence.
	Validate func(ctx context.Context) []apperrors.FieldError
	// Save persists the entity and returns the stored row.
	Save func(ctx context.Context) (*T, error)
	// AfterSave runs side effects after successful persistence.
	AfterSave func(ctx context.Context, obj *T) error
	// Project shapes the response payload; nil returns the entity.
	Project func(*T) interface{}

	saveFailedKey string
}

// Permission implements Processor.
func (p *CreateProcessor[T]) Permission() string { return p.RequiredPermission }

// Topics implements Processor.
func (p *CreateProcessor[T]) Topics() []string { return p.LexTopics }

// Initialize runs precondition checks and binds the request properties.
func (p *CreateProcessor[T]) Initialize(ctx context.Context) error {
	if p.saveFailedKey == "" {
		p.saveFailedKey = "save_failed"
	}
	if p.BeforeSet != nil {
		if err := p.BeforeSet(ctx); err != nil {
			return err
		}
	}
	if p.Set != nil {
		return p.Set(ctx)
	}
	return nil
}

// Process drives the save pipeline.
func (p *CreateProcessor[T]) Process(ctx context.Context) *Response {
	return runSavePipeline(ctx, savePipeline[T]{
		rt:          p.Runtime,
		actor:       p.Actor,
		objectType:  p.ObjectType,
		objectID:    p.ID,
		mode:        "new",
		action:      p.ObjectType + ".create",
		beforeEvent: p.BeforeEvent,
		afterEvent:  p.AfterEvent,
		beforeSave:  p.BeforeSave,
		validate:    p.Validate,
		save:        p.Save,
		afterSave:   p.AfterSave,
		project:     p.Project,
		failKey:     p.saveFailedKey,
	})
}

// Run drives the processor through the shared lifecycle.
func (p *CreateProcessor[T]) Run(ctx context.Context) *Response {
	return Run(ctx, p.Runtime, p)
}

// savePipeline is the pipeline shared by create and update.
type savePipeline[T any] struct {
	rt          *Runtime
	actor       string
	objectType  string
	objectID    string
	mode        string // "new" or "update"
	action      string
	beforeEvent domain.EventName
	afterEvent  domain.EventName
	beforeSave  func(ctx context.Context) error
	validate    func(ctx context.Context) []apperrors.FieldError
	save        func(ctx context.Context) (*T, error)
	afterSave   func(ctx context.Context, obj *T) error
	project     func(*T) interface{}
	failKey     string
}

func runSavePipeline[T any](ctx context.Context, sp savePipeline[T]) *Response {
	if sp.beforeSave != nil {
		if err := sp.beforeSave(ctx); err != nil {
			return sp.rt.failureFrom(err, sp.failKey)
		}
	}

	if sp.validate != nil {
		if errs := sp.validate(ctx); len(errs) > 0 {
			return FieldFailure(sp.rt.Lexicon.Get("validation_failed"), errs)
		}
	}

	eventData := map[string]interface{}{"mode": sp.mode}
	if vetoes := sp.rt.dispatch(ctx, sp.beforeEvent, sp.objectType, sp.objectID, sp.actor, eventData); len(vetoes) > 0 {
		return Failure(strings.Join(vetoes, "\n"))
	}

	obj, err := sp.save(ctx)
	if err != nil {
		return sp.rt.failureFrom(err, sp.failKey)
	}

	if sp.afterSave != nil {
		if err := sp.afterSave(ctx, obj); err != nil {
			return sp.rt.failureFrom(err, sp.failKey)
		}
	}

	sp.rt.dispatch(ctx, sp.afterEvent, sp.objectType, sp.objectID, sp.actor, eventData)
	sp.rt.logAudit(ctx, sp.action, sp.objectType, sp.objectID, sp.actor, nil)

	if sp.project != nil {
		return OK(sp.project(obj))
	}
	return OK(obj)
}
