package processor

import (
	"context"

	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

// DuplicateProcessor clones an entity: load source → derive the new name →
// synchronous existence check → construct and persist the pre-populated
// copy → audit → projection.
//
// The existence check is not transactional with the insert; concurrent
// duplications can still race, with the storage unique index as backstop.
type DuplicateProcessor[T any] struct {
	Runtime *Runtime
	Props   Properties
	Actor   string

	ObjectType         string
	RequiredPermission string
	LexTopics          []string
	NotFoundKey        string
	NotFoundCode       string
	// NameTemplateKey is the lexicon key for the derived name template.
	// Defaults to "duplicate_of".
	NameTemplateKey string
	// NameTakenKey is the lexicon key for the uniqueness failure. Defaults
	// to "name_taken".
	NameTakenKey string

	Load func(ctx context.Context, id string) (*T, error)
	// NameOf extracts the display name from the source entity.
	NameOf func(*T) string
	// Exists reports whether an entity with the candidate name exists.
	Exists func(ctx context.Context, name string) (bool, error)
	// Copy constructs and persists the clone under the new name.
	Copy func(ctx context.Context, source *T, newName string) (*T, error)
	// ObjectID extracts the id of the persisted clone for audit.
	ObjectID func(*T) string
	Project  func(*T) interface{}

	source  *T
	newName string
}

// Permission implements Processor.
func (p *DuplicateProcessor[T]) Permission() string { return p.RequiredPermission }

// Topics implements Processor.
func (p *DuplicateProcessor[T]) Topics() []string { return p.LexTopics }

// Initialize loads the source entity and derives the new display name:
// the explicit "name" property wins, otherwise the localized template is
// applied to the source name.
func (p *DuplicateProcessor[T]) Initialize(ctx context.Context) error {
	id := p.Props.String("id")
	if id == "" {
		return missingKeyError(p.Runtime)
	}
	source, err := p.Load(ctx, id)
	if err != nil {
		return notFoundOr(p.Runtime, err, p.NotFoundKey, p.NotFoundCode)
	}
	p.source = source

	p.newName = p.Props.String("name")
	if p.newName == "" {
		key := p.NameTemplateKey
		if key == "" {
			key = "duplicate_of"
		}
		p.newName = p.Runtime.Lexicon.Format(key, map[string]string{
			"name": p.NameOf(source),
		})
	}
	return nil
}

// Process checks uniqueness, persists the clone and logs it.
func (p *DuplicateProcessor[T]) Process(ctx context.Context) *Response {
	takenKey := p.NameTakenKey
	if takenKey == "" {
		takenKey = "name_taken"
	}

	exists, err := p.Exists(ctx, p.newName)
	if err != nil {
		return p.Runtime.failureFrom(err, "duplicate_failed")
	}
	if exists {
		msg := p.Runtime.Lexicon.Format(takenKey, map[string]string{"name": p.newName})
		return FieldFailure(msg, []apperrors.FieldError{{
			Field:   "name",
			Code:    apperrors.CodeValidationFailed,
			Message: msg,
		}})
	}

	clone, err := p.Copy(ctx, p.source, p.newName)
	if err != nil {
		return p.Runtime.failureFrom(err, "duplicate_failed")
	}

	p.Runtime.logAudit(ctx, p.ObjectType+".duplicate", p.ObjectType, p.ObjectID(clone), p.Actor, map[string]interface{}{
		"source_id": p.Props.String("id"),
		"name":      p.newName,
	})

	if p.Project != nil {
		return OK(p.Project(clone))
	}
	return OK(clone)
}

// Run drives the processor through the shared lifecycle.
func (p *DuplicateProcessor[T]) Run(ctx context.Context) *Response {
	return Run(ctx, p.Runtime, p)
}

// NewName returns the derived name after a successful Initialize.
func (p *DuplicateProcessor[T]) NewName() string { return p.newName }
