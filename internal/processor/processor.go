// Package processor implements the request-handler lifecycle that all
// manager CRUD operations run through.
//
// A processor advances created → permission-checked → initialized →
// processed → responded, terminating at the first failing gate with a
// localized general error. Entity-specific persistence is supplied as hook
// closures over the typed ent builders; the generic bases in this package
// own ordering, veto handling, validation merging, audit and response
// shaping.
package processor

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"lattice-cms.io/lattice/internal/audit"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/lexicon"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

// Policy evaluates flat permission strings for the current request actor.
type Policy interface {
	Can(ctx context.Context, permission string) bool
}

// Runtime bundles the shared services every processor needs.
type Runtime struct {
	Lexicon *lexicon.Lexicon
	Events  *domain.Dispatcher
	Audit   *audit.Logger
	Policy  Policy
}

// Processor is the lifecycle contract implemented by the CRUD bases.
type Processor interface {
	// Permission returns the permission string gating the processor, or ""
	// for no gate.
	Permission() string

	// Topics returns the lexicon topics to load before initialization.
	Topics() []string

	// Initialize loads or constructs the target entity and validates
	// preconditions. A returned error short-circuits to a failure response.
	Initialize(ctx context.Context) error

	// Process performs the entity-specific operation.
	Process(ctx context.Context) *Response
}

// Run drives a processor through its lifecycle gates.
func Run(ctx context.Context, rt *Runtime, p Processor) *Response {
	if perm := p.Permission(); perm != "" {
		if rt.Policy == nil || !rt.Policy.Can(ctx, perm) {
			resp := Failure(rt.Lexicon.Get("permission_denied"))
			resp.Status = http.StatusForbidden
			return resp
		}
	}

	if topics := p.Topics(); len(topics) > 0 {
		if err := rt.Lexicon.Load(topics...); err != nil {
			logger.Error("Failed to load lexicon topics", zap.Error(err))
			return Failure(rt.Lexicon.Get("internal_error"))
		}
	}

	if err := p.Initialize(ctx); err != nil {
		return rt.failureFrom(err, "internal_error")
	}

	return p.Process(ctx)
}

// failureFrom shapes an error into a failure response, preferring the
// localized message carried by an AppError over the fallback lexicon key.
func (rt *Runtime) failureFrom(err error, fallbackKey string) *Response {
	if appErr, ok := apperrors.IsAppError(err); ok {
		if appErr.Err != nil {
			logger.Error("Processor failed", zap.Error(err))
		}
		resp := Failure(appErr.Message)
		resp.Errors = appErr.FieldErrors
		return resp
	}
	logger.Error("Processor failed", zap.Error(err))
	return Failure(rt.Lexicon.Get(fallbackKey))
}

// logAudit writes an audit record best-effort. The operation already
// succeeded by the time the record is written, so failures only log.
func (rt *Runtime) logAudit(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) {
	if rt.Audit == nil {
		return
	}
	if err := rt.Audit.LogAction(ctx, action, resourceType, resourceID, actor, details); err != nil {
		logger.Warn("Failed to write audit record",
			zap.String("action", action),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
	}
}

// missingKeyError is the failure for object-bound processors invoked
// without a primary key property.
func missingKeyError(rt *Runtime) error {
	return apperrors.BadRequest(apperrors.CodeMissingKey, rt.Lexicon.Get("missing_primary_key"))
}

// notFoundOr localizes a load miss. AppErrors pass through untouched; plain
// errors wrapping ErrNotFound become a localized not-found failure carrying
// the entity-specific code.
func notFoundOr(rt *Runtime, err error, key, code string) error {
	if _, ok := apperrors.IsAppError(err); ok {
		return err
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		if key == "" {
			key = "not_found"
		}
		if code == "" {
			code = apperrors.CodeNotFound
		}
		return apperrors.NotFound(code, rt.Lexicon.Get(key))
	}
	return err
}

// dispatch fires a lifecycle event and returns collected veto messages.
func (rt *Runtime) dispatch(ctx context.Context, name domain.EventName, objectType, objectID, actor string, data map[string]interface{}) []string {
	if rt.Events == nil || name == "" {
		return nil
	}
	return rt.Events.Dispatch(ctx, domain.NewEvent(name, objectType, objectID, actor, data))
}
