package processor

import (
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

// Kind classifies a Response by the presence of a general message and/or
// field-scoped errors.
type Kind int

const (
	KindSuccess Kind = iota
	KindGeneralError
	KindFieldError
	KindBoth
)

// Response is the uniform processor result envelope. It is constructed once
// by the processor pipeline and not mutated afterwards.
type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Object  interface{}            `json:"object,omitempty"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`

	// Status is an HTTP status hint for transports that map failures onto
	// status codes instead of the envelope. Zero means unclassified.
	Status int `json:"-"`
}

// ListResult is the envelope returned by list processors.
// Total is the pre-filter match count; Results carries the page rows that
// survived the per-row policy filter, so the two can legitimately disagree.
type ListResult struct {
	Total   int           `json:"total"`
	Results []interface{} `json:"results"`
}

// OK creates a success response carrying the given payload.
func OK(object interface{}) *Response {
	return &Response{Success: true, Object: object}
}

// Failure creates a general error response.
func Failure(message string) *Response {
	return &Response{Success: false, Message: message}
}

// FieldFailure creates a validation failure with field-scoped errors.
func FieldFailure(message string, errs []apperrors.FieldError) *Response {
	return &Response{Success: false, Message: message, Errors: errs}
}

// Kind classifies the response.
func (r *Response) Kind() Kind {
	if r.Success {
		return KindSuccess
	}
	switch {
	case r.Message != "" && len(r.Errors) > 0:
		return KindBoth
	case len(r.Errors) > 0:
		return KindFieldError
	default:
		return KindGeneralError
	}
}

// FieldError returns the error recorded for the given field, if any.
func (r *Response) FieldError(field string) (apperrors.FieldError, bool) {
	for _, fe := range r.Errors {
		if fe.Field == field {
			return fe, true
		}
	}
	return apperrors.FieldError{}, false
}

// Err converts a failed response into an AppError for transport layers.
// Returns nil on success.
func (r *Response) Err() *apperrors.AppError {
	if r.Success {
		return nil
	}
	code := apperrors.CodeValidationFailed
	if r.Kind() == KindGeneralError {
		code = apperrors.CodeInternalError
	}
	return apperrors.BadRequest(code, r.Message).WithFieldErrors(r.Errors)
}
