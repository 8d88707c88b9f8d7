package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorMessageAndUnwrap(t *testing.T) {
	base := errors.New("connection refused")
	appErr := Wrap(base, CodeInternalError, "database unavailable", http.StatusInternalServerError)

	require.Contains(t, appErr.Error(), CodeInternalError)
	require.Contains(t, appErr.Error(), "database unavailable")
	require.ErrorIs(t, appErr, base)
}

func TestConstructorsSetHTTPStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NotFound(CodePropertySetNotFound, "missing"), http.StatusNotFound},
		{BadRequest(CodeValidationFailed, "bad"), http.StatusBadRequest},
		{Unauthorized(CodeAuthFailed, "nope"), http.StatusUnauthorized},
		{Forbidden(CodePermissionDenied, "denied"), http.StatusForbidden},
		{Conflict(CodePropertySetExists, "taken"), http.StatusConflict},
		{Internal(CodeInternalError, "boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.status, tc.err.HTTPStatus, tc.err.Code)
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound(CodeNotFound, "missing")

	got, ok := IsAppError(fmt.Errorf("outer: %w", appErr))
	require.True(t, ok)
	require.Equal(t, CodeNotFound, got.Code)

	_, ok = IsAppError(errors.New("plain"))
	require.False(t, ok)
}

func TestWithFieldErrors(t *testing.T) {
	appErr := BadRequest(CodeValidationFailed, "invalid").
		WithFieldErrors([]FieldError{{Field: "name", Message: "required"}})
	require.Len(t, appErr.FieldErrors, 1)

	unchanged := BadRequest(CodeValidationFailed, "invalid").WithFieldErrors(nil)
	require.Empty(t, unchanged.FieldErrors)
}
