package processor

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

func TestResponseKindClassification(t *testing.T) {
	fieldErrs := []apperrors.FieldError{{Field: "name", Message: "required"}}

	cases := []struct {
		name string
		resp *Response
		want Kind
	}{
		{"success", OK(map[string]string{"id": "x"}), KindSuccess},
		{"general error", Failure("boom"), KindGeneralError},
		{"field error only", &Response{Errors: fieldErrs}, KindFieldError},
		{"both", FieldFailure("validation failed", fieldErrs), KindBoth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.resp.Kind())
		})
	}
}

func TestResponseFieldError(t *testing.T) {
	resp := FieldFailure("validation failed", []apperrors.FieldError{
		{Field: "name", Code: apperrors.CodeValidationFailed, Message: "required"},
		{Field: "category", Message: "unknown"},
	})

	fe, ok := resp.FieldError("category")
	require.True(t, ok)
	require.Equal(t, "unknown", fe.Message)

	_, ok = resp.FieldError("description")
	require.False(t, ok)
}

func TestResponseErr(t *testing.T) {
	require.Nil(t, OK(nil).Err())

	appErr := Failure("broken").Err()
	require.NotNil(t, appErr)
	require.Equal(t, apperrors.CodeInternalError, appErr.Code)
	require.Equal(t, "broken", appErr.Message)

	fieldErr := FieldFailure("invalid", []apperrors.FieldError{{Field: "name"}}).Err()
	require.NotNil(t, fieldErr)
	require.Equal(t, apperrors.CodeValidationFailed, fieldErr.Code)
	require.Len(t, fieldErr.FieldErrors, 1)
}
