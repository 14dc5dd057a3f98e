package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnsupportedMediaType)))
}

func TestConstructors(t *testing.T) {
	custom := "DUPLICATE_EMAIL"

	tests := []struct {
		name       string
		err        *HTTPError
		wantCode   string
		wantStatus int
	}{
		{name: "bad request", err: NewBadRequestError("bad", nil, nil), wantCode: "BAD_REQUEST", wantStatus: 400},
		{name: "bad request custom code", err: NewBadRequestError("bad", &custom, nil), wantCode: custom, wantStatus: 400},
		{name: "not found", err: NewNotFoundError("Account not found", nil), wantCode: "NOT_FOUND", wantStatus: 404},
		{name: "method not allowed", err: NewMethodNotAllowedError("nope"), wantCode: "METHOD_NOT_ALLOWED", wantStatus: 405},
		{name: "unsupported media type", err: NewUnsupportedMediaTypeError("json only"), wantCode: "UNSUPPORTED_MEDIA_TYPE", wantStatus: 415},
		{name: "internal", err: NewInternalServerError(), wantCode: "INTERNAL_SERVER_ERROR", wantStatus: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
		})
	}
}

func TestHTTPError_JSONShape(t *testing.T) {
	body, err := json.Marshal(NewNotFoundError("Account not found", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"NOT_FOUND","error":"Account not found","status":404}`, string(body))

	body, err = json.Marshal(NewBadRequestError("Validation failed", nil, []FieldError{{Field: "email", Error: "is required"}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"BAD_REQUEST","error":"Validation failed","status":400,"errors":[{"field":"email","error":"is required"}]}`, string(body))
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("missing", nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHTTPError_WithMessage(t *testing.T) {
	original := NewNotFoundError("missing", nil)
	changed := original.WithMessage("Account not found")

	assert.Equal(t, "missing", original.Message)
	assert.Equal(t, "Account not found", changed.Message)
	assert.Equal(t, original.Code, changed.Code)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("name is required"))
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: name is required", err.Message)
}
