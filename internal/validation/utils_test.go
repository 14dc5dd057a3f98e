package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/accounts-service/internal/errs"
	"github.com/deppfellow/accounts-service/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, params ...string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	c := echo.New().NewContext(req, httptest.NewRecorder())
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	return c
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	c := newContext(http.MethodPut, "/accounts/7",
		`{"name":"Joe","email":"joe@x.com","address":"1 Main St","date_joined":"2024-01-01"}`,
		"id", "7")

	var payload model.UpdateAccountPayload
	require.NoError(t, BindAndValidate(c, &payload))

	assert.Equal(t, int64(7), payload.ID)
	assert.Equal(t, "Joe", payload.Name)
	assert.Equal(t, "2024-01-01", payload.DateJoined.String())
}

func TestBindAndValidate_MissingFields(t *testing.T) {
	c := newContext(http.MethodPost, "/accounts", `{"name":"not enough data"}`)

	err := BindAndValidate(c, &model.CreateAccountPayload{})
	httpErr := requireHTTPError(t, err)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "email", Error: "is required"},
		{Field: "address", Error: "is required"},
	}, httpErr.Errors)
}

func TestBindAndValidate_WrongType(t *testing.T) {
	c := newContext(http.MethodPost, "/accounts", `{"name":42,"email":"joe@x.com","address":"1 Main St"}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &model.CreateAccountPayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Contains(t, httpErr.Message, "name")
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, "/accounts", `{"name":`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &model.CreateAccountPayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidate_BadDate(t *testing.T) {
	c := newContext(http.MethodPost, "/accounts", `{"name":"Joe","email":"joe@x.com","address":"1 Main St","date_joined":"yesterday"}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &model.CreateAccountPayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidate_NonNumericID(t *testing.T) {
	c := newContext(http.MethodGet, "/accounts/abc", "", "id", "abc")

	httpErr := requireHTTPError(t, BindAndValidate(c, &model.GetAccountPayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidate_TooLong(t *testing.T) {
	c := newContext(http.MethodPost, "/accounts",
		`{"name":"`+strings.Repeat("x", 65)+`","email":"joe@x.com","address":"1 Main St"}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &model.CreateAccountPayload{}))
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "must not exceed 64 characters"}}, httpErr.Errors)
}

type customPayload struct{}

func (customPayload) Validate() error {
	return CustomValidationErrors{{Field: "email", Message: "is taken"}}
}

func TestExtractValidationError_Custom(t *testing.T) {
	msg, fieldErrors := validateStruct(customPayload{})

	assert.Equal(t, "Validation failed", msg)
	assert.Equal(t, []errs.FieldError{{Field: "email", Error: "is taken"}}, fieldErrors)
}
