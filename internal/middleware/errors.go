package middleware

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/accounts-service/internal/errs"
	"github.com/deppfellow/accounts-service/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// toHTTPError normalizes err into the response error shape.
func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return fromEchoError(echoErr)
	}

	if errors.As(sqlerr.HandleError(err), &httpErr) {
		return httpErr
	}
	return errs.NewInternalServerError()
}

func fromEchoError(echoErr *echo.HTTPError) *errs.HTTPError {
	status := echoErr.Code

	switch status {
	case http.StatusNotFound:
		return errs.NewNotFoundError("Route not found", nil)
	case http.StatusMethodNotAllowed:
		return errs.NewMethodNotAllowedError("Method not allowed")
	}

	message := http.StatusText(status)
	switch msg := echoErr.Message.(type) {
	case string:
		message = msg
	case error:
		message = msg.Error()
	case nil:
	default:
		message = fmt.Sprint(msg)
	}

	if status >= http.StatusInternalServerError {
		return errs.NewInternalServerError()
	}

	return &errs.HTTPError{
		Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}
