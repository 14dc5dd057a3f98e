package middleware

import (
	"github.com/deppfellow/accounts-service/internal/errs"
	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ContentTypeMiddleware rejects request bodies that are not JSON.
type ContentTypeMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewContentTypeMiddleware(s *server.Server, nrApp *newrelic.Application) *ContentTypeMiddleware {
	return &ContentTypeMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// RequireJSON returns 415 unless the Content-Type header is exactly
// application/json. Parameters such as "; charset=utf-8" are rejected too.
// The body is not read.
func (m *ContentTypeMiddleware) RequireJSON() echo.MiddlewareFunc {
	return m.Require(echo.MIMEApplicationJSON)
}

// Require returns a guard for an arbitrary media type.
func (m *ContentTypeMiddleware) Require(mediaType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contentType := c.Request().Header.Get(echo.HeaderContentType)
			if contentType == mediaType {
				return next(c)
			}

			GetLogger(c).Warn().
				Str("content_type", contentType).
				Str("expected", mediaType).
				Msg("Invalid Content-Type")

			m.recordRejection(c.Path(), contentType)

			return errs.NewUnsupportedMediaTypeError("Content-Type must be " + mediaType)
		}
	}
}

// recordRejection emits a New Relic custom event for the rejected request.
func (m *ContentTypeMiddleware) recordRejection(route, contentType string) {
	if m.nrApp == nil {
		return
	}
	m.nrApp.RecordCustomEvent("UnsupportedMediaType", map[string]interface{}{
		"route":        route,
		"content_type": contentType,
	})
}
