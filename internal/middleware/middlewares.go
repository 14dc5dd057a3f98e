// Package middleware holds the global and route-specific echo middleware.
//
// These intercept requests to handle cross-cutting concerns such as request
// ids, request-scoped logging, CORS, New Relic tracing, the JSON
// content-type guard, panic recovery and the global error handler.
package middleware

import (
	"github.com/deppfellow/accounts-service/internal/server"
)

// Middlewares groups every middleware component used by the router.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	ContentType     *ContentTypeMiddleware
}

// NewMiddlewares builds all middleware once. Tracing degrades to a no-op
// when New Relic is not configured.
func NewMiddlewares(s *server.Server) *Middlewares {
	nrApp := s.LoggerService.GetApplication()

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		ContentType:     NewContentTypeMiddleware(s, nrApp),
	}
}
