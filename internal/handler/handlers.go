// Package handler is the HTTP layer behind the router.
//
// It binds and validates requests through the validation package, calls the
// service layer, and writes the response.
package handler

import (
	"io/fs"

	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/deppfellow/accounts-service/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Accounts *AccountHandler
	Health   *HealthHandler
	Root     *RootHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services, assets fs.FS) *Handlers {
	return &Handlers{
		Accounts: NewAccountHandler(s, services.Accounts),
		Health:   NewHealthHandler(s),
		Root:     NewRootHandler(s),
		OpenAPI:  NewOpenAPIHandler(s, assets),
	}
}
