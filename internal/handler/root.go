package handler

import (
	"net/http"

	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	serviceTitle   = "Account REST API Service"
	serviceVersion = "1.0"
)

type ServiceInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

// Index describes the service.
func (h *RootHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, ServiceInfo{
		Name:    serviceTitle,
		Version: serviceVersion,
	})
}
