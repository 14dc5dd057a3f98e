package handler

import (
	"strconv"

	"github.com/deppfellow/accounts-service/internal/model"
	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/deppfellow/accounts-service/internal/service"
	"github.com/labstack/echo/v4"
)

// RouteGetAccount names the GET /accounts/:id route so Location headers can
// be built with echo's Reverse.
const RouteGetAccount = "get_account"

type AccountHandler struct {
	Handler
	accountService *service.AccountService
}

func NewAccountHandler(s *server.Server, accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		Handler:        NewHandler(s),
		accountService: accountService,
	}
}

// CreateAccount answers 201 with the stored account and a Location header
// pointing at it.
func (h *AccountHandler) CreateAccount(c echo.Context, payload *model.CreateAccountPayload) (*model.Account, error) {
	account, err := h.accountService.CreateAccount(c.Request().Context(), payload)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(echo.HeaderLocation, accountLocation(c, account.ID))
	return account, nil
}

func (h *AccountHandler) ListAccounts(c echo.Context, _ *model.ListAccountsPayload) ([]model.Account, error) {
	return h.accountService.ListAccounts(c.Request().Context())
}

func (h *AccountHandler) GetAccount(c echo.Context, payload *model.GetAccountPayload) (*model.Account, error) {
	return h.accountService.GetAccount(c.Request().Context(), payload.ID)
}

func (h *AccountHandler) UpdateAccount(c echo.Context, payload *model.UpdateAccountPayload) (*model.Account, error) {
	return h.accountService.UpdateAccount(c.Request().Context(), payload)
}

func (h *AccountHandler) DeleteAccount(c echo.Context, payload *model.DeleteAccountPayload) error {
	return h.accountService.DeleteAccount(c.Request().Context(), payload.ID)
}

// accountLocation reverses the named read route, falling back to the plain
// path when the route is not registered under that name.
func accountLocation(c echo.Context, id int64) string {
	if location := c.Echo().Reverse(RouteGetAccount, id); location != "" {
		return location
	}
	return "/accounts/" + strconv.FormatInt(id, 10)
}
