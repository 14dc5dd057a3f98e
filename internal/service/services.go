// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// payloads from the handler, performs the account operations, and calls
// repository methods to read and write data.
package service

import (
	"github.com/deppfellow/accounts-service/internal/repository"
	"github.com/deppfellow/accounts-service/internal/server"
)

type Services struct {
	Accounts *AccountService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Accounts: NewAccountService(s, repos.Accounts),
	}
}
