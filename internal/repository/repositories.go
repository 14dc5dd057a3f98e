// Package repository handles all interactions with the database.
//
// It contains the SQL for accounts and the methods that run it, keeping
// query logic out of the service layer.
package repository

import (
	"github.com/deppfellow/accounts-service/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Accounts *AccountRepository
}

// NewRepositories builds the repositories on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(s.DB.Pool),
	}
}
