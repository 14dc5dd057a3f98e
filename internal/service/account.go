package service

import (
	"context"
	"errors"

	"github.com/deppfellow/accounts-service/internal/model"
	"github.com/deppfellow/accounts-service/internal/repository"
	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/rs/zerolog"
)

// AccountRepository is the storage the account service needs. Both
// repository.AccountRepository and repository.MemoryAccountRepository
// satisfy it.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, id int64) (*model.Account, error)
	ListAll(ctx context.Context) ([]model.Account, error)
	Update(ctx context.Context, id int64, payload *model.UpdateAccountPayload) (*model.Account, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type AccountService struct {
	server *server.Server
	repo   AccountRepository
}

func NewAccountService(s *server.Server, repo AccountRepository) *AccountService {
	return &AccountService{
		server: s,
		repo:   repo,
	}
}

func (s *AccountService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.server.Logger
}

// CreateAccount persists a new account built from payload.
func (s *AccountService) CreateAccount(ctx context.Context, payload *model.CreateAccountPayload) (*model.Account, error) {
	log := s.logger(ctx)
	log.Info().Msg("Request to create an Account")

	account := payload.Account()
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	log.Info().Int64("account_id", account.ID).Msg("Account created")
	return account, nil
}

// ListAccounts returns all accounts; an empty store yields an empty slice.
func (s *AccountService) ListAccounts(ctx context.Context) ([]model.Account, error) {
	log := s.logger(ctx)
	log.Info().Msg("Request to list Accounts")

	accounts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().Int("count", len(accounts)).Msg("Returning accounts")
	return accounts, nil
}

// GetAccount returns repository.ErrAccountNotFound for unknown ids.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	s.logger(ctx).Info().Int64("account_id", id).Msg("Request to read an Account")

	return s.repo.FindByID(ctx, id)
}

// UpdateAccount overwrites the updatable fields. Email is kept as stored.
func (s *AccountService) UpdateAccount(ctx context.Context, payload *model.UpdateAccountPayload) (*model.Account, error) {
	log := s.logger(ctx)
	log.Info().Int64("account_id", payload.ID).Msg("Request to update an Account")

	account, err := s.repo.Update(ctx, payload.ID, payload)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("account_id", account.ID).Msg("Account updated")
	return account, nil
}

// DeleteAccount removes the account if it exists. A missing account is not
// an error.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	log := s.logger(ctx)
	log.Info().Int64("account_id", id).Msg("Request to delete an Account")

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return err
	}

	if deleted {
		log.Info().Int64("account_id", id).Msg("Account deleted")
	}
	return nil
}
