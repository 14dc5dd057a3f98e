package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/deppfellow/accounts-service/internal/model"
)

// MemoryAccountRepository keeps accounts in a map. It is safe for
// concurrent use and is what the HTTP tests run against.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[int64]model.Account
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		nextID:   1,
		accounts: make(map[int64]model.Account),
	}
}

func (r *MemoryAccountRepository) Create(ctx context.Context, account *model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.ID = r.nextID
	r.nextID++
	r.accounts[account.ID] = cloneAccount(*account)
	return nil
}

func (r *MemoryAccountRepository) FindByID(ctx context.Context, id int64) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	account = cloneAccount(account)
	return &account, nil
}

func (r *MemoryAccountRepository) ListAll(ctx context.Context) ([]model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]model.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, cloneAccount(account))
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *MemoryAccountRepository) Update(ctx context.Context, id int64, payload *model.UpdateAccountPayload) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}

	payload.Apply(&account)
	account = cloneAccount(account)
	r.accounts[id] = account

	updated := cloneAccount(account)
	return &updated, nil
}

func (r *MemoryAccountRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return false, nil
	}
	delete(r.accounts, id)
	return true, nil
}

// cloneAccount copies the phone number so callers cannot mutate stored state.
func cloneAccount(account model.Account) model.Account {
	if account.PhoneNumber != nil {
		phone := *account.PhoneNumber
		account.PhoneNumber = &phone
	}
	return account
}
