package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/accounts-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(name string) *model.Account {
	phone := "555-1111"
	return &model.Account{
		Name:        name,
		Email:       name + "@x.com",
		Address:     "1 Main St",
		PhoneNumber: &phone,
		DateJoined:  model.NewDate(2024, time.January, 1),
	}
}

func TestErrAccountNotFound_WrapsNoRows(t *testing.T) {
	assert.True(t, errors.Is(ErrAccountNotFound, pgx.ErrNoRows))
	assert.Contains(t, ErrAccountNotFound.Error(), "table:accounts:")
}

func TestMemoryAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	first := newAccount("joe")
	second := newAccount("ann")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *found)

	_, err = repo.FindByID(ctx, 0)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemoryAccountRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	account := newAccount("joe")
	require.NoError(t, repo.Create(ctx, account))

	*account.PhoneNumber = "changed"
	account.Name = "changed"

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "joe", found.Name)
	assert.Equal(t, "555-1111", *found.PhoneNumber)
}

func TestMemoryAccountRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	accounts, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, repo.Create(ctx, newAccount(name)))
	}

	accounts, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 5)
	for i, account := range accounts {
		assert.Equal(t, int64(i+1), account.ID)
	}
}

func TestMemoryAccountRepository_UpdateKeepsEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	account := newAccount("joe")
	require.NoError(t, repo.Create(ctx, account))

	payload := &model.UpdateAccountPayload{
		CreateAccountPayload: model.CreateAccountPayload{
			Name:    "Joseph",
			Email:   "other@x.com",
			Address: "2 Side St",
		},
	}

	updated, err := repo.Update(ctx, account.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, "Joseph", updated.Name)
	assert.Equal(t, "joe@x.com", updated.Email)
	assert.Equal(t, "2 Side St", updated.Address)
	assert.Nil(t, updated.PhoneNumber)
	assert.Equal(t, model.Today().String(), updated.DateJoined.String())

	_, err = repo.Update(ctx, 42, payload)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemoryAccountRepository_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	account := newAccount("joe")
	require.NoError(t, repo.Create(ctx, account))

	deleted, err := repo.Delete(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(ctx, account.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemoryAccountRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, newAccount("user")))
		}()
	}
	wg.Wait()

	accounts, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 50)
}
