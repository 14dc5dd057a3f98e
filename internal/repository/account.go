package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/accounts-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAccountNotFound is returned when no account has the requested id.
//
// It wraps pgx.ErrNoRows behind a "table:accounts:" marker, which
// sqlerr.HandleError turns into a 404 "Account not found".
var ErrAccountNotFound = fmt.Errorf("table:accounts: %w", pgx.ErrNoRows)

const accountColumns = `id, name, email, address, phone_number, date_joined`

// accountRow is the database shape of an account; DATE scans into time.Time.
type accountRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Address     string    `db:"address"`
	PhoneNumber *string   `db:"phone_number"`
	DateJoined  time.Time `db:"date_joined"`
}

func (r accountRow) toModel() *model.Account {
	return &model.Account{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		DateJoined:  model.NewDate(r.DateJoined.Year(), r.DateJoined.Month(), r.DateJoined.Day()),
	}
}

func collectAccount(rows pgx.Rows) (*model.Account, error) {
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[accountRow])
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// AccountRepository stores accounts in PostgreSQL.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create inserts account and sets its id from the database.
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	query := `INSERT INTO accounts (name, email, address, phone_number, date_joined)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		account.Name,
		account.Email,
		account.Address,
		account.PhoneNumber,
		account.DateJoined.Time,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	account, err := collectAccount(rows)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// ListAll returns every account ordered by id. It never returns a nil slice.
func (r *AccountRepository) ListAll(ctx context.Context) ([]model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[accountRow])
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]model.Account, 0, len(collected))
	for _, row := range collected {
		accounts = append(accounts, *row.toModel())
	}
	return accounts, nil
}

// Update overwrites name, address, phone_number and date_joined in a single
// statement and returns the stored row. Email is never changed.
func (r *AccountRepository) Update(ctx context.Context, id int64, payload *model.UpdateAccountPayload) (*model.Account, error) {
	query := `UPDATE accounts
              SET name = $1, address = $2, phone_number = $3, date_joined = $4
              WHERE id = $5
              RETURNING ` + accountColumns

	rows, err := r.pool.Query(ctx, query,
		payload.Name,
		payload.Address,
		payload.PhoneNumber,
		payload.JoinedOn().Time,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	account, err := collectAccount(rows)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// Delete removes the account. Deleting a missing id is not an error; the
// returned bool reports whether a row was removed.
func (r *AccountRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete account: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
