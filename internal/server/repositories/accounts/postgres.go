// Package accounts stores login accounts in PostgreSQL.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/staffql/internal/common"
	"github.com/dmitrijs2005/staffql/internal/dbx"
	"github.com/dmitrijs2005/staffql/internal/server/metrics"
	"github.com/dmitrijs2005/staffql/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db      dbx.DBTX
	metrics *metrics.Metrics
}

func NewPostgresRepository(db dbx.DBTX, m *metrics.Metrics) *PostgresRepository {
	return &PostgresRepository{db: db, metrics: m}
}

const selectAccount = `SELECT id, username, email, password_hash, created_at, updated_at FROM accounts`

func scanAccount(row interface{ Scan(...any) error }) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.Account, error) {
	defer r.metrics.ObserveQuery("find_account", time.Now())

	query := selectAccount + `
		 WHERE username = $1 OR email = $2
		 ORDER BY created_at
		 LIMIT 1
		 `

	return scanAccount(r.db.QueryRowContext(ctx, query, username, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	defer r.metrics.ObserveQuery("get_account", time.Now())

	query := selectAccount + `
		 WHERE id = $1
		 `

	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

// Create inserts account and fills in its id and timestamps. A clash on
// username or email yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	defer r.metrics.ObserveQuery("create_account", time.Now())

	query :=
		`INSERT INTO accounts (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, account.Username, account.Email, account.PasswordHash).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}
