// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/staffql/internal/dbx"
	"github.com/dmitrijs2005/staffql/internal/server/metrics"
	"github.com/dmitrijs2005/staffql/internal/server/migrations"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/employees"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories that share
// one set of metrics.
type PostgresRepositoryManager struct {
	metrics *metrics.Metrics
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
// m may be nil.
func NewPostgresRepositoryManager(m *metrics.Metrics) RepositoryManager {
	return &PostgresRepositoryManager{metrics: m}
}

func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db, m.metrics)
}

func (m *PostgresRepositoryManager) Employees(db dbx.DBTX) employees.Repository {
	return employees.NewPostgresRepository(db, m.metrics)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, ".")
}
