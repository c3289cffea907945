package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/staffql/internal/dbx"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/employees"
)

// RepositoryManager vends repositories bound to a DBTX so services can run
// them against a pool or a transaction alike.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Employees(db dbx.DBTX) employees.Repository
}
