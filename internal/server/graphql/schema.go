// Package graphql exposes the account and employee operations as a
// GraphQL schema.
package graphql

import (
	"context"
	_ "embed"

	"github.com/dmitrijs2005/staffql/internal/server/models"
	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var SchemaSDL string

// AccountOperations is implemented by services.AccountService.
type AccountOperations interface {
	Login(ctx context.Context, in models.LoginInput) *models.Result
	Signup(ctx context.Context, in models.SignupInput) *models.Result
}

// EmployeeOperations is implemented by services.EmployeeService.
type EmployeeOperations interface {
	GetAll(ctx context.Context) *models.Result
	GetByEid(ctx context.Context, eid string) *models.Result
	Search(ctx context.Context, designation, department string) *models.Result
	Add(ctx context.Context, in models.EmployeeInput) *models.Result
	Update(ctx context.Context, eid string, in models.EmployeeInput) *models.Result
	Delete(ctx context.Context, eid string) *models.Result
}

// NewSchema parses the embedded SDL against the root resolver.
func NewSchema(accounts AccountOperations, employees EmployeeOperations) (*graphql.Schema, error) {
	return graphql.ParseSchema(SchemaSDL, &Resolver{accounts: accounts, employees: employees})
}
