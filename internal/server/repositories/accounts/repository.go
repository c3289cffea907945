package accounts

import (
	"context"

	"github.com/dmitrijs2005/staffql/internal/server/models"
)

type Repository interface {
	// FindByUsernameOrEmail returns the first account whose username equals
	// username or whose email equals email. Matching is exact.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
}
