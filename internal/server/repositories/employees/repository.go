package employees

import (
	"context"

	"github.com/dmitrijs2005/staffql/internal/server/models"
)

type Repository interface {
	// List returns matching employees, newest first.
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	// Update overwrites every writable column of e and refreshes updated_at.
	Update(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
}
