// Package employees stores employee records in PostgreSQL.
package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
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

const selectEmployee = `SELECT id, first_name, last_name, email, gender, designation, salary,
		 date_of_joining, department, employee_photo, created_at, updated_at
		 FROM employees`

func scanEmployee(row interface{ Scan(...any) error }) (*models.Employee, error) {
	e := &models.Employee{}
	var photo sql.NullString

	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Gender, &e.Designation, &e.Salary,
		&e.DateOfJoining, &e.Department, &photo, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if photo.Valid {
		e.EmployeePhoto = &photo.String
	}
	return e, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

// validID filters out ids PostgreSQL would reject as malformed uuids.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (r *PostgresRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	defer r.metrics.ObserveQuery("list_employees", time.Now())

	var (
		conds []string
		args  []any
	)
	if filter.Designation != "" {
		args = append(args, filter.Designation)
		conds = append(conds, fmt.Sprintf("strpos(lower(designation), lower($%d)) > 0", len(args)))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conds = append(conds, fmt.Sprintf("strpos(lower(department), lower($%d)) > 0", len(args)))
	}

	query := selectEmployee
	if len(conds) > 0 {
		query += "\n\t\t WHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\t ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	defer r.metrics.ObserveQuery("get_employee", time.Now())

	e, err := scanEmployee(r.db.QueryRowContext(ctx, selectEmployee+"\n\t\t WHERE id = $1", id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return e, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	defer r.metrics.ObserveQuery("get_employee_by_email", time.Now())

	e, err := scanEmployee(r.db.QueryRowContext(ctx, selectEmployee+"\n\t\t WHERE email = $1", email))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	defer r.metrics.ObserveQuery("create_employee", time.Now())

	query :=
		`INSERT INTO employees (first_name, last_name, email, gender, designation, salary,
		 date_of_joining, department, employee_photo)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Gender, e.Designation, e.Salary,
		e.DateOfJoining, e.Department, e.EmployeePhoto,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	if !validID(e.ID) {
		return nil, common.ErrorNotFound
	}

	defer r.metrics.ObserveQuery("update_employee", time.Now())

	query :=
		`UPDATE employees SET first_name = $2, last_name = $3, email = $4, gender = $5,
		 designation = $6, salary = $7, date_of_joining = $8, department = $9,
		 employee_photo = $10, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, e.ID,
		e.FirstName, e.LastName, e.Email, e.Gender, e.Designation, e.Salary,
		e.DateOfJoining, e.Department, e.EmployeePhoto,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, notFoundOr(err)
	}

	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	defer r.metrics.ObserveQuery("delete_employee", time.Now())

	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
