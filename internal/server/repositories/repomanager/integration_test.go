//go:build integration

package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffql/internal/common"
	"github.com/dmitrijs2005/staffql/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("staffql"),
		postgres.WithUsername("staffql"),
		postgres.WithPassword("staffql"),
		postgres.BasicWaitStrategies(),
	)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, NewPostgresRepositoryManager(nil).RunMigrations(ctx, db))
	return db
}

func TestIntegration_Repositories(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	m := NewPostgresRepositoryManager(nil)

	t.Run("accounts", func(t *testing.T) {
		repo := m.Accounts(db)

		a, err := repo.Create(ctx, &models.Account{Username: "alice", Email: "alice@example.com", PasswordHash: "h"})
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)

		got, err := repo.FindByUsernameOrEmail(ctx, "alice@example.com", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)

		_, err = repo.Create(ctx, &models.Account{Username: "alice", Email: "other@example.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, common.ErrorAlreadyExists)

		_, err = repo.FindByUsernameOrEmail(ctx, "Alice", "Alice")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("employees", func(t *testing.T) {
		repo := m.Employees(db)
		doj := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		first, err := repo.Create(ctx, &models.Employee{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Gender: "Female",
			Designation: "Software Engineer", Salary: 5000, DateOfJoining: doj, Department: "R&D",
		})
		require.NoError(t, err)

		second, err := repo.Create(ctx, &models.Employee{
			FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Gender: "Male",
			Designation: "Manager", Salary: 7000, DateOfJoining: doj, Department: "Research",
		})
		require.NoError(t, err)

		all, err := repo.List(ctx, models.EmployeeFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID, "newest first")

		eng, err := repo.List(ctx, models.EmployeeFilter{Designation: "ENG"})
		require.NoError(t, err)
		require.Len(t, eng, 1)
		assert.Equal(t, first.ID, eng[0].ID)

		none, err := repo.List(ctx, models.EmployeeFilter{Designation: "eng", Department: "research"})
		require.NoError(t, err)
		assert.Empty(t, none)

		before := first.UpdatedAt
		first.Salary = 6000
		updated, err := repo.Update(ctx, first)
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(before))

		first.Email = "alan@example.com"
		_, err = repo.Update(ctx, first)
		assert.ErrorIs(t, err, common.ErrorAlreadyExists)

		require.NoError(t, repo.Delete(ctx, second.ID))
		err = repo.Delete(ctx, second.ID)
		assert.True(t, errors.Is(err, common.ErrorNotFound))
	})
}
