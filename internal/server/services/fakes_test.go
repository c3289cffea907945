package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/staffql/internal/common"
	"github.com/dmitrijs2005/staffql/internal/dbx"
	"github.com/dmitrijs2005/staffql/internal/logging"
	"github.com/dmitrijs2005/staffql/internal/server/models"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/employees"
	"github.com/google/uuid"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// --- accounts ---

type fakeAccountsRepo struct {
	mu       sync.Mutex
	items    []*models.Account
	findErr  error
	getErr   error
	createFn func(a *models.Account) error
}

func (f *fakeAccountsRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, a := range f.items {
		if a.Username == username || a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, a := range f.items {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createFn != nil {
		if err := f.createFn(a); err != nil {
			return nil, err
		}
	}
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	f.items = append(f.items, &cp)
	return a, nil
}

// --- employees ---

type fakeEmployeesRepo struct {
	mu        sync.Mutex
	items     map[string]*models.Employee
	clock     time.Time
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	creates   int
	updates   int
}

func newFakeEmployeesRepo() *fakeEmployeesRepo {
	return &fakeEmployeesRepo{
		items: map[string]*models.Employee{},
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeEmployeesRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeEmployeesRepo) List(_ context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	contains := func(s, sub string) bool {
		return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	}
	out := []models.Employee{}
	for _, e := range f.items {
		if contains(e.Designation, filter.Designation) && contains(e.Department, filter.Department) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeEmployeesRepo) GetByID(_ context.Context, id string) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	e, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployeesRepo) GetByEmail(_ context.Context, email string) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, e := range f.items {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEmployeesRepo) Create(_ context.Context, e *models.Employee) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.creates++
	e.ID = uuid.NewString()
	e.CreatedAt = f.tick()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	f.items[e.ID] = &cp
	return e, nil
}

func (f *fakeEmployeesRepo) Update(_ context.Context, e *models.Employee) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.items[e.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	f.updates++
	e.UpdatedAt = f.tick()
	cp := *e
	f.items[e.ID] = &cp
	return e, nil
}

func (f *fakeEmployeesRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

// --- manager ---

type fakeRepoManager struct {
	a *fakeAccountsRepo
	e *fakeEmployeesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{a: &fakeAccountsRepo{}, e: newFakeEmployeesRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository        { return m.a }
func (m *fakeRepoManager) Employees(dbx.DBTX) employees.Repository      { return m.e }

// --- uploader ---

type fakeUploader struct {
	calls       int
	contentType string
	data        []byte
	err         error
}

func (u *fakeUploader) Upload(_ context.Context, data []byte, contentType string) (string, error) {
	u.calls++
	u.data = data
	u.contentType = contentType
	if u.err != nil {
		return "", u.err
	}
	return fmt.Sprintf("https://cdn.test/photo-%d", u.calls), nil
}
