package graphql

import (
	"context"

	"github.com/dmitrijs2005/staffql/internal/server/models"
	graphql "github.com/graph-gophers/graphql-go"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	accounts  AccountOperations
	employees EmployeeOperations
}

type loginInput struct {
	UsernameOrEmail string
	Password        string
}

type signupInput struct {
	Username string
	Email    string
	Password string
}

type employeeInput struct {
	FirstName           string
	LastName            string
	Email               string
	Gender              string
	Designation         string
	Salary              float64
	DateOfJoining       string
	Department          string
	EmployeePhotoBase64 *string
}

type employeeUpdateInput struct {
	FirstName           *string
	LastName            *string
	Email               *string
	Gender              *string
	Designation         *string
	Salary              *float64
	DateOfJoining       *string
	Department          *string
	EmployeePhotoBase64 *string
}

func (r *Resolver) Login(ctx context.Context, args struct{ Input loginInput }) *resultResolver {
	return &resultResolver{r.accounts.Login(ctx, models.LoginInput{
		UsernameOrEmail: args.Input.UsernameOrEmail,
		Password:        args.Input.Password,
	})}
}

func (r *Resolver) Signup(ctx context.Context, args struct{ Input signupInput }) *resultResolver {
	return &resultResolver{r.accounts.Signup(ctx, models.SignupInput{
		Username: args.Input.Username,
		Email:    args.Input.Email,
		Password: args.Input.Password,
	})}
}

func (r *Resolver) GetAllEmployees(ctx context.Context) *resultResolver {
	return &resultResolver{r.employees.GetAll(ctx)}
}

func (r *Resolver) GetEmployeeByEid(ctx context.Context, args struct{ Eid graphql.ID }) *resultResolver {
	return &resultResolver{r.employees.GetByEid(ctx, string(args.Eid))}
}

func (r *Resolver) GetEmployeesByDesignationOrDepartment(ctx context.Context, args struct {
	Designation *string
	Department  *string
}) *resultResolver {
	return &resultResolver{r.employees.Search(ctx, deref(args.Designation), deref(args.Department))}
}

func (r *Resolver) AddEmployee(ctx context.Context, args struct{ Input employeeInput }) *resultResolver {
	in := args.Input
	return &resultResolver{r.employees.Add(ctx, models.EmployeeInput{
		FirstName:           &in.FirstName,
		LastName:            &in.LastName,
		Email:               &in.Email,
		Gender:              &in.Gender,
		Designation:         &in.Designation,
		Salary:              &in.Salary,
		DateOfJoining:       &in.DateOfJoining,
		Department:          &in.Department,
		EmployeePhotoBase64: in.EmployeePhotoBase64,
	})}
}

func (r *Resolver) UpdateEmployeeByEid(ctx context.Context, args struct {
	Eid   graphql.ID
	Input employeeUpdateInput
}) *resultResolver {
	in := args.Input
	return &resultResolver{r.employees.Update(ctx, string(args.Eid), models.EmployeeInput{
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		Gender:              in.Gender,
		Designation:         in.Designation,
		Salary:              in.Salary,
		DateOfJoining:       in.DateOfJoining,
		Department:          in.Department,
		EmployeePhotoBase64: in.EmployeePhotoBase64,
	})}
}

func (r *Resolver) DeleteEmployeeByEid(ctx context.Context, args struct{ Eid graphql.ID }) *resultResolver {
	return &resultResolver{r.employees.Delete(ctx, string(args.Eid))}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
