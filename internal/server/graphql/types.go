package graphql

import (
	"github.com/dmitrijs2005/staffql/internal/server/models"
	"github.com/dmitrijs2005/staffql/internal/server/validation"
	graphql "github.com/graph-gophers/graphql-go"
)

// resultResolver serves every response type; each type only selects the
// fields it declares.
type resultResolver struct {
	res *models.Result
}

func (r *resultResolver) Success() bool   { return r.res.Success }
func (r *resultResolver) Message() string { return r.res.Message }

func (r *resultResolver) Errors() *[]*fieldErrorResolver {
	if len(r.res.Errors) == 0 {
		return nil
	}
	out := make([]*fieldErrorResolver, 0, len(r.res.Errors))
	for _, e := range r.res.Errors {
		out = append(out, &fieldErrorResolver{e})
	}
	return &out
}

func (r *resultResolver) Token() *string {
	if r.res.Token == "" {
		return nil
	}
	return &r.res.Token
}

func (r *resultResolver) User() *userResolver {
	if r.res.User == nil {
		return nil
	}
	return &userResolver{r.res.User}
}

func (r *resultResolver) Employee() *employeeResolver {
	if r.res.Employee == nil {
		return nil
	}
	return &employeeResolver{r.res.Employee}
}

func (r *resultResolver) Employees() []*employeeResolver {
	out := make([]*employeeResolver, 0, len(r.res.Employees))
	for i := range r.res.Employees {
		out = append(out, &employeeResolver{&r.res.Employees[i]})
	}
	return out
}

func (r *resultResolver) Count() int32 {
	if r.res.Count != nil {
		return int32(*r.res.Count)
	}
	return int32(len(r.res.Employees))
}

type fieldErrorResolver struct {
	e validation.FieldError
}

func (r *fieldErrorResolver) Field() string   { return r.e.Field }
func (r *fieldErrorResolver) Message() string { return r.e.Message }

type userResolver struct {
	u *models.AccountView
}

func (r *userResolver) ID() graphql.ID   { return graphql.ID(r.u.ID) }
func (r *userResolver) Username() string { return r.u.Username }
func (r *userResolver) Email() string    { return r.u.Email }
func (r *userResolver) CreatedAt() *Date { return dateOrNil(r.u.CreatedAt) }
func (r *userResolver) UpdatedAt() *Date { return dateOrNil(r.u.UpdatedAt) }

type employeeResolver struct {
	e *models.Employee
}

func (r *employeeResolver) ID() graphql.ID         { return graphql.ID(r.e.ID) }
func (r *employeeResolver) FirstName() string      { return r.e.FirstName }
func (r *employeeResolver) LastName() string       { return r.e.LastName }
func (r *employeeResolver) Email() string          { return r.e.Email }
func (r *employeeResolver) Gender() string         { return r.e.Gender }
func (r *employeeResolver) Designation() string    { return r.e.Designation }
func (r *employeeResolver) Salary() float64        { return r.e.Salary }
func (r *employeeResolver) DateOfJoining() Date    { return Date{r.e.DateOfJoining} }
func (r *employeeResolver) Department() string     { return r.e.Department }
func (r *employeeResolver) EmployeePhoto() *string { return r.e.EmployeePhoto }
func (r *employeeResolver) CreatedAt() *Date       { return dateOrNil(r.e.CreatedAt) }
func (r *employeeResolver) UpdatedAt() *Date       { return dateOrNil(r.e.UpdatedAt) }
