package models

import (
	"time"

	"github.com/dmitrijs2005/staffql/internal/server/validation"
)

type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Gender        string
	Designation   string
	Salary        float64
	DateOfJoining time.Time
	Department    string
	EmployeePhoto *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EmployeeInput carries the writable employee fields. A nil field is absent.
// DateOfJoining stays a string until it has passed validation.
type EmployeeInput struct {
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

// Record converts the present fields of in into a validation record.
func (in EmployeeInput) Record() validation.Record {
	rec := validation.Record{}
	put := func(key string, v *string) {
		if v != nil {
			rec[key] = *v
		}
	}
	put("first_name", in.FirstName)
	put("last_name", in.LastName)
	put("email", in.Email)
	put("gender", in.Gender)
	put("designation", in.Designation)
	put("date_of_joining", in.DateOfJoining)
	put("department", in.Department)
	if in.Salary != nil {
		rec["salary"] = *in.Salary
	}
	return rec
}

// Record returns the stored employee as a validation record, with the
// joining date in calendar form.
func (e *Employee) Record() validation.Record {
	return validation.Record{
		"first_name":      e.FirstName,
		"last_name":       e.LastName,
		"email":           e.Email,
		"gender":          e.Gender,
		"designation":     e.Designation,
		"salary":          e.Salary,
		"date_of_joining": e.DateOfJoining.UTC().Format("2006-01-02"),
		"department":      e.Department,
	}
}

// EmployeeFilter selects employees by case-insensitive substring. Empty
// fields do not filter.
type EmployeeFilter struct {
	Designation string
	Department  string
}
