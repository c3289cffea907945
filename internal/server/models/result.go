package models

import "github.com/dmitrijs2005/staffql/internal/server/validation"

// Result is the envelope every operation answers with. Only the fields that
// make sense for the operation are set.
type Result struct {
	Success   bool
	Message   string
	Errors    []validation.FieldError
	Token     string
	User      *AccountView
	Employee  *Employee
	Employees []Employee
	Count     *int
}

// MsgValidationFailed is the message of every Invalid result.
const MsgValidationFailed = "Validation failed"

func Fail(message string) *Result {
	return &Result{Message: message}
}

func Invalid(errs []validation.FieldError) *Result {
	return &Result{Message: MsgValidationFailed, Errors: errs}
}

func ListResult(success bool, message string, list []Employee) *Result {
	if list == nil {
		list = []Employee{}
	}
	n := len(list)
	return &Result{Success: success, Message: message, Employees: list, Count: &n}
}
