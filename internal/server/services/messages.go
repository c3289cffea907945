package services

// Envelope messages.
const (
	MsgInvalidCredentials   = "Invalid username/email or password"
	MsgLoginSuccessful      = "Login successful"
	MsgLoginFailed          = "Login failed"
	MsgAccountConflict      = "Username or email already in use"
	MsgAccountCreated       = "Account created successfully"
	MsgSignupFailed         = "Signup failed"
	MsgEmployeesRetrieved   = "Employees retrieved successfully"
	MsgFetchFailed          = "Failed to fetch employees"
	MsgEmployeeNotFound     = "Employee not found"
	MsgEmployeeFound        = "Employee found"
	MsgFetchEmployeeFailed  = "Failed to fetch employee"
	MsgSearchCriteria       = "Provide at least designation or department"
	MsgEmployeeEmailExists  = "Employee with this email already exists"
	MsgAnotherEmployeeEmail = "Another employee with this email exists"
	MsgPhotoUploadFailed    = "Failed to upload photo"
	MsgEmployeeAdded        = "Employee added successfully"
	MsgAddFailed            = "Failed to add employee"
	MsgEmployeeUpdated      = "Employee updated successfully"
	MsgUpdateFailed         = "Failed to update employee"
	MsgEmployeeDeleted      = "Employee deleted successfully"
	MsgDeleteFailed         = "Failed to delete employee"
)

// withCause appends the underlying error to a generic failure message.
func withCause(msg string, err error) string {
	return msg + ": " + err.Error()
}
