package validation

// Rule set names.
const (
	SignupRules         = "signup"
	LoginRules          = "login"
	EmployeeCreateRules = "employeeCreate"
	EmployeeUpdateRules = "employeeUpdate"
)

// Field messages.
const (
	MsgUsernameRequired        = "Username is required"
	MsgValidEmail              = "Valid email is required"
	MsgPasswordLength          = "Password must be at least 6 characters"
	MsgUsernameOrEmailRequired = "Username or email is required"
	MsgPasswordRequired        = "Password is required"
	MsgFirstNameRequired       = "First name is required"
	MsgLastNameRequired        = "Last name is required"
	MsgGender                  = "Gender must be Male, Female, or Other"
	MsgDesignationRequired     = "Designation is required"
	MsgSalary                  = "Salary must be at least 1000"
	MsgDateOfJoining           = "Valid date_of_joining is required"
	MsgDepartmentRequired      = "Department is required"
)

var Signup = RuleSet{
	Name: SignupRules,
	Rules: []Rule{
		{Field: "username", Trim: true, Check: nonEmpty, Message: MsgUsernameRequired},
		{Field: "email", Trim: true, Check: isEmail, Message: MsgValidEmail},
		{Field: "password", Check: minLength(6), Message: MsgPasswordLength},
	},
}

var Login = RuleSet{
	Name: LoginRules,
	Rules: []Rule{
		{Field: "usernameOrEmail", Trim: true, Check: nonEmpty, Message: MsgUsernameOrEmailRequired},
		{Field: "password", Check: nonEmpty, Message: MsgPasswordRequired},
	},
}

var employeeRules = []Rule{
	{Field: "first_name", Trim: true, Check: nonEmpty, Message: MsgFirstNameRequired},
	{Field: "last_name", Trim: true, Check: nonEmpty, Message: MsgLastNameRequired},
	{Field: "email", Trim: true, Check: isEmail, Message: MsgValidEmail},
	{Field: "gender", Check: oneOf(Genders), Message: MsgGender},
	{Field: "designation", Trim: true, Check: nonEmpty, Message: MsgDesignationRequired},
	{Field: "salary", Check: atLeast(MinSalary), Message: MsgSalary},
	{Field: "date_of_joining", Check: isDate, Message: MsgDateOfJoining},
	{Field: "department", Trim: true, Check: nonEmpty, Message: MsgDepartmentRequired},
}

var EmployeeCreate = RuleSet{Name: EmployeeCreateRules, Rules: employeeRules}

var EmployeeUpdate = RuleSet{Name: EmployeeUpdateRules, Rules: employeeRules, Optional: true}

var byName = map[string]RuleSet{
	SignupRules:         Signup,
	LoginRules:          Login,
	EmployeeCreateRules: EmployeeCreate,
	EmployeeUpdateRules: EmployeeUpdate,
}
