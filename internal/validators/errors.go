package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmployeeID  = errors.New("employee_id is required")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyDepartment  = errors.New("department is required")
	ErrEmptySalary      = errors.New("salary is required")
	ErrNegativeSalary   = errors.New("salary must be greater than or equal to 0")
	ErrEmptyJoiningDate = errors.New("joining_date is required")
	ErrNoFieldsToUpdate = errors.New("no fields provided for update")
	ErrEmptySkill       = errors.New("skill is required")
	ErrInvalidSkip      = errors.New("skip must be greater than or equal to 0")
	ErrInvalidLimit     = errors.New("limit must be between 1 and 100")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
)
