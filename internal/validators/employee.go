package validators

import (
	"context"

	"github.com/MKhiriev/go-employees/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	FieldEmployeeID  = "employee_id"
	FieldName        = "name"
	FieldDepartment  = "department"
	FieldSalary      = "salary"
	FieldJoiningDate = "joining_date"
	FieldSkill       = "skill"
	FieldSkip        = "skip"
	FieldLimit       = "limit"
	FieldUsername    = "username"
	FieldPassword    = "password"

	// FieldPatch requires at least one field of an update to be set.
	FieldPatch = "patch"
)

// EmployeeValidator checks employee payloads, query windows and credentials
// before they reach the store.
type EmployeeValidator struct {
}

func NewEmployeeValidator() Validator {
	return &EmployeeValidator{}
}

func (v *EmployeeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Employee:
		return v.validateEmployee(ctx, value, fields...)
	case *models.Employee:
		return v.validateEmployee(ctx, *value, fields...)

	case models.EmployeePatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.EmployeePatch:
		return v.validatePatch(ctx, *value, fields...)

	case models.Page:
		return v.validatePage(ctx, value, fields...)
	case *models.Page:
		return v.validatePage(ctx, *value, fields...)

	case models.ListFilter:
		return v.validatePage(ctx, value.Page, fields...)
	case *models.ListFilter:
		return v.validatePage(ctx, value.Page, fields...)

	case models.SkillSearch:
		return v.validateSkillSearch(ctx, value, fields...)
	case *models.SkillSearch:
		return v.validateSkillSearch(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EmployeeValidator) validateEmployee(_ context.Context, employee models.Employee, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmployeeID, FieldName, FieldDepartment, FieldSalary, FieldJoiningDate}
	}

	for _, f := range fields {
		switch f {
		case FieldEmployeeID:
			if employee.EmployeeID == "" {
				return ErrEmptyEmployeeID
			}
		case FieldName:
			if employee.Name == "" {
				return ErrEmptyName
			}
		case FieldDepartment:
			if employee.Department == "" {
				return ErrEmptyDepartment
			}
		case FieldSalary:
			if employee.Salary < 0 {
				return ErrNegativeSalary
			}
		case FieldJoiningDate:
			if employee.JoiningDate.IsZero() {
				return ErrEmptyJoiningDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmployeeValidator) validatePatch(_ context.Context, patch models.EmployeePatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch, FieldSalary}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if patch.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldSalary:
			if patch.Salary != nil && *patch.Salary < 0 {
				return ErrNegativeSalary
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmployeeValidator) validatePage(_ context.Context, page models.Page, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSkip, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldSkip:
			if page.Skip < 0 {
				return ErrInvalidSkip
			}
		case FieldLimit:
			if page.Limit < 1 || page.Limit > models.MaxPageLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmployeeValidator) validateSkillSearch(ctx context.Context, search models.SkillSearch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSkill, FieldSkip, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldSkill:
			if search.Skill == "" {
				return ErrEmptySkill
			}
		case FieldSkip, FieldLimit:
			if err := v.validatePage(ctx, search.Page, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmployeeValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
