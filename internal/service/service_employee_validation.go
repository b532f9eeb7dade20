package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-employees/internal/validators"
	"github.com/MKhiriev/go-employees/models"
)

type EmployeeValidationService struct {
	inner     EmployeeService
	validator validators.Validator
}

func NewEmployeeValidationService() EmployeeServiceWrapper {
	return &EmployeeValidationService{
		validator: validators.NewEmployeeValidator(),
	}
}

func (v *EmployeeValidationService) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	if err := v.validator.Validate(ctx, employee); err != nil {
		return models.Employee{}, validationError(err)
	}

	return v.inner.CreateEmployee(ctx, employee)
}

func (v *EmployeeValidationService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	if err := v.validator.Validate(ctx, models.Employee{EmployeeID: employeeID}, validators.FieldEmployeeID); err != nil {
		return models.Employee{}, validationError(err)
	}

	return v.inner.GetEmployee(ctx, employeeID)
}

func (v *EmployeeValidationService) ListEmployees(ctx context.Context, filter models.ListFilter) ([]models.Employee, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, validationError(err)
	}

	return v.inner.ListEmployees(ctx, filter)
}

func (v *EmployeeValidationService) SearchBySkill(ctx context.Context, search models.SkillSearch) ([]models.Employee, error) {
	if err := v.validator.Validate(ctx, search); err != nil {
		return nil, validationError(err)
	}

	return v.inner.SearchBySkill(ctx, search)
}

func (v *EmployeeValidationService) AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error) {
	return v.inner.AverageSalaryByDepartment(ctx)
}

func (v *EmployeeValidationService) UpdateEmployee(ctx context.Context, employeeID string, patch models.EmployeePatch) (models.Employee, error) {
	if err := v.validator.Validate(ctx, models.Employee{EmployeeID: employeeID}, validators.FieldEmployeeID); err != nil {
		return models.Employee{}, validationError(err)
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Employee{}, validationError(err)
	}

	return v.inner.UpdateEmployee(ctx, employeeID, patch)
}

func (v *EmployeeValidationService) DeleteEmployee(ctx context.Context, employeeID string) (models.DeleteResult, error) {
	if err := v.validator.Validate(ctx, models.Employee{EmployeeID: employeeID}, validators.FieldEmployeeID); err != nil {
		return models.DeleteResult{}, validationError(err)
	}

	return v.inner.DeleteEmployee(ctx, employeeID)
}

func (v *EmployeeValidationService) Wrap(wrapper EmployeeService) EmployeeService {
	v.inner = wrapper
	return v
}

// validationError tags a validator error so the transport layer can report it
// as a client error.
func validationError(err error) error {
	if errors.Is(err, validators.ErrNoFieldsToUpdate) {
		return ErrNoFieldsToUpdate
	}

	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
