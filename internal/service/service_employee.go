package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/metrics"
	"github.com/MKhiriev/go-employees/internal/store"
	"github.com/MKhiriev/go-employees/models"
)

type employeeService struct {
	employeeRepository store.EmployeeRepository
	metrics            metrics.MetricsCollector

	logger *logger.Logger
}

func NewEmployeeService(employeeRepository store.EmployeeRepository, collector metrics.MetricsCollector, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		metrics:            collector,
		logger:             logger,
	}
}

// CreateEmployee stores a new employee. A record with the same employee_id is
// looked up first; the store's unique index still rejects a concurrent
// duplicate that slips past the lookup.
func (e *employeeService) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	_, err := e.employeeRepository.FindByEmployeeID(ctx, employee.EmployeeID)
	switch {
	case err == nil:
		log.Warn().Str("employee_id", employee.EmployeeID).Msg("employee already exists")
		return models.Employee{}, store.ErrEmployeeAlreadyExists
	case !errors.Is(err, store.ErrEmployeeNotFound):
		log.Err(err).Str("employee_id", employee.EmployeeID).Msg("employee lookup before create failed")
		return models.Employee{}, fmt.Errorf("employee lookup before create failed: %w", err)
	}

	if employee.Skills == nil {
		employee.Skills = []string{}
	}

	created, err := e.employeeRepository.Create(ctx, employee)
	if err != nil {
		log.Err(err).Str("employee_id", employee.EmployeeID).Msg("employee creation ended with error")
		return models.Employee{}, fmt.Errorf("employee creation ended with error: %w", err)
	}

	e.metrics.RecordEmployeeCreated()
	return created, nil
}

func (e *employeeService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	return e.employeeRepository.FindByEmployeeID(ctx, employeeID)
}

func (e *employeeService) ListEmployees(ctx context.Context, filter models.ListFilter) ([]models.Employee, error) {
	return e.employeeRepository.List(ctx, filter)
}

// SearchBySkill fails with ErrNoEmployeesFound when nothing matches.
func (e *employeeService) SearchBySkill(ctx context.Context, search models.SkillSearch) ([]models.Employee, error) {
	employees, err := e.employeeRepository.SearchBySkill(ctx, search)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrNoEmployeesFound
	}

	return employees, nil
}

// AverageSalaryByDepartment fails with ErrNoEmployeesFound when the store holds
// no employees at all.
func (e *employeeService) AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error) {
	averages, err := e.employeeRepository.AverageSalaryByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	if len(averages) == 0 {
		return nil, ErrNoEmployeesFound
	}

	return averages, nil
}

func (e *employeeService) UpdateEmployee(ctx context.Context, employeeID string, patch models.EmployeePatch) (models.Employee, error) {
	if patch.IsEmpty() {
		return models.Employee{}, ErrNoFieldsToUpdate
	}

	return e.employeeRepository.Update(ctx, employeeID, patch)
}

// DeleteEmployee reports a missing employee in the result rather than as an
// error.
func (e *employeeService) DeleteEmployee(ctx context.Context, employeeID string) (models.DeleteResult, error) {
	deleted, err := e.employeeRepository.Delete(ctx, employeeID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("employee_id", employeeID).Msg("employee deletion ended with error")
		return models.DeleteResult{}, fmt.Errorf("employee deletion ended with error: %w", err)
	}

	if !deleted {
		return models.DeleteResult{Success: false, Message: "Employee not found"}, nil
	}

	e.metrics.RecordEmployeeDeleted()
	return models.DeleteResult{Success: true, Message: fmt.Sprintf("Employee %s deleted", employeeID)}, nil
}
