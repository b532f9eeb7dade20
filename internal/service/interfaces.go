package service

import (
	"context"

	"github.com/MKhiriev/go-employees/models"
)

// EmployeeService implements the employee operations exposed over HTTP.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (models.Employee, error)
	ListEmployees(ctx context.Context, filter models.ListFilter) ([]models.Employee, error)
	SearchBySkill(ctx context.Context, search models.SkillSearch) ([]models.Employee, error)
	AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error)
	UpdateEmployee(ctx context.Context, employeeID string, patch models.EmployeePatch) (models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) (models.DeleteResult, error)
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Credential, error)
	CreateToken(ctx context.Context, credential models.Credential) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// EmployeeServiceWrapper defines middleware composition for EmployeeService.
// Implementations wrap an existing EmployeeService to add behavior such as
// logging or validating.
type EmployeeServiceWrapper interface {
	Wrap(EmployeeService) EmployeeService // returns a decorated EmployeeService applying additional behavior
}
