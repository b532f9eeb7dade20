package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-employees/models"
)

// EmployeeRepository persists employee records. Implementations exist for
// the document store and for PostgreSQL; both honour the same contract:
//   - Create fails with [ErrEmployeeAlreadyExists] on a duplicate employee_id.
//   - FindByEmployeeID and Update fail with [ErrEmployeeNotFound].
//   - Delete reports whether a record was removed.
//   - List returns records ordered by joining date, newest first.
type EmployeeRepository interface {
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (models.Employee, error)
	List(ctx context.Context, filter models.ListFilter) ([]models.Employee, error)
	SearchBySkill(ctx context.Context, search models.SkillSearch) ([]models.Employee, error)
	AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error)
	Update(ctx context.Context, employeeID string, patch models.EmployeePatch) (models.Employee, error)
	Delete(ctx context.Context, employeeID string) (bool, error)
}

// CredentialRepository resolves the fixed set of principals allowed to
// obtain a bearer token.
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (models.Credential, error)
}

// Database is a connected backend that can prepare its schema, report its
// health and release its resources.
type Database interface {
	Init(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
