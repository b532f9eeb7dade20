package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/models"
	"github.com/jackc/pgerrcode"
)

// employeePostgresRepository is the PostgreSQL-backed implementation of
// [EmployeeRepository]. Skills are kept in a JSONB array column.
type employeePostgresRepository struct {
	*DB
	logger *logger.Logger
}

// NewEmployeePostgresRepository constructs an [EmployeeRepository] backed by
// the provided database connection and logger.
func NewEmployeePostgresRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee postgres repository")
	return &employeePostgresRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var (
		employee    models.Employee
		id          int64
		joiningDate time.Time
		skills      []byte
	)

	if err := row.Scan(&id, &employee.EmployeeID, &employee.Name, &employee.Department, &employee.Salary, &joiningDate, &skills); err != nil {
		return models.Employee{}, err
	}

	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &employee.Skills); err != nil {
			return models.Employee{}, fmt.Errorf("decoding skills: %w", err)
		}
	}

	employee.ID = fmt.Sprint(id)
	employee.JoiningDate = models.NewDate(joiningDate)
	employee.Skills = nonNilSkills(employee.Skills)

	return employee, nil
}

func (r *employeePostgresRepository) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEmployeeQuery(employee)
	if err != nil {
		log.Err(err).Str("func", "*employeePostgresRepository.Create").Msg("failed to create query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEmployee(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Employee{}, ErrEmployeeAlreadyExists
		}
		log.Err(err).Str("func", "*employeePostgresRepository.Create").
			Str("employee_id", employee.EmployeeID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to insert employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *employeePostgresRepository) FindByEmployeeID(ctx context.Context, employeeID string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindEmployeeQuery(employeeID)
	if err != nil {
		log.Err(err).Str("func", "*employeePostgresRepository.FindByEmployeeID").Msg("failed to create query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	employee, err := scanEmployee(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeePostgresRepository.FindByEmployeeID").
			Str("employee_id", employeeID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to find employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return employee, nil
}

func (r *employeePostgresRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Employee, error) {
	query, args, err := buildListEmployeesQuery(filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*employeePostgresRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEmployees(ctx, "*employeePostgresRepository.List", query, args)
}

func (r *employeePostgresRepository) SearchBySkill(ctx context.Context, search models.SkillSearch) ([]models.Employee, error) {
	query, args, err := buildSearchBySkillQuery(search)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*employeePostgresRepository.SearchBySkill").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEmployees(ctx, "*employeePostgresRepository.SearchBySkill", query, args)
}

func (r *employeePostgresRepository) AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAverageSalaryQuery()
	if err != nil {
		log.Err(err).Str("func", "*employeePostgresRepository.AverageSalaryByDepartment").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeePostgresRepository.AverageSalaryByDepartment").
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.DepartmentSalary, 0)
	for rows.Next() {
		var item models.DepartmentSalary
		if err = rows.Scan(&item.Department, &item.AvgSalary); err != nil {
			log.Err(err).Str("func", "*employeePostgresRepository.AverageSalaryByDepartment").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*employeePostgresRepository.AverageSalaryByDepartment").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (r *employeePostgresRepository) Update(ctx context.Context, employeeID string, patch models.EmployeePatch) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEmployeeQuery(employeeID, patch)
	if err != nil {
		log.Err(err).Str("func", "*employeePostgresRepository.Update").Msg("failed to create query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEmployee(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeePostgresRepository.Update").
			Str("employee_id", employeeID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to update employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *employeePostgresRepository) Delete(ctx context.Context, employeeID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEmployeeQuery(employeeID)
	if err != nil {
		log.Err(err).Str("func", "*employeePostgresRepository.Delete").Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeePostgresRepository.Delete").
			Str("employee_id", employeeID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to delete employee")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *employeePostgresRepository) queryEmployees(ctx context.Context, funcName, query string, args []any) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan employee row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return employees, nil
}
