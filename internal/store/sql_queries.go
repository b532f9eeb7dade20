package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-employees/models"
	sq "github.com/Masterminds/squirrel"
)

const employeesTable = "employees"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// employeeColumns is the column order every employee query returns and
// [scanEmployee] expects.
var employeeColumns = []string{"id", "employee_id", "name", "department", "salary", "joining_date", "skills"}

var returningEmployee = "RETURNING " + strings.Join(employeeColumns, ", ")

func encodeSkills(skills []string) (string, error) {
	b, err := json.Marshal(nonNilSkills(skills))
	if err != nil {
		return "", fmt.Errorf("%w: encoding skills: %w", ErrBuildingSQLQuery, err)
	}
	return string(b), nil
}

func buildInsertEmployeeQuery(employee models.Employee) (string, []any, error) {
	skills, err := encodeSkills(employee.Skills)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(employeesTable).
		Columns("employee_id", "name", "department", "salary", "joining_date", "skills").
		Values(employee.EmployeeID, employee.Name, employee.Department, employee.Salary, employee.JoiningDate.Midnight(), skills).
		Suffix(returningEmployee).
		ToSql()
}

func buildFindEmployeeQuery(employeeID string) (string, []any, error) {
	return psql.Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Eq{"employee_id": employeeID}).
		ToSql()
}

// buildListEmployeesQuery orders by joining date, newest first. id breaks
// ties so pages are stable.
func buildListEmployeesQuery(filter models.ListFilter) (string, []any, error) {
	query := psql.Select(employeeColumns...).From(employeesTable)
	if filter.Department != "" {
		query = query.Where(sq.Eq{"department": filter.Department})
	}

	return query.
		OrderBy("joining_date DESC", "id DESC").
		Offset(uint64(filter.Skip)).
		Limit(uint64(filter.Limit)).
		ToSql()
}

// buildSearchBySkillQuery matches any skill element equal to the requested
// one, ignoring case.
func buildSearchBySkillQuery(search models.SkillSearch) (string, []any, error) {
	return psql.Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Expr("EXISTS (SELECT 1 FROM jsonb_array_elements_text(skills) AS skill WHERE lower(skill) = lower(?))", search.Skill)).
		OrderBy("id").
		Offset(uint64(search.Skip)).
		Limit(uint64(search.Limit)).
		ToSql()
}

func buildAverageSalaryQuery() (string, []any, error) {
	return psql.Select("department", "ROUND(AVG(salary))::BIGINT AS avg_salary").
		From(employeesTable).
		GroupBy("department").
		ToSql()
}

// buildUpdateEmployeeQuery sets only the fields present in patch.
func buildUpdateEmployeeQuery(employeeID string, patch models.EmployeePatch) (string, []any, error) {
	query := psql.Update(employeesTable)

	if patch.Name != nil {
		query = query.Set("name", *patch.Name)
	}
	if patch.Department != nil {
		query = query.Set("department", *patch.Department)
	}
	if patch.Salary != nil {
		query = query.Set("salary", *patch.Salary)
	}
	if patch.JoiningDate != nil {
		query = query.Set("joining_date", patch.JoiningDate.Midnight())
	}
	if patch.Skills != nil {
		skills, err := encodeSkills(*patch.Skills)
		if err != nil {
			return "", nil, err
		}
		query = query.Set("skills", skills)
	}

	return query.
		Where(sq.Eq{"employee_id": employeeID}).
		Suffix(returningEmployee).
		ToSql()
}

func buildDeleteEmployeeQuery(employeeID string) (string, []any, error) {
	return psql.Delete(employeesTable).
		Where(sq.Eq{"employee_id": employeeID}).
		ToSql()
}
