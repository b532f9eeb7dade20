package models

// Employee is the API representation of an employee record.
type Employee struct {
	// ID is the opaque identifier assigned by the store, rendered as a string.
	// It is ignored on input.
	ID string `json:"id"`

	// EmployeeID is the externally assigned, unique business identifier.
	EmployeeID string `json:"employee_id"`

	Name       string `json:"name"`
	Department string `json:"department"`

	// Salary is a non-negative whole amount.
	Salary int64 `json:"salary"`

	// JoiningDate is a calendar date, serialized as "YYYY-MM-DD".
	JoiningDate Date `json:"joining_date"`

	// Skills is an ordered list of skill names. Never nil in responses.
	Skills []string `json:"skills"`
}

// EmployeePatch carries a partial update. Only non-nil fields are applied.
//
// JSON null and an absent key are treated the same way: the field is left
// untouched. Clearing a field to null is not supported.
type EmployeePatch struct {
	Name        *string   `json:"name,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Salary      *int64    `json:"salary,omitempty"`
	JoiningDate *Date     `json:"joining_date,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
}

// IsEmpty reports whether the patch does not touch any field.
func (p EmployeePatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Department == nil &&
		p.Salary == nil &&
		p.JoiningDate == nil &&
		p.Skills == nil
}

// DepartmentSalary is one row of the average-salary aggregation.
type DepartmentSalary struct {
	Department string `json:"department" bson:"department"`
	AvgSalary  int64  `json:"avg_salary" bson:"avg_salary"`
}
