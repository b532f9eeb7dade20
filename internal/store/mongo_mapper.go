package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-employees/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// employeeDocument is the stored shape of an employee. _id and joining_date
// are left untyped because records written by other tools may carry a
// non-ObjectID identifier or a date held as a string.
type employeeDocument struct {
	ID          any      `bson:"_id,omitempty"`
	EmployeeID  string   `bson:"employee_id"`
	Name        string   `bson:"name"`
	Department  string   `bson:"department"`
	Salary      int64    `bson:"salary"`
	JoiningDate any      `bson:"joining_date"`
	Skills      []string `bson:"skills"`
}

// date-time layouts accepted for string joining dates, tried in order
var storedDateLayouts = []string{
	models.DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// toEmployeeDocument converts an employee into its stored form. The joining
// date is stored as a date-time at midnight UTC.
func toEmployeeDocument(employee models.Employee) employeeDocument {
	return employeeDocument{
		EmployeeID:  employee.EmployeeID,
		Name:        employee.Name,
		Department:  employee.Department,
		Salary:      employee.Salary,
		JoiningDate: employee.JoiningDate.Midnight(),
		Skills:      nonNilSkills(employee.Skills),
	}
}

// toEmployee converts a stored document back into an employee.
func (d employeeDocument) toEmployee() (models.Employee, error) {
	joiningDate, err := storedDate(d.JoiningDate)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: employee %q: %w", ErrDecodingDocument, d.EmployeeID, err)
	}

	return models.Employee{
		ID:          storedID(d.ID),
		EmployeeID:  d.EmployeeID,
		Name:        d.Name,
		Department:  d.Department,
		Salary:      d.Salary,
		JoiningDate: joiningDate,
		Skills:      nonNilSkills(d.Skills),
	}, nil
}

// toUpdateDocument builds a $set update holding only the fields present in
// patch.
func toUpdateDocument(patch models.EmployeePatch) bson.D {
	set := bson.D{}

	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Department != nil {
		set = append(set, bson.E{Key: "department", Value: *patch.Department})
	}
	if patch.Salary != nil {
		set = append(set, bson.E{Key: "salary", Value: *patch.Salary})
	}
	if patch.JoiningDate != nil {
		set = append(set, bson.E{Key: "joining_date", Value: patch.JoiningDate.Midnight()})
	}
	if patch.Skills != nil {
		set = append(set, bson.E{Key: "skills", Value: nonNilSkills(*patch.Skills)})
	}

	return bson.D{{Key: "$set", Value: set}}
}

func storedID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func storedDate(value any) (models.Date, error) {
	switch v := value.(type) {
	case nil:
		return models.Date{}, nil
	case primitive.DateTime:
		return models.NewDate(v.Time().UTC()), nil
	case time.Time:
		return models.NewDate(v.UTC()), nil
	case string:
		for _, layout := range storedDateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return models.NewDate(t), nil
			}
		}
		return models.Date{}, fmt.Errorf("unrecognised joining_date %q", v)
	default:
		return models.Date{}, fmt.Errorf("unsupported joining_date type %T", value)
	}
}

func nonNilSkills(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
