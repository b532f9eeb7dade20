package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-employees/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

// ─────────────────────────────────────────────
// toEmployeeDocument
// ─────────────────────────────────────────────

func TestToEmployeeDocument_StoresMidnight(t *testing.T) {
	employee := models.Employee{
		EmployeeID:  "E1",
		Name:        "Ada",
		Department:  "Eng",
		Salary:      100,
		JoiningDate: mustDate(t, "2023-05-17"),
		Skills:      []string{"Go"},
	}

	doc := toEmployeeDocument(employee)

	assert.Nil(t, doc.ID)
	assert.Equal(t, "E1", doc.EmployeeID)
	assert.Equal(t, int64(100), doc.Salary)
	assert.Equal(t, time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC), doc.JoiningDate)
	assert.Equal(t, []string{"Go"}, doc.Skills)
}

func TestToEmployeeDocument_NilSkillsBecomeEmpty(t *testing.T) {
	doc := toEmployeeDocument(models.Employee{EmployeeID: "E1"})

	require.NotNil(t, doc.Skills)
	assert.Empty(t, doc.Skills)
}

func TestToEmployeeDocument_OmitsID(t *testing.T) {
	raw, err := bson.Marshal(toEmployeeDocument(models.Employee{EmployeeID: "E1"}))
	require.NoError(t, err)

	_, err = bson.Raw(raw).LookupErr("_id")
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// toEmployee
// ─────────────────────────────────────────────

func TestEmployeeDocument_ToEmployee_JoiningDateForms(t *testing.T) {
	want := mustDate(t, "2021-03-04")

	tests := []struct {
		name  string
		value any
	}{
		{"bson date-time", primitive.NewDateTimeFromTime(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC))},
		{"time value", time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"date string", "2021-03-04"},
		{"rfc3339 string", "2021-03-04T00:00:00Z"},
		{"naive date-time string", "2021-03-04T00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee, err := employeeDocument{EmployeeID: "E1", JoiningDate: tt.value}.toEmployee()

			require.NoError(t, err)
			assert.Equal(t, want, employee.JoiningDate)
			assert.Equal(t, "2021-03-04", employee.JoiningDate.String())
		})
	}
}

func TestEmployeeDocument_ToEmployee_MissingDate(t *testing.T) {
	employee, err := employeeDocument{EmployeeID: "E1"}.toEmployee()

	require.NoError(t, err)
	assert.True(t, employee.JoiningDate.IsZero())
}

func TestEmployeeDocument_ToEmployee_BadDate(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"garbage string", "yesterday"},
		{"number", int32(20210304)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := employeeDocument{EmployeeID: "E1", JoiningDate: tt.value}.toEmployee()
			assert.ErrorIs(t, err, ErrDecodingDocument)
		})
	}
}

func TestEmployeeDocument_ToEmployee_Identifiers(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name string
		id   any
		want string
	}{
		{"object id", oid, oid.Hex()},
		{"string id", "custom-id", "custom-id"},
		{"numeric id", int64(7), "7"},
		{"missing id", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee, err := employeeDocument{ID: tt.id}.toEmployee()
			require.NoError(t, err)
			assert.Equal(t, tt.want, employee.ID)
		})
	}
}

func TestEmployeeDocument_ToEmployee_DefaultsSkills(t *testing.T) {
	employee, err := employeeDocument{EmployeeID: "E1"}.toEmployee()

	require.NoError(t, err)
	assert.Equal(t, []string{}, employee.Skills)
}

func TestEmployeeDocument_DecodeFromStoredBSON(t *testing.T) {
	oid := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: oid},
		{Key: "employee_id", Value: "E9"},
		{Key: "name", Value: "Grace"},
		{Key: "department", Value: "Ops"},
		{Key: "salary", Value: int32(5000)},
		{Key: "joining_date", Value: primitive.NewDateTimeFromTime(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC))},
	})
	require.NoError(t, err)

	var doc employeeDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	employee, err := doc.toEmployee()

	require.NoError(t, err)
	assert.Equal(t, models.Employee{
		ID:          oid.Hex(),
		EmployeeID:  "E9",
		Name:        "Grace",
		Department:  "Ops",
		Salary:      5000,
		JoiningDate: mustDate(t, "2020-01-02"),
		Skills:      []string{},
	}, employee)
}

// ─────────────────────────────────────────────
// toUpdateDocument
// ─────────────────────────────────────────────

func TestToUpdateDocument_OnlyPresentFields(t *testing.T) {
	salary := int64(300)
	update := toUpdateDocument(models.EmployeePatch{Salary: &salary})

	require.Len(t, update, 1)
	assert.Equal(t, "$set", update[0].Key)
	assert.Equal(t, bson.D{{Key: "salary", Value: int64(300)}}, update[0].Value)
}

func TestToUpdateDocument_AllFields(t *testing.T) {
	name, department, salary := "Ada", "R&D", int64(1)
	date := mustDate(t, "2024-02-29")
	skills := []string{"Go", "SQL"}

	update := toUpdateDocument(models.EmployeePatch{
		Name:        &name,
		Department:  &department,
		Salary:      &salary,
		JoiningDate: &date,
		Skills:      &skills,
	})

	set := update[0].Value.(bson.D).Map()
	assert.Equal(t, "Ada", set["name"])
	assert.Equal(t, "R&D", set["department"])
	assert.Equal(t, int64(1), set["salary"])
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), set["joining_date"])
	assert.Equal(t, []string{"Go", "SQL"}, set["skills"])
}

func TestToUpdateDocument_NilSkillsSliceBecomesEmpty(t *testing.T) {
	var skills []string
	update := toUpdateDocument(models.EmployeePatch{Skills: &skills})

	set := update[0].Value.(bson.D).Map()
	assert.Equal(t, []string{}, set["skills"])
}
