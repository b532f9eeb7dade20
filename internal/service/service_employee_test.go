package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/mock"
	"github.com/MKhiriev/go-employees/internal/store"
	"github.com/MKhiriev/go-employees/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type countingCollector struct {
	created int
	deleted int
}

func (c *countingCollector) RecordRequest(string, string, int, time.Duration) {}
func (c *countingCollector) RecordEmployeeCreated()                           { c.created++ }
func (c *countingCollector) RecordEmployeeDeleted()                           { c.deleted++ }

func newTestEmployeeSvc(t *testing.T) (EmployeeService, *mock.MockEmployeeRepository, *countingCollector) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEmployeeRepository(ctrl)
	collector := &countingCollector{}

	return NewEmployeeService(repo, collector, logger.Nop()), repo, collector
}

func sampleEmployee() models.Employee {
	return models.Employee{
		EmployeeID:  "E001",
		Name:        "Ada Lovelace",
		Department:  "Engineering",
		Salary:      100,
		JoiningDate: models.NewDate(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)),
		Skills:      []string{"Python", "Go"},
	}
}

var errStoreDown = errors.New("connection refused")

// ─────────────────────────────────────────────
// CreateEmployee
// ─────────────────────────────────────────────

func TestEmployeeService_Create_Success(t *testing.T) {
	svc, repo, collector := newTestEmployeeSvc(t)
	ctx := context.Background()
	in := sampleEmployee()
	stored := in
	stored.ID = "65a0c0ffee"

	gomock.InOrder(
		repo.EXPECT().FindByEmployeeID(ctx, "E001").Return(models.Employee{}, store.ErrEmployeeNotFound),
		repo.EXPECT().Create(ctx, in).Return(stored, nil),
	)

	got, err := svc.CreateEmployee(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, 1, collector.created)
}

func TestEmployeeService_Create_DefaultsSkills(t *testing.T) {
	svc, repo, _ := newTestEmployeeSvc(t)
	ctx := context.Background()
	in := sampleEmployee()
	in.Skills = nil

	repo.EXPECT().FindByEmployeeID(ctx, "E001").Return(models.Employee{}, store.ErrEmployeeNotFound)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.Employee) (models.Employee, error) {
			assert.NotNil(t, e.Skills)
			assert.Empty(t, e.Skills)
			return e, nil
		},
	)

	_, err := svc.CreateEmployee(ctx, in)
	require.NoError(t, err)
}

func TestEmployeeService_Create_AlreadyExists(t *testing.T) {
	svc, repo, collector := newTestEmployeeSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindByEmployeeID(ctx, "E001").Return(sampleEmployee(), nil)

	_, err := svc.CreateEmployee(ctx, sampleEmployee())

	assert.ErrorIs(t, err, store.ErrEmployeeAlreadyExists)
	assert.Zero(t, collector.created)
}

func TestEmployeeService_Create_ConcurrentDuplicateRejectedByStore(t *testing.T) {
	svc, repo, _ := newTestEmployeeSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindByEmployeeID(ctx, "E001").Return(models.Employee{}, store.ErrEmployeeNotFound)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(models.Employee{}, store.ErrEmployeeAlreadyExists)

	_, err := svc.CreateEmployee(ctx, sampleEmployee())

	assert.ErrorIs(t, err, store.ErrEmployeeAlreadyExists)
}

func TestEmployeeService_Create_LookupFails(t *testing.T) {
	svc, repo, _ := newTestEmployeeSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindByEmployeeID(ctx, "E001").Return(models.Employee{}, errStoreDown)

	_, err := svc.CreateEmployee(ctx, sampleEmployee())

	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, store.ErrEmployeeAlreadyExists)
}

// ─────────────────────────────────────────────
// GetEmployee / ListEmployees
// ─────────────────────────────────────────────

func TestEmployeeService_Get(t *testing.T) {
	svc, repo, _ := newTestEmployeeSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindByEmployeeID(ctx, "E001").Return(sampleEmployee(), nil)
	repo.EXPECT().FindByEmployeeID(ctx, "missing").Return(models.Employee{}, store.ErrEmployeeNotFound)

	got, err := svc.GetEmployee(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, "E001", got.EmployeeID)

	_, err = svc.GetEmployee(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

func TestEmployeeService_List_EmptyIsNotAnError(t *testing.T) {
	svc, repo, _ := newTestEmployeeSvc(t)
	ctx := context.Background()
	filter := models.ListFilter{Department: "Sales", Page: models.Page{Limit: 10}}

	repo.EXPECT().List(ctx, filter).Return([]models.Employee{}, nil)

	got, err := svc.ListEmployees(ctx, filter)

	require.NoError(t, err)
	assert.Empty(t, got)
}

// ─────────────────────────────────────────────
// SearchBySkill / AverageSalaryByDepartment
// ─────────────────────────────────────────────

func TestEmployeeService_SearchBySkill(t *testing.T) {
	ctx := context.Background()
	search := models.SkillSearch{Skill: "python", Page: models.Page{Limit: 10}}

	t.Run("found", func(t *testing.T) {
		svc, repo, _ := newTestEmployeeSvc(t)
		repo.EXPECT().SearchBySkill(ctx, search).Return([]models.Employee{sampleEmployee()}, nil)

		got, err := svc.SearchBySkill(ctx, search)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no matches", func(t *testing.T) {
		svc, repo, _ := newTestEmployeeSvc(t)
		repo.EXPECT().SearchBySkill(ctx, search).Return(nil, nil)

		_, err := svc.SearchBySkill(ctx, search)
		assert.ErrorIs(t, err, ErrNoEmployeesFound)
	})

	t.Run("store error", func(t *testing.T) {
		svc, repo, _ := newTestEmployeeSvc(t)
		repo.EXPECT().SearchBySkill(ctx, search).Return(nil, errStoreDown)

		_, err := svc.SearchBySkill(ctx, search)
		assert.ErrorIs(t, err, errStoreDown)
	})
}

func TestEmployeeService_AverageSalaryByDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, repo, _ := newTestEmployeeSvc(t)
		want := []models.DepartmentSalary{{Department: "Eng", AvgSalary: 150}}
		repo.EXPECT().AverageSalaryByDepartment(ctx).Return(want, nil)

		got, err := svc.AverageSalaryByDepartment(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("no employees", func(t *testing.T) {
		svc, repo, _ := newTestEmployeeSvc(t)
		repo.EXPECT().AverageSalaryByDepartment(ctx).Return([]models.DepartmentSalary{}, nil)

		_, err := svc.AverageSalaryByDepartment(ctx)
		assert.ErrorIs(t, err, ErrNoEmployeesFound)
	})
}

// ─────────────────────────────────────────────
// UpdateEmployee
// ─────────────────────────────────────────────

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	salary := int64(250)
	patch := models.EmployeePatch{Salary: &salary}

	t.Run("applies patch", func(t *testing.T) {
		svc, repo, _ := newTestEmployeeSvc(t)
		updated := sampleEmployee()
		updated.Salary = salary
		repo.EXPECT().Update(ctx, "E001", patch).Return(updated, nil)

		got, err := svc.UpdateEmployee(ctx, "E001", patch)
		require.NoError(t, err)
		assert.Equal(t, int64(250), got.Salary)
		assert.Equal(t, "Ada Lovelace", got.Name)
	})

	t.Run("empty patch never reaches the store", func(t *testing.T) {
		svc, _, _ := newTestEmployeeSvc(t)

		_, err := svc.UpdateEmployee(ctx, "E001", models.EmployeePatch{})
		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, repo, _ := newTestEmployeeSvc(t)
		repo.EXPECT().Update(ctx, "missing", patch).Return(models.Employee{}, store.ErrEmployeeNotFound)

		_, err := svc.UpdateEmployee(ctx, "missing", patch)
		assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
	})
}

// ─────────────────────────────────────────────
// DeleteEmployee
// ─────────────────────────────────────────────

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		svc, repo, collector := newTestEmployeeSvc(t)
		repo.EXPECT().Delete(ctx, "E001").Return(true, nil)

		got, err := svc.DeleteEmployee(ctx, "E001")
		require.NoError(t, err)
		assert.Equal(t, models.DeleteResult{Success: true, Message: "Employee E001 deleted"}, got)
		assert.Equal(t, 1, collector.deleted)
	})

	t.Run("not found is reported in the result", func(t *testing.T) {
		svc, repo, collector := newTestEmployeeSvc(t)
		repo.EXPECT().Delete(ctx, "missing").Return(false, nil)

		got, err := svc.DeleteEmployee(ctx, "missing")
		require.NoError(t, err)
		assert.Equal(t, models.DeleteResult{Success: false, Message: "Employee not found"}, got)
		assert.Zero(t, collector.deleted)
	})

	t.Run("store error", func(t *testing.T) {
		svc, repo, _ := newTestEmployeeSvc(t)
		repo.EXPECT().Delete(ctx, "E001").Return(false, errStoreDown)

		_, err := svc.DeleteEmployee(ctx, "E001")
		assert.ErrorIs(t, err, errStoreDown)
	})
}
