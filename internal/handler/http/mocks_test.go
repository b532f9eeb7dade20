package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/service"
	"github.com/MKhiriev/go-employees/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.Credential, error)
	createTokenFn func(ctx context.Context, credential models.Credential) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Credential, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.Credential{Username: credentials.Username}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, credential models.Credential) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, credential)
	}
	return models.Token{SignedString: "signed-" + credential.Username, Username: credential.Username}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{SignedString: tokenString, Username: "admin"}, nil
}

type mockEmployeeService struct {
	createFn func(ctx context.Context, employee models.Employee) (models.Employee, error)
	getFn    func(ctx context.Context, employeeID string) (models.Employee, error)
	listFn   func(ctx context.Context, filter models.ListFilter) ([]models.Employee, error)
	searchFn func(ctx context.Context, search models.SkillSearch) ([]models.Employee, error)
	avgFn    func(ctx context.Context) ([]models.DepartmentSalary, error)
	updateFn func(ctx context.Context, employeeID string, patch models.EmployeePatch) (models.Employee, error)
	deleteFn func(ctx context.Context, employeeID string) (models.DeleteResult, error)
}

func (m *mockEmployeeService) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	if m.createFn != nil {
		return m.createFn(ctx, employee)
	}
	return employee, nil
}

func (m *mockEmployeeService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	if m.getFn != nil {
		return m.getFn(ctx, employeeID)
	}
	return models.Employee{EmployeeID: employeeID, Skills: []string{}}, nil
}

func (m *mockEmployeeService) ListEmployees(ctx context.Context, filter models.ListFilter) ([]models.Employee, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockEmployeeService) SearchBySkill(ctx context.Context, search models.SkillSearch) ([]models.Employee, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, search)
	}
	return nil, service.ErrNoEmployeesFound
}

func (m *mockEmployeeService) AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error) {
	if m.avgFn != nil {
		return m.avgFn(ctx)
	}
	return nil, service.ErrNoEmployeesFound
}

func (m *mockEmployeeService) UpdateEmployee(ctx context.Context, employeeID string, patch models.EmployeePatch) (models.Employee, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, employeeID, patch)
	}
	return models.Employee{EmployeeID: employeeID, Skills: []string{}}, nil
}

func (m *mockEmployeeService) DeleteEmployee(ctx context.Context, employeeID string) (models.DeleteResult, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, employeeID)
	}
	return models.DeleteResult{Success: true, Message: "Employee " + employeeID + " deleted"}, nil
}

type mockAppInfoService struct {
	info models.AppInfo
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return m.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with a nop logger and the given services.
// Nil services are replaced with default mocks.
func newTestHandler(services *service.Services, settings Settings) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.EmployeeService == nil {
		services.EmployeeService = &mockEmployeeService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{info: models.AppInfo{Version: "test-version", Storage: "mongo"}}
	}

	return NewHandler(services, settings, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
