package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-employees/internal/service"
	"github.com/MKhiriev/go-employees/internal/utils"
	"github.com/MKhiriev/go-employees/internal/validators"
	"github.com/MKhiriev/go-employees/models"
	"github.com/go-chi/chi/v5"
)

const employeeIDParam = "employee_id"

// createEmployeeRequest shadows Salary so that a missing value can be told
// apart from an explicit 0.
type createEmployeeRequest struct {
	models.Employee
	Salary *int64 `json:"salary"`
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if req.Salary == nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptySalary))
		return
	}

	employee := req.Employee
	employee.Salary = *req.Salary
	// the store assigns the identifier
	employee.ID = ""

	created, err := h.services.EmployeeService.CreateEmployee(r.Context(), employee)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.services.EmployeeService.GetEmployee(r.Context(), chi.URLParam(r, employeeIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, employee, http.StatusOK)
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter := models.ListFilter{
		Department: r.URL.Query().Get("department"),
		Page:       page,
	}

	employees, err := h.services.EmployeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, nonNilEmployees(employees), http.StatusOK)
}

func (h *Handler) searchEmployeesBySkill(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	search := models.SkillSearch{
		Skill: r.URL.Query().Get("skill"),
		Page:  page,
	}

	employees, err := h.services.EmployeeService.SearchBySkill(r.Context(), search)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, employees, http.StatusOK)
}

func (h *Handler) averageSalaryByDepartment(w http.ResponseWriter, r *http.Request) {
	averages, err := h.services.EmployeeService.AverageSalaryByDepartment(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, averages, http.StatusOK)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var patch models.EmployeePatch
	if err := utils.ReadJSON(r, &patch); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	employee, err := h.services.EmployeeService.UpdateEmployee(r.Context(), chi.URLParam(r, employeeIDParam), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, employee, http.StatusOK)
}

// deleteEmployee answers 200 even when the employee does not exist; the body
// carries the outcome.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.EmployeeService.DeleteEmployee(r.Context(), chi.URLParam(r, employeeIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// pageFromQuery reads skip and limit, applying defaults for absent values.
// Range checks are left to the service layer.
func pageFromQuery(r *http.Request) (models.Page, error) {
	page := models.Page{Skip: 0, Limit: models.DefaultPageLimit}
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.Page{}, fmt.Errorf("%w: skip must be an integer", ErrInvalidQueryParameter)
		}
		page.Skip = skip
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.Page{}, fmt.Errorf("%w: limit must be an integer", ErrInvalidQueryParameter)
		}
		page.Limit = limit
	}

	return page, nil
}

func nonNilEmployees(employees []models.Employee) []models.Employee {
	if employees == nil {
		return []models.Employee{}
	}
	return employees
}
