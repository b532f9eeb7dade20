package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/service"
	"github.com/MKhiriev/go-employees/internal/store"
	"github.com/MKhiriev/go-employees/internal/utils"
	"github.com/MKhiriev/go-employees/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:        http.StatusBadRequest,
	service.ErrNoEmployeesFound:        http.StatusNotFound,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmployeeAlreadyExists: http.StatusBadRequest,
	store.ErrEmployeeNotFound:      http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidQueryParameter:      http.StatusBadRequest,
	ErrInvalidForm:                http.StatusBadRequest,
}

// errorDetailMap holds the client-facing message for errors whose text is
// not meant for the response body.
var errorDetailMap = map[error]string{
	service.ErrNoFieldsToUpdate:        "No fields provided for update",
	service.ErrNoEmployeesFound:        "Employee not found",
	service.ErrInvalidCredentials:      "Invalid credentials",
	service.ErrTokenIsExpiredOrInvalid: "Invalid token",

	store.ErrEmployeeAlreadyExists: "employee_id already exists",
	store.ErrEmployeeNotFound:      "Employee not found",

	ErrEmptyAuthorizationHeader:   "Not authenticated",
	ErrInvalidAuthorizationHeader: "Not authenticated",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error, status int) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	return err.Error()
}

// writeError answers with the status mapped from err and a JSON
// {"detail": ...} body. 401 responses carry a Bearer challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: detailFromError(err, status)}, status)
}
