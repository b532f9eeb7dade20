package http

import (
	"net/http"

	"github.com/MKhiriev/go-employees/internal/utils"
	"github.com/MKhiriev/go-employees/models"
)

const rootMessage = "Employees API is running!"

// root is the public health check.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: rootMessage}, http.StatusOK)
}

// getServerVersion reports the version, storage driver and auth mode.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
