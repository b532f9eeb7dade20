// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/go-employees/internal/utils"
	"github.com/MKhiriev/go-employees/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// It answers with HTTP 405 and a JSON error body. The "Allow" header lists
// the methods that router accepts for the requested path, found by matching
// the path against every registered route (including mounted sub-routers).
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteJSON(w, models.ErrorResponse{Detail: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
	}
}

// allowedMethods returns the sorted methods routes accepts for path.
func allowedMethods(routes chi.Routes, path string) []string {
	var allowed []string
	for _, method := range []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	} {
		if routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	sort.Strings(allowed)

	return allowed
}

// notFound answers unknown paths with HTTP 404 and a JSON error body.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
