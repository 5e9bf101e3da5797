// Package api exposes the deployment preflight checks over HTTP, so that
// multiple automation entry points share one source of truth for the
// naming and credential rules.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wphost/preflight/internal/core/naming"
	"github.com/wphost/preflight/internal/core/params"
	"github.com/wphost/preflight/internal/core/validation"
)

// =============================================================================
// Handler
// =============================================================================

// Handler serves the preflight API.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler with the given logger.
func NewHandler(l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{logger: l}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.jsonContentType)

	// Health endpoint
	r.Get("/health", h.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/validate", h.handleValidate)
		r.Get("/projection", h.handleProjection)
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleValidate runs the full rule set over the posted parameters.
// 200 with the validated bundle on success, 422 with the complete ordered
// violation list on failure. The password is consumed but never echoed back.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	p := params.FromMap(req)
	projections := naming.Project(p.EnvironmentName, p.SiteName)

	validated, violations := validation.Validate(p)
	if validated == nil {
		h.logger.Info("validation failed",
			"environment", p.EnvironmentName,
			"violations", len(violations),
		)
		h.writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{
			Valid:       false,
			Violations:  toViolationResponses(violations),
			Projections: projections,
		})
		return
	}

	h.logger.Info("validation passed", "environment", p.EnvironmentName)
	h.writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:       true,
		Parameters:  toParametersResponse(validated),
		Projections: projections,
	})
}

// handleProjection reports the projected name lengths for an environment/site
// pair without needing credentials.
func (h *Handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	environment := r.URL.Query().Get("environment")
	if environment == "" {
		h.writeError(w, http.StatusBadRequest, "environment query parameter is required", "validation_error")
		return
	}
	site := r.URL.Query().Get("site")
	if site == "" {
		site = params.DefaultSiteName
	}

	h.writeJSON(w, http.StatusOK, ProjectionResponse{
		EnvironmentName: environment,
		SiteName:        site,
		Projections:     naming.Project(environment, site),
	})
}

// =============================================================================
// Helpers
// =============================================================================

func toViolationResponses(violations []validation.Violation) []ViolationResponse {
	resp := make([]ViolationResponse, 0, len(violations))
	for _, v := range violations {
		resp = append(resp, ViolationResponse{Violation: v, Message: v.Message()})
	}
	return resp
}

func toParametersResponse(v *validation.ValidatedParameters) *ParametersResponse {
	return &ParametersResponse{
		EnvironmentName:   v.EnvironmentName,
		SiteName:          v.SiteName,
		DatabaseAdminUser: v.DatabaseAdminUser,
		AllowedIPAddress:  v.AllowedIPAddress,
		ResourceGroupName: v.ResourceGroupName,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
