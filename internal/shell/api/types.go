package api

import (
	"github.com/wphost/preflight/internal/core/naming"
	"github.com/wphost/preflight/internal/core/validation"
)

// =============================================================================
// Request Types
// =============================================================================

// ValidateRequest is a flat mapping of parameter keys to proposed values,
// accepting either canonical keys or their environment-variable aliases.
type ValidateRequest map[string]string

// =============================================================================
// Response Types
// =============================================================================

// ParametersResponse is the validated parameter bundle echoed back to the
// caller. The password is deliberately absent: the caller already holds it.
type ParametersResponse struct {
	EnvironmentName   string `json:"environment_name"`
	SiteName          string `json:"site_name"`
	DatabaseAdminUser string `json:"database_admin_user"`
	AllowedIPAddress  string `json:"allowed_ip_address,omitempty"`
	ResourceGroupName string `json:"resource_group_name,omitempty"`
}

// ViolationResponse is one violated rule with its rendered message.
type ViolationResponse struct {
	validation.Violation
	Message string `json:"message"`
}

// ValidateResponse is the outcome of a validation run.
type ValidateResponse struct {
	Valid       bool                `json:"valid"`
	Parameters  *ParametersResponse `json:"parameters,omitempty"`
	Violations  []ViolationResponse `json:"violations,omitempty"`
	Projections []naming.Projection `json:"projections"`
}

// ProjectionResponse is the resource-name projection report.
type ProjectionResponse struct {
	EnvironmentName string              `json:"environment_name"`
	SiteName        string              `json:"site_name"`
	Projections     []naming.Projection `json:"projections"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the error response format.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
