// Package params defines the deployment parameter record and its construction
// from flat key-value input.
//
// This package is part of the functional core: all functions are pure, with
// no I/O and no side effects. The imperative shells (CLI, HTTP API) construct
// a DeploymentParameters value from their own input source and hand it to
// internal/core/validation.
package params

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultSiteName is used when no site name is supplied.
	DefaultSiteName = "wpsite"

	// DefaultDatabaseAdminUser is used when no admin user is supplied.
	DefaultDatabaseAdminUser = "mysqladmin"
)

// =============================================================================
// Input Keys
// =============================================================================

// Canonical keys accepted in the flat input map. Each parameter also accepts
// an environment-variable alias, matching how deployment automation sources
// its input.
const (
	KeyEnvironmentName       = "environmentName"
	KeySiteName              = "siteName"
	KeyDatabaseAdminUser     = "databaseAdminUser"
	KeyDatabaseAdminPassword = "databaseAdminPassword"
	KeyAllowedIPAddress      = "allowedIpAddress"
	KeyResourceGroupName     = "resourceGroupName"
)

// Environment-variable aliases for each canonical key.
const (
	EnvEnvironmentName       = "AZURE_ENV_NAME"
	EnvSiteName              = "SITE_NAME"
	EnvDatabaseAdminUser     = "MYSQL_ADMIN_USER"
	EnvDatabaseAdminPassword = "MYSQL_ADMIN_PASSWORD"
	EnvAllowedIPAddress      = "ALLOWED_IP_ADDRESS"
	EnvResourceGroupName     = "RESOURCE_GROUP_NAME"
)

// =============================================================================
// Types
// =============================================================================

// DeploymentParameters is the proposed input for one deployment attempt.
// It is constructed once, validated synchronously, and never mutated.
//
// DatabaseAdminPassword is a secret: it is excluded from JSON and YAML
// serialization so that no rendered report or API response can carry it.
type DeploymentParameters struct {
	// EnvironmentName seeds the names of all provisioned resources.
	EnvironmentName string `json:"environment_name" yaml:"environment_name"`

	// SiteName contributes to the compute app name.
	SiteName string `json:"site_name" yaml:"site_name"`

	// DatabaseAdminUser is the managed database administrator login.
	DatabaseAdminUser string `json:"database_admin_user" yaml:"database_admin_user"`

	// DatabaseAdminPassword is the managed database administrator secret.
	DatabaseAdminPassword string `json:"-" yaml:"-"`

	// AllowedIPAddress optionally restricts inbound access. Empty means
	// unrestricted; the value is passed through unvalidated.
	AllowedIPAddress string `json:"allowed_ip_address,omitempty" yaml:"allowed_ip_address,omitempty"`

	// ResourceGroupName optionally overrides the derived resource group.
	ResourceGroupName string `json:"resource_group_name,omitempty" yaml:"resource_group_name,omitempty"`
}

// =============================================================================
// Construction
// =============================================================================

// FromMap builds a DeploymentParameters from a flat string map, accepting
// either the canonical key or its environment-variable alias for each field
// (canonical wins when both are present), and applying defaults for siteName
// and databaseAdminUser.
//
// Example:
//
//	p := params.FromMap(map[string]string{
//	    "AZURE_ENV_NAME":       "wprod",
//	    "MYSQL_ADMIN_PASSWORD": "P@ssw0rd123!",
//	})
//	// p.SiteName == "wpsite", p.DatabaseAdminUser == "mysqladmin"
func FromMap(values map[string]string) DeploymentParameters {
	p := DeploymentParameters{
		EnvironmentName:       lookup(values, KeyEnvironmentName, EnvEnvironmentName),
		SiteName:              lookup(values, KeySiteName, EnvSiteName),
		DatabaseAdminUser:     lookup(values, KeyDatabaseAdminUser, EnvDatabaseAdminUser),
		DatabaseAdminPassword: lookup(values, KeyDatabaseAdminPassword, EnvDatabaseAdminPassword),
		AllowedIPAddress:      lookup(values, KeyAllowedIPAddress, EnvAllowedIPAddress),
		ResourceGroupName:     lookup(values, KeyResourceGroupName, EnvResourceGroupName),
	}
	return p.WithDefaults()
}

// WithDefaults returns a copy with empty optional fields replaced by their
// defaults. EnvironmentName and DatabaseAdminPassword have no defaults; an
// empty value there is a validation failure, not a fallback.
func (p DeploymentParameters) WithDefaults() DeploymentParameters {
	if p.SiteName == "" {
		p.SiteName = DefaultSiteName
	}
	if p.DatabaseAdminUser == "" {
		p.DatabaseAdminUser = DefaultDatabaseAdminUser
	}
	return p
}

func lookup(values map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := values[k]; ok && v != "" {
			return v
		}
	}
	return ""
}
