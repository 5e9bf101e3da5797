package validation

import (
	"regexp"

	"github.com/wphost/preflight/internal/core/naming"
	"github.com/wphost/preflight/internal/core/params"
)

// =============================================================================
// Rule Constants
// =============================================================================

const (
	// Database admin user bounds.
	adminUserMinLength = 1
	adminUserMaxLength = 16

	// Password minimum length.
	passwordMinLength = 8

	// Resource group name bounds.
	resourceGroupMinLength = 1
	resourceGroupMaxLength = 90
)

var (
	environmentNameRe = regexp.MustCompile(`^[a-z0-9]+$`)
	adminUserRe       = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	resourceGroupRe   = regexp.MustCompile(`^[a-zA-Z0-9._\-()]+$`)
)

// =============================================================================
// Types
// =============================================================================

// ValidatedParameters is a parameter set that passed every rule. It is safe
// to hand to the provisioning engine unchanged.
type ValidatedParameters struct {
	params.DeploymentParameters
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks every rule against the given parameters and collects all
// violations in rule order, rather than stopping at the first. On success it
// returns the validated bundle and a nil slice; on failure it returns nil and
// the complete ordered list of violations.
//
// Pure computation: no resource is touched, nothing is logged, and the
// password value never appears in any violation.
func Validate(p params.DeploymentParameters) (*ValidatedParameters, []Violation) {
	var violations []Violation

	violations = append(violations, checkEnvironmentName(p.EnvironmentName)...)
	violations = append(violations, checkProjections(p.EnvironmentName, p.SiteName)...)
	violations = append(violations, checkAdminUser(p.DatabaseAdminUser)...)
	violations = append(violations, checkPassword(p.DatabaseAdminPassword)...)
	violations = append(violations, checkResourceGroup(p.ResourceGroupName)...)

	if len(violations) > 0 {
		return nil, violations
	}
	return &ValidatedParameters{DeploymentParameters: p}, nil
}

// checkEnvironmentName enforces presence, the catalog-derived length bound,
// and the lowercase-alphanumeric charset. An empty name reports only
// MissingRequired; the length and charset rules presume a non-empty value.
func checkEnvironmentName(name string) []Violation {
	if name == "" {
		return []Violation{{Kind: KindMissingRequired, Field: params.KeyEnvironmentName}}
	}

	var violations []Violation
	max := naming.MaxEnvironmentNameLength()
	if len(name) < naming.MinEnvironmentNameLength || len(name) > max {
		violations = append(violations, Violation{
			Kind:   KindLengthOutOfRange,
			Field:  params.KeyEnvironmentName,
			Length: len(name),
			Min:    naming.MinEnvironmentNameLength,
			Max:    max,
		})
	}
	if !environmentNameRe.MatchString(name) {
		violations = append(violations, Violation{
			Kind:    KindInvalidCharset,
			Field:   params.KeyEnvironmentName,
			Allowed: "lowercase letters and digits (a-z0-9)",
		})
	}
	return violations
}

// checkProjections re-derives every resource name length for the actual
// environment/site pair. Evaluated even when the environment name itself is
// invalid: each rule is independently reportable.
func checkProjections(environmentName, siteName string) []Violation {
	var violations []Violation
	for _, proj := range naming.Project(environmentName, siteName) {
		if proj.OK {
			continue
		}
		violations = append(violations, Violation{
			Kind:            KindResourceNameTooLong,
			Resource:        proj.Resource,
			ProjectedLength: proj.ProjectedLength,
			MaxLength:       proj.MaxLength,
		})
	}
	return violations
}

func checkAdminUser(user string) []Violation {
	var violations []Violation
	if len(user) < adminUserMinLength || len(user) > adminUserMaxLength {
		violations = append(violations, Violation{
			Kind:   KindLengthOutOfRange,
			Field:  params.KeyDatabaseAdminUser,
			Length: len(user),
			Min:    adminUserMinLength,
			Max:    adminUserMaxLength,
		})
	}
	if user != "" && !adminUserRe.MatchString(user) {
		violations = append(violations, Violation{
			Kind:    KindInvalidCharset,
			Field:   params.KeyDatabaseAdminUser,
			Allowed: "letters and digits (a-zA-Z0-9)",
		})
	}
	return violations
}

// checkPassword enforces the minimum length and the four character classes.
// Each absent class is reported separately. An empty password reports only
// MissingRequired.
func checkPassword(password string) []Violation {
	if password == "" {
		return []Violation{{Kind: KindMissingRequired, Field: params.KeyDatabaseAdminPassword}}
	}

	var violations []Violation
	if len(password) < passwordMinLength {
		violations = append(violations, Violation{
			Kind:   KindLengthOutOfRange,
			Field:  params.KeyDatabaseAdminPassword,
			Length: len(password),
			Min:    passwordMinLength,
		})
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	for _, class := range []struct {
		present bool
		name    string
	}{
		{hasUpper, ClassUppercase},
		{hasLower, ClassLowercase},
		{hasDigit, ClassDigit},
		{hasSymbol, ClassSymbol},
	} {
		if !class.present {
			violations = append(violations, Violation{
				Kind:  KindMissingCharacterClass,
				Field: params.KeyDatabaseAdminPassword,
				Class: class.name,
			})
		}
	}
	return violations
}

// checkResourceGroup applies only when the caller supplies a name instead of
// letting the platform derive one.
func checkResourceGroup(name string) []Violation {
	if name == "" {
		return nil
	}

	var violations []Violation
	if len(name) < resourceGroupMinLength || len(name) > resourceGroupMaxLength {
		violations = append(violations, Violation{
			Kind:   KindLengthOutOfRange,
			Field:  params.KeyResourceGroupName,
			Length: len(name),
			Min:    resourceGroupMinLength,
			Max:    resourceGroupMaxLength,
		})
	}
	if !resourceGroupRe.MatchString(name) {
		violations = append(violations, Violation{
			Kind:    KindInvalidCharset,
			Field:   params.KeyResourceGroupName,
			Allowed: "letters, digits, and . _ - ( )",
		})
	}
	return violations
}
