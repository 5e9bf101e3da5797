package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// execute runs the CLI with the given args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func exitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitConfigError
}

// =============================================================================
// Check Command Tests
// =============================================================================

func TestCheck_ValidParameters(t *testing.T) {
	clearEnv(t)

	out, err := execute(t,
		"check",
		"--environment", "wprod",
		"--db-admin-password", "P@ssw0rd123!",
	)

	assert.NoError(t, err)
	assert.Equal(t, ExitSuccess, exitCodeOf(err))
	assert.Contains(t, out, "validation passed")
	assert.Contains(t, out, "stwprod{token}")
	assert.NotContains(t, out, "P@ssw0rd123!", "password must never be printed")
}

func TestCheck_InvalidEnvironmentName(t *testing.T) {
	clearEnv(t)

	out, err := execute(t,
		"check",
		"--environment", "wordpress-prod",
		"--db-admin-password", "P@ssw0rd123!",
	)

	require.Error(t, err)
	assert.Equal(t, ExitValidationError, exitCodeOf(err))
	assert.Contains(t, out, "validation failed (3 violation(s))")
	assert.Contains(t, out, "environmentName must be 1-9 characters, got 14")
	assert.Contains(t, out, "environmentName may only contain lowercase letters and digits (a-z0-9)")
}

func TestCheck_ParametersFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("AZURE_ENV_NAME", "wprod")
	t.Setenv("MYSQL_ADMIN_PASSWORD", "P@ssw0rd123!")

	_, err := execute(t, "check")

	assert.NoError(t, err)
}

func TestCheck_FlagOverridesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("AZURE_ENV_NAME", "wordpress-prod") // would fail
	t.Setenv("MYSQL_ADMIN_PASSWORD", "P@ssw0rd123!")

	_, err := execute(t, "check", "--environment", "wprod")

	assert.NoError(t, err)
}

func TestCheck_JSONOutput(t *testing.T) {
	clearEnv(t)

	out, err := execute(t,
		"check",
		"--environment", "wprod",
		"--db-admin-password", "P@ssw0rd123!",
		"--output", "json",
	)

	require.NoError(t, err)

	var report CheckReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Valid)
	assert.Equal(t, "wprod", report.Parameters.EnvironmentName)
	assert.Len(t, report.Projections, 6)
	assert.NotContains(t, out, "P@ssw0rd123!")
}

func TestCheck_UnknownOutputFormat(t *testing.T) {
	clearEnv(t)

	_, err := execute(t,
		"check",
		"--environment", "wprod",
		"--db-admin-password", "P@ssw0rd123!",
		"--output", "xml",
	)

	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCodeOf(err))
}

func TestCheck_MissingRequiredParameters(t *testing.T) {
	clearEnv(t)

	out, err := execute(t, "check")

	require.Error(t, err)
	assert.Equal(t, ExitValidationError, exitCodeOf(err))
	assert.Contains(t, out, "environmentName is required")
	assert.Contains(t, out, "databaseAdminPassword is required")
}

// =============================================================================
// Explain Command Tests
// =============================================================================

func TestExplain_DefaultSite(t *testing.T) {
	clearEnv(t)

	out, err := execute(t, "explain", "--environment", "wprod")

	require.NoError(t, err)
	assert.Contains(t, out, "stwprod{token}")
	assert.Contains(t, out, "mysql-wprod-{token}")
	assert.Contains(t, out, "ca-wpsite-wprod")
	assert.Contains(t, out, "max 9")
}

func TestExplain_JSONOutput(t *testing.T) {
	clearEnv(t)

	out, err := execute(t, "explain", "--environment", "wprod", "--output", "json")

	require.NoError(t, err)

	var report ExplainReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "wprod", report.EnvironmentName)
	assert.Equal(t, "wpsite", report.SiteName)
	assert.Equal(t, 9, report.MaxEnvironmentLength)
	assert.Equal(t, 13, report.SuffixTokenLength)
	require.Len(t, report.Projections, 6)
	assert.Equal(t, 20, report.Projections[0].ProjectedLength)
}

func TestExplain_MissingEnvironment(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "explain")

	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCodeOf(err))
}

// =============================================================================
// Version Command Tests
// =============================================================================

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "preflight")
	assert.Contains(t, out, Version)
}
