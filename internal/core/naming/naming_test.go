package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ProjectedLength Tests
// =============================================================================

func TestProjectedLength_TableDriven(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		env      string
		site     string
		want     int
	}{
		{"storage_default_env", "storage account", "wprod", "wpsite", 20},     // 2+5+13
		{"storage_max_env", "storage account", "abcdefghi", "wpsite", 24},     // 2+9+13
		{"database_default_env", "database server", "wprod", "wpsite", 25},    // 6+5+1+13
		{"cache_default_env", "cache cluster", "wprod", "wpsite", 25},         // 6+5+1+13
		{"network_default_env", "network", "wprod", "wpsite", 10},             // 5+5
		{"compute_env_default", "compute environment", "wprod", "wpsite", 9},  // 4+5
		{"compute_app_default", "compute app", "wprod", "wpsite", 15},         // 3+6+1+5
		{"compute_app_long_site", "compute app", "abcdefghi", "aaaaaaaaaaaaaaaaaaaa", 33}, // 3+20+1+9
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := templateFor(t, tt.resource)
			assert.Equal(t, tt.want, tmpl.ProjectedLength(tt.env, tt.site))
		})
	}
}

// =============================================================================
// PreviewName Tests
// =============================================================================

func TestPreviewName_StorageAccount(t *testing.T) {
	tmpl := templateFor(t, "storage account")
	assert.Equal(t, "stwprod{token}", tmpl.PreviewName("wprod", "wpsite"))
}

func TestPreviewName_DatabaseServer(t *testing.T) {
	tmpl := templateFor(t, "database server")
	assert.Equal(t, "mysql-wprod-{token}", tmpl.PreviewName("wprod", "wpsite"))
}

func TestPreviewName_ComputeApp(t *testing.T) {
	tmpl := templateFor(t, "compute app")
	assert.Equal(t, "ca-wpsite-wprod", tmpl.PreviewName("wprod", "wpsite"))
}

func TestPreviewName_Network(t *testing.T) {
	tmpl := templateFor(t, "network")
	assert.Equal(t, "vnet-wprod", tmpl.PreviewName("wprod", "wpsite"))
}

// =============================================================================
// Project Tests
// =============================================================================

func TestProject_AllPassAtMaxEnvWithDefaultSite(t *testing.T) {
	report := Project("abcdefghi", "wpsite")
	require.Len(t, report, len(Catalog))
	for _, proj := range report {
		assert.True(t, proj.OK, "resource %s: %d > %d", proj.Resource, proj.ProjectedLength, proj.MaxLength)
		assert.Equal(t, proj.MaxLength-proj.ProjectedLength, proj.Remaining)
	}
}

func TestProject_LongSiteOverflowsComputeApp(t *testing.T) {
	// 3 + 20 + 1 + 9 = 33 > 32
	report := Project("abcdefghi", "aaaaaaaaaaaaaaaaaaaa")
	var app *Projection
	for i := range report {
		if report[i].Resource == "compute app" {
			app = &report[i]
		}
	}
	require.NotNil(t, app)
	assert.False(t, app.OK)
	assert.Equal(t, 33, app.ProjectedLength)
	assert.Equal(t, 32, app.MaxLength)
	assert.Equal(t, -1, app.Remaining)
}

func TestProject_Deterministic(t *testing.T) {
	first := Project("wprod", "wpsite")
	second := Project("wprod", "wpsite")
	assert.Equal(t, first, second)
}

func TestProject_CatalogOrder(t *testing.T) {
	report := Project("wprod", "wpsite")
	require.Len(t, report, 6)
	want := []string{
		"storage account",
		"database server",
		"cache cluster",
		"network",
		"compute environment",
		"compute app",
	}
	for i, proj := range report {
		assert.Equal(t, want[i], proj.Resource)
	}
}

// =============================================================================
// MaxEnvironmentNameLength Tests
// =============================================================================

func TestMaxEnvironmentNameLength_DerivedFromStorageBudget(t *testing.T) {
	// storage account dominates: 24 - len("st") - 13 = 9
	assert.Equal(t, 9, MaxEnvironmentNameLength())
}

func TestMaxEnvironmentNameLength_MatchesCatalogMinimum(t *testing.T) {
	// Recompute the bound independently over the env-only templates; the
	// compute app template embeds the site name and cannot contribute.
	min := -1
	for _, tmpl := range Catalog {
		if tmpl.WithSite {
			continue
		}
		budget := tmpl.MaxLen - len(tmpl.Prefix)
		if tmpl.SuffixLen > 0 {
			budget -= len(tmpl.SuffixSep) + tmpl.SuffixLen
		}
		if min < 0 || budget < min {
			min = budget
		}
	}
	assert.Equal(t, min, MaxEnvironmentNameLength())
}

// =============================================================================
// Helpers
// =============================================================================

func templateFor(t *testing.T, resource string) NameTemplate {
	t.Helper()
	for _, tmpl := range Catalog {
		if tmpl.Resource == resource {
			return tmpl
		}
	}
	t.Fatalf("no template for resource %q", resource)
	return NameTemplate{}
}
