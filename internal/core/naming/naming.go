// Package naming projects provisioned resource names against platform length
// limits before any provisioning call is made.
//
// This package is part of the functional core: all functions are pure
// (no I/O, no side effects). The single Catalog below is the one source of
// truth for prefixes, suffix reservation, and platform maximums; a platform
// limit change is a one-place edit here.
package naming

import "strconv"

// =============================================================================
// Constants
// =============================================================================

// SuffixTokenLength is the length reserved for the platform-generated
// uniqueness token appended to some resource names. The token itself is
// produced by the provisioning platform; this package only budgets for it.
const SuffixTokenLength = 13

// SuffixPlaceholder stands in for the platform token in preview names.
const SuffixPlaceholder = "{token}"

// MinEnvironmentNameLength is the lower bound on the environment name.
const MinEnvironmentNameLength = 1

// =============================================================================
// Types
// =============================================================================

// NameTemplate describes how one provisioned resource derives its name from
// the environment name (and optionally the site name), and the maximum name
// length the platform enforces for it.
type NameTemplate struct {
	// Resource is the human-readable resource kind, used in reports
	// and violation messages.
	Resource string

	// Prefix is the fixed literal the name starts with, including any
	// trailing separator (e.g. "mysql-").
	Prefix string

	// WithSite inserts the site name and a "-" separator between the
	// prefix and the environment name.
	WithSite bool

	// SuffixSep separates the environment name from the platform suffix
	// token. Only meaningful when SuffixLen > 0; empty means the token is
	// appended directly.
	SuffixSep string

	// SuffixLen is the reserved length of the platform suffix token.
	// Zero means the name carries no suffix.
	SuffixLen int

	// MaxLen is the platform-enforced maximum length for this name.
	MaxLen int
}

// Projection is the result of projecting one resource name for a given
// environment/site pair.
type Projection struct {
	Resource        string `json:"resource" yaml:"resource"`
	Preview         string `json:"preview" yaml:"preview"`
	ProjectedLength int    `json:"projected_length" yaml:"projected_length"`
	MaxLength       int    `json:"max_length" yaml:"max_length"`
	Remaining       int    `json:"remaining" yaml:"remaining"`
	OK              bool   `json:"ok" yaml:"ok"`
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog lists every resource name this stack derives from the deployment
// parameters, with the platform limits they must fit.
var Catalog = []NameTemplate{
	{Resource: "storage account", Prefix: "st", SuffixLen: SuffixTokenLength, MaxLen: 24},
	{Resource: "database server", Prefix: "mysql-", SuffixSep: "-", SuffixLen: SuffixTokenLength, MaxLen: 63},
	{Resource: "cache cluster", Prefix: "redis-", SuffixSep: "-", SuffixLen: SuffixTokenLength, MaxLen: 63},
	{Resource: "network", Prefix: "vnet-", MaxLen: 64},
	{Resource: "compute environment", Prefix: "cae-", MaxLen: 32},
	{Resource: "compute app", Prefix: "ca-", WithSite: true, MaxLen: 32},
}

// =============================================================================
// Projection Functions
// =============================================================================

// ProjectedLength returns the length the resource name would have for the
// given environment and site names, counting the reserved suffix token.
func (t NameTemplate) ProjectedLength(environmentName, siteName string) int {
	n := len(t.Prefix) + len(environmentName)
	if t.WithSite {
		n += len(siteName) + 1
	}
	if t.SuffixLen > 0 {
		n += len(t.SuffixSep) + t.SuffixLen
	}
	return n
}

// PreviewName renders the name the platform would generate, with
// SuffixPlaceholder standing in for the platform token.
func (t NameTemplate) PreviewName(environmentName, siteName string) string {
	name := t.Prefix
	if t.WithSite {
		name += siteName + "-"
	}
	name += environmentName
	if t.SuffixLen > 0 {
		name += t.SuffixSep + SuffixPlaceholder
	}
	return name
}

// Project computes the projection for one template.
func (t NameTemplate) Project(environmentName, siteName string) Projection {
	length := t.ProjectedLength(environmentName, siteName)
	return Projection{
		Resource:        t.Resource,
		Preview:         t.PreviewName(environmentName, siteName),
		ProjectedLength: length,
		MaxLength:       t.MaxLen,
		Remaining:       t.MaxLen - length,
		OK:              length <= t.MaxLen,
	}
}

// Project returns the projection report for every resource in the Catalog,
// in catalog order. Deterministic: identical inputs yield identical reports.
func Project(environmentName, siteName string) []Projection {
	report := make([]Projection, 0, len(Catalog))
	for _, t := range Catalog {
		report = append(report, t.Project(environmentName, siteName))
	}
	return report
}

// MaxEnvironmentNameLength derives the tightest environment-name length bound
// from the Catalog: the smallest remaining budget across templates whose only
// variable part is the environment name. Templates that also embed the site
// name cannot bound the environment name alone and are skipped.
//
// With the shipped constants the storage account template dominates
// (24 - 2 - 13 = 9); the bound is derived rather than hardcoded so that a
// prefix or suffix-length change recomputes it.
func MaxEnvironmentNameLength() int {
	max := -1
	for _, t := range Catalog {
		if t.WithSite {
			continue
		}
		budget := t.MaxLen - len(t.Prefix)
		if t.SuffixLen > 0 {
			budget -= len(t.SuffixSep) + t.SuffixLen
		}
		if max < 0 || budget < max {
			max = budget
		}
	}
	if max < MinEnvironmentNameLength {
		// The catalog constants would make every environment name invalid.
		panic("naming: catalog leaves no room for an environment name (budget " +
			strconv.Itoa(max) + ")")
	}
	return max
}
