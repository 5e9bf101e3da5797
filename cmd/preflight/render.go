package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/wphost/preflight/internal/core/naming"
	"github.com/wphost/preflight/internal/core/params"
	"github.com/wphost/preflight/internal/core/validation"
)

// =============================================================================
// Output Formats
// =============================================================================

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// =============================================================================
// Report Types
// =============================================================================

// CheckReport is the rendered outcome of a validation run. The parameter
// struct's own tags keep the password out of JSON and YAML output; the text
// renderer never prints it either.
type CheckReport struct {
	Valid       bool                        `json:"valid" yaml:"valid"`
	Parameters  params.DeploymentParameters `json:"parameters" yaml:"parameters"`
	Violations  []ViolationReport           `json:"violations,omitempty" yaml:"violations,omitempty"`
	Projections []naming.Projection         `json:"projections" yaml:"projections"`
}

// ViolationReport is one violated rule with its rendered message.
type ViolationReport struct {
	validation.Violation `yaml:",inline"`
	Message              string `json:"message" yaml:"message"`
}

// ExplainReport is the rendered projection report.
type ExplainReport struct {
	EnvironmentName      string              `json:"environment_name" yaml:"environment_name"`
	SiteName             string              `json:"site_name" yaml:"site_name"`
	MaxEnvironmentLength int                 `json:"max_environment_length" yaml:"max_environment_length"`
	SuffixTokenLength    int                 `json:"suffix_token_length" yaml:"suffix_token_length"`
	Projections          []naming.Projection `json:"projections" yaml:"projections"`
}

func toViolationReports(violations []validation.Violation) []ViolationReport {
	reports := make([]ViolationReport, 0, len(violations))
	for _, v := range violations {
		reports = append(reports, ViolationReport{Violation: v, Message: v.Message()})
	}
	return reports
}

// =============================================================================
// Rendering
// =============================================================================

func renderCheckReport(w io.Writer, format string, report CheckReport) error {
	switch format {
	case outputJSON:
		return renderJSON(w, report)
	case outputYAML:
		return renderYAML(w, report)
	case outputText:
		return renderCheckText(w, report)
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
	}
}

func renderExplainReport(w io.Writer, format string, report ExplainReport) error {
	switch format {
	case outputJSON:
		return renderJSON(w, report)
	case outputYAML:
		return renderYAML(w, report)
	case outputText:
		return renderExplainText(w, report)
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

func renderCheckText(w io.Writer, report CheckReport) error {
	fmt.Fprintf(w, "environment: %s\n", report.Parameters.EnvironmentName)
	fmt.Fprintf(w, "site:        %s\n", report.Parameters.SiteName)
	fmt.Fprintf(w, "db admin:    %s\n\n", report.Parameters.DatabaseAdminUser)

	if err := writeProjectionTable(w, report.Projections); err != nil {
		return err
	}

	if !report.Valid {
		fmt.Fprintf(w, "\nvalidation failed (%d violation(s)):\n", len(report.Violations))
		for _, v := range report.Violations {
			fmt.Fprintf(w, "  - %s\n", v.Message)
		}
		return nil
	}
	fmt.Fprintln(w, "\nvalidation passed: parameters are safe to deploy")
	return nil
}

func renderExplainText(w io.Writer, report ExplainReport) error {
	fmt.Fprintf(w, "environment:          %s (%d chars, max %d)\n",
		report.EnvironmentName, len(report.EnvironmentName), report.MaxEnvironmentLength)
	fmt.Fprintf(w, "site:                 %s\n", report.SiteName)
	fmt.Fprintf(w, "suffix token length:  %d\n\n", report.SuffixTokenLength)
	return writeProjectionTable(w, report.Projections)
}

func writeProjectionTable(w io.Writer, projections []naming.Projection) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RESOURCE\tPROJECTED NAME\tLENGTH\tLIMIT\tHEADROOM\tSTATUS")
	for _, p := range projections {
		status := "ok"
		if !p.OK {
			status = "too long"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			p.Resource, p.Preview, p.ProjectedLength, p.MaxLength, p.Remaining, status)
	}
	return tw.Flush()
}
