package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/wphost/preflight/internal/core/naming"
	"github.com/wphost/preflight/internal/core/params"
)

// =============================================================================
// Explain Command
// =============================================================================

func newExplainCmd(configPath *string) *cobra.Command {
	var (
		environment string
		site        string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Report projected resource name lengths for an environment/site pair",
		Long: `Explain computes the name every resource would receive for the given
environment and site names, with the platform suffix token shown as {token},
and reports each projected length against its platform limit. No credentials
are needed; the report is purely informational and always exits 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return &exitError{code: ExitConfigError, err: err}
			}

			if environment == "" {
				environment = cfg.Parameters.EnvironmentName
			}
			if site == "" {
				site = cfg.Parameters.SiteName
			}
			if site == "" {
				site = params.DefaultSiteName
			}
			if environment == "" {
				return &exitError{
					code: ExitConfigError,
					err:  errors.New("environment name is required (--environment or AZURE_ENV_NAME)"),
				}
			}

			report := ExplainReport{
				EnvironmentName:      environment,
				SiteName:             site,
				MaxEnvironmentLength: naming.MaxEnvironmentNameLength(),
				SuffixTokenLength:    naming.SuffixTokenLength,
				Projections:          naming.Project(environment, site),
			}
			if err := renderExplainReport(cmd.OutOrStdout(), output, report); err != nil {
				return &exitError{code: ExitConfigError, err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&environment, "environment", "", "environment name seeding all resource names")
	cmd.Flags().StringVar(&site, "site", "", "site name used in the compute app name (default \"wpsite\")")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json, or yaml")

	return cmd
}
