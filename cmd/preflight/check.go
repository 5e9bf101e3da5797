package main

import (
	"github.com/spf13/cobra"

	"github.com/wphost/preflight/internal/core/naming"
	"github.com/wphost/preflight/internal/core/params"
	"github.com/wphost/preflight/internal/core/validation"
)

// =============================================================================
// Check Command
// =============================================================================

func newCheckCmd(configPath *string) *cobra.Command {
	var (
		environment   string
		site          string
		dbUser        string
		dbPassword    string
		allowedIP     string
		resourceGroup string
		output        string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate deployment parameters against every rule",
		Long: `Check validates the proposed deployment parameters: environment name
length and charset, projected resource name lengths, database credential
rules, and resource group name syntax. All violations are reported in one
pass. Exits 0 when the parameters are safe to deploy, 1 otherwise.

Parameters are read from flags, the config file, or environment variables
(AZURE_ENV_NAME, SITE_NAME, MYSQL_ADMIN_USER, MYSQL_ADMIN_PASSWORD,
ALLOWED_IP_ADDRESS, RESOURCE_GROUP_NAME).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return &exitError{code: ExitConfigError, err: err}
			}
			logger := SetupLogger(cfg)

			values := cfg.Parameters.Map()
			overlay(values, params.KeyEnvironmentName, environment)
			overlay(values, params.KeySiteName, site)
			overlay(values, params.KeyDatabaseAdminUser, dbUser)
			overlay(values, params.KeyDatabaseAdminPassword, dbPassword)
			overlay(values, params.KeyAllowedIPAddress, allowedIP)
			overlay(values, params.KeyResourceGroupName, resourceGroup)

			p := params.FromMap(values)
			validated, violations := validation.Validate(p)

			report := CheckReport{
				Valid:       validated != nil,
				Parameters:  p,
				Violations:  toViolationReports(violations),
				Projections: naming.Project(p.EnvironmentName, p.SiteName),
			}
			if err := renderCheckReport(cmd.OutOrStdout(), output, report); err != nil {
				return &exitError{code: ExitConfigError, err: err}
			}

			if validated == nil {
				logger.Warn("validation failed",
					"environment", p.EnvironmentName,
					"violations", len(violations),
				)
				return &exitError{code: ExitValidationError}
			}
			logger.Info("validation passed", "environment", p.EnvironmentName)
			return nil
		},
	}

	cmd.Flags().StringVar(&environment, "environment", "", "environment name seeding all resource names")
	cmd.Flags().StringVar(&site, "site", "", "site name used in the compute app name (default \"wpsite\")")
	cmd.Flags().StringVar(&dbUser, "db-admin-user", "", "database admin user (default \"mysqladmin\")")
	cmd.Flags().StringVar(&dbPassword, "db-admin-password", "", "database admin password")
	cmd.Flags().StringVar(&allowedIP, "allowed-ip", "", "optional IP restriction, passed through unvalidated")
	cmd.Flags().StringVar(&resourceGroup, "resource-group", "", "optional caller-supplied resource group name")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json, or yaml")

	return cmd
}

// overlay replaces the map entry when the flag was given a non-empty value.
func overlay(values map[string]string, key, flagValue string) {
	if flagValue != "" {
		values[key] = flagValue
	}
}
