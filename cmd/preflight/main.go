// Command preflight validates WordPress deployment parameters and projects
// provisioned resource names against platform limits before any resource is
// touched. One source of truth for the rules, invoked from the CLI or served
// over HTTP to other automation entry points.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess         = 0
	ExitValidationError = 1
	ExitConfigError     = 2
	ExitHTTPServerError = 3
)

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

// =============================================================================
// Entry Point
// =============================================================================

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", ee.err)
			}
			return ee.code
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitConfigError
	}
	return ExitSuccess
}

// =============================================================================
// Root Command
// =============================================================================

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "preflight",
		Short:         "Deployment parameter validation and resource-naming safety checks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(newCheckCmd(&configPath))
	root.AddCommand(newExplainCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "preflight %s (built %s)\n", Version, BuildTime)
		},
	}
}
