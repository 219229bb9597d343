// Package main provides the entry point for the doclens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for doclens.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doclens",
		Short: "Interactive dashboard for documentation analysis reports",
		Long: `doclens renders a pre-computed cross-document analysis report as an
interactive terminal dashboard with six views: overview, document
explorer, terminology hub, compliance dashboard, redundancy & gaps,
and recommendations.

All analysis is performed upstream; doclens only loads the report file
and displays it. Use "doclens export" for non-interactive text, JSON,
or markdown output.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file")

	// Add subcommands
	cmd.AddCommand(NewViewCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
