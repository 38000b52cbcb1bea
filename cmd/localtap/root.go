// Package main provides the entry point for the localtap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for localtap.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "localtap",
		Short: "Localhost attack-surface scanner",
		Long: `LocalTap audits the attack surface a machine exposes on loopback.

It probes the conventional ports of developer tools, AI stacks, databases,
and local infrastructure, using connection timing to tell reachable services
from closed ports, and reports what a malicious web page could also reach.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewServeCmd())
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
