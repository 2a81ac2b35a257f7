// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the ekstrap CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ekstrap",
		Short: "Provision sandbox EKS clusters on AWS",
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Up())
	cmd.AddCommand(Preview())
	cmd.AddCommand(Destroy())

	// Inspection commands
	cmd.AddCommand(Plan())
	cmd.AddCommand(Doctor())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
