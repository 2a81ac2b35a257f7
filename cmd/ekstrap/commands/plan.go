package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ekstrap/ekstrap/cmd/ekstrap/handlers"
)

// Plan returns the command for printing the resource graph.
func Plan() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the resource graph as YAML",
		Long: `Print the resource graph that would be handed to the engine.

The graph lists the network, subnets (with their zone assignment), roles,
policy attachments, cluster, and node group. Nothing is created.

Examples:
  # Show the plan for ekstrap.yaml
  ekstrap plan`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), configPath, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: ekstrap.yaml)")

	return cmd
}
