package commands

import (
	"github.com/spf13/cobra"

	"github.com/ekstrap/ekstrap/cmd/ekstrap/handlers"
)

// Destroy returns the command for tearing down the cluster.
func Destroy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the cluster and all its resources",
		Long: `Delete the cluster and every resource the stack owns.

Resources are deleted in reverse dependency order by the engine: node group,
cluster, role attachments, roles, subnets, network.

Examples:
  # Destroy cluster described by ekstrap.yaml
  ekstrap destroy

  # Destroy cluster using specific config file
  ekstrap destroy -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: ekstrap.yaml)")

	return cmd
}
