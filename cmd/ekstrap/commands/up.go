package commands

import (
	"github.com/spf13/cobra"

	"github.com/ekstrap/ekstrap/cmd/ekstrap/handlers"
)

// Up returns the command for provisioning the cluster.
//
// Optional flags:
//
//	--config, -c: Path to cluster configuration YAML file (default: auto-detect ekstrap.yaml)
//
// Environment variables:
//
//	AWS credentials are taken from the standard chain (env, profile, IMDS).
func Up() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create or update the cluster",
		Long: `Create or update your EKS cluster.

This command declares the network, subnets, IAM roles, control plane, and
worker node group, and lets the engine apply the difference against the
stack's current state. On success the kubeconfig is written to the current
directory.

If no config file is specified, it looks for ekstrap.yaml in the current
directory. Use 'ekstrap init' to create a configuration file.

Examples:
  # Create cluster using ekstrap.yaml in current directory
  ekstrap up

  # Create cluster using specific config file
  ekstrap up -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: ekstrap.yaml)")

	return cmd
}

// Preview returns the command for previewing changes without applying them.
func Preview() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show what an update would change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Preview(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: ekstrap.yaml)")

	return cmd
}
