package commands

import (
	"github.com/spf13/cobra"

	"github.com/ekstrap/ekstrap/cmd/ekstrap/handlers"
)

// Init returns the command for creating a cluster configuration file.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a cluster configuration file",
		Long: `Create an ekstrap cluster configuration file.

On an interactive terminal a short wizard collects the cluster name, region,
instance type, and node group sizing. In scripts the defaults are written
unchanged.

Examples:
  # Create ekstrap.yaml interactively
  ekstrap init

  # Write to a different file
  ekstrap init -o production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: ekstrap.yaml)")

	return cmd
}
