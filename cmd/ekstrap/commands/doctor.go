package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ekstrap/ekstrap/cmd/ekstrap/handlers"
)

// Doctor returns the command for advisory configuration checks.
//
// Optional flags:
//
//	--config, -c: Path to cluster configuration YAML file (default: auto-detect ekstrap.yaml)
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the configuration for inconsistencies",
		Long: `Check the cluster configuration for inconsistencies.

Checks performed:
  - node group sizing ordering (min <= desired <= max)
  - subnet blocks contained in the VPC block
  - subnet blocks pairwise disjoint
  - subnet distribution over availability zones

Findings are advisory. The up command accepts the configuration either way;
the provider has the last word.

Examples:
  # Check ekstrap.yaml
  ekstrap doctor

  # Get the report in JSON format
  ekstrap doctor --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath, jsonOutput, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: ekstrap.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
