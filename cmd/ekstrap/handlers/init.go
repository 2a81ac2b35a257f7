package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ekstrap/ekstrap/internal/config"
	"github.com/ekstrap/ekstrap/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive questionnaire.
	runWizard = wizard.Run

	// writeConfigFile writes the config to a file.
	writeConfigFile = config.WriteFile

	// isInteractive reports whether stdin is a terminal.
	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// Init writes a cluster configuration file.
//
// On a terminal the interactive wizard collects the values; otherwise the
// defaults are written as-is so the command stays usable in scripts.
func Init(ctx context.Context, outputPath string) error {
	if outputPath == "" {
		outputPath = config.DefaultConfigFile
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	var cfg config.Config
	if isInteractive() {
		printWelcome()
		result, err := runWizard(ctx)
		if err != nil {
			return fmt.Errorf("wizard canceled: %w", err)
		}
		cfg = wizard.BuildConfig(result)
	} else {
		cfg = config.Default()
	}

	if err := writeConfigFile(outputPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("ekstrap - sandbox EKS clusters")
	fmt.Println("==============================")
	fmt.Println()
	fmt.Println("This wizard creates a cluster configuration with sensible defaults.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()
	fmt.Println("Cluster Summary")
	fmt.Println("---------------")
	fmt.Printf("  Name:     %s\n", cfg.ClusterName)
	fmt.Printf("  Region:   %s\n", cfg.Region)
	fmt.Printf("  Nodes:    %d-%d x %s (desired %d)\n", cfg.MinClusterSize, cfg.MaxClusterSize, cfg.NodeInstanceType, cfg.DesiredClusterSize)
	fmt.Printf("  Network:  %s\n", cfg.VpcNetworkCidr)
	fmt.Println()
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Review the configuration:  cat " + outputPath)
	fmt.Println("  2. Check it for consistency:  ekstrap doctor")
	fmt.Println("  3. Provision the cluster:     ekstrap up")
	fmt.Println()
}
