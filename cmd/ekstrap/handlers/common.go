// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"os"

	"github.com/ekstrap/ekstrap/internal/awsmeta"
	"github.com/ekstrap/ekstrap/internal/config"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// findConfigFile locates the default config file.
	findConfigFile = config.FindConfigFile

	// newZoneLister creates a zone lister for the target region.
	newZoneLister = func(ctx context.Context, region string) (awsmeta.ZoneLister, error) {
		return awsmeta.NewClient(ctx, region)
	}

	// writeFile writes data to a file (for testing injection).
	writeFile = os.WriteFile
)

// loadConfig loads the cluster configuration. If configPath is empty, it
// looks for ekstrap.yaml in the current directory.
func loadConfig(configPath string) (config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return config.Default(), err
		}
		configPath = path
	}
	return loadConfigFile(configPath)
}
