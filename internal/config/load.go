package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name looked up when no path is given.
const DefaultConfigFile = "ekstrap.yaml"

// LoadFile reads and parses the configuration from a YAML file.
//
// Unset fields fall back to the package defaults. The result is not
// validated: inconsistent sizing or an undersized VPC block is passed through
// to the provisioning engine as-is.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// FindConfigFile returns the default config file path if it exists in the
// current directory.
func FindConfigFile() (string, error) {
	if _, err := os.Stat(DefaultConfigFile); err != nil {
		return "", fmt.Errorf("no %s in current directory: %w", DefaultConfigFile, err)
	}
	return DefaultConfigFile, nil
}

// WriteFile serializes the configuration to a YAML file.
func WriteFile(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ClusterName == "" {
		cfg.ClusterName = DefaultClusterName
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if cfg.MinClusterSize == 0 {
		cfg.MinClusterSize = DefaultMinClusterSize
	}
	if cfg.MaxClusterSize == 0 {
		cfg.MaxClusterSize = DefaultMaxClusterSize
	}
	if cfg.DesiredClusterSize == 0 {
		cfg.DesiredClusterSize = DefaultDesiredSize
	}
	if cfg.NodeInstanceType == "" {
		cfg.NodeInstanceType = DefaultNodeInstanceType
	}
	if cfg.VpcNetworkCidr == "" {
		cfg.VpcNetworkCidr = DefaultVpcNetworkCidr
	}
	if cfg.ProjectName == "" {
		cfg.ProjectName = "ekstrap"
	}
	if cfg.StackName == "" {
		cfg.StackName = "dev"
	}
}
