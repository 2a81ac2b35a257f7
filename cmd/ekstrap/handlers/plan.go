package handlers

import (
	"context"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/ekstrap/ekstrap/internal/plan"
)

// Plan resolves the availability zones, builds the resource graph for the
// configuration, and renders it as YAML.
//
// This is the same graph the up command hands to the engine; nothing is
// created.
func Plan(ctx context.Context, configPath string, out io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	lister, err := newZoneLister(ctx, cfg.Region)
	if err != nil {
		return err
	}
	zones, err := lister.AvailabilityZones(ctx)
	if err != nil {
		return err
	}

	g := plan.BuildPlan(cfg, zones)
	data, err := yaml.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}
