// Package wizard implements the interactive questionnaire behind the init
// command. Answers are mapped onto a Config; nothing here touches the
// provisioning path.
package wizard

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/ekstrap/ekstrap/internal/config"
)

// clusterNameRegex validates cluster name format: 1-32 lowercase alphanumeric with hyphens.
var clusterNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// Result holds the answers from the interactive wizard.
type Result struct {
	ClusterName  string
	Region       string
	InstanceType string

	MinSize     int
	MaxSize     int
	DesiredSize int
}

// Run walks the user through the questionnaire and returns the answers.
func Run(ctx context.Context) (*Result, error) {
	defaults := config.Default()
	result := &Result{
		ClusterName:  defaults.ClusterName,
		Region:       defaults.Region,
		InstanceType: defaults.NodeInstanceType,
		MinSize:      defaults.MinClusterSize,
		MaxSize:      defaults.MaxClusterSize,
		DesiredSize:  defaults.DesiredClusterSize,
	}

	if err := runIdentityGroup(ctx, result); err != nil {
		return nil, err
	}
	if err := runSizingGroup(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// BuildConfig creates a Config from the wizard result.
func BuildConfig(result *Result) config.Config {
	cfg := config.Default()
	cfg.ClusterName = result.ClusterName
	cfg.Region = result.Region
	cfg.NodeInstanceType = result.InstanceType
	cfg.MinClusterSize = result.MinSize
	cfg.MaxClusterSize = result.MaxSize
	cfg.DesiredClusterSize = result.DesiredSize
	cfg.ProjectName = result.ClusterName
	return cfg
}

// runIdentityGroup prompts for cluster name, region, and instance type.
func runIdentityGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cluster Name").
				Description("1-32 lowercase alphanumeric characters or hyphens").
				Placeholder("my-cluster").
				Value(&result.ClusterName).
				Validate(validateClusterName),
			huh.NewInput().
				Title("Region").
				Description("AWS region to provision in").
				Placeholder(config.DefaultRegion).
				Value(&result.Region),
			huh.NewInput().
				Title("Node Instance Type").
				Description("EC2 instance type for worker nodes").
				Placeholder(config.DefaultNodeInstanceType).
				Value(&result.InstanceType),
		).Title("Cluster Identity"),
	).RunWithContext(ctx)
}

// runSizingGroup prompts for node group sizing. Answers are taken as given;
// an inverted min/desired/max ordering is accepted here just as it is on the
// apply path.
func runSizingGroup(ctx context.Context, result *Result) error {
	minInput := strconv.Itoa(result.MinSize)
	maxInput := strconv.Itoa(result.MaxSize)
	desiredInput := strconv.Itoa(result.DesiredSize)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum Node Count").
				Value(&minInput).
				Validate(validateCount),
			huh.NewInput().
				Title("Maximum Node Count").
				Value(&maxInput).
				Validate(validateCount),
			huh.NewInput().
				Title("Desired Node Count").
				Value(&desiredInput).
				Validate(validateCount),
		).Title("Node Group Sizing"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.MinSize, _ = strconv.Atoi(minInput)
	result.MaxSize, _ = strconv.Atoi(maxInput)
	result.DesiredSize, _ = strconv.Atoi(desiredInput)
	return nil
}

func validateClusterName(name string) error {
	if !clusterNameRegex.MatchString(name) {
		return fmt.Errorf("cluster name must be 1-32 lowercase alphanumeric characters or hyphens")
	}
	return nil
}

func validateCount(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
