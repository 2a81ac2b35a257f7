package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"

	"github.com/ekstrap/ekstrap/internal/config"
	"github.com/ekstrap/ekstrap/internal/provision"
)

// engineStack is the slice of the automation API the handlers drive.
// auto.Stack satisfies it; tests substitute their own.
type engineStack interface {
	SetAllConfig(ctx context.Context, cfg auto.ConfigMap) error
	Up(ctx context.Context, opts ...optup.Option) (auto.UpResult, error)
	Preview(ctx context.Context, opts ...optpreview.Option) (auto.PreviewResult, error)
	Destroy(ctx context.Context, opts ...optdestroy.Option) (auto.DestroyResult, error)
}

// newStack initializes the engine stack with the inline program. Replaced in
// tests.
var newStack = func(ctx context.Context, cfg config.Config) (engineStack, error) {
	stack, err := auto.UpsertStackInlineSource(ctx, cfg.StackName, cfg.ProjectName, provision.Run)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stack %s: %w", cfg.StackName, err)
	}
	return &stack, nil
}

// stackConfig maps the cluster configuration onto the stack configuration
// keys the inline program reads.
func stackConfig(cfg config.Config) auto.ConfigMap {
	return auto.ConfigMap{
		"aws:region":                 {Value: cfg.Region},
		config.KeyClusterName:        {Value: cfg.ClusterName},
		config.KeyMinClusterSize:     {Value: strconv.Itoa(cfg.MinClusterSize)},
		config.KeyMaxClusterSize:     {Value: strconv.Itoa(cfg.MaxClusterSize)},
		config.KeyDesiredClusterSize: {Value: strconv.Itoa(cfg.DesiredClusterSize)},
		config.KeyNodeInstanceType:   {Value: cfg.NodeInstanceType},
		config.KeyVpcNetworkCidr:     {Value: cfg.VpcNetworkCidr},
	}
}

// prepareStack initializes the stack and pushes the configuration into it.
func prepareStack(ctx context.Context, cfg config.Config) (engineStack, error) {
	stack, err := newStack(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := stack.SetAllConfig(ctx, stackConfig(cfg)); err != nil {
		return nil, fmt.Errorf("failed to set stack configuration: %w", err)
	}
	return stack, nil
}
