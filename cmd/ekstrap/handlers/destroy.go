package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
)

// Destroy tears down every resource the stack owns.
//
// Deletion ordering is the engine's job: it walks the dependency graph in
// reverse, so the node group goes before the cluster and the subnets before
// the network.
func Destroy(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Destroying cluster: %s", cfg.ClusterName)

	stack, err := prepareStack(ctx, cfg)
	if err != nil {
		return err
	}

	if _, err := stack.Destroy(ctx, optdestroy.ProgressStreams(os.Stdout)); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	log.Printf("Cluster destroyed: %s", cfg.ClusterName)
	return nil
}
