package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"
)

// kubeconfigFile is where Up writes the generated client configuration.
const kubeconfigFile = "kubeconfig"

// Up provisions or updates the cluster.
//
// The configuration is handed to the engine exactly as loaded; the engine
// computes the diff against existing state, orders resource operations, and
// retries against the cloud API. On success the kubeconfig output is written
// next to the config file.
func Up(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Provisioning cluster: %s", cfg.ClusterName)

	stack, err := prepareStack(ctx, cfg)
	if err != nil {
		return err
	}

	res, err := stack.Up(ctx, optup.ProgressStreams(os.Stdout))
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	if out, ok := res.Outputs["kubeconfig"]; ok {
		doc, ok := out.Value.(string)
		if !ok {
			return fmt.Errorf("kubeconfig output has unexpected type %T", out.Value)
		}
		if err := writeFile(kubeconfigFile, []byte(doc), 0o600); err != nil {
			return fmt.Errorf("failed to write kubeconfig: %w", err)
		}
		log.Printf("Wrote %s", kubeconfigFile)
	}

	if out, ok := res.Outputs["clusterName"]; ok {
		log.Printf("Cluster ready: %v", out.Value)
	}
	return nil
}

// Preview shows what an update would change without performing it.
func Preview(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Previewing changes for cluster: %s", cfg.ClusterName)

	stack, err := prepareStack(ctx, cfg)
	if err != nil {
		return err
	}

	if _, err := stack.Preview(ctx, optpreview.ProgressStreams(os.Stdout)); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
