package config

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	sdkconfig "github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// Stack configuration keys read by FromStackConfig.
const (
	KeyMinClusterSize     = "minClusterSize"
	KeyMaxClusterSize     = "maxClusterSize"
	KeyDesiredClusterSize = "desiredClusterSize"
	KeyNodeInstanceType   = "eksNodeInstanceType"
	KeyVpcNetworkCidr     = "vpcNetworkCidr"
	KeyClusterName        = "clusterName"
)

// FromStackConfig builds a Config from the stack configuration of a running
// Pulumi program, applying the package defaults for unset keys.
//
// Values are taken at face value; a stack configured with min > max is
// declared exactly as given.
func FromStackConfig(ctx *pulumi.Context) Config {
	cfg := Default()
	sc := sdkconfig.New(ctx, "")

	if v, err := sc.TryInt(KeyMinClusterSize); err == nil {
		cfg.MinClusterSize = v
	}
	if v, err := sc.TryInt(KeyMaxClusterSize); err == nil {
		cfg.MaxClusterSize = v
	}
	if v, err := sc.TryInt(KeyDesiredClusterSize); err == nil {
		cfg.DesiredClusterSize = v
	}
	if v, err := sc.Try(KeyNodeInstanceType); err == nil {
		cfg.NodeInstanceType = v
	}
	if v, err := sc.Try(KeyVpcNetworkCidr); err == nil {
		cfg.VpcNetworkCidr = v
	}
	if v, err := sc.Try(KeyClusterName); err == nil {
		cfg.ClusterName = v
	}

	cfg.ProjectName = ctx.Project()
	cfg.StackName = ctx.Stack()
	return cfg
}
