// Package config defines the cluster configuration and its loading rules.
//
// A Config is constructed once at startup and passed by value from there on.
// Nothing in this package, or anywhere else in the tree, mutates a Config
// after it has been built.
package config

// Default values applied wherever a field is left unset.
const (
	DefaultClusterName      = "ekstrap"
	DefaultMinClusterSize   = 3
	DefaultMaxClusterSize   = 6
	DefaultDesiredSize      = 3
	DefaultNodeInstanceType = "t3.medium"
	DefaultVpcNetworkCidr   = "10.0.0.0/16"
	DefaultRegion           = "us-east-1"
)

// Config holds everything needed to declare the cluster.
//
// Sizing fields are passed through to the node group unchecked: the
// provisioning path performs no consistency validation (min <= desired <= max
// is not enforced here; see the doctor command for advisory checks).
type Config struct {
	ClusterName string `yaml:"cluster_name" json:"clusterName"`
	Region      string `yaml:"region" json:"region"`

	// Node group sizing.
	MinClusterSize     int `yaml:"min_cluster_size" json:"minClusterSize"`
	MaxClusterSize     int `yaml:"max_cluster_size" json:"maxClusterSize"`
	DesiredClusterSize int `yaml:"desired_cluster_size" json:"desiredClusterSize"`

	// Instance type for worker nodes.
	NodeInstanceType string `yaml:"node_instance_type" json:"nodeInstanceType"`

	// Address block for the VPC. Subnet blocks are fixed literals and are
	// not derived from this value.
	VpcNetworkCidr string `yaml:"vpc_network_cidr" json:"vpcNetworkCidr"`

	// Pulumi project and stack names used by the automation commands.
	ProjectName string `yaml:"project_name" json:"projectName"`
	StackName   string `yaml:"stack_name" json:"stackName"`
}

// Default returns a Config with every field set to its default.
func Default() Config {
	return Config{
		ClusterName:        DefaultClusterName,
		Region:             DefaultRegion,
		MinClusterSize:     DefaultMinClusterSize,
		MaxClusterSize:     DefaultMaxClusterSize,
		DesiredClusterSize: DefaultDesiredSize,
		NodeInstanceType:   DefaultNodeInstanceType,
		VpcNetworkCidr:     DefaultVpcNetworkCidr,
		ProjectName:        "ekstrap",
		StackName:          "dev",
	}
}
