// Package plan turns a configuration into a declarative resource graph.
//
// BuildPlan is a pure function: same config and zone list in, same graph out.
// It performs no I/O and touches no provider API; the graph it returns is
// plain data that a provisioning backend (see internal/provision) translates
// into engine declarations.
package plan

import (
	"fmt"

	"github.com/ekstrap/ekstrap/internal/config"
)

// Resource kinds appearing in the graph.
const (
	KindVPC              = "aws:ec2:Vpc"
	KindSubnet           = "aws:ec2:Subnet"
	KindRole             = "aws:iam:Role"
	KindPolicyAttachment = "aws:iam:RolePolicyAttachment"
	KindCluster          = "aws:eks:Cluster"
	KindNodeGroup        = "aws:eks:NodeGroup"
)

// Managed policy ARNs attached to the two roles.
const (
	PolicyEKSCluster    = "arn:aws:iam::aws:policy/AmazonEKSClusterPolicy"
	PolicyEKSWorkerNode = "arn:aws:iam::aws:policy/AmazonEKSWorkerNodePolicy"
	PolicyEKSCNI        = "arn:aws:iam::aws:policy/AmazonEKS_CNI_Policy"
)

// Subnet address blocks. These are fixed literals carving six disjoint /19
// ranges out of 10.0.0.0/16; they are not recomputed when the VPC block is
// overridden in config.
var (
	privateSubnetCidrs = []string{"10.0.0.0/19", "10.0.32.0/19", "10.0.64.0/19"}
	publicSubnetCidrs  = []string{"10.0.96.0/19", "10.0.128.0/19", "10.0.160.0/19"}
)

// VPCSpec describes the virtual network.
type VPCSpec struct {
	Name               string `json:"name" yaml:"name"`
	CidrBlock          string `json:"cidrBlock" yaml:"cidrBlock"`
	EnableDNSHostnames bool   `json:"enableDnsHostnames" yaml:"enableDnsHostnames"`
	EnableDNSSupport   bool   `json:"enableDnsSupport" yaml:"enableDnsSupport"`
}

// SubnetSpec describes one subnet inside the VPC.
type SubnetSpec struct {
	Name             string `json:"name" yaml:"name"`
	CidrBlock        string `json:"cidrBlock" yaml:"cidrBlock"`
	AvailabilityZone string `json:"availabilityZone" yaml:"availabilityZone"`
	Public           bool   `json:"public" yaml:"public"`
}

// RoleSpec describes an IAM role and the service allowed to assume it.
type RoleSpec struct {
	Name             string `json:"name" yaml:"name"`
	AssumeRolePolicy string `json:"assumeRolePolicy" yaml:"assumeRolePolicy"`
}

// PolicyAttachmentSpec binds one managed policy to one role.
type PolicyAttachmentSpec struct {
	Name      string `json:"name" yaml:"name"`
	RoleName  string `json:"roleName" yaml:"roleName"`
	PolicyArn string `json:"policyArn" yaml:"policyArn"`
}

// ClusterSpec describes the managed control plane.
type ClusterSpec struct {
	Name                 string   `json:"name" yaml:"name"`
	RoleName             string   `json:"roleName" yaml:"roleName"`
	SubnetNames          []string `json:"subnetNames" yaml:"subnetNames"`
	EndpointPublicAccess bool     `json:"endpointPublicAccess" yaml:"endpointPublicAccess"`
}

// NodeGroupSpec describes the autoscaling worker group.
type NodeGroupSpec struct {
	Name         string   `json:"name" yaml:"name"`
	ClusterName  string   `json:"clusterName" yaml:"clusterName"`
	RoleName     string   `json:"roleName" yaml:"roleName"`
	SubnetNames  []string `json:"subnetNames" yaml:"subnetNames"`
	InstanceType string   `json:"instanceType" yaml:"instanceType"`
	MinSize      int      `json:"minSize" yaml:"minSize"`
	MaxSize      int      `json:"maxSize" yaml:"maxSize"`
	DesiredSize  int      `json:"desiredSize" yaml:"desiredSize"`
}

// Graph is the full set of desired resources with their references. It is
// immutable once built and safe to hand to any backend.
type Graph struct {
	VPC         VPCSpec                `json:"vpc" yaml:"vpc"`
	Subnets     []SubnetSpec           `json:"subnets" yaml:"subnets"`
	Roles       []RoleSpec             `json:"roles" yaml:"roles"`
	Attachments []PolicyAttachmentSpec `json:"policyAttachments" yaml:"policyAttachments"`
	Cluster     ClusterSpec            `json:"cluster" yaml:"cluster"`
	NodeGroup   NodeGroupSpec          `json:"nodeGroup" yaml:"nodeGroup"`
}

const (
	eksAssumeRolePolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"Service":"eks.amazonaws.com"},"Action":"sts:AssumeRole"}]}`
	ec2AssumeRolePolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"Service":"ec2.amazonaws.com"},"Action":"sts:AssumeRole"}]}`
)

// BuildPlan assembles the resource graph for the given configuration.
//
// zones is the ordered list of availability zone names the subnets may be
// placed in. The selector reproduces the original zone assignment exactly:
// subnet index i lands in zones[0] when i/2 == 0 and zones[1] otherwise, so
// only the first two zones are ever used and four of the six subnets share
// the second one.
func BuildPlan(cfg config.Config, zones []string) *Graph {
	g := &Graph{
		VPC: VPCSpec{
			Name:               cfg.ClusterName + "-vpc",
			CidrBlock:          cfg.VpcNetworkCidr,
			EnableDNSHostnames: true,
			EnableDNSSupport:   true,
		},
	}

	cidrs := append(append([]string{}, privateSubnetCidrs...), publicSubnetCidrs...)
	for i, cidr := range cidrs {
		public := i >= len(privateSubnetCidrs)
		kind := "private"
		if public {
			kind = "public"
		}
		g.Subnets = append(g.Subnets, SubnetSpec{
			Name:             fmt.Sprintf("%s-%s-subnet-%d", cfg.ClusterName, kind, i%len(privateSubnetCidrs)),
			CidrBlock:        cidr,
			AvailabilityZone: zoneFor(zones, i),
			Public:           public,
		})
	}

	clusterRole := RoleSpec{
		Name:             cfg.ClusterName + "-eks-role",
		AssumeRolePolicy: eksAssumeRolePolicy,
	}
	nodeRole := RoleSpec{
		Name:             cfg.ClusterName + "-node-role",
		AssumeRolePolicy: ec2AssumeRolePolicy,
	}
	g.Roles = []RoleSpec{clusterRole, nodeRole}

	g.Attachments = []PolicyAttachmentSpec{
		{Name: clusterRole.Name + "-cluster-policy", RoleName: clusterRole.Name, PolicyArn: PolicyEKSCluster},
		{Name: nodeRole.Name + "-worker-policy", RoleName: nodeRole.Name, PolicyArn: PolicyEKSWorkerNode},
		{Name: nodeRole.Name + "-cni-policy", RoleName: nodeRole.Name, PolicyArn: PolicyEKSCNI},
	}

	g.Cluster = ClusterSpec{
		Name:                 cfg.ClusterName + "-cluster",
		RoleName:             clusterRole.Name,
		SubnetNames:          subnetNames(g.Subnets, nil),
		EndpointPublicAccess: true,
	}

	g.NodeGroup = NodeGroupSpec{
		Name:         cfg.ClusterName + "-node-group",
		ClusterName:  g.Cluster.Name,
		RoleName:     nodeRole.Name,
		SubnetNames:  subnetNames(g.Subnets, func(s SubnetSpec) bool { return !s.Public }),
		InstanceType: cfg.NodeInstanceType,
		MinSize:      cfg.MinClusterSize,
		MaxSize:      cfg.MaxClusterSize,
		DesiredSize:  cfg.DesiredClusterSize,
	}

	return g
}

// azIndexFor selects the zone index for a subnet index. The integer division
// makes the condition true only for indices 0 and 1.
func azIndexFor(subnetIndex int) int {
	if subnetIndex/2 == 0 {
		return 0
	}
	return 1
}

func zoneFor(zones []string, subnetIndex int) string {
	if len(zones) == 0 {
		return ""
	}
	zi := azIndexFor(subnetIndex)
	if zi >= len(zones) {
		zi = len(zones) - 1
	}
	return zones[zi]
}

func subnetNames(subnets []SubnetSpec, keep func(SubnetSpec) bool) []string {
	var names []string
	for _, s := range subnets {
		if keep == nil || keep(s) {
			names = append(names, s.Name)
		}
	}
	return names
}
