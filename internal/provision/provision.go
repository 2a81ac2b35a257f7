// Package provision translates a resource graph into Pulumi declarations.
//
// The package owns no orchestration of its own: dependency ordering, diffing
// against existing state, and retries against the cloud API all happen inside
// the engine once the declarations are registered. Deploy only walks the
// graph and wires resource references.
package provision

import (
	"fmt"

	"github.com/pulumi/pulumi-aws/sdk/v7/go/aws"
	"github.com/pulumi/pulumi-aws/sdk/v7/go/aws/ec2"
	"github.com/pulumi/pulumi-aws/sdk/v7/go/aws/eks"
	"github.com/pulumi/pulumi-aws/sdk/v7/go/aws/iam"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/ekstrap/ekstrap/internal/config"
	kcfg "github.com/ekstrap/ekstrap/internal/kubeconfig"
	"github.com/ekstrap/ekstrap/internal/plan"
)

// Outputs collects the values exported after a deployment.
type Outputs struct {
	ClusterName pulumi.StringOutput
	ClusterID   pulumi.IDOutput
	VpcID       pulumi.IDOutput

	// Kubeconfig materializes only after the cluster endpoint, certificate
	// authority, and name have all resolved.
	Kubeconfig pulumi.StringOutput
}

// Run is the Pulumi program: it reads the stack configuration, resolves the
// availability zones, builds the plan, deploys it, and registers the stack
// exports.
func Run(ctx *pulumi.Context) error {
	cfg := config.FromStackConfig(ctx)

	zones, err := aws.GetAvailabilityZones(ctx, &aws.GetAvailabilityZonesArgs{
		State: pulumi.StringRef("available"),
	})
	if err != nil {
		return fmt.Errorf("failed to look up availability zones: %w", err)
	}

	out, err := Deploy(ctx, plan.BuildPlan(cfg, zones.Names))
	if err != nil {
		return err
	}

	ctx.Export("clusterName", out.ClusterName)
	ctx.Export("clusterId", out.ClusterID)
	ctx.Export("vpcId", out.VpcID)
	ctx.Export("kubeconfig", pulumi.ToSecret(out.Kubeconfig))
	return nil
}

// Deploy declares every resource in the graph and returns the deployment
// outputs.
func Deploy(ctx *pulumi.Context, g *plan.Graph) (*Outputs, error) {
	vpc, err := ec2.NewVpc(ctx, g.VPC.Name, &ec2.VpcArgs{
		CidrBlock:          pulumi.String(g.VPC.CidrBlock),
		EnableDnsHostnames: pulumi.Bool(g.VPC.EnableDNSHostnames),
		EnableDnsSupport:   pulumi.Bool(g.VPC.EnableDNSSupport),
		Tags:               pulumi.StringMap{"Name": pulumi.String(g.VPC.Name)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare vpc %s: %w", g.VPC.Name, err)
	}

	subnets := make(map[string]*ec2.Subnet, len(g.Subnets))
	for _, spec := range g.Subnets {
		subnet, err := ec2.NewSubnet(ctx, spec.Name, &ec2.SubnetArgs{
			VpcId:               vpc.ID(),
			CidrBlock:           pulumi.String(spec.CidrBlock),
			AvailabilityZone:    pulumi.String(spec.AvailabilityZone),
			MapPublicIpOnLaunch: pulumi.Bool(spec.Public),
			Tags:                pulumi.StringMap{"Name": pulumi.String(spec.Name)},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to declare subnet %s: %w", spec.Name, err)
		}
		subnets[spec.Name] = subnet
	}

	roles := make(map[string]*iam.Role, len(g.Roles))
	for _, spec := range g.Roles {
		role, err := iam.NewRole(ctx, spec.Name, &iam.RoleArgs{
			AssumeRolePolicy: pulumi.String(spec.AssumeRolePolicy),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to declare role %s: %w", spec.Name, err)
		}
		roles[spec.Name] = role
	}

	for _, spec := range g.Attachments {
		role, ok := roles[spec.RoleName]
		if !ok {
			return nil, fmt.Errorf("policy attachment %s references unknown role %s", spec.Name, spec.RoleName)
		}
		_, err := iam.NewRolePolicyAttachment(ctx, spec.Name, &iam.RolePolicyAttachmentArgs{
			Role:      role.Name,
			PolicyArn: pulumi.String(spec.PolicyArn),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to declare policy attachment %s: %w", spec.Name, err)
		}
	}

	clusterRole, ok := roles[g.Cluster.RoleName]
	if !ok {
		return nil, fmt.Errorf("cluster references unknown role %s", g.Cluster.RoleName)
	}
	clusterSubnets, err := subnetIDs(subnets, g.Cluster.SubnetNames)
	if err != nil {
		return nil, err
	}
	cluster, err := eks.NewCluster(ctx, g.Cluster.Name, &eks.ClusterArgs{
		RoleArn: clusterRole.Arn,
		VpcConfig: &eks.ClusterVpcConfigArgs{
			SubnetIds:            clusterSubnets,
			EndpointPublicAccess: pulumi.Bool(g.Cluster.EndpointPublicAccess),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare cluster %s: %w", g.Cluster.Name, err)
	}

	nodeRole, ok := roles[g.NodeGroup.RoleName]
	if !ok {
		return nil, fmt.Errorf("node group references unknown role %s", g.NodeGroup.RoleName)
	}
	nodeSubnets, err := subnetIDs(subnets, g.NodeGroup.SubnetNames)
	if err != nil {
		return nil, err
	}
	_, err = eks.NewNodeGroup(ctx, g.NodeGroup.Name, &eks.NodeGroupArgs{
		ClusterName:   cluster.Name,
		NodeGroupName: pulumi.String(g.NodeGroup.Name),
		NodeRoleArn:   nodeRole.Arn,
		SubnetIds:     nodeSubnets,
		InstanceTypes: pulumi.StringArray{pulumi.String(g.NodeGroup.InstanceType)},
		ScalingConfig: &eks.NodeGroupScalingConfigArgs{
			MinSize:     pulumi.Int(g.NodeGroup.MinSize),
			MaxSize:     pulumi.Int(g.NodeGroup.MaxSize),
			DesiredSize: pulumi.Int(g.NodeGroup.DesiredSize),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare node group %s: %w", g.NodeGroup.Name, err)
	}

	// The kubeconfig combines three attributes that resolve at different
	// times; All guarantees the document is rendered only after every one of
	// them is available.
	kubeconfig := pulumi.All(cluster.Endpoint, cluster.CertificateAuthority.Data().Elem(), cluster.Name).
		ApplyT(func(args []interface{}) (string, error) {
			endpoint := args[0].(string)
			caData := args[1].(string)
			name := args[2].(string)
			return kcfg.Render(endpoint, caData, name)
		}).(pulumi.StringOutput)

	return &Outputs{
		ClusterName: cluster.Name,
		ClusterID:   cluster.ID(),
		VpcID:       vpc.ID(),
		Kubeconfig:  kubeconfig,
	}, nil
}

func subnetIDs(subnets map[string]*ec2.Subnet, names []string) (pulumi.StringArray, error) {
	ids := make(pulumi.StringArray, 0, len(names))
	for _, name := range names {
		subnet, ok := subnets[name]
		if !ok {
			return nil, fmt.Errorf("unknown subnet %s", name)
		}
		ids = append(ids, subnet.ID())
	}
	return ids, nil
}
