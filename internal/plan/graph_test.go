package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekstrap/ekstrap/internal/config"
)

func TestGraph_Nodes(t *testing.T) {
	t.Parallel()
	g := BuildPlan(config.Default(), testZones)

	nodes := g.Nodes()
	// 1 vpc + 6 subnets + 2 roles + 3 attachments + cluster + node group.
	require.Len(t, nodes, 14)

	counts := map[string]int{}
	for _, n := range nodes {
		counts[n.Kind]++
	}
	assert.Equal(t, 1, counts[KindVPC])
	assert.Equal(t, 6, counts[KindSubnet])
	assert.Equal(t, 2, counts[KindRole])
	assert.Equal(t, 3, counts[KindPolicyAttachment])
	assert.Equal(t, 1, counts[KindCluster])
	assert.Equal(t, 1, counts[KindNodeGroup])
}

func TestGraph_Edges(t *testing.T) {
	t.Parallel()
	g := BuildPlan(config.Default(), testZones)

	edges := g.Edges()
	// 6 vpc->subnet + 3 role->attachment + 1 role->cluster + 6 subnet->cluster
	// + 1 cluster->nodegroup + 1 role->nodegroup + 3 subnet->nodegroup.
	require.Len(t, edges, 21)

	assert.Contains(t, edges, Edge{From: g.VPC.Name, To: g.Subnets[0].Name, Attr: "vpcId"})
	assert.Contains(t, edges, Edge{From: g.Cluster.RoleName, To: g.Cluster.Name, Attr: "roleArn"})
	assert.Contains(t, edges, Edge{From: g.Cluster.Name, To: g.NodeGroup.Name, Attr: "clusterName"})
	assert.Contains(t, edges, Edge{From: g.NodeGroup.RoleName, To: g.NodeGroup.Name, Attr: "roleArn"})

	// Every edge endpoint is a declared node.
	names := map[string]bool{}
	for _, n := range g.Nodes() {
		names[n.Name] = true
	}
	for _, e := range edges {
		assert.True(t, names[e.From], "edge source %s not declared", e.From)
		assert.True(t, names[e.To], "edge target %s not declared", e.To)
	}
}

func TestSubnetCidrAccessors(t *testing.T) {
	t.Parallel()
	private := PrivateSubnetCidrs()
	public := PublicSubnetCidrs()

	assert.Equal(t, []string{"10.0.0.0/19", "10.0.32.0/19", "10.0.64.0/19"}, private)
	assert.Equal(t, []string{"10.0.96.0/19", "10.0.128.0/19", "10.0.160.0/19"}, public)

	// Accessors return copies.
	private[0] = "changed"
	assert.Equal(t, "10.0.0.0/19", PrivateSubnetCidrs()[0])
}
