package plan

// Node is the generic projection of one desired resource.
type Node struct {
	Kind string `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`
}

// Edge records that resource From feeds attribute Attr into resource To.
// Edges carry no values; they name the references the backend must resolve
// (a role ARN, a subnet ID, the VPC ID) before the dependent resource can be
// created.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	Attr string `json:"attr" yaml:"attr"`
}

// Nodes lists every resource in the graph in declaration order.
func (g *Graph) Nodes() []Node {
	nodes := []Node{{Kind: KindVPC, Name: g.VPC.Name}}
	for _, s := range g.Subnets {
		nodes = append(nodes, Node{Kind: KindSubnet, Name: s.Name})
	}
	for _, r := range g.Roles {
		nodes = append(nodes, Node{Kind: KindRole, Name: r.Name})
	}
	for _, a := range g.Attachments {
		nodes = append(nodes, Node{Kind: KindPolicyAttachment, Name: a.Name})
	}
	nodes = append(nodes,
		Node{Kind: KindCluster, Name: g.Cluster.Name},
		Node{Kind: KindNodeGroup, Name: g.NodeGroup.Name},
	)
	return nodes
}

// Edges lists every attribute reference between resources in the graph.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, s := range g.Subnets {
		edges = append(edges, Edge{From: g.VPC.Name, To: s.Name, Attr: "vpcId"})
	}
	for _, a := range g.Attachments {
		edges = append(edges, Edge{From: a.RoleName, To: a.Name, Attr: "roleName"})
	}
	edges = append(edges, Edge{From: g.Cluster.RoleName, To: g.Cluster.Name, Attr: "roleArn"})
	for _, name := range g.Cluster.SubnetNames {
		edges = append(edges, Edge{From: name, To: g.Cluster.Name, Attr: "subnetId"})
	}
	edges = append(edges,
		Edge{From: g.Cluster.Name, To: g.NodeGroup.Name, Attr: "clusterName"},
		Edge{From: g.NodeGroup.RoleName, To: g.NodeGroup.Name, Attr: "roleArn"},
	)
	for _, name := range g.NodeGroup.SubnetNames {
		edges = append(edges, Edge{From: name, To: g.NodeGroup.Name, Attr: "subnetId"})
	}
	return edges
}

// PrivateSubnetCidrs returns the fixed private subnet address blocks.
func PrivateSubnetCidrs() []string {
	return append([]string{}, privateSubnetCidrs...)
}

// PublicSubnetCidrs returns the fixed public subnet address blocks.
func PublicSubnetCidrs() []string {
	return append([]string{}, publicSubnetCidrs...)
}
