// Package doctor runs advisory checks over a configuration and its plan.
//
// Findings never block provisioning: the apply path accepts whatever the
// configuration says, and the engine surfaces any provider-side rejection.
// Doctor exists so that an operator can see the inconsistencies beforehand.
package doctor

import (
	"fmt"

	"github.com/ekstrap/ekstrap/internal/config"
	"github.com/ekstrap/ekstrap/internal/netutil"
	"github.com/ekstrap/ekstrap/internal/plan"
)

// Severity of a finding.
const (
	SeverityOK      = "ok"
	SeverityWarning = "warning"
)

// Finding is one check result.
type Finding struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Report aggregates the findings for one configuration.
type Report struct {
	ClusterName string    `json:"clusterName"`
	Region      string    `json:"region"`
	Findings    []Finding `json:"findings"`
}

// Healthy reports whether no finding carries a warning.
func (r *Report) Healthy() bool {
	for _, f := range r.Findings {
		if f.Severity != SeverityOK {
			return false
		}
	}
	return true
}

// Check builds the advisory report for the given configuration and the plan
// it produces in the given zones.
func Check(cfg config.Config, zones []string) *Report {
	g := plan.BuildPlan(cfg, zones)
	report := &Report{ClusterName: cfg.ClusterName, Region: cfg.Region}
	report.Findings = append(report.Findings, checkSizing(cfg))
	report.Findings = append(report.Findings, checkSubnetContainment(cfg, g)...)
	report.Findings = append(report.Findings, checkSubnetDisjointness(g)...)
	report.Findings = append(report.Findings, checkZoneDistribution(g, zones))
	return report
}

// checkSizing verifies min <= desired <= max. The provisioning path does not
// enforce this ordering, so an inverted configuration reaches the provider
// unchanged.
func checkSizing(cfg config.Config) Finding {
	f := Finding{Check: "sizing", Severity: SeverityOK, Message: "node group sizing is consistent"}
	switch {
	case cfg.MinClusterSize > cfg.DesiredClusterSize:
		f.Severity = SeverityWarning
		f.Message = fmt.Sprintf("min cluster size %d exceeds desired size %d", cfg.MinClusterSize, cfg.DesiredClusterSize)
	case cfg.DesiredClusterSize > cfg.MaxClusterSize:
		f.Severity = SeverityWarning
		f.Message = fmt.Sprintf("desired cluster size %d exceeds max size %d", cfg.DesiredClusterSize, cfg.MaxClusterSize)
	}
	return f
}

// checkSubnetContainment verifies every subnet block falls inside the VPC
// block. Subnet blocks are fixed literals, so overriding vpc_network_cidr
// can strand them outside the network.
func checkSubnetContainment(cfg config.Config, g *plan.Graph) []Finding {
	var findings []Finding
	for _, s := range g.Subnets {
		contained, err := netutil.Contains(cfg.VpcNetworkCidr, s.CidrBlock)
		switch {
		case err != nil:
			findings = append(findings, Finding{
				Check:    "subnet-containment",
				Severity: SeverityWarning,
				Message:  err.Error(),
			})
		case !contained:
			findings = append(findings, Finding{
				Check:    "subnet-containment",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("subnet %s (%s) is outside the vpc block %s", s.Name, s.CidrBlock, cfg.VpcNetworkCidr),
			})
		}
	}
	if len(findings) == 0 {
		findings = append(findings, Finding{
			Check:    "subnet-containment",
			Severity: SeverityOK,
			Message:  "all subnet blocks fall inside the vpc block",
		})
	}
	return findings
}

func checkSubnetDisjointness(g *plan.Graph) []Finding {
	var findings []Finding
	for i := 0; i < len(g.Subnets); i++ {
		for j := i + 1; j < len(g.Subnets); j++ {
			overlaps, err := netutil.Overlaps(g.Subnets[i].CidrBlock, g.Subnets[j].CidrBlock)
			if err != nil {
				findings = append(findings, Finding{
					Check:    "subnet-disjointness",
					Severity: SeverityWarning,
					Message:  err.Error(),
				})
				continue
			}
			if overlaps {
				findings = append(findings, Finding{
					Check:    "subnet-disjointness",
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("subnets %s and %s overlap", g.Subnets[i].Name, g.Subnets[j].Name),
				})
			}
		}
	}
	if len(findings) == 0 {
		findings = append(findings, Finding{
			Check:    "subnet-disjointness",
			Severity: SeverityOK,
			Message:  "subnet blocks are pairwise disjoint",
		})
	}
	return findings
}

// checkZoneDistribution reports how subnets spread over the zones. The zone
// selector places subnets 0 and 1 in the first zone and every later subnet
// in the second, so with three zones available the third is never used.
func checkZoneDistribution(g *plan.Graph, zones []string) Finding {
	used := map[string]int{}
	for _, s := range g.Subnets {
		used[s.AvailabilityZone]++
	}
	if len(zones) > len(used) {
		return Finding{
			Check:    "zone-distribution",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("subnets use %d of %d available zones; distribution is skewed", len(used), len(zones)),
		}
	}
	return Finding{
		Check:    "zone-distribution",
		Severity: SeverityOK,
		Message:  "subnets cover all available zones",
	}
}
