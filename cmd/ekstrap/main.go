// Package main is the entry point for the ekstrap CLI.
//
// ekstrap provisions sandbox Amazon EKS clusters: a VPC with three private
// and three public subnets, the two IAM roles the cluster needs, a managed
// control plane, and an autoscaling worker node group. The heavy lifting
// (state diffing, dependency ordering, cloud API calls) is delegated to the
// Pulumi engine; ekstrap declares the resources and projects the outputs.
//
// Commands: init, up, preview, destroy, plan, doctor.
//
// For detailed usage information, run:
//
//	ekstrap --help
package main

import (
	"fmt"
	"os"

	"github.com/ekstrap/ekstrap/cmd/ekstrap/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
