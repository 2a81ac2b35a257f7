package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ekstrap/ekstrap/internal/doctor"
)

// Doctor runs the advisory checks over the configuration and prints the
// report.
//
// Findings never fail the command: the provisioning path accepts whatever
// the configuration says, so doctor only makes the inconsistencies visible
// beforehand.
func Doctor(ctx context.Context, configPath string, jsonOutput bool, out io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	lister, err := newZoneLister(ctx, cfg.Region)
	if err != nil {
		return err
	}
	zones, err := lister.AvailabilityZones(ctx)
	if err != nil {
		return err
	}

	report := doctor.Check(cfg, zones)

	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Cluster: %s (%s)\n\n", report.ClusterName, report.Region)
	for _, f := range report.Findings {
		marker := "ok"
		if f.Severity != doctor.SeverityOK {
			marker = "warn"
		}
		fmt.Fprintf(out, "  [%s] %-20s %s\n", marker, f.Check, f.Message)
	}
	fmt.Fprintln(out)
	if report.Healthy() {
		fmt.Fprintln(out, "No issues found.")
	} else {
		fmt.Fprintln(out, "Issues found. They will not block provisioning; the provider has the last word.")
	}
	return nil
}
