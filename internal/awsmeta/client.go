// Package awsmeta answers read-only questions about the target AWS region
// outside of an engine run, for plan previews and doctor checks.
package awsmeta

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// ZoneLister lists the availability zones usable in a region.
type ZoneLister interface {
	AvailabilityZones(ctx context.Context) ([]string, error)
}

// Client implements ZoneLister against the EC2 API.
type Client struct {
	ec2 *ec2.Client
}

// NewClient builds a Client for the given region using the ambient AWS
// credential chain.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws configuration: %w", err)
	}
	return &Client{ec2: ec2.NewFromConfig(cfg)}, nil
}

// AvailabilityZones returns the names of the region's available zones in
// lexical order.
func (c *Client) AvailabilityZones(ctx context.Context) ([]string, error) {
	out, err := c.ec2.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("state"), Values: []string{"available"}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe availability zones: %w", err)
	}

	names := make([]string, 0, len(out.AvailabilityZones))
	for _, az := range out.AvailabilityZones {
		if az.ZoneName != nil {
			names = append(names, *az.ZoneName)
		}
	}
	sort.Strings(names)
	return names, nil
}
