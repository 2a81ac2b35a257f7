// Package netutil provides CIDR arithmetic helpers for address-range checks.
package netutil

import (
	"fmt"
	"net/netip"
)

// Contains reports whether the inner CIDR falls entirely within the outer
// CIDR.
func Contains(outer, inner string) (bool, error) {
	op, err := netip.ParsePrefix(outer)
	if err != nil {
		return false, fmt.Errorf("invalid outer cidr %q: %w", outer, err)
	}
	ip, err := netip.ParsePrefix(inner)
	if err != nil {
		return false, fmt.Errorf("invalid inner cidr %q: %w", inner, err)
	}
	return ip.Bits() >= op.Bits() && op.Contains(ip.Addr()), nil
}

// Overlaps reports whether two CIDRs share any addresses.
func Overlaps(a, b string) (bool, error) {
	ap, err := netip.ParsePrefix(a)
	if err != nil {
		return false, fmt.Errorf("invalid cidr %q: %w", a, err)
	}
	bp, err := netip.ParsePrefix(b)
	if err != nil {
		return false, fmt.Errorf("invalid cidr %q: %w", b, err)
	}
	return ap.Overlaps(bp), nil
}
