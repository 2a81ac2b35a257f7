package netutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		outer string
		inner string
		want  bool
	}{
		{"subnet inside vpc", "10.0.0.0/16", "10.0.32.0/19", true},
		{"identical ranges", "10.0.0.0/16", "10.0.0.0/16", true},
		{"subnet outside vpc", "192.168.0.0/16", "10.0.32.0/19", false},
		{"inner larger than outer", "10.0.0.0/19", "10.0.0.0/16", false},
		{"adjacent range", "10.0.0.0/17", "10.0.128.0/19", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Contains(tt.outer, tt.inner)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains_InvalidInput(t *testing.T) {
	t.Parallel()
	_, err := Contains("not-a-cidr", "10.0.0.0/19")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid outer cidr")

	_, err = Contains("10.0.0.0/16", "10.0.0.0/99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid inner cidr")
}

func TestOverlaps(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"disjoint siblings", "10.0.0.0/19", "10.0.32.0/19", false},
		{"identical", "10.0.0.0/19", "10.0.0.0/19", true},
		{"nested", "10.0.0.0/16", "10.0.64.0/19", true},
		{"different networks", "10.0.0.0/16", "172.16.0.0/12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Overlaps(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlaps_InvalidInput(t *testing.T) {
	t.Parallel()
	_, err := Overlaps("bogus", "10.0.0.0/19")
	require.Error(t, err)
}
