package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()
	result := &Result{
		ClusterName:  "sandbox",
		Region:       "eu-west-1",
		InstanceType: "m5.large",
		MinSize:      1,
		MaxSize:      4,
		DesiredSize:  2,
	}

	cfg := BuildConfig(result)

	assert.Equal(t, "sandbox", cfg.ClusterName)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "m5.large", cfg.NodeInstanceType)
	assert.Equal(t, 1, cfg.MinClusterSize)
	assert.Equal(t, 4, cfg.MaxClusterSize)
	assert.Equal(t, 2, cfg.DesiredClusterSize)
	assert.Equal(t, "sandbox", cfg.ProjectName)
}

func TestValidateClusterName(t *testing.T) {
	t.Parallel()
	valid := []string{"a", "my-cluster", "c1-test-2", "abc123"}
	for _, name := range valid {
		assert.NoError(t, validateClusterName(name), "name %q", name)
	}

	invalid := []string{"", "-leading", "trailing-", "UPPER", "way-too-long-cluster-name-over-32-chars"}
	for _, name := range invalid {
		assert.Error(t, validateClusterName(name), "name %q", name)
	}
}

func TestValidateCount(t *testing.T) {
	t.Parallel()
	require.NoError(t, validateCount("3"))
	require.NoError(t, validateCount("0"))
	require.Error(t, validateCount("-1"))
	require.Error(t, validateCount("three"))
	require.Error(t, validateCount(""))
}
