package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUp_Flags(t *testing.T) {
	cmd := Up()

	require.NotNil(t, cmd)
	assert.Equal(t, "up", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("config"))
}

func TestPreview_Flags(t *testing.T) {
	cmd := Preview()

	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("config"))
}

func TestDestroy_Flags(t *testing.T) {
	cmd := Destroy()

	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("config"))
}

func TestDoctor_Flags(t *testing.T) {
	cmd := Doctor()

	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("json"))
}
