package handlers

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekstrap/ekstrap/internal/config"
)

// swapStackFactories stubs config loading and stack creation, restoring the
// originals on cleanup.
func swapStackFactories(t *testing.T, stack *fakeStack) {
	t.Helper()
	origLoad := loadConfigFile
	origFind := findConfigFile
	origStack := newStack
	origWrite := writeFile
	t.Cleanup(func() {
		loadConfigFile = origLoad
		findConfigFile = origFind
		newStack = origStack
		writeFile = origWrite
	})

	loadConfigFile = func(_ string) (config.Config, error) { return config.Default(), nil }
	findConfigFile = func() (string, error) { return config.DefaultConfigFile, nil }
	newStack = func(_ context.Context, _ config.Config) (engineStack, error) { return stack, nil }
	writeFile = func(_ string, _ []byte, _ fs.FileMode) error { return nil }
}

func TestUp(t *testing.T) {
	stack := &fakeStack{
		upOutputs: auto.OutputMap{
			"clusterName": {Value: "ekstrap-cluster"},
			"kubeconfig":  {Value: "apiVersion: v1\nkind: Config\n", Secret: true},
		},
	}
	swapStackFactories(t, stack)

	var wrotePath string
	var wroteData []byte
	writeFile = func(path string, data []byte, _ fs.FileMode) error {
		wrotePath = path
		wroteData = data
		return nil
	}

	err := Up(context.Background(), "ekstrap.yaml")
	require.NoError(t, err)

	assert.True(t, stack.upCalled)
	assert.Equal(t, kubeconfigFile, wrotePath)
	assert.Contains(t, string(wroteData), "kind: Config")
	// The configuration was pushed into the stack before the update.
	assert.Contains(t, stack.configSet, config.KeyMinClusterSize)
}

func TestUp_UpdateFailure(t *testing.T) {
	stack := &fakeStack{upErr: errors.New("quota exceeded")}
	swapStackFactories(t, stack)

	err := Up(context.Background(), "ekstrap.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update failed")
}

func TestUp_KubeconfigWriteFailure(t *testing.T) {
	stack := &fakeStack{
		upOutputs: auto.OutputMap{"kubeconfig": {Value: "doc", Secret: true}},
	}
	swapStackFactories(t, stack)
	writeFile = func(_ string, _ []byte, _ fs.FileMode) error { return errors.New("disk full") }

	err := Up(context.Background(), "ekstrap.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write kubeconfig")
}

func TestUp_NoConfigFound(t *testing.T) {
	stack := &fakeStack{}
	swapStackFactories(t, stack)
	findConfigFile = func() (string, error) { return "", errors.New("no ekstrap.yaml in current directory") }

	err := Up(context.Background(), "")
	require.Error(t, err)
	assert.False(t, stack.upCalled)
}

func TestPreview(t *testing.T) {
	stack := &fakeStack{}
	swapStackFactories(t, stack)

	err := Preview(context.Background(), "ekstrap.yaml")
	require.NoError(t, err)
	assert.True(t, stack.previewCalled)
	assert.False(t, stack.upCalled)
}

func TestPreview_Failure(t *testing.T) {
	stack := &fakeStack{previewErr: errors.New("credentials missing")}
	swapStackFactories(t, stack)

	err := Preview(context.Background(), "ekstrap.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preview failed")
}
