package kubeconfig

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/tools/clientcmd"
)

const (
	testEndpoint = "https://ABCDEF0123456789.gr7.us-east-1.eks.amazonaws.com"
	testCluster  = "ekstrap-cluster"
)

func testCAData(t *testing.T) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString([]byte("-----BEGIN CERTIFICATE-----\nfake\n-----END CERTIFICATE-----\n"))
}

func TestBuild_SingleEntryDocument(t *testing.T) {
	t.Parallel()
	cfg, err := Build(testEndpoint, testCAData(t), testCluster)
	require.NoError(t, err)

	require.Len(t, cfg.Clusters, 1)
	require.Len(t, cfg.AuthInfos, 1)
	require.Len(t, cfg.Contexts, 1)

	ctx, ok := cfg.Contexts[cfg.CurrentContext]
	require.True(t, ok, "current-context must name the single context")
	assert.Equal(t, testCluster, ctx.Cluster)
	assert.Equal(t, testCluster, ctx.AuthInfo)

	cluster := cfg.Clusters[testCluster]
	require.NotNil(t, cluster)
	assert.Equal(t, testEndpoint, cluster.Server)
	assert.NotEmpty(t, cluster.CertificateAuthorityData)
}

func TestBuild_ExecCredentialPlugin(t *testing.T) {
	t.Parallel()
	cfg, err := Build(testEndpoint, testCAData(t), testCluster)
	require.NoError(t, err)

	auth := cfg.AuthInfos[testCluster]
	require.NotNil(t, auth)
	require.NotNil(t, auth.Exec)
	assert.Equal(t, "client.authentication.k8s.io/v1beta1", auth.Exec.APIVersion)
	assert.Equal(t, "aws", auth.Exec.Command)
	assert.Equal(t, []string{"eks", "get-token", "--cluster-name", testCluster}, auth.Exec.Args)
}

func TestBuild_DecodesCertificateAuthority(t *testing.T) {
	t.Parallel()
	raw := []byte("certificate bytes")
	cfg, err := Build(testEndpoint, base64.StdEncoding.EncodeToString(raw), testCluster)
	require.NoError(t, err)

	assert.Equal(t, raw, cfg.Clusters[testCluster].CertificateAuthorityData)
}

func TestBuild_InvalidCAData(t *testing.T) {
	t.Parallel()
	_, err := Build(testEndpoint, "not base64!!", testCluster)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode certificate authority data")
}

func TestRender_RoundTrip(t *testing.T) {
	t.Parallel()
	doc, err := Render(testEndpoint, testCAData(t), testCluster)
	require.NoError(t, err)

	parsed, err := clientcmd.Load([]byte(doc))
	require.NoError(t, err)

	assert.Len(t, parsed.Clusters, 1)
	assert.Len(t, parsed.Contexts, 1)
	assert.Equal(t, testCluster, parsed.CurrentContext)
	assert.Equal(t, testEndpoint, parsed.Clusters[testCluster].Server)
}
