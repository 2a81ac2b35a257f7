// Package kubeconfig builds the client configuration document for a
// provisioned cluster.
//
// The document carries exactly one cluster, one user, and one context, with
// the current context pointing at that single entry. Credentials are not
// embedded; the user entry invokes the AWS CLI's token fetcher as an exec
// credential plugin on every use.
package kubeconfig

import (
	"encoding/base64"
	"fmt"

	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

const execAPIVersion = "client.authentication.k8s.io/v1beta1"

// Build assembles the client configuration for the given cluster.
//
// caData is the base64-encoded certificate authority bundle exactly as the
// provider reports it.
func Build(endpoint, caData, clusterName string) (*clientcmdapi.Config, error) {
	ca, err := base64.StdEncoding.DecodeString(caData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode certificate authority data: %w", err)
	}

	cfg := clientcmdapi.NewConfig()
	cfg.Clusters[clusterName] = &clientcmdapi.Cluster{
		Server:                   endpoint,
		CertificateAuthorityData: ca,
	}
	cfg.AuthInfos[clusterName] = &clientcmdapi.AuthInfo{
		Exec: &clientcmdapi.ExecConfig{
			APIVersion:      execAPIVersion,
			Command:         "aws",
			Args:            []string{"eks", "get-token", "--cluster-name", clusterName},
			InteractiveMode: clientcmdapi.IfAvailableExecInteractiveMode,
		},
	}
	cfg.Contexts[clusterName] = &clientcmdapi.Context{
		Cluster:  clusterName,
		AuthInfo: clusterName,
	}
	cfg.CurrentContext = clusterName
	return cfg, nil
}

// Write serializes the client configuration to YAML.
func Write(cfg *clientcmdapi.Config) ([]byte, error) {
	data, err := clientcmd.Write(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize kubeconfig: %w", err)
	}
	return data, nil
}

// Render builds and serializes in one step, for use inside deferred output
// composition where only the final bytes matter.
func Render(endpoint, caData, clusterName string) (string, error) {
	cfg, err := Build(endpoint, caData, clusterName)
	if err != nil {
		return "", err
	}
	data, err := Write(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
