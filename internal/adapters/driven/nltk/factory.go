package nltk

import (
	"fmt"
	"net/http"

	"github.com/custodia-labs/nltkdata/internal/adapters/driven/truststore"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.BackendFactory = (*Factory)(nil)

// Factory builds Backends whose HTTP transport verifies the data host
// against the configured trust store.
type Factory struct{}

// NewFactory creates a new backend factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create loads the trust store and returns a backend that searches
// opts.BaseDir.
func (f *Factory) Create(opts driven.BackendOptions) (driven.PackageBackend, error) {
	tlsConfig, err := truststore.TLSConfig(opts.Settings.Trust)
	if err != nil {
		return nil, fmt.Errorf("configure trust store: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	return NewBackend(Config{
		IndexURL: opts.Settings.IndexURL,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Settings.Network.Timeout,
		},
		RequestsPerSecond: opts.Settings.Network.RequestsPerSecond,
		SearchPaths:       []string{opts.BaseDir},
		Output:            opts.Output,
	}), nil
}
