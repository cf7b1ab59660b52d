// Package truststore builds the TLS configuration used to reach the data host.
//
// The result is a value handed to the HTTP transport of the fetch backend.
// Nothing here touches process-wide TLS state, so every run (and every test)
// gets exactly the roots it asked for.
package truststore

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/certifi/gocertifi"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
	"github.com/custodia-labs/nltkdata/internal/logger"
)

// bundledRoots returns the Mozilla root set shipped with certifi.
// Replaced in tests.
var bundledRoots = gocertifi.CACerts

// Load returns the root pool selected by the trust store.
// An empty CABundle selects the bundled roots; otherwise the PEM file is
// read and must contain at least one certificate.
func Load(store domain.TrustStore) (*x509.CertPool, error) {
	if store.IsBundled() {
		pool, err := bundledRoots()
		if err != nil {
			return nil, fmt.Errorf("%w: bundled roots: %v", domain.ErrTrustStore, err)
		}
		logger.Debug("Trust store: %s", store.Description())
		return pool, nil
	}

	pem, err := os.ReadFile(store.CABundle)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrTrustStore, store.CABundle, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("%w: no certificates in %s", domain.ErrTrustStore, store.CABundle)
	}

	logger.Debug("Trust store: %s", store.Description())
	return pool, nil
}

// TLSConfig returns a client TLS configuration that verifies servers
// against the trust store's roots only.
func TLSConfig(store domain.TrustStore) (*tls.Config, error) {
	pool, err := Load(store)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}
