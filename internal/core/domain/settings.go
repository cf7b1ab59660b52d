package domain

import "time"

// Default settings values.
const (
	// DefaultDataDirName is the directory created under the user's home
	// when NLTK_DATA is not set.
	DefaultDataDirName = "nltk_data"

	// DefaultIndexURL is the package index published by the NLTK data host.
	DefaultIndexURL = "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/index.xml"

	// DefaultTimeout bounds a single HTTP request, including the body transfer.
	DefaultTimeout = 5 * time.Minute

	// DefaultRequestsPerSecond paces requests to the data host.
	DefaultRequestsPerSecond = 2.0
)

// Settings is the effective configuration for a provisioning run.
type Settings struct {
	// DataDir is the base directory override. Empty means the default
	// under the user's home directory.
	DataDir string

	// IndexURL is the URL of the remote package index.
	IndexURL string

	// Trust selects the certificate bundle used to verify the data host.
	Trust TrustStore

	// Network tunes the HTTP client.
	Network NetworkSettings
}

// TrustStore references the root certificates used to verify TLS servers.
type TrustStore struct {
	// CABundle is a path to a PEM bundle. Empty selects the bundled
	// Mozilla root set.
	CABundle string
}

// IsBundled returns true if the built-in root set is selected.
func (t TrustStore) IsBundled() bool {
	return t.CABundle == ""
}

// Description returns a human-readable description of the trust store.
func (t TrustStore) Description() string {
	if t.IsBundled() {
		return "bundled Mozilla roots (certifi)"
	}
	return t.CABundle
}

// NetworkSettings tunes outbound requests.
type NetworkSettings struct {
	// Timeout bounds a single request.
	Timeout time.Duration

	// RequestsPerSecond paces requests. Zero or negative disables pacing.
	RequestsPerSecond float64
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		IndexURL: DefaultIndexURL,
		Network: NetworkSettings{
			Timeout:           DefaultTimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
	}
}

// FetchRequest is the argument to a single fetch call.
type FetchRequest struct {
	// Name is the package identifier in the remote index.
	Name string

	// TargetDir is the base data directory to install into.
	TargetDir string

	// Quiet suppresses the fetch mechanism's progress lines.
	Quiet bool
}

// EnvOverrides holds settings taken from the process environment.
// Empty fields are not provided and leave lower-precedence values intact.
type EnvOverrides struct {
	// DataDir comes from NLTK_DATA.
	DataDir string

	// IndexURL overrides the package index location.
	IndexURL string

	// CABundle overrides the trust store bundle path.
	CABundle string
}
