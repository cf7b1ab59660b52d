package domain

import "errors"

// Domain errors represent provisioning failures.
// Adapters wrap these with context; callers test them with errors.Is.
var (
	// ErrNotFound indicates a resource could not be located on disk.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage indicates a filesystem operation failed.
	// Failing to create the data directory is fatal for a run.
	ErrStorage = errors.New("storage error")

	// ErrTrustStore indicates the certificate bundle could not be loaded.
	ErrTrustStore = errors.New("trust store unavailable")

	// Fetch Errors.

	// ErrNetwork indicates a connection or transport failure.
	ErrNetwork = errors.New("network error")

	// ErrDownload indicates the data host answered with a non-success status.
	ErrDownload = errors.New("download failed")

	// ErrIndex indicates the package index could not be parsed.
	ErrIndex = errors.New("invalid package index")

	// ErrPackageUnknown indicates the package id is not listed in the index.
	ErrPackageUnknown = errors.New("package not in index")

	// ErrInvalidArchive indicates a downloaded archive could not be unpacked.
	ErrInvalidArchive = errors.New("invalid archive")

	// ErrIncomplete indicates at least one required package was not verified.
	ErrIncomplete = errors.New("not all packages verified")
)
