// Package domain defines the core entities for nltkdata.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Package: A (category, name) pair identifying one NLTK data resource
//   - PackageResult: The classified outcome of fetching one package
//   - Report: The accumulated outcome of a provisioning run
//   - Settings: Effective configuration for a run
//   - Index: The remote package index served by the data host
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
