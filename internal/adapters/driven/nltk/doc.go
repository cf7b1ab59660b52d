// Package nltk implements driven.PackageBackend against the NLTK data host.
//
// It follows the NLTK downloader's conventions: packages are listed in an
// XML index, each one is a zip archive stored as <dir>/<subdir>/<id>.zip and
// unpacked beside it, and a resource "corpora/wordnet" is resolvable if
// either the unpacked directory or the archive is present.
//
// Progress lines carry the "[nltk_data] " prefix used by nltk.download.
package nltk
