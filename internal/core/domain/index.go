package domain

// Index is the remote package index.
type Index struct {
	Packages []IndexPackage
}

// IndexPackage describes a downloadable package as listed in the index.
type IndexPackage struct {
	// ID is the package identifier, e.g. "wordnet".
	ID string

	// Name is the human-readable title.
	Name string

	// Subdir is the category directory the package installs under.
	Subdir string

	// URL is the archive location.
	URL string

	// Size is the archive size in bytes.
	Size int64

	// UnzippedSize is the unpacked size in bytes.
	UnzippedSize int64

	// Unzip indicates the archive should be unpacked after download.
	Unzip bool
}

// Lookup returns the package with the given id.
func (i *Index) Lookup(id string) (IndexPackage, bool) {
	for _, p := range i.Packages {
		if p.ID == id {
			return p, true
		}
	}
	return IndexPackage{}, false
}
