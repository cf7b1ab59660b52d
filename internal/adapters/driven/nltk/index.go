package nltk

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/url"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
)

// xmlIndex mirrors index.xml:
//
//	<nltk_data><packages><package id=".." subdir=".." url=".." .../></packages></nltk_data>
type xmlIndex struct {
	XMLName  xml.Name     `xml:"nltk_data"`
	Packages []xmlPackage `xml:"packages>package"`
}

type xmlPackage struct {
	ID           string `xml:"id,attr"`
	Name         string `xml:"name,attr"`
	Subdir       string `xml:"subdir,attr"`
	URL          string `xml:"url,attr"`
	Size         int64  `xml:"size,attr"`
	UnzippedSize int64  `xml:"unzipped_size,attr"`
	Unzip        string `xml:"unzip,attr"`
}

// parseIndex decodes an index document. Relative package URLs are
// resolved against base.
func parseIndex(r io.Reader, base *url.URL) (*domain.Index, error) {
	var raw xmlIndex
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndex, err)
	}

	index := &domain.Index{Packages: make([]domain.IndexPackage, 0, len(raw.Packages))}
	for _, p := range raw.Packages {
		if p.ID == "" || p.URL == "" {
			continue
		}

		ref, err := url.Parse(p.URL)
		if err != nil {
			return nil, fmt.Errorf("%w: package %s url: %v", domain.ErrIndex, p.ID, err)
		}
		if base != nil {
			ref = base.ResolveReference(ref)
		}

		subdir := p.Subdir
		if subdir == "" {
			subdir = "corpora"
		}

		index.Packages = append(index.Packages, domain.IndexPackage{
			ID:           p.ID,
			Name:         p.Name,
			Subdir:       subdir,
			URL:          ref.String(),
			Size:         p.Size,
			UnzippedSize: p.UnzippedSize,
			// Packages are unpacked unless the index says unzip="0".
			Unzip: p.Unzip != "0",
		})
	}

	return index, nil
}
