package nltk

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driven"
	"github.com/custodia-labs/nltkdata/internal/logger"
)

// Ensure Backend implements the interface.
var _ driven.PackageBackend = (*Backend)(nil)

// progressPrefix marks lines written by the fetch mechanism.
const progressPrefix = "[nltk_data] "

// Config holds configuration for a Backend.
type Config struct {
	// IndexURL is the location of index.xml.
	IndexURL string

	// HTTPClient performs requests. Its transport carries the trust store.
	HTTPClient *http.Client

	// RequestsPerSecond paces requests. Zero or negative disables pacing.
	RequestsPerSecond float64

	// SearchPaths are the data directories Locate searches, in order.
	SearchPaths []string

	// Output receives progress lines. Nil discards them.
	Output io.Writer
}

// Backend downloads NLTK data packages and resolves installed resources.
type Backend struct {
	indexURL    string
	client      *client
	searchPaths []string
	out         io.Writer

	// index is cached after the first successful fetch.
	index *domain.Index
}

// NewBackend creates a backend from cfg.
func NewBackend(cfg Config) *Backend {
	if cfg.IndexURL == "" {
		cfg.IndexURL = domain.DefaultIndexURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}

	return &Backend{
		indexURL: cfg.IndexURL,
		client: &client{
			http:    cfg.HTTPClient,
			limiter: newLimiter(cfg.RequestsPerSecond),
		},
		searchPaths: cfg.SearchPaths,
		out:         cfg.Output,
	}
}

// Fetch installs the package req.Name under req.TargetDir.
// A package that is already installed is left untouched.
func (b *Backend) Fetch(ctx context.Context, req domain.FetchRequest) error {
	index, err := b.loadIndex(ctx)
	if err != nil {
		return err
	}

	pkg, ok := index.Lookup(req.Name)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrPackageUnknown, req.Name)
	}

	dir := filepath.Join(req.TargetDir, pkg.Subdir)
	archive := filepath.Join(dir, pkg.ID+".zip")

	if isInstalled(pkg, dir) {
		b.progress(req, "  Package %s is already up-to-date!", pkg.ID)
		return nil
	}

	if pkg.Size > 0 {
		b.progress(req, "Downloading package %s (%s) to %s...", pkg.ID, humanize.Bytes(uint64(pkg.Size)), req.TargetDir)
	} else {
		b.progress(req, "Downloading package %s to %s...", pkg.ID, req.TargetDir)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if err := b.download(ctx, pkg.URL, archive); err != nil {
		return fmt.Errorf("download %s: %w", pkg.ID, err)
	}

	if pkg.Unzip {
		b.progress(req, "  Unzipping %s/%s.zip.", pkg.Subdir, pkg.ID)
		if err := unzip(archive, dir); err != nil {
			return fmt.Errorf("unzip %s: %w", pkg.ID, err)
		}
	}

	return nil
}

// Locate resolves resourcePath against the search paths.
// Both the unpacked form and the archive form are accepted.
func (b *Backend) Locate(resourcePath string) (string, error) {
	rel := filepath.FromSlash(resourcePath)
	name := filepath.Base(rel)

	for _, root := range b.searchPaths {
		candidate := filepath.Join(root, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		archive := candidate + ".zip"
		if zipHasDir(archive, name) {
			return archive, nil
		}
	}

	logger.Debug("Resource %s not in %v", resourcePath, b.searchPaths)
	return "", fmt.Errorf("resource %s: %w", resourcePath, domain.ErrNotFound)
}

// loadIndex fetches and caches the package index.
// A failed fetch is not cached, so the next package retries it.
func (b *Backend) loadIndex(ctx context.Context) (*domain.Index, error) {
	if b.index != nil {
		return b.index, nil
	}

	base, err := url.Parse(b.indexURL)
	if err != nil {
		return nil, fmt.Errorf("%w: index url: %v", domain.ErrIndex, err)
	}

	logger.Debug("Fetching index %s", b.indexURL)
	resp, err := b.client.get(ctx, b.indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	defer resp.Body.Close()

	index, err := parseIndex(resp.Body, base)
	if err != nil {
		return nil, err
	}

	logger.Debug("Index lists %d packages", len(index.Packages))
	b.index = index
	return index, nil
}

// download streams src to path via a temporary file and rename, so an
// interrupted transfer never leaves a truncated archive behind.
func (b *Backend) download(ctx context.Context, src, path string) error {
	resp, err := b.client.get(ctx, src)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: read body: %v", domain.ErrNetwork, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	logger.Debug("Downloaded %s (%s)", filepath.Base(path), humanize.Bytes(uint64(n)))
	return nil
}

func (b *Backend) progress(req domain.FetchRequest, format string, args ...any) {
	if req.Quiet {
		return
	}
	fmt.Fprintf(b.out, progressPrefix+format+"\n", args...)
}

// isInstalled reports whether pkg is already present under dir.
// The archive must match the index size when the index lists one; an
// unpacked directory without its archive counts as installed, which is
// the state a manual download leaves behind. When the index lists an
// unzipped size, the unpacked files must add up to it, so a partial
// extraction is fetched again.
func isInstalled(pkg domain.IndexPackage, dir string) bool {
	unpacked := filepath.Join(dir, pkg.ID)
	unpackedOK := dirExists(unpacked) && unpackedSizeMatches(pkg, unpacked)

	info, err := os.Stat(filepath.Join(dir, pkg.ID+".zip"))
	if err != nil {
		return os.IsNotExist(err) && unpackedOK
	}

	if pkg.Size > 0 && info.Size() != pkg.Size {
		return false
	}
	return !pkg.Unzip || unpackedOK
}

func unpackedSizeMatches(pkg domain.IndexPackage, path string) bool {
	if pkg.UnzippedSize <= 0 {
		return true
	}
	size, err := dirSize(path)
	if err != nil {
		logger.Debug("Size %s: %v", path, err)
		return false
	}
	if size != pkg.UnzippedSize {
		logger.Debug("Package %s is stale: %s unpacked, index lists %s",
			pkg.ID, humanize.Bytes(uint64(size)), humanize.Bytes(uint64(pkg.UnzippedSize)))
		return false
	}
	return true
}

// dirSize returns the total size of the regular files under path.
func dirSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
