package nltk

import (
	"archive/zip"
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// testPackage is one entry served by fakeHost.
type testPackage struct {
	id     string
	subdir string
	files  map[string]string
	unzip  string
}

// fakeHost serves an index.xml and package archives over TLS.
type fakeHost struct {
	srv *httptest.Server

	mu       sync.Mutex
	archives map[string][]byte
	requests map[string]int
	status   map[string]int
	index    string
}

func newFakeHost(t *testing.T, pkgs ...testPackage) *fakeHost {
	t.Helper()

	h := &fakeHost{
		archives: make(map[string][]byte),
		requests: make(map[string]int),
		status:   make(map[string]int),
	}

	var entries strings.Builder
	for _, p := range pkgs {
		data := makeZip(t, p.files)
		path := "/packages/" + p.subdir + "/" + p.id + ".zip"
		h.archives[path] = data

		unzip := ""
		if p.unzip != "" {
			unzip = fmt.Sprintf(` unzip="%s"`, p.unzip)
		}
		fmt.Fprintf(&entries,
			`    <package id="%s" name="%s data" subdir="%s" url="packages/%s/%s.zip" size="%d" unzipped_size="%d"%s />`+"\n",
			p.id, p.id, p.subdir, p.subdir, p.id, len(data), unzippedSize(p.files), unzip)
	}
	h.index = "<?xml version=\"1.0\"?>\n<nltk_data>\n  <packages>\n" + entries.String() + "  </packages>\n</nltk_data>\n"

	h.srv = httptest.NewTLSServer(http.HandlerFunc(h.serve))
	t.Cleanup(h.srv.Close)
	return h
}

func (h *fakeHost) serve(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.requests[r.URL.Path]++
	status, failing := h.status[r.URL.Path]
	data, isArchive := h.archives[r.URL.Path]
	index := h.index
	h.mu.Unlock()

	if failing {
		w.WriteHeader(status)
		return
	}
	if r.URL.Path == "/index.xml" {
		_, _ = w.Write([]byte(index))
		return
	}
	if isArchive {
		_, _ = w.Write(data)
		return
	}
	http.NotFound(w, r)
}

func (h *fakeHost) indexURL() string {
	return h.srv.URL + "/index.xml"
}

func (h *fakeHost) count(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.requests[path]
}

func (h *fakeHost) fail(path string, status int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status[path] = status
}

func (h *fakeHost) restore(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.status, path)
}

// newTestBackend returns a backend that trusts the fake host.
func (h *fakeHost) newTestBackend(baseDir string, out *bytes.Buffer) *Backend {
	cfg := Config{
		IndexURL:    h.indexURL(),
		HTTPClient:  h.srv.Client(),
		SearchPaths: []string{baseDir},
	}
	if out != nil {
		cfg.Output = out
	}
	return NewBackend(cfg)
}

// unzippedSize sums the file contents an archive of files would unpack to.
func unzippedSize(files map[string]string) int {
	total := 0
	for name, content := range files {
		if !strings.HasSuffix(name, "/") {
			total += len(content)
		}
	}
	return total
}

// archiveSize returns the size of the archive served at path.
func (h *fakeHost) archiveSize(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.archives[path])
}

// makeZip builds an archive from name -> content. Names ending in "/"
// are directory entries.
func makeZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		if !strings.HasSuffix(name, "/") {
			_, err = w.Write([]byte(content))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func punktPackage() testPackage {
	return testPackage{
		id:     "punkt",
		subdir: "tokenizers",
		files: map[string]string{
			"punkt/":               "",
			"punkt/README":         "Punkt Sentence Tokenizer",
			"punkt/english.pickle": "pickle",
		},
	}
}

func wordnetPackage() testPackage {
	return testPackage{
		id:     "wordnet",
		subdir: "corpora",
		files: map[string]string{
			"wordnet/":         "",
			"wordnet/lexnames": "00 adj.all",
		},
	}
}
