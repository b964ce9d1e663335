// Package testutil contains common utility functions for unit tests.
package testutil // import "github.com/CognitoIQ/go-xsd/internal/testutil"

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FakeClient returns an HTTP client that replies to requests for the
// given addresses with the mapped body text, and 404 to anything else.
func FakeClient(pages map[string][]byte) *http.Client {
	return &http.Client{
		Transport: mockRoundTrip(pages),
	}
}

type mockRoundTrip map[string][]byte

func (r mockRoundTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	var rsp http.Response
	rsp.Header = make(http.Header)
	rsp.Request = req

	if body, ok := r[req.URL.String()]; ok {
		rsp.StatusCode = 200
		rsp.Body = io.NopCloser(bytes.NewReader(body))
	} else {
		rsp.StatusCode = 404
		rsp.Body = io.NopCloser(strings.NewReader("404 not found"))
	}
	return &rsp, nil
}

// WriteFiles writes each named file into a fresh temporary directory,
// returning the directory.
func WriteFiles(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
