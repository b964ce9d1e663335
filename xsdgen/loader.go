package xsdgen

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/CognitoIQ/go-xsd/xsd"
)

// DefaultMaxDepth is the number of nested imports a Loader follows
// when its MaxDepth is zero.
const DefaultMaxDepth = 10

// A Loader fetches the schema documents imported or included by
// another schema. Locations are read from the local file system,
// or over HTTP when they are http or https URLs.
type Loader struct {
	// Used for http and https locations. If nil,
	// http.DefaultClient is used.
	Client *http.Client
	// Maximum length of an import chain.
	MaxDepth int
	// Receives a message for each document fetched.
	Logger Logger
}

// Load returns every document that docs depend on, directly or not,
// excluding docs themselves. locations[i] is the file name or URL
// docs[i] was read from, and relative schemaLocation attributes are
// resolved against it. Each location is fetched once. Imports
// without a schemaLocation are skipped.
func (l *Loader) Load(locations []string, docs [][]byte) ([][]byte, error) {
	if len(locations) != len(docs) {
		return nil, fmt.Errorf("%d locations given for %d documents", len(locations), len(docs))
	}
	seen := make(map[string]bool)
	for _, loc := range locations {
		seen[canonical(loc)] = true
	}
	var result [][]byte
	for i, doc := range docs {
		deps, err := l.load(locations[i], doc, seen, 1)
		if err != nil {
			return nil, err
		}
		result = append(result, deps...)
	}
	return result, nil
}

func (l *Loader) load(base string, doc []byte, seen map[string]bool, depth int) ([][]byte, error) {
	refs, err := xsd.Imports(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", base, err)
	}
	var result [][]byte
	for _, ref := range refs {
		if ref.Location == "" {
			l.logf("no schemaLocation for %s imported by %s; skipping", ref.Namespace, base)
			continue
		}
		loc, err := resolveLocation(base, ref.Location)
		if err != nil {
			return nil, err
		}
		if seen[canonical(loc)] {
			continue
		}
		seen[canonical(loc)] = true

		maxDepth := l.MaxDepth
		if maxDepth <= 0 {
			maxDepth = DefaultMaxDepth
		}
		if depth >= maxDepth {
			return nil, fmt.Errorf("maximum depth of %d reached fetching %s", maxDepth, loc)
		}
		data, err := l.fetch(loc)
		if err != nil {
			return nil, err
		}
		l.logf("fetched %s for namespace %q", loc, ref.Namespace)
		result = append(result, data)

		deps, err := l.load(loc, data, seen, depth+1)
		if err != nil {
			return nil, err
		}
		result = append(result, deps...)
	}
	return result, nil
}

func (l *Loader) logf(format string, v ...interface{}) {
	if l.Logger != nil {
		l.Logger.Printf(format, v...)
	}
}

func (l *Loader) fetch(loc string) ([]byte, error) {
	if !isURL(loc) {
		return os.ReadFile(loc)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	rsp, err := client.Get(loc)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", loc, rsp.StatusCode)
	}
	return io.ReadAll(rsp.Body)
}

func isURL(loc string) bool {
	u, err := url.Parse(loc)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// resolveLocation interprets a schemaLocation relative to the
// document that contains it.
func resolveLocation(base, loc string) (string, error) {
	if isURL(loc) {
		return loc, nil
	}
	if isURL(base) {
		b, err := url.Parse(base)
		if err != nil {
			return "", err
		}
		ref, err := url.Parse(loc)
		if err != nil {
			return "", fmt.Errorf("bad schemaLocation %q in %s: %w", loc, base, err)
		}
		return b.ResolveReference(ref).String(), nil
	}
	if filepath.IsAbs(loc) {
		return loc, nil
	}
	return filepath.Join(filepath.Dir(base), filepath.FromSlash(loc)), nil
}

func canonical(loc string) string {
	if isURL(loc) {
		return loc
	}
	if abs, err := filepath.Abs(loc); err == nil {
		return abs
	}
	return filepath.Clean(loc)
}
