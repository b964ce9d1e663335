// Package gen provides helpers shared by the code generators: identifier
// conversion, reserved-word deny lists, and formatting of generated Go
// source.
package gen // import "github.com/CognitoIQ/go-xsd/internal/gen"

import (
	"fmt"
	"sort"

	"golang.org/x/tools/imports"
)

// A DenyList is a set of identifiers that may not be used verbatim in
// generated code.
type DenyList map[string]struct{}

// NewDenyList builds a DenyList from words.
func NewDenyList(words ...string) DenyList {
	d := make(DenyList, len(words))
	for _, w := range words {
		d[w] = struct{}{}
	}
	return d
}

// Contains reports whether word is denied.
func (d DenyList) Contains(word string) bool {
	_, ok := d[word]
	return ok
}

// Words returns the denied identifiers in sorted order.
func (d DenyList) Words() []string {
	words := make([]string, 0, len(d))
	for w := range d {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// GoKeywords are the reserved words of the Go language.
var GoKeywords = NewDenyList(
	"break", "default", "func", "interface", "select",
	"case", "defer", "go", "map", "struct",
	"chan", "else", "goto", "package", "switch",
	"const", "fallthrough", "if", "range", "type",
	"continue", "for", "import", "return", "var",
)

// RustKeywords are the strict and reserved keywords of the Rust
// language, 2018 edition and later.
var RustKeywords = NewDenyList(
	"as", "async", "await", "break", "const", "continue", "crate",
	"dyn", "else", "enum", "extern", "false", "fn", "for", "if",
	"impl", "in", "let", "loop", "match", "mod", "move", "mut",
	"pub", "ref", "return", "self", "Self", "static", "struct",
	"super", "trait", "true", "type", "unsafe", "use", "where",
	"while", "abstract", "become", "box", "do", "final", "macro",
	"override", "priv", "typeof", "unsized", "virtual", "yield",
	"try",
)

// Sanitize modifies any names that are reserved in the target
// language, so that they may be used as identifiers without
// causing a syntax error.
func Sanitize(name string, reserved DenyList) string {
	if reserved.Contains(name) {
		return name + "_"
	}
	return name
}

// FormatSource runs gofmt on Go source code and fixes up its import
// declarations.
func FormatSource(src []byte) ([]byte, error) {
	out, err := imports.Process("", src, nil)
	if err != nil {
		return nil, fmt.Errorf("%v in %s", err, src)
	}
	return out, nil
}
