package xsdgen

import (
	"strings"
	"unicode/utf8"
)

// Width of a wrapped comment line, in bytes, excluding the "// "
// marker.
const commentWidth = 60

// structComment formats documentation for a type declaration. Each
// line is trimmed; lines of two bytes or fewer are dropped, and the
// rest are wrapped at commentWidth bytes.
func structComment(doc string) string {
	var b strings.Builder
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 2 {
			continue
		}
		for _, chunk := range splitBytes(line, commentWidth) {
			b.WriteString("// ")
			b.WriteString(chunk)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// fieldComment formats documentation for a struct member on a single
// line. Every trimmed line longer than one byte becomes a "// text  "
// run.
func fieldComment(doc string) string {
	var b strings.Builder
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 1 {
			continue
		}
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("  ")
	}
	return b.String()
}

// splitBytes cuts s into chunks of at most n bytes. A chunk never
// ends inside a multi-byte UTF-8 sequence, so it may be shorter.
func splitBytes(s string, n int) []string {
	var chunks []string
	for len(s) > n {
		i := n
		for i > 0 && !utf8.RuneStart(s[i]) {
			i--
		}
		if i == 0 {
			// a single rune wider than n
			_, i = utf8.DecodeRuneInString(s)
		}
		chunks = append(chunks, s[:i])
		s = s[i:]
	}
	if s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}
