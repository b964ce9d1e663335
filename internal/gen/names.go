package gen

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LocalName strips the namespace prefix, if any, from a QName. Names
// written "{namespace}local" are also accepted.
func LocalName(qname string) string {
	if i := strings.LastIndexAny(qname, ":}"); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// Words splits an identifier into words. Any character that is not a
// letter or digit separates words, as does a change from lower to
// upper case ("contentType") or the last capital of an acronym
// followed by a lower case letter ("XMLName").
func Words(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// Pascal converts s to PascalCase, after removing any namespace
// prefix. Acronyms are not preserved: "XMLName" becomes "XmlName".
func Pascal(s string) string {
	return Identifier(LocalName(s))
}

// Identifier converts arbitrary text, such as an enumerated value,
// to PascalCase. Every word of s is kept.
func Identifier(s string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(caser.String(w))
	}
	return b.String()
}

// Snake converts s to snake_case, after removing any namespace prefix.
func Snake(s string) string {
	words := Words(LocalName(s))
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// StartsWithDigit reports whether the first character of s is a digit.
func StartsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}
