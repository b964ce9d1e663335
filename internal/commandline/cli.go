// Package commandline holds flag values shared by the commands.
package commandline // import "github.com/CognitoIQ/go-xsd/internal/commandline"

import (
	"fmt"
	"regexp"
	"strings"
)

// A ReplaceRule rewrites identifiers matching From. To may refer to
// submatches of From, as in regexp.Regexp.ReplaceAllString.
type ReplaceRule struct {
	From *regexp.Regexp
	To   string
}

// ParseReplaceRule parses a rule written "regex -> replacement".
// Space around the arrow is ignored, and the replacement may be
// empty.
func ParseReplaceRule(s string) (ReplaceRule, error) {
	from, to, ok := strings.Cut(s, "->")
	if !ok {
		return ReplaceRule{}, fmt.Errorf("invalid replace rule %q; must be \"regex -> replacement\"", s)
	}
	from = strings.TrimSpace(from)
	re, err := regexp.Compile(from)
	if err != nil {
		return ReplaceRule{}, fmt.Errorf("invalid regex %q: %w", from, err)
	}
	return ReplaceRule{From: re, To: strings.TrimSpace(to)}, nil
}

// A ReplaceRuleList is a flag value collecting rules in the order
// they were given.
type ReplaceRuleList []ReplaceRule

// Apply passes s through each rule in turn.
func (r ReplaceRuleList) Apply(s string) string {
	for _, rule := range r {
		s = rule.From.ReplaceAllString(s, rule.To)
	}
	return s
}

// Set parses and appends one rule.
func (r *ReplaceRuleList) Set(s string) error {
	rule, err := ParseReplaceRule(s)
	if err != nil {
		return err
	}
	*r = append(*r, rule)
	return nil
}

func (r *ReplaceRuleList) String() string {
	var b strings.Builder
	for _, rule := range *r {
		b.WriteString(rule.From.String() + " -> " + rule.To + "\n")
	}
	return b.String()
}

func (r *ReplaceRuleList) Type() string { return "rule" }

// Strings is a flag value collecting words, given either as repeated
// flags or as a comma-separated list.
type Strings []string

// Set appends the non-empty words of val.
func (s *Strings) Set(val string) error {
	for _, word := range strings.Split(val, ",") {
		if word = strings.TrimSpace(word); word != "" {
			*s = append(*s, word)
		}
	}
	return nil
}

func (s *Strings) String() string { return strings.Join(*s, ",") }

func (s *Strings) Type() string { return "strings" }
