package commandline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplaceRuleList(t *testing.T) {
	var rules ReplaceRuleList
	require.NoError(t, rules.Set("Type$ -> "))
	require.NoError(t, rules.Set(`^ns(\w) -> $1`))
	require.Equal(t, "rule", rules.Type())
	require.Equal(t, "Type$ -> \n^ns(\\w) -> $1\n", rules.String())
	require.Equal(t, "Address", rules.Apply("nsAddressType"))

	require.Error(t, rules.Set("no arrow"))
	require.Error(t, rules.Set("[ -> x"))
	require.Len(t, rules, 2)
}

func TestStrings(t *testing.T) {
	var s Strings
	require.NoError(t, s.Set("match"))
	require.NoError(t, s.Set("type, fn"))
	require.Equal(t, Strings{"match", "type", "fn"}, s)
	require.Equal(t, "match,type,fn", s.String())
	require.Equal(t, "strings", s.Type())
}

func TestParseReplaceRule(t *testing.T) {
	rule, err := ParseReplaceRule(`^ArrayOf(.*)->${1}List`)
	require.NoError(t, err)
	require.Equal(t, "StringList", rule.From.ReplaceAllString("ArrayOfString", rule.To))

	_, err = ParseReplaceRule("(unclosed -> x")
	require.Error(t, err)
}
