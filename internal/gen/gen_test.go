package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"expectedContentTypes", []string{"expected", "Content", "Types"}},
		{"XMLName", []string{"XML", "Name"}},
		{"item_list", []string{"item", "list"}},
		{"a-b.c d", []string{"a", "b", "c", "d"}},
		{"version2Type", []string{"version2", "Type"}},
		{"", nil},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Words(tt.in), tt.in)
	}
}

func TestLocalName(t *testing.T) {
	require.Equal(t, "Addr", LocalName("a:Addr"))
	require.Equal(t, "Addr", LocalName("Addr"))
	require.Equal(t, "Code", LocalName("{urn:c}Code"))
	require.Equal(t, "Code", Pascal("{urn:c}code"))
}

func TestPascal(t *testing.T) {
	tests := map[string]string{
		"contentType":          "ContentType",
		"xlink:href":           "Href",
		"red":                  "Red",
		"XMLName":              "XmlName",
		"expectedContentTypes": "ExpectedContentTypes",
		"tns:purchase-order":   "PurchaseOrder",
	}
	for in, want := range tests {
		require.Equal(t, want, Pascal(in), in)
	}
}

func TestIdentifier(t *testing.T) {
	require.Equal(t, "TextHtml", Identifier("text/html"))
	require.Equal(t, "ABC", Identifier("a:b:c"))
	require.Equal(t, "", Identifier("+"))
}

func TestSnake(t *testing.T) {
	tests := map[string]string{
		"contentType":          "content_type",
		"xlink:href":           "href",
		"XMLName":              "xml_name",
		"expectedContentTypes": "expected_content_types",
		"Type":                 "type",
	}
	for in, want := range tests {
		require.Equal(t, want, Snake(in), in)
	}
}

func TestSanitize(t *testing.T) {
	require.Equal(t, "type_", Sanitize("type", RustKeywords))
	require.Equal(t, "kind", Sanitize("kind", RustKeywords))
	require.Equal(t, "range_", Sanitize("range", GoKeywords))
	require.Equal(t, "Self_", Sanitize("Self", RustKeywords))
}

func TestDenyList(t *testing.T) {
	d := NewDenyList("b", "a")
	require.True(t, d.Contains("a"))
	require.False(t, d.Contains("c"))
	require.Equal(t, []string{"a", "b"}, d.Words())
}

func TestStartsWithDigit(t *testing.T) {
	require.True(t, StartsWithDigit("1st"))
	require.False(t, StartsWithDigit("first"))
	require.False(t, StartsWithDigit(""))
}

func TestFormatSource(t *testing.T) {
	out, err := FormatSource([]byte("package ws\ntype T struct{ When time.Time\n N xml.Name }\n"))
	require.NoError(t, err)
	require.Contains(t, string(out), `"encoding/xml"`)
	require.Contains(t, string(out), `"time"`)

	_, err = FormatSource([]byte("package ws\ntype {"))
	require.Error(t, err)
}
