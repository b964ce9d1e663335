package xsdgen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xsd/internal/testutil"
	"github.com/CognitoIQ/go-xsd/xsd"
)

type testLogger struct {
	t    *testing.T
	msgs []string
}

func (l *testLogger) Printf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.t.Log(msg)
	l.msgs = append(l.msgs, msg)
}

func parseSchema(t *testing.T, body string) *xsd.Schema {
	t.Helper()
	schemas, err := xsd.Parse([]byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
		xmlns:tns="urn:test" targetNamespace="urn:test">` + body + `</xs:schema>`))
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	return schemas[0]
}

func emit(t *testing.T, body string, opts ...Option) string {
	t.Helper()
	var cfg Config
	cfg.Option(DefaultOptions...)
	cfg.Option(Namespace("urn:test"), LogOutput(&testLogger{t: t}))
	cfg.Option(opts...)
	out, err := cfg.Emit(parseSchema(t, body))
	require.NoError(t, err)
	return string(out)
}

func TestStructComment(t *testing.T) {
	text := strings.Repeat("abcdefghij", 13)
	require.Len(t, text, 130)
	got := structComment(text)
	lines := strings.SplitAfter(got, "\n")
	require.Equal(t, []string{
		"// " + text[:60] + "\n",
		"// " + text[60:120] + "\n",
		"// " + text[120:] + "\n",
		"",
	}, lines)

	require.Equal(t, "// abc\n", structComment("  ab\n abc \n\n"))
	require.Equal(t, "", structComment(""))
}

func TestSplitBytesUTF8(t *testing.T) {
	s := strings.Repeat("a", 59) + "é" + "b"
	require.Equal(t, []string{strings.Repeat("a", 59), "éb"}, splitBytes(s, 60))
	require.Equal(t, []string{"日", "本"}, splitBytes("日本", 2))
	require.Nil(t, splitBytes("", 60))
}

func TestFieldComment(t *testing.T) {
	require.Equal(t, "// line one  // line two  ", fieldComment("line one\n x\n  line two  "))
	require.Equal(t, "", fieldComment("\n \n"))
}

func TestEmitRustStruct(t *testing.T) {
	got := emit(t, `
	<xs:complexType name="Order">
		<xs:annotation><xs:documentation>An order.</xs:documentation></xs:annotation>
		<xs:sequence>
			<xs:element name="itemCount" type="xs:int"/>
			<xs:element name="note" type="xs:string" minOccurs="0"/>
		</xs:sequence>
		<xs:attribute name="id" type="xs:ID" use="required"/>
	</xs:complexType>`)
	require.Equal(t, `// An order.
#[derive(Default, PartialEq, Debug, YaSerialize, YaDeserialize)]
#[yaserde(prefix = "tns", namespace = "tns: urn:test")]
pub struct Order {
    #[yaserde(prefix = "tns", rename = "itemCount")]
    pub item_count: i32,
    #[yaserde(prefix = "tns", rename = "note")]
    pub note: Option<String>,
    #[yaserde(attribute, rename = "id")]
    pub id: String,
}
`, got)
}

func TestEmitRustEnum(t *testing.T) {
	got := emit(t, `
	<xs:simpleType name="Color">
		<xs:restriction base="xs:string">
			<xs:enumeration value="red"/>
			<xs:enumeration value="green"/>
		</xs:restriction>
	</xs:simpleType>
	<xs:simpleType name="Code">
		<xs:restriction base="xs:string"><xs:minLength value="3"/></xs:restriction>
	</xs:simpleType>`)
	require.Equal(t, `#[derive(Default, PartialEq, Debug, YaSerialize, YaDeserialize)]
#[yaserde(prefix = "tns", namespace = "tns: urn:test")]
pub enum Color {
    #[yaserde(rename = "red")]
    #[default]
    Red,
    #[yaserde(rename = "green")]
    Green,
}

// minLength: 3
#[derive(Default, PartialEq, Debug, YaSerialize, YaDeserialize)]
#[yaserde(prefix = "tns", namespace = "tns: urn:test")]
pub struct Code(pub String);
`, got)
}

func TestEmitRustChoice(t *testing.T) {
	got := emit(t, `
	<xs:complexType name="Shape">
		<xs:choice>
			<xs:element name="circle" type="xs:double"/>
			<xs:element name="square" type="xs:double"/>
		</xs:choice>
	</xs:complexType>`)
	require.Equal(t, `#[derive(PartialEq, Debug, YaSerialize, YaDeserialize)]
#[yaserde(prefix = "tns", namespace = "tns: urn:test")]
pub enum ShapeChoice {
    #[yaserde(rename = "circle")]
    Circle(f64),
    #[yaserde(rename = "square")]
    Square(f64),
}

impl Default for ShapeChoice {
    fn default() -> Self {
        Self::Circle(Default::default())
    }
}

#[derive(Default, PartialEq, Debug, YaSerialize, YaDeserialize)]
#[yaserde(prefix = "tns", namespace = "tns: urn:test")]
pub struct Shape {
    #[yaserde(flatten)]
    pub choice: ShapeChoice,
}
`, got)
}

func TestPlaceholderNamespace(t *testing.T) {
	log := &testLogger{t: t}
	var cfg Config
	cfg.Option(LogOutput(log))
	out, err := cfg.Emit(parseSchema(t, `<xs:complexType name="Empty"/>`))
	require.NoError(t, err)
	require.Contains(t, string(out), `#[yaserde(prefix = "unknown", namespace = "unknown: unknown")]`)
	require.Len(t, log.msgs, 1)
	require.Contains(t, log.msgs[0], `"unknown"`)
}

func TestWarnOutput(t *testing.T) {
	info, warn := &testLogger{t: t}, &testLogger{t: t}
	var cfg Config
	cfg.Option(LogOutput(info), WarnOutput(warn), LogLevel(1), Lenient(true))
	schemas, err := cfg.Parse([]byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
		<xs:notation name="gif" public="image/gif"/>
	</xs:schema>`))
	require.NoError(t, err)
	_, err = cfg.Emit(schemas...)
	require.NoError(t, err)

	require.Len(t, warn.msgs, 2)
	require.Contains(t, warn.msgs[0], "notation")
	require.Contains(t, warn.msgs[1], "no namespace given")
	for _, msg := range info.msgs {
		require.NotContains(t, msg, "no namespace given")
	}
}

func TestPrefixOption(t *testing.T) {
	got := emit(t, `<xs:complexType name="Empty"/>`, Prefix("x"))
	require.Contains(t, got, `#[yaserde(prefix = "x", namespace = "x: urn:test")]`)
}

func TestSubtypesFirst(t *testing.T) {
	got := emit(t, `
	<xs:complexType name="Person">
		<xs:sequence>
			<xs:element name="address">
				<xs:complexType>
					<xs:sequence><xs:element name="city" type="xs:string"/></xs:sequence>
				</xs:complexType>
			</xs:element>
		</xs:sequence>
	</xs:complexType>
	<xs:complexType name="Company">
		<xs:sequence>
			<xs:element name="address">
				<xs:complexType>
					<xs:sequence><xs:element name="street" type="xs:string"/></xs:sequence>
				</xs:complexType>
			</xs:element>
		</xs:sequence>
	</xs:complexType>`)

	require.Less(t, strings.Index(got, "pub struct AddressType {"), strings.Index(got, "pub struct Person {"))
	require.Less(t, strings.Index(got, "pub struct Person {"), strings.Index(got, "pub struct AddressType2 {"))
	require.Less(t, strings.Index(got, "pub struct AddressType2 {"), strings.Index(got, "pub struct Company {"))

	person := got[strings.Index(got, "pub struct Person {"):]
	require.Contains(t, person[:strings.Index(person, "}")], "pub address: AddressType,")
	company := got[strings.Index(got, "pub struct Company {"):]
	require.Contains(t, company, "pub address: AddressType2,")

	// one blank line between definitions
	require.Equal(t, 3, strings.Count(got, "\n\n"))
}

func TestNameCollision(t *testing.T) {
	got := emit(t, `
	<xs:element name="order">
		<xs:complexType>
			<xs:sequence><xs:element name="id" type="xs:string"/></xs:sequence>
		</xs:complexType>
	</xs:element>
	<xs:complexType name="Order">
		<xs:sequence><xs:element name="total" type="xs:decimal"/></xs:sequence>
	</xs:complexType>
	<xs:complexType name="Cart">
		<xs:sequence>
			<xs:element name="current" type="tns:Order"/>
			<xs:element ref="tns:order"/>
		</xs:sequence>
	</xs:complexType>`)
	require.Contains(t, got, "pub struct Order {\n    #[yaserde(prefix = \"tns\", rename = \"id\")]")
	require.Contains(t, got, "pub struct Order2 {\n    #[yaserde(prefix = \"tns\", rename = \"total\")]")
	require.Contains(t, got, "pub current: Order2,")
	require.Contains(t, got, "pub order: Order,")
}

func TestSiblingInlineTypes(t *testing.T) {
	body := `
	<xs:complexType name="Item">
		<xs:sequence>
			<xs:element name="value">
				<xs:simpleType>
					<xs:restriction base="xs:string"><xs:enumeration value="A"/></xs:restriction>
				</xs:simpleType>
			</xs:element>
		</xs:sequence>
		<xs:attribute name="value">
			<xs:simpleType>
				<xs:restriction base="xs:int"><xs:minInclusive value="0"/></xs:restriction>
			</xs:simpleType>
		</xs:attribute>
	</xs:complexType>`
	got := emit(t, body)
	require.Contains(t, got, "pub enum ValueType {")
	require.Contains(t, got, "pub struct ValueType2(pub i32);")
	require.Contains(t, got, "pub value: ValueType,")
	require.Contains(t, got, "pub value2: Option<ValueType2>,")

	got = emit(t, body, OutputTarget(Go))
	require.Regexp(t, `Value\s+ValueType\s+`+"`"+`xml:"urn:test value"`+"`", got)
	require.Regexp(t, `Value2\s+\*ValueType2\s+`+"`"+`xml:"value,attr,omitempty"`+"`", got)
}

func TestSimpleContentBase(t *testing.T) {
	body := `
	<xs:simpleType name="Code"><xs:restriction base="xs:token"><xs:maxLength value="3"/></xs:restriction></xs:simpleType>
	<xs:complexType name="Label">
		<xs:simpleContent>
			<xs:extension base="xs:string">
				<xs:attribute name="lang" type="xs:language"/>
			</xs:extension>
		</xs:simpleContent>
	</xs:complexType>
	<xs:complexType name="Currency">
		<xs:simpleContent>
			<xs:extension base="tns:Code"/>
		</xs:simpleContent>
	</xs:complexType>
	<xs:complexType name="Title">
		<xs:simpleContent>
			<xs:extension base="tns:Label">
				<xs:attribute name="level" type="xs:int"/>
			</xs:extension>
		</xs:simpleContent>
	</xs:complexType>`
	got := emit(t, body)
	require.Contains(t, got, "pub struct Label {\n    #[yaserde(text)]\n    pub content: String,")
	require.Contains(t, got, "pub struct Currency {\n    #[yaserde(text)]\n    pub content: Code,")
	require.Contains(t, got, "pub struct Title {\n    #[yaserde(flatten)]\n    pub content: Label,")

	got = emit(t, body, OutputTarget(Go))
	require.Regexp(t, "type Label struct {\n\tContent\\s+string\\s+`xml:\",chardata\"`", got)
	require.Regexp(t, "type Currency struct {\n\tContent\\s+Code\\s+`xml:\",chardata\"`", got)
	require.Regexp(t, "type Title struct {\n\tLabel\n", got)
}

func TestAliasElision(t *testing.T) {
	body := `
	<xs:element name="Order" type="tns:Order"/>
	<xs:element name="Total" type="xs:decimal"/>
	<xs:complexType name="Order">
		<xs:attribute name="legacy" type="xs:string" use="prohibited"/>
		<xs:attribute name="code" type="xs:string"/>
	</xs:complexType>`
	got := emit(t, body)
	require.Equal(t, 1, strings.Count(got, "Order"), got)
	require.NotContains(t, got, "legacy")
	require.Contains(t, got, "pub code: Option<String>,")
	require.Contains(t, got, "pub type Total = f64;")

	got = emit(t, body, OutputTarget(Go))
	require.NotContains(t, got, "type Order =")
	require.NotContains(t, got, "Legacy")
	require.Contains(t, got, "type Total = float64")
}

func TestReservedWords(t *testing.T) {
	body := `
	<xs:complexType name="Item">
		<xs:sequence>
			<xs:element name="type" type="xs:string"/>
			<xs:element name="item" type="xs:string"/>
		</xs:sequence>
		<xs:attribute name="self" type="xs:boolean"/>
	</xs:complexType>`
	got := emit(t, body)
	require.Contains(t, got, "pub type_: String,")
	require.Contains(t, got, "pub item: String,")
	require.Contains(t, got, "pub self_: Option<bool>,")

	got = emit(t, body, Reserved("item"))
	require.Contains(t, got, "pub type: String,")
	require.Contains(t, got, "pub item_: String,")
}

func TestEnumCaseDigits(t *testing.T) {
	got := emit(t, `
	<xs:simpleType name="Rank">
		<xs:restriction base="xs:string">
			<xs:enumeration value="2"/>
			<xs:enumeration value="10"/>
		</xs:restriction>
	</xs:simpleType>`)
	require.Contains(t, got, "    #[yaserde(rename = \"2\")]\n    #[default]\n    _2,\n")
	require.Contains(t, got, "    #[yaserde(rename = \"10\")]\n    _10,\n")
}

func TestDuplicateFields(t *testing.T) {
	got := emit(t, `
	<xs:complexType name="Pair">
		<xs:sequence>
			<xs:element name="first-name" type="xs:string"/>
			<xs:element name="firstName" type="xs:string"/>
		</xs:sequence>
	</xs:complexType>`)
	require.Contains(t, got, "pub first_name: String,")
	require.Contains(t, got, "pub first_name2: String,")
}

func TestCyclicSubtype(t *testing.T) {
	loop := &xsd.Struct{Name: "Loop"}
	loop.Subtypes = []xsd.Entity{loop}
	var cfg Config
	_, err := cfg.Emit(&xsd.Schema{Entities: []xsd.Entity{loop}})
	var cyclic *xsd.CyclicSubtypeError
	require.True(t, errors.As(err, &cyclic), "%v", err)
	require.Equal(t, "Loop", cyclic.Name)

	a := &xsd.Struct{Name: "A"}
	b := &xsd.Enum{Name: "B", Subtypes: []xsd.Entity{a}}
	a.Fields = []*xsd.StructField{{Name: "b", TypeName: "B", Subtypes: []xsd.Entity{b}}}
	_, err = cfg.Emit(&xsd.Schema{Entities: []xsd.Entity{a}})
	require.True(t, errors.As(err, &cyclic), "%v", err)
	require.Equal(t, "A", cyclic.Name)
}

func TestDuplicateDeclarations(t *testing.T) {
	order := func(doc string) *xsd.Schema {
		return parseSchema(t, `
		<xs:complexType name="Order">
			<xs:annotation><xs:documentation>`+doc+`</xs:documentation></xs:annotation>
			<xs:sequence><xs:element name="id" type="xs:string"/></xs:sequence>
		</xs:complexType>`)
	}
	var cfg Config
	cfg.Option(Namespace("urn:test"), LogOutput(&testLogger{t: t}))

	out, err := cfg.Emit(order("An order."), order("An order."))
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(out), "pub struct Order"))

	out, err = cfg.Emit(order("An order."), order("A cancelled order."))
	require.NoError(t, err)
	require.Contains(t, string(out), "// An order.\n")
	require.Contains(t, string(out), "// A cancelled order.\n")
	require.Contains(t, string(out), "pub struct Order2 {")
}

func TestIdempotent(t *testing.T) {
	s := parseSchema(t, `
	<xs:complexType name="Shape">
		<xs:choice maxOccurs="unbounded">
			<xs:element name="circle" type="xs:double"/>
			<xs:element name="poly">
				<xs:complexType><xs:attribute name="sides" type="xs:int"/></xs:complexType>
			</xs:element>
		</xs:choice>
		<xs:attribute name="layer" type="tns:Layer"/>
	</xs:complexType>
	<xs:simpleType name="Layer">
		<xs:union memberTypes="xs:int xs:string"/>
	</xs:simpleType>
	<xs:simpleType name="Sizes"><xs:list itemType="xs:int"/></xs:simpleType>`)
	for _, target := range []Target{Rust, Go} {
		var cfg Config
		cfg.Option(Namespace("urn:test"), OutputTarget(target))
		first, err := cfg.Emit(s)
		require.NoError(t, err)
		second, err := cfg.Emit(s)
		require.NoError(t, err)
		require.Equal(t, string(first), string(second))
	}
}

func TestDocumentationRoundTrip(t *testing.T) {
	s := parseSchema(t, `
	<xs:complexType name="Note">
		<xs:annotation>
			<xs:documentation>
				A note left by a customer with an order, shown to the staff who pack it.
				ok
				Notes are limited to five hundred characters, and are never translated.
			</xs:documentation>
		</xs:annotation>
	</xs:complexType>`)
	var cfg Config
	cfg.Option(Namespace("urn:test"))
	out, err := cfg.Emit(s)
	require.NoError(t, err)

	var payload strings.Builder
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "// ") {
			require.LessOrEqual(t, len(line)-3, commentWidth)
			payload.WriteString(strings.TrimPrefix(line, "// "))
		}
	}
	want := strings.ReplaceAll(s.Entities[0].(*xsd.Struct).Comment, "\n", "")
	require.Equal(t, want, payload.String())
}

func TestEmitGo(t *testing.T) {
	got := emit(t, `
	<xs:simpleType name="Color">
		<xs:restriction base="xs:string">
			<xs:enumeration value="red"/>
			<xs:enumeration value="dark-blue"/>
		</xs:restriction>
	</xs:simpleType>
	<xs:complexType name="Car">
		<xs:sequence>
			<xs:element name="color" type="tns:Color"/>
			<xs:element name="wheels" type="xs:int" maxOccurs="unbounded"/>
			<xs:element name="built" type="xs:dateTime" minOccurs="0"/>
		</xs:sequence>
		<xs:attribute name="vin" type="xs:string"/>
	</xs:complexType>
	<xs:complexType name="Label" mixed="true">
		<xs:choice>
			<xs:element name="b" type="xs:string"/>
			<xs:element name="i" type="xs:string"/>
		</xs:choice>
	</xs:complexType>`, OutputTarget(Go), PackageName("cars"))

	require.True(t, strings.HasPrefix(got, "// Code generated by xsdgen. DO NOT EDIT.\n\npackage cars\n"), got)
	require.Contains(t, got, `import "time"`)
	require.Contains(t, got, "type Color string\n")
	require.Regexp(t, `ColorRed\s+Color = "red"`, got)
	require.Regexp(t, `ColorDarkBlue\s+Color = "dark-blue"`, got)
	require.Regexp(t, "Color\\s+Color\\s+`xml:\"urn:test color\"`", got)
	require.Regexp(t, "Wheels\\s+\\[\\]int32\\s+`xml:\"urn:test wheels\"`", got)
	require.Regexp(t, "Built\\s+\\*time.Time\\s+`xml:\"urn:test built,omitempty\"`", got)
	require.Regexp(t, "Vin\\s+\\*string\\s+`xml:\"vin,attr,omitempty\"`", got)

	require.Regexp(t, "B\\s+\\*string\\s+`xml:\"urn:test b,omitempty\"`", got)
	require.Regexp(t, "type Label struct {\n\tLabelChoice\n\tContent\\s+string\\s+`xml:\",chardata\"`", got)
}

func TestGenSource(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"main.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
			xmlns:m="urn:main" xmlns:c="urn:common" targetNamespace="urn:main">
			<xs:import namespace="urn:common" schemaLocation="types/common.xsd"/>
			<xs:complexType name="Thing">
				<xs:sequence><xs:element name="id" type="c:Id"/></xs:sequence>
			</xs:complexType>
		</xs:schema>`,
		"types/common.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:common">
			<xs:simpleType name="Id"><xs:restriction base="xs:string"/></xs:simpleType>
		</xs:schema>`,
	})
	var cfg Config
	cfg.Option(ImportLoader(&Loader{}), LogOutput(&testLogger{t: t}))
	out, err := cfg.GenSource(filepath.Join(dir, "main.xsd"))
	require.NoError(t, err)
	got := string(out)
	require.Contains(t, got, `// import c "urn:common" from "types/common.xsd"`)
	require.Contains(t, got, `#[yaserde(prefix = "m", namespace = "m: urn:main")]`)
	require.Contains(t, got, "pub id: Id,")
	require.NotContains(t, got, "pub struct Id")

	// without the loader, the common namespace is imported but not loaded
	cfg.Option(ImportLoader(nil))
	_, err = cfg.GenSource(filepath.Join(dir, "main.xsd"))
	require.NoError(t, err)
}

func TestGenSourceErrors(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"bad.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
			<xs:complexType name="T"><xs:sequence><xs:element type="xs:string"/></xs:sequence></xs:complexType>
		</xs:schema>`,
		"odd.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
			<xs:notation name="gif" public="image/gif"/>
			<xs:complexType name="T"/>
		</xs:schema>`,
	})
	var cfg Config
	_, err := cfg.GenSource(filepath.Join(dir, "bad.xsd"))
	var malformed *xsd.MalformedSchemaError
	require.True(t, errors.As(err, &malformed), "%v", err)

	_, err = cfg.GenSource(filepath.Join(dir, "missing.xsd"))
	require.True(t, errors.Is(err, os.ErrNotExist), "%v", err)

	_, err = cfg.GenSource(filepath.Join(dir, "odd.xsd"))
	var unsupported *xsd.UnsupportedConstructError
	require.True(t, errors.As(err, &unsupported), "%v", err)

	cfg.Option(Lenient(true))
	out, err := cfg.GenSource(filepath.Join(dir, "odd.xsd"))
	require.NoError(t, err)
	require.Contains(t, string(out), "pub struct Gif {\n}\n")
	require.Contains(t, string(out), "pub struct T {\n}\n")
}

func TestLoaderHTTP(t *testing.T) {
	main := []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:main">
		<xs:import namespace="urn:common" schemaLocation="common.xsd"/>
		<xs:import namespace="http://www.w3.org/XML/1998/namespace"/>
	</xs:schema>`)
	common := []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:common">
		<xs:include schemaLocation="types/extra.xsd"/>
		<xs:import namespace="urn:main" schemaLocation="http://example.com/xsd/main.xsd"/>
	</xs:schema>`)
	extra := []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:common"/>`)

	l := &Loader{Client: testutil.FakeClient(map[string][]byte{
		"http://example.com/xsd/common.xsd":      common,
		"http://example.com/xsd/types/extra.xsd": extra,
	})}
	deps, err := l.Load([]string{"http://example.com/xsd/main.xsd"}, [][]byte{main})
	require.NoError(t, err)
	require.Equal(t, [][]byte{common, extra}, deps)

	l.Client = testutil.FakeClient(nil)
	_, err = l.Load([]string{"http://example.com/xsd/main.xsd"}, [][]byte{main})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
}

func TestLoaderMaxDepth(t *testing.T) {
	pages := make(map[string][]byte)
	for i := 0; i < 5; i++ {
		pages[fmt.Sprintf("http://example.com/%d.xsd", i)] = []byte(fmt.Sprintf(
			`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:%d">
				<xs:import namespace="urn:%d" schemaLocation="%d.xsd"/>
			</xs:schema>`, i, i+1, i+1))
	}
	l := &Loader{Client: testutil.FakeClient(pages), MaxDepth: 3}
	_, err := l.Load([]string{"http://example.com/0.xsd"}, [][]byte{pages["http://example.com/0.xsd"]})
	require.Error(t, err)
	require.Contains(t, err.Error(), "maximum depth of 3")
}

func TestResolveLocation(t *testing.T) {
	tests := []struct{ base, loc, want string }{
		{"http://example.com/a/b.xsd", "c.xsd", "http://example.com/a/c.xsd"},
		{"http://example.com/a/b.xsd", "../c.xsd", "http://example.com/c.xsd"},
		{"dir/b.xsd", "https://example.com/c.xsd", "https://example.com/c.xsd"},
		{"dir/b.xsd", "sub/c.xsd", filepath.Join("dir", "sub", "c.xsd")},
	}
	for _, tt := range tests {
		got, err := resolveLocation(tt.base, tt.loc)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "%s + %s", tt.base, tt.loc)
	}
}

func TestCommand(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"shop.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:shop">
			<xs:complexType name="shop_item"><xs:attribute name="sku" type="xs:string"/></xs:complexType>
		</xs:schema>`,
	})
	out := filepath.Join(dir, "shop.go")

	var cfg Config
	cmd := NewCommand(&cfg)
	cmd.SetArgs([]string{"--target", "go", "--pkg", "shop", "-r", "Item$ -> Product", "-o", out, filepath.Join(dir, "shop.xsd")})
	require.NoError(t, cmd.Execute())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "package shop")
	require.Contains(t, string(data), "type ShopProduct struct")

	var stdout bytes.Buffer
	cmd = NewCommand(new(Config))
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--namespace", "urn:other", filepath.Join(dir, "shop.xsd")})
	require.NoError(t, cmd.Execute())
	require.Contains(t, stdout.String(), `namespace = "tns: urn:other"`)

	cmd = NewCommand(new(Config))
	cmd.SetArgs([]string{"--target", "cobol", filepath.Join(dir, "shop.xsd")})
	require.Error(t, cmd.Execute())
}
