package xsdgen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/CognitoIQ/go-xsd/internal/gen"
	"github.com/CognitoIQ/go-xsd/xsd"
)

// golang emits Go types with encoding/xml struct tags.
type golang struct {
	pkg       string
	namespace string
	reserved  gen.DenyList
}

func (g *golang) setNamespace(uri, prefix string) {
	if uri == placeholder {
		uri = ""
	}
	g.namespace = uri
}

func (g *golang) builtin(b xsd.Builtin) string {
	switch b {
	case xsd.Boolean:
		return "bool"
	case xsd.Byte:
		return "int8"
	case xsd.Short:
		return "int16"
	case xsd.Int:
		return "int32"
	case xsd.Long:
		return "int64"
	case xsd.Integer, xsd.NegativeInteger, xsd.NonPositiveInteger:
		return "int"
	case xsd.UnsignedByte:
		return "uint8"
	case xsd.UnsignedShort:
		return "uint16"
	case xsd.UnsignedInt:
		return "uint32"
	case xsd.UnsignedLong:
		return "uint64"
	case xsd.NonNegativeInteger, xsd.PositiveInteger:
		return "uint"
	case xsd.Float:
		return "float32"
	case xsd.Double, xsd.Decimal:
		return "float64"
	case xsd.DateTime:
		return "time.Time"
	}
	return "string"
}

func (g *golang) wrap(typ string, mods []xsd.TypeModifier) string {
	for i := len(mods) - 1; i >= 0; i-- {
		switch mods[i].Kind {
		case xsd.Option:
			// the zero value of a slice already means absent
			if !strings.HasPrefix(typ, "[") {
				typ = "*" + typ
			}
		case xsd.Vec:
			typ = "[]" + typ
		case xsd.Array:
			typ = fmt.Sprintf("[%d]%s", mods[i].Len, typ)
		}
	}
	return typ
}

func (g *golang) fieldName(name string) string {
	id := gen.Pascal(name)
	if id == "" {
		id = "Field"
	}
	if gen.StartsWithDigit(id) {
		id = "X" + id
	}
	return gen.Sanitize(id, g.reserved)
}

func (g *golang) header(w *bytes.Buffer) {
	fmt.Fprintf(w, "// Code generated by xsdgen. DO NOT EDIT.\n\npackage %s\n\n", g.pkg)
}

// goComment formats documentation as a Go comment, indented by
// prefix.
func goComment(doc, prefix string) string {
	c := structComment(doc)
	if c == "" || prefix == "" {
		return c
	}
	return prefix + strings.ReplaceAll(strings.TrimSuffix(c, "\n"), "\n", "\n"+prefix) + "\n"
}

func (g *golang) structDecl(w *bytes.Buffer, d *structDef) {
	w.WriteString(goComment(d.Comment, ""))
	fmt.Fprintf(w, "type %s struct {\n", d.Name)
	for _, f := range d.Fields {
		w.WriteString(goComment(f.Comment, "\t"))
		w.WriteString("\t" + g.field(f) + "\n")
	}
	w.WriteString("}\n")
}

func (g *golang) field(f fieldDef) string {
	optional := xsd.HasModifier(f.Mods, xsd.Option)
	switch f.Source {
	case xsd.SourceBase:
		return strings.TrimPrefix(f.Type, "*")
	case xsd.SourceChoice:
		if !strings.HasPrefix(f.Type, "[") {
			return f.Type
		}
		return fmt.Sprintf("%s %s `xml:\",any\"`", f.Name, f.Type)
	case xsd.SourceText:
		return fmt.Sprintf("%s %s `xml:\",chardata\"`", f.Name, strings.TrimPrefix(f.Type, "*"))
	}
	if f.Wildcard {
		return fmt.Sprintf("%s %s `xml:\",any\"`", f.Name, f.Type)
	}
	name := f.XMLName.Local
	if f.XMLName.Space != "" {
		name = f.XMLName.Space + " " + name
	} else if f.Source == xsd.SourceElement && g.namespace != "" {
		name = g.namespace + " " + name
	}
	if f.Source == xsd.SourceAttribute {
		name += ",attr"
	}
	if optional {
		name += ",omitempty"
	}
	return fmt.Sprintf("%s %s `xml:%s`", f.Name, f.Type, strconv.Quote(name))
}

func (g *golang) tupleDecl(w *bytes.Buffer, d *tupleDef) {
	w.WriteString(goComment(d.Comment, ""))
	for _, f := range d.Facets {
		fmt.Fprintf(w, "// %s: %s\n", f.Type, f.Value)
	}
	fmt.Fprintf(w, "type %s %s\n", d.Name, d.Type)
}

func (g *golang) aliasDecl(w *bytes.Buffer, name, original, comment string) {
	w.WriteString(goComment(comment, ""))
	fmt.Fprintf(w, "type %s = %s\n", name, original)
}

func (g *golang) enumDecl(w *bytes.Buffer, d *enumDef) {
	w.WriteString(goComment(d.Comment, ""))
	switch d.Source {
	case xsd.RestrictionEnum:
		g.constants(w, d)
	case xsd.UnionEnum:
		// a union is the text of any of its members
		fmt.Fprintf(w, "type %s string\n", d.Name)
	case xsd.ChoiceEnum:
		fmt.Fprintf(w, "type %s struct {\n", d.Name)
		for _, c := range d.Cases {
			w.WriteString(goComment(c.Comment, "\t"))
			w.WriteString("\t" + g.choiceCase(c) + "\n")
		}
		w.WriteString("}\n")
	}
}

// constants declares an enumerated restriction as a named type with
// one constant for each value.
func (g *golang) constants(w *bytes.Buffer, d *enumDef) {
	base, quote := "string", true
	switch d.Base {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "float32", "float64":
		base, quote = d.Base, false
		for _, c := range d.Cases {
			if _, err := strconv.ParseFloat(c.Value, 64); err != nil {
				base, quote = "string", true
			}
		}
	}
	fmt.Fprintf(w, "type %s %s\n\nconst (\n", d.Name, base)
	for _, c := range d.Cases {
		w.WriteString(goComment(c.Comment, "\t"))
		value := c.Value
		if quote {
			value = strconv.Quote(value)
		}
		fmt.Fprintf(w, "\t%s%s %s = %s\n", d.Name, c.Name, d.Name, value)
	}
	w.WriteString(")\n")
}

// choiceCase declares one alternative of a choice as an optional
// member of a struct.
func (g *golang) choiceCase(c caseDef) string {
	typ := c.Type
	if !strings.HasPrefix(typ, "[") && !strings.HasPrefix(typ, "*") {
		typ = "*" + typ
	}
	if c.Value == "" {
		if embeddable(typ) {
			return typ
		}
		return fmt.Sprintf("%s %s `xml:\",any\"`", c.Name, typ)
	}
	name := c.Value
	if c.Space != "" {
		name = c.Space + " " + name
	} else if g.namespace != "" {
		name = g.namespace + " " + name
	}
	return fmt.Sprintf("%s %s `xml:%s`", c.Name, typ, strconv.Quote(name+",omitempty"))
}

// embeddable reports whether typ is a pointer to a type declared in
// the generated package.
func embeddable(typ string) bool {
	name := strings.TrimPrefix(typ, "*")
	return name != typ && gen.Pascal(name) == name && !strings.ContainsAny(name, ".[")
}

func (g *golang) format(src []byte) ([]byte, error) {
	return gen.FormatSource(src)
}
