package xsdgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/CognitoIQ/go-xsd/internal/gen"
	"github.com/CognitoIQ/go-xsd/xsd"
)

const yaserdeDerive = "#[derive(Default, PartialEq, Debug, YaSerialize, YaDeserialize)]\n"

// rust emits structs and enums for the yaserde crate.
type rust struct {
	namespace, prefix string
	reserved          gen.DenyList
}

func (r *rust) setNamespace(uri, prefix string) {
	r.namespace, r.prefix = uri, prefix
}

func (r *rust) annotation() string {
	return fmt.Sprintf("#[yaserde(prefix = %q, namespace = %q)]\n",
		r.prefix, r.prefix+": "+r.namespace)
}

func (r *rust) builtin(b xsd.Builtin) string {
	switch b {
	case xsd.Boolean:
		return "bool"
	case xsd.Byte:
		return "i8"
	case xsd.Short:
		return "i16"
	case xsd.Int:
		return "i32"
	case xsd.Long, xsd.Integer, xsd.NegativeInteger, xsd.NonPositiveInteger:
		return "i64"
	case xsd.UnsignedByte:
		return "u8"
	case xsd.UnsignedShort:
		return "u16"
	case xsd.UnsignedInt:
		return "u32"
	case xsd.UnsignedLong, xsd.NonNegativeInteger, xsd.PositiveInteger:
		return "u64"
	case xsd.Float:
		return "f32"
	case xsd.Double, xsd.Decimal:
		return "f64"
	}
	return "String"
}

func (r *rust) wrap(typ string, mods []xsd.TypeModifier) string {
	for i := len(mods) - 1; i >= 0; i-- {
		switch mods[i].Kind {
		case xsd.Option:
			typ = "Option<" + typ + ">"
		case xsd.Vec:
			typ = "Vec<" + typ + ">"
		case xsd.Array:
			typ = fmt.Sprintf("[%s; %d]", typ, mods[i].Len)
		}
	}
	return typ
}

func (r *rust) fieldName(name string) string {
	id := gen.Snake(name)
	if id == "" {
		id = "field"
	}
	if gen.StartsWithDigit(id) {
		id = "_" + id
	}
	return gen.Sanitize(id, r.reserved)
}

func (r *rust) header(w *bytes.Buffer) {}

func (r *rust) structDecl(w *bytes.Buffer, d *structDef) {
	w.WriteString(structComment(d.Comment))
	w.WriteString(yaserdeDerive)
	w.WriteString(r.annotation())
	fmt.Fprintf(w, "pub struct %s {\n", d.Name)
	for _, f := range d.Fields {
		if c := fieldComment(f.Comment); c != "" {
			w.WriteString("    " + c + "\n")
		}
		fmt.Fprintf(w, "    %s\n", r.fieldAttr(f))
		fmt.Fprintf(w, "    pub %s: %s,\n", f.Name, f.Type)
	}
	w.WriteString("}\n")
}

func (r *rust) fieldAttr(f fieldDef) string {
	switch f.Source {
	case xsd.SourceText:
		return "#[yaserde(text)]"
	case xsd.SourceBase, xsd.SourceChoice:
		return "#[yaserde(flatten)]"
	case xsd.SourceAttribute:
		if f.Prefix != "" {
			return fmt.Sprintf("#[yaserde(attribute, prefix = %q, rename = %q)]", f.Prefix, f.XMLName.Local)
		}
		return fmt.Sprintf("#[yaserde(attribute, rename = %q)]", f.XMLName.Local)
	}
	prefix := f.Prefix
	if prefix == "" {
		prefix = r.prefix
	}
	return fmt.Sprintf("#[yaserde(prefix = %q, rename = %q)]", prefix, f.XMLName.Local)
}

func (r *rust) tupleDecl(w *bytes.Buffer, d *tupleDef) {
	w.WriteString(structComment(d.Comment))
	for _, f := range d.Facets {
		fmt.Fprintf(w, "// %s: %s\n", f.Type, f.Value)
	}
	w.WriteString(yaserdeDerive)
	w.WriteString(r.annotation())
	fmt.Fprintf(w, "pub struct %s(pub %s);\n", d.Name, d.Type)
}

func (r *rust) aliasDecl(w *bytes.Buffer, name, original, comment string) {
	w.WriteString(structComment(comment))
	fmt.Fprintf(w, "pub type %s = %s;\n", name, original)
}

func (r *rust) enumDecl(w *bytes.Buffer, d *enumDef) {
	w.WriteString(structComment(d.Comment))
	if len(d.Cases) == 0 {
		w.WriteString(yaserdeDerive)
		w.WriteString(r.annotation())
		fmt.Fprintf(w, "pub struct %s {}\n", d.Name)
		return
	}
	unit := d.Source == xsd.RestrictionEnum
	if unit {
		w.WriteString(yaserdeDerive)
	} else {
		w.WriteString(strings.Replace(yaserdeDerive, "Default, ", "", 1))
	}
	w.WriteString(r.annotation())
	fmt.Fprintf(w, "pub enum %s {\n", d.Name)
	for i, c := range d.Cases {
		if doc := fieldComment(c.Comment); doc != "" {
			w.WriteString("    " + doc + "\n")
		}
		if c.Value != "" {
			fmt.Fprintf(w, "    #[yaserde(rename = %q)]\n", c.Value)
		}
		if unit && i == 0 {
			w.WriteString("    #[default]\n")
		}
		if c.Type == "" {
			fmt.Fprintf(w, "    %s,\n", c.Name)
		} else {
			fmt.Fprintf(w, "    %s(%s),\n", c.Name, c.Type)
		}
	}
	w.WriteString("}\n")
	if !unit {
		first := d.Cases[0]
		value := "Self::" + first.Name
		if first.Type != "" {
			value += "(Default::default())"
		}
		fmt.Fprintf(w, "\nimpl Default for %s {\n    fn default() -> Self {\n        %s\n    }\n}\n", d.Name, value)
	}
}

func (r *rust) format(src []byte) ([]byte, error) {
	return src, nil
}
