package xsd

import (
	"path"
	"strings"

	"github.com/CognitoIQ/go-xsd/internal/gen"
	"github.com/CognitoIQ/go-xsd/internal/ordered"
)

// A global attribute is a rename of its type, or the simple type
// it declares inline.
func (p *Parser) globalAttribute(n Node) Entity {
	defer trace(n.el)
	name := nameOrRef(n)
	doc := n.Documentation()

	switch {
	case n.AttrName() == "":
		return &Alias{Name: name, Original: n.AttrRef(), Comment: doc}
	case n.AttrType() != "":
		return &Alias{Name: name, Original: n.AttrType(), Comment: doc}
	}
	if st, ok := n.FirstChild(SimpleTypeDecl); ok {
		e := p.simpleType(st, name)
		setEntityComment(e, doc)
		return e
	}
	return &Struct{Name: name, Comment: doc}
}

func (p *Parser) localAttribute(n Node) *StructField {
	defer trace(n.el)
	name := nameOrRef(n)
	use, err := n.AttrUse()
	if err != nil {
		stop(err.Error())
	}
	field := &StructField{
		Name:    name,
		Source:  SourceAttribute,
		Comment: n.Documentation(),
	}
	switch use {
	case UseOptional:
		field.TypeModifiers = Modifiers(Option)
	case UseRequired:
		field.TypeModifiers = Modifiers(None)
	case UseProhibited:
		field.TypeModifiers = Modifiers(Empty)
	}

	if t := n.AttrType(); t != "" {
		field.TypeName = t
	} else if ref := n.AttrRef(); ref != "" {
		field.TypeName = ref
	} else if st, ok := n.FirstChild(SimpleTypeDecl); ok {
		field.TypeName = name + "Type"
		field.Subtypes = []Entity{p.simpleType(st, field.TypeName)}
	} else {
		field.TypeName = n.builtin("string")
	}
	return field
}

// A global element declares a record, or renames its type.
func (p *Parser) globalElement(n Node) Entity {
	defer trace(n.el)
	name := nameOrRef(n)
	doc := n.Documentation()

	if ct, ok := n.FirstChild(ComplexTypeDecl); ok {
		e := p.complexType(ct, name)
		setEntityComment(e, doc)
		return e
	}
	if st, ok := n.FirstChild(SimpleTypeDecl); ok {
		e := p.simpleType(st, name)
		setEntityComment(e, doc)
		return e
	}
	if t := n.AttrType(); t != "" && n.AttrName() != "" {
		return &Alias{Name: name, Original: t, Comment: doc}
	}
	return &Struct{Name: name, Comment: doc}
}

func (p *Parser) localElement(n Node) *StructField {
	defer trace(n.el)
	name := nameOrRef(n)
	field := &StructField{
		Name:          name,
		Source:        SourceElement,
		TypeModifiers: occurs(n),
		Comment:       n.Documentation(),
	}
	field.TypeName, field.Subtypes = p.elementType(n, name)
	return field
}

// elementType returns the type of an element declaration, along with
// the anonymous type it declares, if any. An element with no type is
// of type anyType.
func (p *Parser) elementType(n Node, name string) (string, []Entity) {
	if t := n.AttrType(); t != "" {
		return t, nil
	}
	if ref := n.AttrRef(); ref != "" {
		return ref, nil
	}
	sub := gen.LocalName(name) + "Type"
	if ct, ok := n.FirstChild(ComplexTypeDecl); ok {
		return sub, []Entity{p.complexType(ct, sub)}
	}
	if st, ok := n.FirstChild(SimpleTypeDecl); ok {
		return sub, []Entity{p.simpleType(st, sub)}
	}
	return n.builtin("anyType"), nil
}

// <any> is a wildcard, and may hold any element.
func (p *Parser) anyElement(n Node) *StructField {
	defer trace(n.el)
	return &StructField{
		Name:          "any",
		TypeName:      n.builtin("anyType"),
		Source:        SourceElement,
		TypeModifiers: occurs(n),
		Comment:       n.Documentation(),
	}
}

func (p *Parser) importRef(n Node) *Import {
	defer trace(n.el)
	ns := n.Attr("namespace")
	loc := n.Attr("schemaLocation")
	imp := &Import{Location: loc, Namespace: ns}

	if p.schema != nil && ns != "" {
		if prefix, ok := ordered.KeyOf(p.schema.Namespaces, ns); ok && prefix != "" {
			imp.Name = prefix
		}
	}
	if imp.Name == "" {
		imp.Name = importName(loc, ns)
	}
	return imp
}

func (p *Parser) includeRef(n Node) *Import {
	defer trace(n.el)
	loc := requireAttr(n, "schemaLocation")
	return &Import{
		Name:      importName(loc, ""),
		Location:  loc,
		Namespace: p.targetNS(),
	}
}

// importName derives a name for an import from its location, as in
// "common" for "http://example.com/xsd/common.xsd".
func importName(loc, ns string) string {
	if loc != "" {
		base := path.Base(loc)
		return strings.TrimSuffix(base, path.Ext(base))
	}
	if ns != "" {
		return ns
	}
	return "import"
}
