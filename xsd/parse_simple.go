package xsd

import (
	"strconv"
	"strings"

	"github.com/CognitoIQ/go-xsd/internal/gen"
)

func (p *Parser) simpleType(n Node, name string) Entity {
	defer trace(n.el)
	var e Entity
	if r, ok := n.FirstChild(Restriction); ok {
		e = p.simpleRestriction(r, name)
	} else if l, ok := n.FirstChild(List); ok {
		e = p.list(l, name)
	} else if u, ok := n.FirstChild(Union); ok {
		e = p.union(u, name)
	} else {
		stop("<simpleType> requires a restriction, list or union")
	}
	setEntityComment(e, n.Documentation())
	return e
}

// simpleRestriction restricts a simple type. Enumerations make an
// Enum; other facets make a TupleStruct over the base type.
func (p *Parser) simpleRestriction(n Node, name string) Entity {
	defer trace(n.el)
	base, subtypes := p.restrictionBase(n, name)

	var (
		facets []Facet
		cases  []*EnumCase
	)
	for _, c := range n.Children() {
		switch c.XsdType() {
		case Annotation, SimpleTypeDecl:
		case Enumeration:
			cases = append(cases, p.enumCase(c))
		case FacetElement:
			facets = append(facets, p.facet(c))
		default:
			if p.parseNode(c, n) != nil {
				p.unexpected(c, n)
			}
		}
	}
	if len(cases) > 0 {
		dedupeCases(cases)
		return &Enum{
			Name:     name,
			TypeName: base,
			Cases:    cases,
			Source:   RestrictionEnum,
			Subtypes: subtypes,
			Comment:  n.Documentation(),
		}
	}
	return &TupleStruct{
		Name:     name,
		TypeName: base,
		Facets:   facets,
		Subtypes: subtypes,
		Comment:  n.Documentation(),
	}
}

// restrictionBase returns the base attribute of a restriction, or
// names the simple type it declares inline.
func (p *Parser) restrictionBase(n Node, name string) (string, []Entity) {
	if base := n.AttrBase(); base != "" {
		return base, nil
	}
	if st, ok := n.FirstChild(SimpleTypeDecl); ok {
		sub := name + "BaseType"
		return sub, []Entity{p.simpleType(st, sub)}
	}
	stop("<restriction> requires a base attribute or simpleType")
	return "", nil
}

func (p *Parser) enumCase(n Node) *EnumCase {
	defer trace(n.el)
	if !n.HasAttr("value") {
		stop("<enumeration> requires a value attribute")
	}
	value := n.el.Attr("", "value")
	return &EnumCase{
		Name:    caseName(value),
		Value:   value,
		Comment: n.Documentation(),
	}
}

func (p *Parser) facet(n Node) Facet {
	defer trace(n.el)
	ft, _ := n.FacetType()
	if !n.HasAttr("value") {
		stopf("<%s> requires a value attribute", n.Kind())
	}
	return Facet{
		Type:    ft,
		Value:   n.el.Attr("", "value"),
		Comment: n.Documentation(),
	}
}

// list makes a TupleStruct holding a Vec of the item type.
func (p *Parser) list(n Node, name string) *TupleStruct {
	defer trace(n.el)
	ts := &TupleStruct{
		Name:          name,
		TypeModifiers: Modifiers(Vec),
		Comment:       n.Documentation(),
	}
	if item := n.Attr("itemType"); item != "" {
		ts.TypeName = item
	} else if st, ok := n.FirstChild(SimpleTypeDecl); ok {
		ts.TypeName = name + "ItemType"
		if name == "" {
			ts.TypeName = "ItemType"
		}
		ts.Subtypes = []Entity{p.simpleType(st, ts.TypeName)}
	} else {
		stop("<list> requires an itemType attribute or simpleType")
	}
	return ts
}

// union makes an Enum with one case wrapping each member type.
// Members declared inline are named "<name>Variant<n>".
func (p *Parser) union(n Node, name string) *Enum {
	defer trace(n.el)
	enum := &Enum{
		Name:     name,
		TypeName: n.builtin("anySimpleType"),
		Source:   UnionEnum,
		Comment:  n.Documentation(),
	}
	for _, member := range strings.Fields(n.Attr("memberTypes")) {
		enum.Cases = append(enum.Cases, &EnumCase{
			Name:     caseName(gen.LocalName(member)),
			TypeName: member,
		})
	}
	for i, st := range n.ChildrenOf(SimpleTypeDecl) {
		label := "Variant" + strconv.Itoa(i+1)
		sub := name + label
		enum.Cases = append(enum.Cases, &EnumCase{
			Name:     label,
			TypeName: sub,
			Subtypes: []Entity{p.simpleType(st, sub)},
			Comment:  st.Documentation(),
		})
	}
	if len(enum.Cases) == 0 {
		stop("<union> requires memberTypes or simpleType")
	}
	dedupeCases(enum.Cases)
	return enum
}
