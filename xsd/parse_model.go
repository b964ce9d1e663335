package xsd

import (
	"strconv"

	"github.com/CognitoIQ/go-xsd/internal/gen"
)

// sequence collects the fields of a <sequence> or <all>. Nested
// sequences are flattened; their occurrence constraints are applied
// to the fields they contain.
func (p *Parser) sequence(n Node, scope *fieldScope) *Struct {
	defer trace(n.el)
	outer := occurs(n)
	st := &Struct{Name: scope.owner, Comment: n.Documentation()}
	for _, f := range p.particles(n, scope) {
		f.TypeModifiers = nest(outer, f.TypeModifiers)
		st.Fields = append(st.Fields, f)
	}
	return st
}

// particles returns the fields for the children of a model group,
// without the group's own occurrence constraints.
func (p *Parser) particles(n Node, scope *fieldScope) []*StructField {
	var fields []*StructField
	for _, c := range n.Children() {
		switch c.XsdType() {
		case Annotation:
		case ElementDecl:
			fields = append(fields, p.localElement(c))
		case Any:
			fields = append(fields, p.anyElement(c))
		case Sequence, All:
			fields = append(fields, p.sequence(c, scope).Fields...)
		case Choice:
			fields = append(fields, p.choiceField(c, scope))
		case Group:
			fields = append(fields, p.groupRef(c))
		default:
			if p.parseNode(c, n) != nil {
				p.unexpected(c, n)
			}
		}
	}
	return fields
}

func (p *Parser) choice(n Node, name string) *Enum {
	defer trace(n.el)
	if name == "Choice" {
		name = "ChoiceType"
	}
	return p.choiceEnum(n, name)
}

// choiceField wraps a choice in the struct it appears in. The choice
// itself becomes an Enum, owned by the field.
func (p *Parser) choiceField(n Node, scope *fieldScope) *StructField {
	defer trace(n.el)
	typeName, fieldName := scope.choiceName()
	return &StructField{
		Name:          fieldName,
		TypeName:      typeName,
		Source:        SourceChoice,
		TypeModifiers: occurs(n),
		Subtypes:      []Entity{p.choiceEnum(n, typeName)},
		Comment:       n.Documentation(),
	}
}

// choiceEnum builds an Enum with one case for each alternative of a
// choice. Alternatives that are not elements are given a subtype
// holding their content.
func (p *Parser) choiceEnum(n Node, name string) *Enum {
	enum := &Enum{
		Name:     name,
		TypeName: n.builtin("anyType"),
		Source:   ChoiceEnum,
	}
	for _, c := range n.Children() {
		switch c.XsdType() {
		case Annotation:
		case ElementDecl:
			enum.Cases = append(enum.Cases, p.choiceElement(c))
		case Any:
			f := p.anyElement(c)
			enum.Cases = append(enum.Cases, &EnumCase{
				Name:          "Any",
				TypeName:      f.TypeName,
				TypeModifiers: f.TypeModifiers,
				Comment:       f.Comment,
			})
		case Sequence, All, Choice, Group:
			enum.Cases = append(enum.Cases, p.choiceParticle(c, name))
		default:
			if p.parseNode(c, n) != nil {
				p.unexpected(c, n)
			}
		}
	}
	dedupeCases(enum.Cases)
	return enum
}

func (p *Parser) choiceElement(n Node) *EnumCase {
	defer trace(n.el)
	name := nameOrRef(n)
	typeName, subtypes := p.elementType(n, name)
	return &EnumCase{
		Name:          caseName(gen.LocalName(name)),
		Value:         gen.LocalName(name),
		TypeName:      typeName,
		TypeModifiers: occurs(n),
		Subtypes:      subtypes,
		Comment:       n.Documentation(),
	}
}

// choiceParticle makes a case for a sequence, choice or group
// reference nested in a choice.
func (p *Parser) choiceParticle(n Node, owner string) *EnumCase {
	defer trace(n.el)
	label := gen.Pascal(n.Kind())
	if n.XsdType() == Group {
		label = gen.Pascal(requireAttr(n, "ref"))
	}
	sub := owner + label

	var subtype Entity
	switch n.XsdType() {
	case Choice:
		subtype = p.choiceEnum(n, sub)
	case Group:
		ref := &StructField{
			Name:          n.AttrRef(),
			TypeName:      n.AttrRef(),
			Source:        SourceGroup,
			TypeModifiers: Modifiers(None),
		}
		subtype = &Struct{Name: sub, Fields: []*StructField{ref}}
	default:
		subtype = &Struct{Name: sub, Fields: p.particles(n, &fieldScope{owner: sub})}
	}
	return &EnumCase{
		Name:          label,
		TypeName:      sub,
		TypeModifiers: occurs(n),
		Subtypes:      []Entity{subtype},
		Comment:       n.Documentation(),
	}
}

// group parses a named model group, or a reference to one.
func (p *Parser) group(n Node, global bool) Entity {
	if !global && n.HasAttr("ref") {
		return p.groupRef(n)
	}
	defer trace(n.el)
	name := requireAttr(n, "name")
	st := &Struct{Name: name, Comment: n.Documentation()}
	scope := &fieldScope{owner: name}
	for _, c := range n.Children() {
		switch c.XsdType() {
		case Annotation:
		case Sequence, All:
			st.Fields = append(st.Fields, p.sequence(c, scope).Fields...)
		case Choice:
			st.Fields = append(st.Fields, p.choiceField(c, scope))
		default:
			p.unexpected(c, n)
		}
	}
	return st
}

// groupRef records a reference to a named model group, to be
// replaced by the group's fields in Resolve.
func (p *Parser) groupRef(n Node) *StructField {
	defer trace(n.el)
	ref := requireAttr(n, "ref")
	return &StructField{
		Name:          ref,
		TypeName:      ref,
		Source:        SourceGroup,
		TypeModifiers: occurs(n),
		Comment:       n.Documentation(),
	}
}

func (p *Parser) attributeGroup(n Node, global bool) Entity {
	if !global && n.HasAttr("ref") {
		ref := p.attributeGroupRef(n)
		return &StructField{
			Name:          ref,
			TypeName:      ref,
			Source:        SourceGroup,
			TypeModifiers: Modifiers(None),
		}
	}
	defer trace(n.el)
	name := requireAttr(n, "name")
	st := &Struct{Name: name, Comment: n.Documentation()}
	p.complexBody(n, st, &fieldScope{owner: name})
	return st
}

func (p *Parser) attributeGroupRef(n Node) string {
	defer trace(n.el)
	return requireAttr(n, "ref")
}

// caseName converts a value to an identifier for an enum case.
func caseName(value string) string {
	name := gen.Identifier(value)
	if name == "" {
		name = "Value"
	}
	if gen.StartsWithDigit(name) {
		name = "_" + name
	}
	return name
}

// dedupeCases appends a counter to case names that collide, as
// "a-b" and "a_b" both do.
func dedupeCases(cases []*EnumCase) {
	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		name := c.Name
		for i := 2; seen[name]; i++ {
			name = c.Name + strconv.Itoa(i)
		}
		c.Name = name
		seen[name] = true
	}
}
