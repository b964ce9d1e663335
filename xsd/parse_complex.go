package xsd

import "strconv"

// A fieldScope names the choices found while collecting the fields of
// one struct, so that each gets a distinct enum.
type fieldScope struct {
	owner   string
	choices int
}

// choiceName returns the type and field names for the next choice
// in the scope: "OrderChoice" and "choice", then "OrderChoice2" and
// "choice2".
func (s *fieldScope) choiceName() (typeName, fieldName string) {
	s.choices++
	typeName, fieldName = s.owner+"Choice", "choice"
	if s.owner == "" {
		typeName = "ChoiceType"
	}
	if s.choices > 1 {
		n := strconv.Itoa(s.choices)
		typeName += n
		fieldName += n
	}
	return typeName, fieldName
}

// textField holds the character data of simple or mixed content.
func textField(typeName string, mods []TypeModifier) *StructField {
	return &StructField{
		Name:          "content",
		TypeName:      typeName,
		Source:        SourceText,
		TypeModifiers: mods,
	}
}

func (p *Parser) complexType(n Node, name string) *Struct {
	defer trace(n.el)
	st := &Struct{Name: name, Comment: n.Documentation()}
	p.complexBody(n, st, &fieldScope{owner: name})
	if n.IsTrue("mixed") && !hasText(st) {
		st.Fields = append(st.Fields, textField(n.builtin("string"), Modifiers(Option)))
	}
	return st
}

func hasText(st *Struct) bool {
	for _, f := range st.Fields {
		if f.Source == SourceText {
			return true
		}
	}
	return false
}

// complexBody appends the fields declared by the children of n to st,
// in document order. n is a complexType, an extension or restriction
// of complex or simple content, or an attributeGroup.
func (p *Parser) complexBody(n Node, st *Struct, scope *fieldScope) {
	for _, c := range n.Children() {
		switch c.XsdType() {
		case Annotation, AnyAttribute:
		case FacetElement, Enumeration, SimpleTypeDecl:
			// restrictions of simple content constrain the text,
			// which we do not model.
			if n.XsdType() != Restriction {
				p.unexpected(c, n)
			}
		case SimpleContent, ComplexContent:
			p.contentInto(c, st, scope)
		case Sequence, All:
			st.Fields = append(st.Fields, p.sequence(c, scope).Fields...)
		case Choice:
			st.Fields = append(st.Fields, p.choiceField(c, scope))
		case Group:
			st.Fields = append(st.Fields, p.groupRef(c))
		case AttributeDecl:
			st.Fields = append(st.Fields, p.localAttribute(c))
		case AttributeGroup:
			st.AttributeGroups = append(st.AttributeGroups, p.attributeGroupRef(c))
		default:
			if p.parseNode(c, n) != nil {
				p.unexpected(c, n)
			}
		}
	}
}

func (p *Parser) unexpected(n, parent Node) {
	defer trace(n.el)
	stopf("unexpected <%s> in <%s>", n.Kind(), parent.Kind())
}

// content parses a simpleContent or complexContent node on its own.
func (p *Parser) content(n Node, owner string) *Struct {
	st := &Struct{Name: owner}
	p.contentInto(n, st, &fieldScope{owner: owner})
	return st
}

func (p *Parser) contentInto(n Node, st *Struct, scope *fieldScope) {
	defer trace(n.el)
	deriv, ok := n.FirstChild(Extension, Restriction)
	if !ok {
		stopf("<%s> requires an extension or restriction", n.Kind())
	}
	p.derivationInto(deriv, n, st, scope)
	if n.XsdType() == ComplexContent && n.IsTrue("mixed") && !hasText(st) {
		st.Fields = append(st.Fields, textField(n.builtin("string"), Modifiers(Option)))
	}
}

// derivationInto adds the fields of an extension or restriction. An
// extension records its base as a Base field, merged with the new
// fields in the target language; for simple content the base holds
// the character data. Restricted simple content becomes a Text field.
func (p *Parser) derivationInto(n, content Node, st *Struct, scope *fieldScope) {
	defer trace(n.el)
	base := requireAttr(n, "base")
	switch {
	case n.XsdType() == Extension:
		name := "base"
		if content.XsdType() == SimpleContent {
			name = "content"
		}
		st.Fields = append(st.Fields, &StructField{
			Name:          name,
			TypeName:      base,
			Source:        SourceBase,
			TypeModifiers: Modifiers(None),
		})
	case content.XsdType() == SimpleContent:
		st.Fields = append(st.Fields, textField(base, Modifiers(None)))
	}
	p.complexBody(n, st, scope)
}

// restriction parses a <restriction> node on its own. Its meaning
// depends on its parent.
func (p *Parser) restriction(n, parent Node) Entity {
	switch parent.XsdType() {
	case SimpleTypeDecl:
		return p.simpleRestriction(n, parent.AttrName())
	case SimpleContent, ComplexContent:
		st := &Struct{}
		p.derivationInto(n, parent, st, &fieldScope{})
		return st
	}
	defer trace(n.el)
	stopf("<restriction> may not appear in <%s>", parent.Kind())
	return nil
}

func (p *Parser) extension(n, parent Node) Entity {
	switch parent.XsdType() {
	case SimpleContent, ComplexContent:
		st := &Struct{}
		p.derivationInto(n, parent, st, &fieldScope{})
		return st
	}
	defer trace(n.el)
	stopf("<extension> may not appear in <%s>", parent.Kind())
	return nil
}
