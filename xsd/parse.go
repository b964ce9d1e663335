package xsd

import "github.com/CognitoIQ/go-xsd/xmltree"

// A Ref contains the canonical namespace of a schema document, and
// possibly a URI to retrieve the document from. It is not required
// for XML Schema documents to provide the location of schema that
// they import; it is expected that all well-known schema namespaces
// are available to the consumer of a schema beforehand.
type Ref struct {
	Namespace, Location string
}

// Imports reads an XML document containing one or more <schema>
// elements and returns a list of canonical XML name spaces that
// the schema imports or includes, along with a URL for the schema,
// if provided.
func Imports(data []byte) ([]Ref, error) {
	var result []Ref

	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, err
	}

	for _, tree := range schemaElements(root) {
		ns := tree.Attr("", "targetNamespace")
		for _, v := range tree.SearchFunc(isImportRef) {
			if v.Name.Local == "include" {
				result = append(result, Ref{ns, v.Attr("", "schemaLocation")})
			} else {
				result = append(result, Ref{v.Attr("", "namespace"), v.Attr("", "schemaLocation")})
			}
		}
	}
	return result, nil
}

// A Logger receives warnings from a Parser. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// A Parser converts schema nodes into entities. The zero value is a
// strict parser that fails on the first construct it does not model.
type Parser struct {
	// If true, unsupported constructs are skipped with a warning.
	// At the top level of a schema they are replaced by an empty
	// Struct, so that references to them still resolve.
	Lenient bool
	// Receives warnings; may be nil.
	Logger Logger

	schema *Schema
}

func (p *Parser) logf(format string, v ...interface{}) {
	if p.Logger != nil {
		p.Logger.Printf(format, v...)
	}
}

// Parse reads XML documents containing one or more <schema>
// elements. The returned slice has one Schema for every <schema>
// element in the documents. Group references are expanded and type
// references are checked with Resolve, across all of the returned
// schema. Parse will not fetch schema used in <import> or <include>
// statements; use the Imports function to find any additional schema
// documents required for a schema.
func (p *Parser) Parse(docs ...[]byte) ([]*Schema, error) {
	var result []*Schema
	for _, data := range docs {
		root, err := xmltree.Parse(data)
		if err != nil {
			return nil, err
		}
		for _, el := range schemaElements(root) {
			s, err := p.ParseSchema(NewNode(el))
			if err != nil {
				return nil, err
			}
			result = append(result, s)
		}
	}
	if len(result) == 0 {
		return nil, &MalformedSchemaError{Path: "document", Reason: "no <schema> element found"}
	}
	if err := Resolve(result...); err != nil {
		return nil, err
	}
	return result, nil
}

// Parse parses schema documents with a strict Parser.
func Parse(docs ...[]byte) ([]*Schema, error) {
	return new(Parser).Parse(docs...)
}

// ParseSchema builds a Schema from a <schema> node. Group references
// are left in place; see Resolve.
func (p *Parser) ParseSchema(root Node) (s *Schema, err error) {
	defer catchParseError(&err)
	if root.XsdType() != SchemaElement {
		return nil, &MalformedSchemaError{
			Path:   root.Kind(),
			Reason: "expected <schema> element",
		}
	}
	s = &Schema{
		TargetNS:        root.Attr("targetNamespace"),
		Namespaces:      root.el.Namespaces(),
		Doc:             root.Documentation(),
		Groups:          make(map[string]*Struct),
		AttributeGroups: make(map[string]*Struct),
	}
	saved := p.schema
	p.schema = s
	defer func() { p.schema = saved }()

	walk(root, func(n Node) {
		e := p.parseNode(n, root)
		if e == nil {
			return
		}
		switch n.XsdType() {
		case Group:
			if _, dup := s.Groups[n.AttrName()]; dup {
				stopf("duplicate group %q", n.AttrName())
			}
			s.Groups[n.AttrName()] = e.(*Struct)
		case AttributeGroup:
			if _, dup := s.AttributeGroups[n.AttrName()]; dup {
				stopf("duplicate attributeGroup %q", n.AttrName())
			}
			s.AttributeGroups[n.AttrName()] = e.(*Struct)
		default:
			s.Entities = append(s.Entities, e)
		}
	})
	return s, nil
}

// ParseNode converts a schema node into an entity. The parent is
// used to tell global declarations, whose parent is the <schema>
// element, from local ones. Nodes that carry no type information,
// such as <annotation> or identity constraints, yield a nil Entity.
// The input tree is not modified.
func (p *Parser) ParseNode(n, parent Node) (e Entity, err error) {
	defer catchParseError(&err)
	return p.parseNode(n, parent), nil
}

// parseNode is the dispatcher behind ParseNode. It panics with a
// parseError on failure.
func (p *Parser) parseNode(n, parent Node) Entity {
	switch n.XsdType() {
	case AttributeDecl:
		if isGlobal(parent) {
			return p.globalAttribute(n)
		}
		return p.localAttribute(n)
	case ElementDecl:
		if isGlobal(parent) {
			return p.globalElement(n)
		}
		return p.localElement(n)
	case ComplexTypeDecl:
		return p.complexType(n, n.AttrName())
	case SimpleTypeDecl:
		return p.simpleType(n, n.AttrName())
	case SimpleContent, ComplexContent:
		return p.content(n, parent.AttrName())
	case Sequence, All:
		return p.sequence(n, &fieldScope{owner: parent.AttrName()})
	case Choice:
		return p.choice(n, parent.AttrName()+"Choice")
	case Restriction:
		return p.restriction(n, parent)
	case Extension:
		return p.extension(n, parent)
	case Union:
		return p.union(n, parent.AttrName())
	case List:
		return p.list(n, parent.AttrName())
	case Enumeration:
		return p.enumCase(n)
	case Group:
		return p.group(n, isGlobal(parent))
	case AttributeGroup:
		return p.attributeGroup(n, isGlobal(parent))
	case Any:
		return p.anyElement(n)
	case ImportDecl:
		return p.importRef(n)
	case IncludeDecl:
		return p.includeRef(n)
	case Annotation, Documentation, AppInfo, AnyAttribute,
		Key, Keyref, Unique, Selector, Field:
		return nil
	case FacetElement:
		defer trace(n.el)
		stopf("facet %s outside of a restriction", n.Kind())
	}
	return p.unsupported(n, parent)
}

// unsupported fails on n, or in lenient mode logs a warning and
// stubs it out.
func (p *Parser) unsupported(n, parent Node) Entity {
	defer trace(n.el)
	if !p.Lenient {
		unsupported(n.Kind())
	}
	line, col := n.Position()
	p.logf("skipping unsupported construct <%s> at line %d, column %d", n.Kind(), line, col)
	if !isGlobal(parent) {
		return nil
	}
	name := n.AttrName()
	if name == "" {
		name = n.Kind()
	}
	return &Struct{Name: name, Comment: n.Documentation()}
}

func isGlobal(parent Node) bool {
	return parent.XsdType() == SchemaElement
}

// nameOrRef returns the name attribute of n, or failing that its ref.
func nameOrRef(n Node) string {
	if name := n.AttrName(); name != "" {
		return name
	}
	if ref := n.AttrRef(); ref != "" {
		return ref
	}
	stopf("<%s> requires a name or ref attribute", n.Kind())
	panic("unreachable")
}

func requireAttr(n Node, name string) string {
	v := n.Attr(name)
	if v == "" {
		stopf("<%s> requires a %s attribute", n.Kind(), name)
	}
	return v
}

// occurs derives type modifiers from the minOccurs and maxOccurs
// attributes of n.
func occurs(n Node) []TypeModifier {
	min, err := n.MinOccurs()
	if err != nil {
		stop(err.Error())
	}
	max, err := n.MaxOccurs()
	if err != nil {
		stop(err.Error())
	}
	return occurrence(min, max)
}

func occurrence(min, max int) []TypeModifier {
	switch {
	case max == 0:
		return Modifiers(Empty)
	case max != Unbounded && max < min:
		stopf("maxOccurs %d is less than minOccurs %d", max, min)
	case max == 1 && min == 0:
		return Modifiers(Option)
	case max == 1:
		return Modifiers(None)
	case min == 0:
		return Modifiers(Option, Vec)
	}
	return Modifiers(Vec)
}

// nest combines the modifiers of an enclosing particle, such as an
// optional sequence or group reference, with those of a particle
// inside it.
func nest(outer, inner []TypeModifier) []TypeModifier {
	switch {
	case HasModifier(outer, Empty) || HasModifier(inner, Empty):
		return Modifiers(Empty)
	case HasModifier(outer, Vec) || HasModifier(inner, Vec):
		if HasModifier(outer, Option) || HasModifier(inner, Option) {
			return Modifiers(Option, Vec)
		}
		return Modifiers(Vec)
	case HasModifier(outer, Option) || HasModifier(inner, Option):
		return Modifiers(Option)
	}
	return append([]TypeModifier(nil), inner...)
}

func (p *Parser) targetNS() string {
	if p.schema == nil {
		return ""
	}
	return p.schema.TargetNS
}
