package xsd

import (
	"fmt"
	"strings"
)

// An Entity is one node of the intermediate representation built from
// a schema. An Entity is one of *Struct, *StructField, *TupleStruct,
// *Alias, *Enum, *EnumCase or *Import.
//
// Entities reference one another by name, through their type names,
// and own the anonymous types declared inside them as Subtypes. The
// tree has no cycles.
type Entity interface {
	// just for compile-time type checking
	isEntity()
}

// A FieldSource records the schema construct a StructField came from.
type FieldSource int

const (
	SourceElement FieldSource = iota
	SourceAttribute
	SourceBase
	SourceChoice
	SourceText
	// A reference to a named model or attribute group, replaced
	// by the group's fields during Resolve.
	SourceGroup
)

func (s FieldSource) String() string {
	switch s {
	case SourceElement:
		return "Element"
	case SourceAttribute:
		return "Attribute"
	case SourceBase:
		return "Base"
	case SourceChoice:
		return "Choice"
	case SourceText:
		return "Text"
	case SourceGroup:
		return "Group"
	}
	return fmt.Sprintf("FieldSource(%d)", int(s))
}

// A ModifierKind is one layer of a field's type: optional, repeated,
// fixed-size, or absent.
type ModifierKind int

const (
	None ModifierKind = iota
	Option
	Vec
	Array
	Empty
)

// A TypeModifier wraps the type of a field or case. Len is only
// meaningful for Array.
type TypeModifier struct {
	Kind ModifierKind
	Len  int
}

func (m TypeModifier) String() string {
	switch m.Kind {
	case None:
		return "None"
	case Option:
		return "Option"
	case Vec:
		return "Vec"
	case Array:
		return fmt.Sprintf("Array(%d)", m.Len)
	case Empty:
		return "Empty"
	}
	return fmt.Sprintf("ModifierKind(%d)", int(m.Kind))
}

// Modifiers is a convenience constructor for a modifier list without
// Array layers.
func Modifiers(kinds ...ModifierKind) []TypeModifier {
	mods := make([]TypeModifier, len(kinds))
	for i, k := range kinds {
		mods[i] = TypeModifier{Kind: k}
	}
	return mods
}

// HasModifier reports whether mods contains a layer of the given kind.
func HasModifier(mods []TypeModifier, kind ModifierKind) bool {
	for _, m := range mods {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

// A Facet restricts the values of a simple type.
type Facet struct {
	Type    FacetType
	Value   string
	Comment string
}

func (f Facet) String() string {
	return fmt.Sprintf("%s(%q)", f.Type, f.Value)
}

// A Struct is a named record, declared by a complex type, a global
// element, or a named group.
type Struct struct {
	Name    string
	Comment string
	// Members of the struct, in document order.
	Fields   []*StructField
	Subtypes []Entity
	// Names of attribute groups whose attributes are appended
	// to Fields by Resolve.
	AttributeGroups []string
}

// A StructField is one member of a Struct.
type StructField struct {
	Name     string
	TypeName string
	Source   FieldSource
	// Outermost first; [Option, Vec] is an optional list.
	TypeModifiers []TypeModifier
	Subtypes      []Entity
	Comment       string
}

// A TupleStruct is a newtype over a simple type, carrying the facets
// that restrict it. A list type has a Vec modifier.
type TupleStruct struct {
	Name          string
	TypeName      string
	Facets        []Facet
	TypeModifiers []TypeModifier
	Subtypes      []Entity
	Comment       string
}

// An Alias renames the type Original.
type Alias struct {
	Name     string
	Original string
	Subtypes []Entity
	Comment  string
}

// An EnumSource records the schema construct an Enum came from.
type EnumSource int

const (
	// An enumerated restriction of a simple type.
	RestrictionEnum EnumSource = iota
	// A union of simple types; each case wraps a member type.
	UnionEnum
	// A <choice> between elements; each case wraps an element type.
	ChoiceEnum
)

func (s EnumSource) String() string {
	switch s {
	case RestrictionEnum:
		return "Restriction"
	case UnionEnum:
		return "Union"
	case ChoiceEnum:
		return "Choice"
	}
	return fmt.Sprintf("EnumSource(%d)", int(s))
}

// An Enum is an enumerated type.
type Enum struct {
	Name string
	// The underlying type of the enumeration's values.
	TypeName string
	Cases    []*EnumCase
	Source   EnumSource
	Subtypes []Entity
	Comment  string
}

// An EnumCase is one value of an Enum. Cases of union and choice
// enums wrap a value of type TypeName; cases of restrictions have
// an empty TypeName.
type EnumCase struct {
	// An identifier-safe name.
	Name string
	// The literal value, or for choices the element name.
	Value         string
	TypeName      string
	TypeModifiers []TypeModifier
	Subtypes      []Entity
	Comment       string
}

// An Import references another schema document.
type Import struct {
	Name      string
	Location  string
	Namespace string
}

func (*Struct) isEntity()      {}
func (*StructField) isEntity() {}
func (*TupleStruct) isEntity() {}
func (*Alias) isEntity()       {}
func (*Enum) isEntity()        {}
func (*EnumCase) isEntity()    {}
func (*Import) isEntity()      {}

// EntityName returns the name of an entity.
func EntityName(e Entity) string {
	switch e := e.(type) {
	case *Struct:
		return e.Name
	case *StructField:
		return e.Name
	case *TupleStruct:
		return e.Name
	case *Alias:
		return e.Name
	case *Enum:
		return e.Name
	case *EnumCase:
		return e.Name
	case *Import:
		return e.Name
	}
	panic(fmt.Sprintf("xsd: unexpected entity %T", e))
}

// SetEntityName changes the name of an entity.
func SetEntityName(e Entity, name string) {
	switch e := e.(type) {
	case *Struct:
		e.Name = name
	case *StructField:
		e.Name = name
	case *TupleStruct:
		e.Name = name
	case *Alias:
		e.Name = name
	case *Enum:
		e.Name = name
	case *EnumCase:
		e.Name = name
	case *Import:
		e.Name = name
	default:
		panic(fmt.Sprintf("xsd: unexpected entity %T", e))
	}
}

// EntitySubtypes returns the anonymous types owned by an entity.
func EntitySubtypes(e Entity) []Entity {
	switch e := e.(type) {
	case *Struct:
		return e.Subtypes
	case *StructField:
		return e.Subtypes
	case *TupleStruct:
		return e.Subtypes
	case *Alias:
		return e.Subtypes
	case *Enum:
		return e.Subtypes
	case *EnumCase:
		return e.Subtypes
	case *Import:
		return nil
	}
	panic(fmt.Sprintf("xsd: unexpected entity %T", e))
}

// entityComment returns the documentation attached to an entity.
func entityComment(e Entity) string {
	switch e := e.(type) {
	case *Struct:
		return e.Comment
	case *StructField:
		return e.Comment
	case *TupleStruct:
		return e.Comment
	case *Alias:
		return e.Comment
	case *Enum:
		return e.Comment
	case *EnumCase:
		return e.Comment
	}
	return ""
}

// setEntityComment sets the documentation of an entity that has none.
func setEntityComment(e Entity, doc string) {
	if doc == "" || entityComment(e) != "" {
		return
	}
	switch e := e.(type) {
	case *Struct:
		e.Comment = doc
	case *StructField:
		e.Comment = doc
	case *TupleStruct:
		e.Comment = doc
	case *Alias:
		e.Comment = doc
	case *Enum:
		e.Comment = doc
	case *EnumCase:
		e.Comment = doc
	}
}

// Walk calls fn for e and, depth first, for every entity nested in
// it: fields, cases and subtypes. If fn returns false, the entities
// nested in that entity are skipped.
func Walk(e Entity, fn func(Entity) bool) {
	if !fn(e) {
		return
	}
	switch e := e.(type) {
	case *Struct:
		for _, f := range e.Fields {
			Walk(f, fn)
		}
	case *Enum:
		for _, c := range e.Cases {
			Walk(c, fn)
		}
	}
	for _, sub := range EntitySubtypes(e) {
		Walk(sub, fn)
	}
}

// Dump writes a compact, indented description of an entity tree, for
// debugging and tests.
func Dump(e Entity) string {
	var b strings.Builder
	dump(&b, e, 0)
	return b.String()
}

func dump(b *strings.Builder, e Entity, depth int) {
	indent := strings.Repeat("  ", depth)
	switch e := e.(type) {
	case *Struct:
		fmt.Fprintf(b, "%sStruct %s\n", indent, e.Name)
		for _, f := range e.Fields {
			dump(b, f, depth+1)
		}
		for _, g := range e.AttributeGroups {
			fmt.Fprintf(b, "%s  attributeGroup %s\n", indent, g)
		}
	case *StructField:
		fmt.Fprintf(b, "%sField %s %s %s %v\n", indent, e.Name, e.TypeName, e.Source, e.TypeModifiers)
	case *TupleStruct:
		fmt.Fprintf(b, "%sTupleStruct %s %s %v %v\n", indent, e.Name, e.TypeName, e.TypeModifiers, e.Facets)
	case *Alias:
		fmt.Fprintf(b, "%sAlias %s = %s\n", indent, e.Name, e.Original)
	case *Enum:
		fmt.Fprintf(b, "%sEnum %s %s %s\n", indent, e.Name, e.TypeName, e.Source)
		for _, c := range e.Cases {
			dump(b, c, depth+1)
		}
	case *EnumCase:
		fmt.Fprintf(b, "%sCase %s %q %s %v\n", indent, e.Name, e.Value, e.TypeName, e.TypeModifiers)
	case *Import:
		fmt.Fprintf(b, "%sImport %s %s %s\n", indent, e.Name, e.Namespace, e.Location)
	}
	for _, sub := range EntitySubtypes(e) {
		dump(b, sub, depth+1)
	}
}
