package xsd

// An ElementType classifies an element of an XML Schema document.
type ElementType int

const (
	UnknownElement ElementType = iota
	SchemaElement
	ElementDecl
	AttributeDecl
	SimpleTypeDecl
	ComplexTypeDecl
	SimpleContent
	ComplexContent
	Sequence
	Choice
	All
	Any
	AnyAttribute
	Restriction
	Extension
	Union
	List
	Enumeration
	FacetElement
	Annotation
	Documentation
	AppInfo
	Group
	AttributeGroup
	ImportDecl
	IncludeDecl
	Redefine
	Override
	Notation
	Key
	Keyref
	Unique
	Selector
	Field
)

var elementTypes = map[string]ElementType{
	"schema":         SchemaElement,
	"element":        ElementDecl,
	"attribute":      AttributeDecl,
	"simpleType":     SimpleTypeDecl,
	"complexType":    ComplexTypeDecl,
	"simpleContent":  SimpleContent,
	"complexContent": ComplexContent,
	"sequence":       Sequence,
	"choice":         Choice,
	"all":            All,
	"any":            Any,
	"anyAttribute":   AnyAttribute,
	"restriction":    Restriction,
	"extension":      Extension,
	"union":          Union,
	"list":           List,
	"enumeration":    Enumeration,
	"minInclusive":   FacetElement,
	"maxInclusive":   FacetElement,
	"minExclusive":   FacetElement,
	"maxExclusive":   FacetElement,
	"length":         FacetElement,
	"minLength":      FacetElement,
	"maxLength":      FacetElement,
	"pattern":        FacetElement,
	"whiteSpace":     FacetElement,
	"totalDigits":    FacetElement,
	"fractionDigits": FacetElement,
	"annotation":     Annotation,
	"documentation":  Documentation,
	"appinfo":        AppInfo,
	"group":          Group,
	"attributeGroup": AttributeGroup,
	"import":         ImportDecl,
	"include":        IncludeDecl,
	"redefine":       Redefine,
	"override":       Override,
	"notation":       Notation,
	"key":            Key,
	"keyref":         Keyref,
	"unique":         Unique,
	"selector":       Selector,
	"field":          Field,
}

var elementTypeNames = func() map[ElementType]string {
	m := make(map[ElementType]string, len(elementTypes))
	for k, v := range elementTypes {
		if v != FacetElement {
			m[v] = k
		}
	}
	m[FacetElement] = "facet"
	m[UnknownElement] = "unknown"
	return m
}()

func (t ElementType) String() string {
	if s, ok := elementTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// A FacetType names a constraining facet of a simple type.
type FacetType int

const (
	MinInclusive FacetType = iota
	MaxInclusive
	MinExclusive
	MaxExclusive
	Length
	MinLength
	MaxLength
	Pattern
	WhiteSpace
	TotalDigits
	FractionDigits
	EnumerationFacet
)

var facetNames = [...]string{
	MinInclusive:     "minInclusive",
	MaxInclusive:     "maxInclusive",
	MinExclusive:     "minExclusive",
	MaxExclusive:     "maxExclusive",
	Length:           "length",
	MinLength:        "minLength",
	MaxLength:        "maxLength",
	Pattern:          "pattern",
	WhiteSpace:       "whiteSpace",
	TotalDigits:      "totalDigits",
	FractionDigits:   "fractionDigits",
	EnumerationFacet: "enumeration",
}

func (f FacetType) String() string {
	if f >= 0 && int(f) < len(facetNames) {
		return facetNames[f]
	}
	return "unknown"
}

func parseFacetType(local string) (FacetType, bool) {
	for i, name := range facetNames {
		if name == local {
			return FacetType(i), true
		}
	}
	return 0, false
}
