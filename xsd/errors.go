package xsd

import "fmt"

// A MalformedSchemaError is returned when a schema breaks a rule of
// the XML Schema language that the parser depends on, such as a
// missing required attribute or a contradictory occurrence range.
type MalformedSchemaError struct {
	// Breadcrumbs of the offending element, such as
	// "schema>complexType(Order)>attribute".
	Path string
	// Position of the offending element's start tag, if known.
	Line, Column int
	Reason       string
}

func (err *MalformedSchemaError) Error() string {
	return fmt.Sprintf("malformed schema at %s%s: %s", err.Path, position(err.Line, err.Column), err.Reason)
}

// An UnsupportedConstructError is returned for schema elements the
// parser does not model, such as <redefine>.
type UnsupportedConstructError struct {
	// The local name of the element, such as "redefine".
	Kind         string
	Path         string
	Line, Column int
}

func (err *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct %q at %s%s", err.Kind, err.Path, position(err.Line, err.Column))
}

// An UnresolvedReferenceError is returned by Resolve when a type name,
// ref or group reference does not name anything known.
type UnresolvedReferenceError struct {
	Name string
	// The entity containing the reference, such as "Order.item".
	From string
}

func (err *UnresolvedReferenceError) Error() string {
	if err.From == "" {
		return fmt.Sprintf("unresolved reference %q", err.Name)
	}
	return fmt.Sprintf("unresolved reference %q in %s", err.Name, err.From)
}

// A CyclicSubtypeError is returned when an entity is reached again
// while its own subtypes are being processed.
type CyclicSubtypeError struct {
	Name string
}

func (err *CyclicSubtypeError) Error() string {
	return fmt.Sprintf("cyclic subtype %q", err.Name)
}

func position(line, col int) string {
	if line == 0 {
		return ""
	}
	return fmt.Sprintf(" (line %d, column %d)", line, col)
}
