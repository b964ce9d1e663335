// Package xsd parses XML Schema documents into an intermediate
// representation of declarative types.
//
// The xsd package reads the type declarations of a schema and
// normalizes them into a small tree of entities: records (Struct),
// their members (StructField), newtypes over simple types carrying
// facets (TupleStruct), renames (Alias), enumerations (Enum and
// EnumCase), and references to other schema documents (Import).
// Anonymous types declared inline are given synthetic names and owned
// by the entity they appear in, as subtypes.
//
// The xsd package does not validate instance documents, nor does it
// fetch imported schema. Use the Imports function to find the
// documents a schema depends on, and pass them all to Parse.
package xsd // import "github.com/CognitoIQ/go-xsd/xsd"

import (
	"encoding/xml"
	"strings"

	"github.com/CognitoIQ/go-xsd/internal/ordered"
	"github.com/CognitoIQ/go-xsd/xmltree"
)

const (
	schemaNS = "http://www.w3.org/2001/XMLSchema"
	xmlNS    = "http://www.w3.org/XML/1998/namespace"
)

// A Schema is the decoded form of an XSD <schema> element.
type Schema struct {
	// The target namespace of the schema. All entities declared
	// in this schema are in this namespace.
	TargetNS string
	// Namespace prefixes declared on the <schema> element. The
	// default namespace, if any, is stored under the empty prefix.
	Namespaces map[string]string
	// Any annotations declared at the top-level of the schema,
	// separated by new lines.
	Doc string
	// Top-level entities, in document order.
	Entities []Entity
	// Named model groups (<group name="...">) and attribute
	// groups. These are spliced into the entities that reference
	// them by Resolve, and are not emitted on their own.
	Groups          map[string]*Struct
	AttributeGroups map[string]*Struct
}

// Resolve translates a QName used in the schema, such as a type
// attribute value, to a canonical xml.Name. Names spliced in from
// another schema may also be written "{namespace}local". If the
// prefix is not declared, the returned boolean is false.
func (s *Schema) Resolve(qname string) (xml.Name, bool) {
	if strings.HasPrefix(qname, "{") {
		if i := strings.IndexByte(qname, '}'); i > 0 {
			return xml.Name{Space: qname[1:i], Local: qname[i+1:]}, true
		}
	}
	scope := make([]xml.Name, 0, len(s.Namespaces)+1)
	scope = append(scope, xml.Name{Space: xmlNS, Local: "xml"})
	for prefix, ns := range s.Namespaces {
		scope = append(scope, xml.Name{Space: ns, Local: prefix})
	}
	name, ok := xmltree.ResolveIn(scope, qname)
	if !ok && !strings.Contains(qname, ":") {
		// No default namespace; unqualified names are in no namespace.
		return xml.Name{Local: name.Local}, true
	}
	return name, ok
}

// qualify returns a QName that Resolve translates to name, using a
// prefix declared in s when there is one.
func (s *Schema) qualify(name xml.Name) string {
	if n, ok := s.Resolve(name.Local); ok && n == name {
		return name.Local
	}
	for _, prefix := range ordered.Keys(s.Namespaces) {
		if prefix != "" && s.Namespaces[prefix] == name.Space {
			return prefix + ":" + name.Local
		}
	}
	return "{" + name.Space + "}" + name.Local
}

// Lookup returns the top-level entity with the given name, or nil.
func (s *Schema) Lookup(name string) Entity {
	for _, e := range s.Entities {
		if EntityName(e) == name {
			return e
		}
	}
	return nil
}
