package xsd

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/CognitoIQ/go-xsd/xmltree"
)

// Unbounded is the value of MaxOccurs for maxOccurs="unbounded".
const Unbounded = -1

// A Use is the value of the use attribute of an attribute declaration.
type Use int

const (
	UseOptional Use = iota
	UseRequired
	UseProhibited
)

func (u Use) String() string {
	switch u {
	case UseOptional:
		return "optional"
	case UseRequired:
		return "required"
	case UseProhibited:
		return "prohibited"
	}
	return fmt.Sprintf("Use(%d)", int(u))
}

// A Node is a read-only view of an element in a schema document,
// classified by its ElementType, with accessors for the attributes
// the parser needs and their defaults.
type Node struct {
	el *xmltree.Element
}

// NewNode wraps an element of a parsed document.
func NewNode(el *xmltree.Element) Node {
	return Node{el: el}
}

// Element returns the underlying element.
func (n Node) Element() *xmltree.Element { return n.el }

// IsZero reports whether n wraps no element.
func (n Node) IsZero() bool { return n.el == nil }

// IsElement reports whether n is an element of the XML schema
// namespace.
func (n Node) IsElement() bool {
	return n.el != nil && n.el.Name.Space == schemaNS
}

// XsdType classifies the node. Elements outside of the XML schema
// namespace, and schema elements this package does not know, are
// UnknownElement.
func (n Node) XsdType() ElementType {
	if !n.IsElement() {
		return UnknownElement
	}
	return elementTypes[n.el.Name.Local]
}

// Kind returns the local name of the node's element.
func (n Node) Kind() string {
	if n.el == nil {
		return ""
	}
	return n.el.Name.Local
}

// Children returns the node's children in the XML schema namespace,
// in document order. Foreign elements, such as application data in
// other namespaces, are skipped.
func (n Node) Children() []Node {
	var children []Node
	if n.el == nil {
		return nil
	}
	for i := range n.el.Children {
		if n.el.Children[i].Name.Space != schemaNS {
			continue
		}
		children = append(children, Node{el: &n.el.Children[i]})
	}
	return children
}

// ChildrenOf returns the children of n whose ElementType is one of
// kinds, in document order.
func (n Node) ChildrenOf(kinds ...ElementType) []Node {
	var result []Node
	for _, c := range n.Children() {
		t := c.XsdType()
		for _, k := range kinds {
			if t == k {
				result = append(result, c)
				break
			}
		}
	}
	return result
}

// FirstChild returns the first child of n with one of the given types.
func (n Node) FirstChild(kinds ...ElementType) (Node, bool) {
	if c := n.ChildrenOf(kinds...); len(c) > 0 {
		return c[0], true
	}
	return Node{}, false
}

// HasAttr reports whether the unqualified attribute name is present.
func (n Node) HasAttr(name string) bool {
	if n.el == nil {
		return false
	}
	_, ok := n.el.LookupAttr("", name)
	return ok
}

// Attr returns the value of the unqualified attribute name, with
// surrounding white space removed.
func (n Node) Attr(name string) string {
	if n.el == nil {
		return ""
	}
	return strings.TrimSpace(n.el.Attr("", name))
}

func (n Node) AttrName() string { return n.Attr("name") }
func (n Node) AttrRef() string  { return n.Attr("ref") }
func (n Node) AttrType() string { return n.Attr("type") }
func (n Node) AttrBase() string { return n.Attr("base") }

// AttrUse returns the use of an attribute declaration. The default
// is UseOptional.
func (n Node) AttrUse() (Use, error) {
	switch v := n.Attr("use"); v {
	case "", "optional":
		return UseOptional, nil
	case "required":
		return UseRequired, nil
	case "prohibited":
		return UseProhibited, nil
	default:
		return 0, fmt.Errorf("unknown use %q", v)
	}
}

// MinOccurs returns the minOccurs attribute, which defaults to 1.
func (n Node) MinOccurs() (int, error) {
	v := n.Attr("minOccurs")
	if v == "" {
		return 1, nil
	}
	min, err := strconv.Atoi(v)
	if err != nil || min < 0 {
		return 0, fmt.Errorf("invalid minOccurs %q", v)
	}
	return min, nil
}

// MaxOccurs returns the maxOccurs attribute, which defaults to 1.
// "unbounded" is returned as Unbounded.
func (n Node) MaxOccurs() (int, error) {
	v := n.Attr("maxOccurs")
	switch v {
	case "":
		return 1, nil
	case "unbounded":
		return Unbounded, nil
	}
	max, err := strconv.Atoi(v)
	if err != nil || max < 0 {
		return 0, fmt.Errorf("invalid maxOccurs %q", v)
	}
	return max, nil
}

// IsTrue reports whether the boolean attribute name is "true" or "1".
func (n Node) IsTrue(name string) bool {
	switch n.Attr(name) {
	case "true", "1":
		return true
	}
	return false
}

// Documentation returns the text of the node's
// <annotation><documentation> children. Each line is trimmed, and
// lines of two bytes or less are dropped; the remaining lines are
// joined with new lines.
func (n Node) Documentation() string {
	var lines []string
	for _, a := range n.ChildrenOf(Annotation) {
		for _, doc := range a.el.Children {
			if doc.Name.Local != "documentation" {
				continue
			}
			for _, line := range strings.Split(string(doc.Text), "\n") {
				line = strings.TrimSpace(line)
				if len(line) > 2 {
					lines = append(lines, line)
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

// FacetType returns the facet a node declares, if it is a facet.
func (n Node) FacetType() (FacetType, bool) {
	if !n.IsElement() {
		return 0, false
	}
	return parseFacetType(n.el.Name.Local)
}

// Position returns the line and column of the node's start tag.
func (n Node) Position() (line, column int) {
	return n.el.Line, n.el.Column
}

// Resolve resolves a QName in the node's namespace scope.
func (n Node) Resolve(qname string) (xml.Name, bool) {
	return n.el.ResolveNS(qname)
}

// builtin returns the QName for a built-in XML schema type, using
// the prefix in scope at n for the schema namespace.
func (n Node) builtin(local string) string {
	if q := n.el.Prefix(xml.Name{Space: schemaNS, Local: local}); q != "" {
		return q
	}
	return "xs:" + local
}
