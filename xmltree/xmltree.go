// Package xmltree reads an XML document into a tree of elements.
//
// Each Element keeps the namespace prefixes in scope at its start
// tag, so that QNames found in attribute values, as XML schema uses
// them, can be resolved anywhere in the tree. Elements also record
// where their start tag ended, for error messages that point back
// into the source document.
package xmltree // import "github.com/CognitoIQ/go-xsd/xmltree"

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
)

// Documents nested deeper than this are rejected.
const maxDepth = 3000

var errTooDeep = errors.New("xmltree: document nested too deeply")

// An Element is one element of an XML document.
type Element struct {
	xml.StartElement
	// The raw bytes between the start and end tags. Shared with
	// the parsed document; do not modify.
	Content []byte
	// Character data directly inside the element, with entities
	// and CDATA sections decoded.
	Text     []byte
	Children []Element
	// Namespace prefixes in scope, outermost first. Space holds
	// the namespace URI and Local the prefix; the default
	// namespace has an empty prefix.
	Scope []xml.Name
	// Position just past the start tag, 1-based.
	Line, Column int
}

// Attr returns the value of the attribute named local, or the empty
// string. An empty space matches an attribute in any namespace.
func (el *Element) Attr(space, local string) string {
	v, _ := el.LookupAttr(space, local)
	return v
}

// LookupAttr is like Attr, and also reports whether the attribute is
// present.
func (el *Element) LookupAttr(space, local string) (string, bool) {
	for _, a := range el.StartElement.Attr {
		if a.Name.Local == local && (space == "" || a.Name.Space == space) {
			return a.Value, true
		}
	}
	return "", false
}

// Resolve expands a QName such as "xs:string" using the prefixes in
// scope at el. An unprefixed name is placed in the default namespace.
// When the prefix is not declared, the prefix itself is returned in
// the Space field.
func (el *Element) Resolve(qname string) xml.Name {
	name, _ := el.ResolveNS(qname)
	return name
}

// ResolveNS is like Resolve, but reports whether the prefix was
// declared.
func (el *Element) ResolveNS(qname string) (xml.Name, bool) {
	return ResolveIn(el.Scope, qname)
}

// ResolveIn expands qname against a list of prefix declarations laid
// out like the Scope field of an Element.
func ResolveIn(scope []xml.Name, qname string) (xml.Name, bool) {
	prefix, local, ok := strings.Cut(qname, ":")
	if !ok {
		prefix, local = "", qname
	}
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i].Local == prefix {
			return xml.Name{Space: scope[i].Space, Local: local}, true
		}
	}
	return xml.Name{Space: prefix, Local: local}, false
}

// Prefix turns name back into a QName, using the innermost prefix
// bound to its namespace. It returns the empty string if no prefix
// is bound.
func (el *Element) Prefix(name xml.Name) string {
	for i := len(el.Scope) - 1; i >= 0; i-- {
		switch ns := el.Scope[i]; {
		case ns.Space != name.Space:
		case ns.Local == "":
			return name.Local
		default:
			return ns.Local + ":" + name.Local
		}
	}
	return ""
}

// Namespaces maps each prefix in scope at el to its namespace URI.
// Inner declarations shadow outer ones.
func (el *Element) Namespaces() map[string]string {
	m := make(map[string]string, len(el.Scope))
	for _, ns := range el.Scope {
		m[ns.Local] = ns.Space
	}
	return m
}

// declare appends the xmlns attributes of el's start tag to its
// inherited scope.
func (el *Element) declare() {
	n := len(el.Scope)
	for _, a := range el.StartElement.Attr {
		switch {
		case a.Name.Space == "xmlns":
			el.Scope = append(el.Scope, xml.Name{Space: a.Value, Local: a.Name.Local})
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			el.Scope = append(el.Scope, xml.Name{Space: a.Value})
		}
	}
	if len(el.Scope) > n {
		// siblings must not share the appended tail
		el.Scope = el.Scope[:len(el.Scope):len(el.Scope)]
	}
}

// Parse reads an XML document with a single root element. Documents
// that declare an encoding other than UTF-8 are transcoded, and only
// the Text of their elements is reliable; Content indexes the raw
// input.
func Parse(doc []byte) (*Element, error) {
	d := xml.NewDecoder(bytes.NewReader(doc))
	d.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			root := &Element{StartElement: start.Copy()}
			root.Line, root.Column = d.InputPos()
			if err := root.read(d, doc, 0); err != nil {
				return nil, err
			}
			return root, nil
		}
	}
}

// read consumes tokens up to and including el's end tag.
func (el *Element) read(d *xml.Decoder, doc []byte, depth int) error {
	if depth > maxDepth {
		return errTooDeep
	}
	el.declare()
	begin, end := d.InputOffset(), d.InputOffset()
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			child := Element{StartElement: tok.Copy(), Scope: el.Scope}
			child.Line, child.Column = d.InputPos()
			if err := child.read(d, doc, depth+1); err != nil {
				return err
			}
			el.Children = append(el.Children, child)
		case xml.CharData:
			el.Text = append(el.Text, tok...)
		case xml.EndElement:
			if tok.Name != el.Name {
				return fmt.Errorf("line %d: expecting </%s>, got </%s>",
					el.Line, el.Prefix(el.Name), el.Prefix(tok.Name))
			}
			if end <= int64(len(doc)) {
				el.Content = doc[begin:end]
			}
			return nil
		}
		end = d.InputOffset()
	}
}

// SearchFunc returns every descendant of el, in document order, for
// which match returns true. el itself is not considered.
func (el *Element) SearchFunc(match func(*Element) bool) []*Element {
	var found []*Element
	var visit func(*Element)
	visit = func(parent *Element) {
		for i := range parent.Children {
			child := &parent.Children[i]
			if match(child) {
				found = append(found, child)
			}
			visit(child)
		}
	}
	visit(el)
	return found
}

// Search returns the descendants of el named local in namespace
// space. An empty space matches any namespace.
func (el *Element) Search(space, local string) []*Element {
	return el.SearchFunc(func(e *Element) bool {
		return e.Name.Local == local && (space == "" || e.Name.Space == space)
	})
}
