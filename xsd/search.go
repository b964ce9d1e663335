package xsd

import "github.com/CognitoIQ/go-xsd/xmltree"

// Search predicates for the xmltree.Element.SearchFunc method
type predicate func(el *xmltree.Element) bool

func or(fns ...predicate) predicate {
	return func(el *xmltree.Element) bool {
		for _, f := range fns {
			if f(el) {
				return true
			}
		}
		return false
	}
}

func isElem(space, local string) predicate {
	return func(el *xmltree.Element) bool {
		if el.Name.Local != local {
			return false
		}
		return space == "" || el.Name.Space == space
	}
}

var (
	isSchema    = isElem(schemaNS, "schema")
	isImportRef = or(isElem(schemaNS, "import"), isElem(schemaNS, "include"))
)

// schemaElements returns root if it is a <schema> element, or else
// every <schema> element nested in it, as in a WSDL document.
func schemaElements(root *xmltree.Element) []*xmltree.Element {
	if isSchema(root) {
		return []*xmltree.Element{root}
	}
	return root.SearchFunc(isSchema)
}
