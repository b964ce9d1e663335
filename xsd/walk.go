package xsd

import (
	"fmt"
	"strings"

	"github.com/CognitoIQ/go-xsd/xmltree"
)

// When working with an xml tree structure, we naturally have some
// pretty deep function calls.  To save some typing, we use panic/recover
// to bubble the errors up. These panics are not exposed to the user.
type parseError struct {
	message string
	// set instead of message for elements we do not model
	unsupported string
	path        []*xmltree.Element
}

func (err parseError) breadcrumbs() string {
	breadcrumbs := make([]string, 0, len(err.path))
	for i := len(err.path) - 1; i >= 0; i-- {
		piece := err.path[i].Name.Local
		if name := err.path[i].Attr("", "name"); name != "" {
			piece = fmt.Sprintf("%s(%s)", piece, name)
		} else if ref := err.path[i].Attr("", "ref"); ref != "" {
			piece = fmt.Sprintf("%s(ref=%s)", piece, ref)
		}
		breadcrumbs = append(breadcrumbs, piece)
	}
	return strings.Join(breadcrumbs, ">")
}

func (err parseError) Error() string {
	if err.unsupported != "" {
		return "Error at " + err.breadcrumbs() + ": unsupported " + err.unsupported
	}
	return "Error at " + err.breadcrumbs() + ": " + err.message
}

// typed converts the error to one of the exported error types,
// positioned at the innermost element of the path.
func (err parseError) typed() error {
	var line, col int
	if len(err.path) > 0 {
		line, col = err.path[0].Line, err.path[0].Column
	}
	if err.unsupported != "" {
		return &UnsupportedConstructError{
			Kind:   err.unsupported,
			Path:   err.breadcrumbs(),
			Line:   line,
			Column: col,
		}
	}
	return &MalformedSchemaError{
		Path:   err.breadcrumbs(),
		Line:   line,
		Column: col,
		Reason: err.message,
	}
}

func stop(msg string) {
	panic(parseError{message: msg})
}

func stopf(format string, v ...interface{}) {
	stop(fmt.Sprintf(format, v...))
}

func unsupported(kind string) {
	panic(parseError{unsupported: kind})
}

// trace adds el to the path of a parseError unwinding through it.
// It must be deferred.
func trace(el *xmltree.Element) {
	if r := recover(); r != nil {
		if err, ok := r.(parseError); ok {
			err.path = append(err.path, el)
			panic(err)
		}
		panic(r)
	}
}

// walk calls fn for each child of root in the XML schema namespace.
func walk(root Node, fn func(Node)) {
	defer trace(root.el)
	for _, child := range root.Children() {
		fn(child)
	}
}

// defer catchParseError(&err)
func catchParseError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(parseError)
		if !ok {
			panic(r)
		}
		*err = perr.typed()
	}
}
