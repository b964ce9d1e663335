// Package xsdgen emits type definitions from the entities of a parsed
// XML schema.
//
// The xsdgen package walks the intermediate representation built by
// package xsd and writes one type definition for each named entity,
// with the annotations needed to decode XML documents into it. Two
// languages are supported: Rust, with attributes for the yaserde
// crate, and Go, with encoding/xml struct tags. The output can be
// configured through Options.
package xsdgen
