package xsdgen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"reflect"
	"strconv"

	"github.com/CognitoIQ/go-xsd/internal/gen"
	"github.com/CognitoIQ/go-xsd/internal/ordered"
	"github.com/CognitoIQ/go-xsd/xsd"
)

// A language renders the definitions built by the emitter. Type
// expressions handed to a language are already converted to its
// identifiers and built-in types.
type language interface {
	builtin(b xsd.Builtin) string
	// wrap applies type modifiers, outermost first, to typ.
	wrap(typ string, mods []xsd.TypeModifier) string
	fieldName(name string) string
	setNamespace(uri, prefix string)

	header(w *bytes.Buffer)
	structDecl(w *bytes.Buffer, d *structDef)
	tupleDecl(w *bytes.Buffer, d *tupleDef)
	aliasDecl(w *bytes.Buffer, name, original, comment string)
	enumDecl(w *bytes.Buffer, d *enumDef)
	format(src []byte) ([]byte, error)
}

type fieldDef struct {
	Name string
	// The XML name of the element or attribute, and the prefix
	// it was qualified with in the schema, if any.
	XMLName xml.Name
	Prefix  string
	Type    string
	Mods    []xsd.TypeModifier
	Source  xsd.FieldSource
	// An <any> element
	Wildcard bool
	Comment  string
}

type structDef struct {
	Name    string
	Comment string
	Fields  []fieldDef
}

type tupleDef struct {
	Name    string
	Comment string
	Type    string
	Facets  []xsd.Facet
}

type caseDef struct {
	Name    string
	Value   string
	Prefix  string
	Space   string
	Type    string
	Mods    []xsd.TypeModifier
	Comment string
}

type enumDef struct {
	Name    string
	Comment string
	// Target type of the enumeration's values, and whether it
	// is a built-in.
	Base    string
	Builtin xsd.Builtin
	Source  xsd.EnumSource
	Cases   []caseDef
}

// Emission state of an entity.
type state int

const (
	pending state = iota
	emittingSubtypes
	emittingBody
	done
)

type visit struct {
	entity xsd.Entity
	name   string
	state  state
}

type emitter struct {
	cfg    *Config
	lang   language
	schema *xsd.Schema
	buf    bytes.Buffer
	// definitions written so far
	count int

	// keyed on emitted names
	visited  map[string]*visit
	entities map[xsd.Entity]*visit
	// identifiers of top-level entities
	global map[xml.Name]string
}

func newEmitter(cfg *Config) *emitter {
	e := &emitter{
		cfg:      cfg,
		visited:  make(map[string]*visit),
		entities: make(map[xsd.Entity]*visit),
		global:   make(map[xml.Name]string),
	}
	switch cfg.target {
	case Go:
		pkg := cfg.pkgname
		if pkg == "" {
			pkg = "ws"
		}
		e.lang = &golang{pkg: pkg, reserved: cfg.keywords()}
	default:
		e.lang = &rust{reserved: cfg.keywords()}
	}
	return e
}

// Emit returns type definitions for every entity of the given
// schema, in document order. The anonymous types an entity owns are
// emitted before it. Named model groups and attribute groups are not
// emitted; they should be expanded with xsd.Resolve first.
//
// If no namespace was configured with the Namespace option, the
// placeholder "unknown" is used in serialization annotations.
func (cfg *Config) Emit(schemas ...*xsd.Schema) ([]byte, error) {
	return cfg.emit(schemas, func(*xsd.Schema) string { return cfg.namespace })
}

func (cfg *Config) emit(schemas []*xsd.Schema, namespace func(*xsd.Schema) string) ([]byte, error) {
	e := newEmitter(cfg)
	for _, s := range schemas {
		e.schema = s
		e.register(s)
	}
	e.lang.header(&e.buf)
	for _, s := range schemas {
		e.schema = s
		ns := namespace(s)
		if ns == "" {
			cfg.errorf("no namespace given for schema %q; annotating types with %q", s.TargetNS, placeholder)
			ns = placeholder
		}
		e.lang.setNamespace(ns, e.prefixFor(s, ns))
		for _, ent := range s.Entities {
			if imp, ok := ent.(*xsd.Import); ok {
				e.begin()
				fmt.Fprintf(&e.buf, "// import %s %q from %q\n", imp.Name, imp.Namespace, imp.Location)
				continue
			}
			if _, err := e.emitEntity(ent); err != nil {
				return nil, err
			}
		}
	}
	return e.lang.format(e.buf.Bytes())
}

// prefixFor chooses the namespace prefix for annotations.
func (e *emitter) prefixFor(s *xsd.Schema, ns string) string {
	if e.cfg.prefix != "" {
		return e.cfg.prefix
	}
	if ns == placeholder {
		return placeholder
	}
	if prefix, ok := ordered.KeyOf(s.Namespaces, ns); ok && prefix != "" {
		return prefix
	}
	return "tns"
}

// register reserves identifiers for the top-level entities of s, so
// that references to them can be written before they are emitted.
// An entity identical to one already registered under the same name
// is emitted once.
func (e *emitter) register(s *xsd.Schema) {
	for _, ent := range s.Entities {
		if _, ok := ent.(*xsd.Import); ok || e.elided(ent) {
			continue
		}
		name := xsd.EntityName(ent)
		id := e.typeIdent(name)
		if v, ok := e.visited[id]; ok && v.entity != ent && reflect.DeepEqual(v.entity, ent) {
			e.cfg.logf("%s is declared twice; emitting it once", name)
			e.entities[ent] = v
			continue
		}
		v := e.reserve(ent, id)
		key := xml.Name{Space: s.TargetNS, Local: name}
		if _, ok := e.global[key]; !ok {
			e.global[key] = v.name
		}
	}
}

// reserve records ent under id, or under id with a numeric suffix if
// another entity has taken id.
func (e *emitter) reserve(ent xsd.Entity, id string) *visit {
	name := id
	for i := 2; e.visited[name] != nil; i++ {
		name = id + strconv.Itoa(i)
	}
	if name != id {
		e.cfg.logf("renaming %s to %s to avoid a name collision", xsd.EntityName(ent), name)
	}
	v := &visit{entity: ent, name: name}
	e.visited[name] = v
	e.entities[ent] = v
	return v
}

// elided reports whether ent is an alias that renames a type to
// itself.
func (e *emitter) elided(ent xsd.Entity) bool {
	a, ok := ent.(*xsd.Alias)
	return ok && e.typeIdent(a.Name) == e.typeIdent(a.Original)
}

// begin separates definitions with a blank line.
func (e *emitter) begin() {
	if e.count > 0 {
		e.buf.WriteString("\n")
	}
	e.count++
}

// emitEntity writes ent, after the anonymous types it owns, and
// returns the identifier it was emitted as.
func (e *emitter) emitEntity(ent xsd.Entity) (string, error) {
	if e.elided(ent) {
		return e.typeIdent(ent.(*xsd.Alias).Name), nil
	}
	v := e.entities[ent]
	if v == nil {
		v = e.reserve(ent, e.typeIdent(xsd.EntityName(ent)))
	}
	switch v.state {
	case done:
		return v.name, nil
	case emittingSubtypes, emittingBody:
		return "", &xsd.CyclicSubtypeError{Name: xsd.EntityName(ent)}
	}

	v.state = emittingSubtypes
	for _, sub := range e.ownedTypes(ent) {
		if _, err := e.emitEntity(sub); err != nil {
			return "", err
		}
	}
	scope := e.subtypeScope(nil, xsd.EntitySubtypes(ent))

	v.state = emittingBody
	e.begin()
	switch ent := ent.(type) {
	case *xsd.Struct:
		e.lang.structDecl(&e.buf, e.structDef(v.name, ent, scope))
	case *xsd.TupleStruct:
		e.lang.tupleDecl(&e.buf, &tupleDef{
			Name:    v.name,
			Comment: ent.Comment,
			Type:    e.lang.wrap(e.typeRef(scope, ent.TypeName), ent.TypeModifiers),
			Facets:  ent.Facets,
		})
	case *xsd.Alias:
		e.lang.aliasDecl(&e.buf, v.name, e.typeRef(scope, ent.Original), ent.Comment)
	case *xsd.Enum:
		e.lang.enumDecl(&e.buf, e.enumDef(v.name, ent, scope))
	default:
		return "", fmt.Errorf("cannot emit %T %s as a type", ent, xsd.EntityName(ent))
	}
	v.state = done
	e.cfg.debugf("emitted %s", v.name)
	return v.name, nil
}

// ownedTypes lists the anonymous types declared by ent, its fields
// and its cases, in document order.
func (e *emitter) ownedTypes(ent xsd.Entity) []xsd.Entity {
	subs := append([]xsd.Entity(nil), xsd.EntitySubtypes(ent)...)
	switch ent := ent.(type) {
	case *xsd.Struct:
		for _, f := range ent.Fields {
			if !skipField(f) {
				subs = append(subs, f.Subtypes...)
			}
		}
	case *xsd.Enum:
		for _, c := range ent.Cases {
			subs = append(subs, c.Subtypes...)
		}
	}
	return subs
}

// subtypeScope maps the schema names of subs, already emitted, to
// their identifiers. Entries of outer are kept unless a name of subs
// shadows them.
func (e *emitter) subtypeScope(outer map[string]string, subs []xsd.Entity) map[string]string {
	if len(subs) == 0 && outer != nil {
		return outer
	}
	scope := make(map[string]string, len(outer)+len(subs))
	for name, id := range outer {
		scope[name] = id
	}
	for _, sub := range subs {
		if e.elided(sub) {
			scope[xsd.EntityName(sub)] = e.typeIdent(sub.(*xsd.Alias).Name)
		} else if v := e.entities[sub]; v != nil {
			scope[xsd.EntityName(sub)] = v.name
		}
	}
	return scope
}

// skipField reports whether a field has no place in the emitted
// type: prohibited attributes, elements that may not occur, and
// group references left unexpanded.
func skipField(f *xsd.StructField) bool {
	return xsd.HasModifier(f.TypeModifiers, xsd.Empty) || f.Source == xsd.SourceGroup
}

func (e *emitter) structDef(name string, st *xsd.Struct, scope map[string]string) *structDef {
	d := &structDef{Name: name, Comment: st.Comment}
	seen := make(map[string]bool)
	for _, f := range st.Fields {
		if f.Source == xsd.SourceGroup {
			e.cfg.errorf("%s: skipping unexpanded group reference %s", st.Name, f.TypeName)
			continue
		}
		if skipField(f) {
			continue
		}
		fscope := e.subtypeScope(scope, f.Subtypes)
		fd := fieldDef{
			Type:    e.lang.wrap(e.typeRef(fscope, f.TypeName), f.TypeModifiers),
			Mods:    f.TypeModifiers,
			Source:  f.Source,
			Comment: f.Comment,
		}
		if f.Source == xsd.SourceBase && e.simpleType(fscope, f.TypeName) {
			// the base of simple content is the element's text
			fd.Source = xsd.SourceText
		}
		fd.XMLName, fd.Prefix = e.xmlName(f.Name)
		if f.Source == xsd.SourceElement && f.Name == "any" {
			if b, ok := e.schema.BuiltinType(f.TypeName); ok && b == xsd.AnyType {
				fd.Wildcard = true
			}
		}
		fd.Name = e.unique(seen, e.lang.fieldName(f.Name))
		d.Fields = append(d.Fields, fd)
	}
	return d
}

// simpleType reports whether typeName is a built-in type or a
// declared type that only holds character data.
func (e *emitter) simpleType(scope map[string]string, typeName string) bool {
	if _, ok := e.schema.BuiltinType(typeName); ok {
		return true
	}
	if v, ok := e.visited[e.typeRef(scope, typeName)]; ok {
		_, complex := v.entity.(*xsd.Struct)
		return !complex
	}
	return false
}

func (e *emitter) enumDef(name string, en *xsd.Enum, scope map[string]string) *enumDef {
	d := &enumDef{
		Name:    name,
		Comment: en.Comment,
		Base:    e.typeRef(scope, en.TypeName),
		Builtin: -1,
		Source:  en.Source,
	}
	if b, ok := e.schema.BuiltinType(en.TypeName); ok {
		d.Builtin = b
	}
	seen := make(map[string]bool)
	for _, c := range en.Cases {
		cd := caseDef{
			Name:    e.unique(seen, e.caseIdent(c.Name)),
			Value:   c.Value,
			Mods:    c.TypeModifiers,
			Comment: c.Comment,
		}
		if c.TypeName != "" {
			cd.Type = e.lang.wrap(e.typeRef(e.subtypeScope(scope, c.Subtypes), c.TypeName), c.TypeModifiers)
		}
		if en.Source == xsd.ChoiceEnum && c.Value != "" {
			var qname xml.Name
			qname, cd.Prefix = e.xmlName(c.Value)
			cd.Value, cd.Space = qname.Local, qname.Space
		}
		d.Cases = append(d.Cases, cd)
	}
	return d
}

// unique appends a counter to name if it is already in seen.
func (e *emitter) unique(seen map[string]bool, name string) string {
	id := name
	for i := 2; seen[id]; i++ {
		id = name + strconv.Itoa(i)
	}
	seen[id] = true
	return id
}

// xmlName splits a possibly qualified element or attribute name.
func (e *emitter) xmlName(qname string) (xml.Name, string) {
	local := gen.LocalName(qname)
	if local == qname {
		return xml.Name{Local: local}, ""
	}
	prefix := qname[:len(qname)-len(local)-1]
	name, _ := e.schema.Resolve(qname)
	return name, prefix
}

// typeIdent converts a type name from the schema to an identifier.
func (e *emitter) typeIdent(name string) string {
	id := e.cfg.replace.Apply(gen.Pascal(name))
	if id == "" {
		id = "Type"
	}
	if gen.StartsWithDigit(id) {
		id = "_" + id
	}
	return gen.Sanitize(id, e.cfg.keywords())
}

func (e *emitter) caseIdent(name string) string {
	id := gen.Identifier(name)
	if id == "" {
		id = "Value"
	}
	if gen.StartsWithDigit(id) {
		id = "_" + id
	}
	return gen.Sanitize(id, e.cfg.keywords())
}

// typeRef converts a type name used in the schema to a type in the
// target language. Anonymous types in scope take precedence over
// built-in and top-level types.
func (e *emitter) typeRef(scope map[string]string, typeName string) string {
	if id, ok := scope[typeName]; ok {
		return id
	}
	if b, ok := e.schema.BuiltinType(typeName); ok {
		return e.lang.builtin(b)
	}
	if name, ok := e.schema.Resolve(typeName); ok {
		if id, ok := e.global[name]; ok {
			return id
		}
		if name.Space == "" {
			if id, ok := e.global[xml.Name{Space: e.schema.TargetNS, Local: name.Local}]; ok {
				return id
			}
		}
	}
	return e.typeIdent(typeName)
}
