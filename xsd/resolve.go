package xsd

import (
	"encoding/xml"
	"strings"

	"github.com/CognitoIQ/go-xsd/internal/dependency"
)

// Resolve completes a set of schema parsed with ParseSchema. It
// replaces every reference to a named model group or attribute group
// with the fields of that group, and checks that every type name
// refers to a built-in type, an entity in one of the schema, or an
// anonymous type owned by the referring entity. Names in a namespace
// that is imported, but not among the given schema, are assumed to
// exist.
//
// Resolve returns an *UnresolvedReferenceError for a name that cannot
// be found, and a *MalformedSchemaError for circular group references.
func Resolve(schemas ...*Schema) error {
	r := newResolver(schemas)
	if err := r.expandDefinitions(r.groups, groupRefs); err != nil {
		return err
	}
	if err := r.expandDefinitions(r.attrGroups, attributeGroupRefs); err != nil {
		return err
	}
	for _, s := range schemas {
		for _, e := range s.Entities {
			if err := r.expand(s, e); err != nil {
				return err
			}
		}
	}
	for _, s := range schemas {
		for _, e := range s.Entities {
			if err := r.check(s, e, subtypeNames(e), ""); err != nil {
				return err
			}
		}
	}
	return nil
}

type groupDef struct {
	schema *Schema
	body   *Struct
}

type resolver struct {
	groups     map[xml.Name]groupDef
	attrGroups map[xml.Name]groupDef
	types      map[xml.Name]bool
	loaded     map[string]bool
	imported   map[string]bool
}

func newResolver(schemas []*Schema) *resolver {
	r := &resolver{
		groups:     make(map[xml.Name]groupDef),
		attrGroups: make(map[xml.Name]groupDef),
		types:      make(map[xml.Name]bool),
		loaded:     make(map[string]bool),
		imported:   make(map[string]bool),
	}
	for _, s := range schemas {
		r.loaded[s.TargetNS] = true
		for name, g := range s.Groups {
			r.groups[xml.Name{Space: s.TargetNS, Local: name}] = groupDef{s, g}
		}
		for name, g := range s.AttributeGroups {
			r.attrGroups[xml.Name{Space: s.TargetNS, Local: name}] = groupDef{s, g}
		}
		for _, e := range s.Entities {
			if imp, ok := e.(*Import); ok {
				r.imported[imp.Namespace] = true
				continue
			}
			r.types[xml.Name{Space: s.TargetNS, Local: EntityName(e)}] = true
		}
	}
	return r
}

// lookup resolves a QName used in s to a canonical name. Unqualified
// names in a schema without a default namespace are looked up in
// the schema's target namespace if they are not found without one.
func (r *resolver) lookup(s *Schema, qname string, known func(xml.Name) bool) (xml.Name, bool) {
	name, ok := s.Resolve(qname)
	if !ok {
		return name, false
	}
	if !known(name) && name.Space == "" && s.TargetNS != "" {
		if _, hasDefault := s.Namespaces[""]; !hasDefault {
			name.Space = s.TargetNS
		}
	}
	return name, known(name)
}

// refsFunc lists the group names referenced by a group body.
type refsFunc func(body *Struct) []string

func groupRefs(body *Struct) []string {
	var refs []string
	Walk(body, func(e Entity) bool {
		if f, ok := e.(*StructField); ok && f.Source == SourceGroup {
			refs = append(refs, f.TypeName)
		}
		return true
	})
	return refs
}

func attributeGroupRefs(body *Struct) []string {
	var refs []string
	Walk(body, func(e Entity) bool {
		if st, ok := e.(*Struct); ok {
			refs = append(refs, st.AttributeGroups...)
		}
		return true
	})
	return refs
}

// expandDefinitions expands the group references inside group
// definitions, innermost groups first.
func (r *resolver) expandDefinitions(defs map[xml.Name]groupDef, refs refsFunc) error {
	var (
		graph dependency.Graph
		keys  = make(map[string]xml.Name, len(defs))
	)
	key := func(name xml.Name) string {
		return "{" + name.Space + "}" + name.Local
	}
	for name, def := range defs {
		keys[key(name)] = name
		graph.Add(key(name))
		for _, ref := range refs(def.body) {
			dep, ok := r.lookup(def.schema, ref, func(n xml.Name) bool { _, ok := defs[n]; return ok })
			if !ok {
				return &UnresolvedReferenceError{Name: ref, From: def.body.Name}
			}
			graph.Add(key(name), key(dep))
		}
	}
	if cycle := graph.Cycle(); cycle != nil {
		names := make([]string, len(cycle))
		for i, k := range cycle {
			names[i] = keys[k].Local
		}
		return &MalformedSchemaError{
			Path:   "group(" + names[0] + ")",
			Reason: "circular group reference " + strings.Join(names, " > "),
		}
	}

	var err error
	graph.Flatten(func(k string) {
		if err == nil {
			def := defs[keys[k]]
			err = r.expand(def.schema, def.body)
		}
	})
	return err
}

// expand splices group fields into every struct in e.
func (r *resolver) expand(s *Schema, e Entity) error {
	var err error
	Walk(e, func(e Entity) bool {
		if st, ok := e.(*Struct); ok && err == nil {
			err = r.expandStruct(s, st)
		}
		return err == nil
	})
	return err
}

func (r *resolver) expandStruct(s *Schema, st *Struct) error {
	var fields []*StructField
	for _, f := range st.Fields {
		if f.Source != SourceGroup {
			fields = append(fields, f)
			continue
		}
		def, ok := r.findGroup(s, f.TypeName, r.groups)
		if !ok {
			return &UnresolvedReferenceError{Name: f.TypeName, From: st.Name}
		}
		for _, gf := range def.body.Fields {
			c := cloneEntity(gf).(*StructField)
			r.requalify(c, def.schema, s)
			c.TypeModifiers = nest(f.TypeModifiers, c.TypeModifiers)
			setEntityComment(c, f.Comment)
			fields = append(fields, c)
		}
	}
	for _, ref := range st.AttributeGroups {
		def, ok := r.findGroup(s, ref, r.attrGroups)
		if !ok {
			return &UnresolvedReferenceError{Name: ref, From: st.Name}
		}
		for _, gf := range def.body.Fields {
			c := cloneEntity(gf).(*StructField)
			r.requalify(c, def.schema, s)
			fields = append(fields, c)
		}
	}
	st.Fields = fields
	st.AttributeGroups = nil
	return nil
}

// requalify rewrites the type names in e, written in schema from,
// so that they name the same types when read in schema to. Names of
// anonymous types owned by e are left alone.
func (r *resolver) requalify(e Entity, from, to *Schema) {
	if from == to {
		return
	}
	local := subtypeNames(e)
	rewrite := func(qname string) string {
		if qname == "" || local[qname] {
			return qname
		}
		if b, ok := from.BuiltinType(qname); ok {
			return to.qualify(b.Name())
		}
		name, ok := r.lookup(from, qname, func(n xml.Name) bool { return r.types[n] })
		if !ok && (name.Space == "" || !r.imported[name.Space]) {
			return qname
		}
		return to.qualify(name)
	}
	Walk(e, func(x Entity) bool {
		switch x := x.(type) {
		case *StructField:
			x.TypeName = rewrite(x.TypeName)
		case *TupleStruct:
			x.TypeName = rewrite(x.TypeName)
		case *Alias:
			x.Original = rewrite(x.Original)
		case *Enum:
			x.TypeName = rewrite(x.TypeName)
		case *EnumCase:
			x.TypeName = rewrite(x.TypeName)
		}
		return true
	})
}

func (r *resolver) findGroup(s *Schema, ref string, defs map[xml.Name]groupDef) (groupDef, bool) {
	name, ok := r.lookup(s, ref, func(n xml.Name) bool { _, ok := defs[n]; return ok })
	if !ok {
		return groupDef{}, false
	}
	return defs[name], true
}

// known reports whether a type name used in s can be resolved.
func (r *resolver) known(s *Schema, qname string) bool {
	if s.isBuiltinName(qname) {
		return true
	}
	name, ok := r.lookup(s, qname, func(n xml.Name) bool { return r.types[n] })
	if ok {
		return true
	}
	if name.Space == xmlNS {
		return true
	}
	return name.Space != "" && r.imported[name.Space] && !r.loaded[name.Space]
}

// check verifies the type references in e and the entities nested in
// it. local holds the names of anonymous types in scope.
func (r *resolver) check(s *Schema, e Entity, local map[string]bool, from string) error {
	if name := EntityName(e); from == "" {
		from = name
	} else if name != "" {
		from += "." + name
	}
	for _, ref := range typeRefs(e) {
		if !local[ref] && !r.known(s, ref) {
			return &UnresolvedReferenceError{Name: ref, From: from}
		}
	}
	var children []Entity
	switch e := e.(type) {
	case *Struct:
		for _, f := range e.Fields {
			children = append(children, f)
		}
	case *Enum:
		for _, c := range e.Cases {
			children = append(children, c)
		}
	}
	children = append(children, EntitySubtypes(e)...)
	for _, c := range children {
		if err := r.check(s, c, local, from); err != nil {
			return err
		}
	}
	return nil
}

// typeRefs returns the type names an entity refers to directly.
func typeRefs(e Entity) []string {
	switch e := e.(type) {
	case *StructField:
		return []string{e.TypeName}
	case *TupleStruct:
		return []string{e.TypeName}
	case *Alias:
		if e.Name == e.Original {
			return nil
		}
		return []string{e.Original}
	case *Enum:
		return []string{e.TypeName}
	case *EnumCase:
		if e.TypeName != "" {
			return []string{e.TypeName}
		}
	}
	return nil
}

// subtypeNames returns the names of every anonymous type owned,
// directly or not, by e.
func subtypeNames(e Entity) map[string]bool {
	names := make(map[string]bool)
	Walk(e, func(x Entity) bool {
		for _, sub := range EntitySubtypes(x) {
			names[EntityName(sub)] = true
		}
		return true
	})
	return names
}

// cloneEntity returns a deep copy of e.
func cloneEntity(e Entity) Entity {
	switch e := e.(type) {
	case *Struct:
		c := *e
		c.Fields = make([]*StructField, len(e.Fields))
		for i, f := range e.Fields {
			c.Fields[i] = cloneEntity(f).(*StructField)
		}
		c.Subtypes = cloneEntities(e.Subtypes)
		c.AttributeGroups = append([]string(nil), e.AttributeGroups...)
		return &c
	case *StructField:
		c := *e
		c.TypeModifiers = append([]TypeModifier(nil), e.TypeModifiers...)
		c.Subtypes = cloneEntities(e.Subtypes)
		return &c
	case *TupleStruct:
		c := *e
		c.Facets = append([]Facet(nil), e.Facets...)
		c.TypeModifiers = append([]TypeModifier(nil), e.TypeModifiers...)
		c.Subtypes = cloneEntities(e.Subtypes)
		return &c
	case *Alias:
		c := *e
		c.Subtypes = cloneEntities(e.Subtypes)
		return &c
	case *Enum:
		c := *e
		c.Cases = make([]*EnumCase, len(e.Cases))
		for i, ec := range e.Cases {
			c.Cases[i] = cloneEntity(ec).(*EnumCase)
		}
		c.Subtypes = cloneEntities(e.Subtypes)
		return &c
	case *EnumCase:
		c := *e
		c.TypeModifiers = append([]TypeModifier(nil), e.TypeModifiers...)
		c.Subtypes = cloneEntities(e.Subtypes)
		return &c
	case *Import:
		c := *e
		return &c
	}
	panic("xsd: unexpected entity")
}

func cloneEntities(list []Entity) []Entity {
	if list == nil {
		return nil
	}
	out := make([]Entity, len(list))
	for i, e := range list {
		out[i] = cloneEntity(e)
	}
	return out
}
