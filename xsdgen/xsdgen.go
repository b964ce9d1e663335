package xsdgen // import "github.com/CognitoIQ/go-xsd/xsdgen"

import (
	"os"

	"github.com/CognitoIQ/go-xsd/xmltree"
	"github.com/CognitoIQ/go-xsd/xsd"
)

const schemaNS = "http://www.w3.org/2001/XMLSchema"

// lookupTargetNS returns the target namespace of every <schema>
// element in data, including empty ones.
func lookupTargetNS(data ...[]byte) []string {
	var result []string
	for _, doc := range data {
		tree, err := xmltree.Parse(doc)
		if err != nil {
			continue
		}
		outer := xmltree.Element{
			Children: []xmltree.Element{*tree},
		}
		for _, el := range outer.Search(schemaNS, "schema") {
			result = append(result, el.Attr("", "targetNamespace"))
		}
	}
	return result
}

// Parse parses the schema in docs with the configured leniency and
// expands their group references.
func (cfg *Config) Parse(docs ...[]byte) ([]*xsd.Schema, error) {
	p := xsd.Parser{Lenient: cfg.lenient}
	if w := cfg.warnLogger(); w != nil {
		p.Logger = w
	}
	return p.Parse(docs...)
}

// GenSource reads the named schema files, and the documents they
// import if an ImportLoader is configured, and returns definitions
// for the types declared in the named files. Types of imported
// namespaces are not emitted.
//
// Unless the Namespace option is set, each schema's target namespace
// is used in the serialization annotations of its types.
func (cfg *Config) GenSource(files ...string) ([]byte, error) {
	docs := make([][]byte, 0, len(files))
	for _, filename := range files {
		b, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		cfg.debugf("read %s", filename)
		docs = append(docs, b)
	}
	primary := make(map[string]bool)
	for _, ns := range lookupTargetNS(docs...) {
		primary[ns] = true
	}
	if cfg.loader != nil {
		deps, err := cfg.loader.Load(files, docs)
		if err != nil {
			return nil, err
		}
		cfg.logf("loaded %d dependencies", len(deps))
		docs = append(docs, deps...)
	}

	schemas, err := cfg.Parse(docs...)
	if err != nil {
		return nil, err
	}
	selected := make([]*xsd.Schema, 0, len(schemas))
	for _, s := range schemas {
		if primary[s.TargetNS] {
			selected = append(selected, s)
		}
	}
	return cfg.emit(selected, func(s *xsd.Schema) string {
		if cfg.namespace != "" {
			return cfg.namespace
		}
		return s.TargetNS
	})
}
