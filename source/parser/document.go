package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hamhec/FLOCI/ontology"
)

// YAMLParser decodes fuzzy ontology documents written in YAML. JSON documents
// are valid YAML and go through the same decoder.
//
// A document has the shape:
//
//	name: example
//	logic: lukasiewicz
//	prefixes:
//	  ex: http://example.org/onto#
//	definitions:
//	  - name: High
//	    triangular: {k1: 0, k2: 100, a: 50, b: 70, c: 90}
//	axioms:
//	  - subClassOf: {sub: ex:A, sup: ex:B, degree: 0.7}
//
// Every axiom is a single-key mapping naming its kind. Degrees default to 1.
type YAMLParser struct{}

// NewYAMLParser creates a new ontology document parser.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// MimeType returns the primary MIME type for this parser.
func (p *YAMLParser) MimeType() string {
	return "application/yaml"
}

// CanParse returns true if this parser handles the given MIME type.
func (p *YAMLParser) CanParse(mimeType string) bool {
	switch mimeType {
	case "application/yaml", "application/x-yaml", "text/yaml", "application/json":
		return true
	default:
		return false
	}
}

// Parse decodes an ontology document. When the document has no name, the
// file's base name without extension is used.
func (p *YAMLParser) Parse(filename string, content []byte) (*ontology.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("parse %s: empty document", filename)
	}

	d := &decoder{}
	doc, err := d.document(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if doc.Name == "" {
		base := filepath.Base(filename)
		doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc, nil
}

// DecodeError reports a malformed node with its position in the source.
type DecodeError struct {
	Line    int
	Column  int
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func errorf(n *yaml.Node, format string, args ...any) error {
	return &DecodeError{Line: n.Line, Column: n.Column, Message: fmt.Sprintf(format, args...)}
}

// Logics lists the fuzzy logics a document may declare.
var Logics = []string{"lukasiewicz", "zadeh", "classical"}

type decoder struct {
	prefixes map[string]string
}

func (d *decoder) document(n *yaml.Node) (*ontology.Document, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "document must be a mapping")
	}

	// Prefixes apply to the whole document regardless of key order.
	if p := lookup(n, "prefixes"); p != nil {
		if err := p.Decode(&d.prefixes); err != nil {
			return nil, errorf(p, "prefixes must map names to namespaces")
		}
	}

	doc := &ontology.Document{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		var err error
		switch key.Value {
		case "name":
			doc.Name, err = scalar(val)
		case "logic":
			doc.Logic, err = d.logic(val)
		case "prefixes":
		case "definitions":
			doc.Definitions, err = d.definitions(val)
		case "axioms":
			doc.Axioms, err = d.axioms(val)
		default:
			err = errorf(key, "unknown document key %q", key.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (d *decoder) logic(n *yaml.Node) (string, error) {
	s, err := scalar(n)
	if err != nil {
		return "", err
	}
	s = strings.ToLower(s)
	for _, l := range Logics {
		if s == l {
			return s, nil
		}
	}
	return "", errorf(n, "unknown fuzzy logic %q (supported: %s)", s, strings.Join(Logics, ", "))
}

func (d *decoder) axioms(n *yaml.Node) ([]ontology.Axiom, error) {
	items, err := sequence(n)
	if err != nil {
		return nil, err
	}
	axioms := make([]ontology.Axiom, 0, len(items))
	for _, item := range items {
		ax, err := d.axiom(item)
		if err != nil {
			return nil, err
		}
		axioms = append(axioms, ax)
	}
	return axioms, nil
}

var characteristics = map[string]ontology.Characteristic{
	"transitive":        ontology.Transitive,
	"symmetric":         ontology.Symmetric,
	"asymmetric":        ontology.Asymmetric,
	"reflexive":         ontology.Reflexive,
	"irreflexive":       ontology.Irreflexive,
	"functional":        ontology.Functional,
	"inverseFunctional": ontology.InverseFunctional,
}

func (d *decoder) axiom(n *yaml.Node) (ontology.Axiom, error) {
	kind, body, err := single(n)
	if err != nil {
		return nil, err
	}

	if c, ok := characteristics[kind]; ok {
		p, err := d.entity(body)
		if err != nil {
			return nil, err
		}
		return ontology.ObjectPropertyCharacteristic{Characteristic: c, Property: p}, nil
	}

	switch kind {
	case "declaration":
		return d.declaration(body)
	case "classAssertion":
		f, err := d.fields(body, "individual", "class", "degree?")
		if err != nil {
			return nil, err
		}
		ax := ontology.ConceptAssertion{}
		if ax.Individual, err = d.individual(f["individual"]); err != nil {
			return nil, err
		}
		if ax.Class, err = d.classExpression(f["class"]); err != nil {
			return nil, err
		}
		ax.Degree, err = degree(f["degree"])
		return ax, err
	case "objectPropertyAssertion", "negativeObjectPropertyAssertion":
		f, err := d.fields(body, "subject", "property", "object", "degree?")
		if err != nil {
			return nil, err
		}
		subject, err := d.individual(f["subject"])
		if err != nil {
			return nil, err
		}
		object, err := d.individual(f["object"])
		if err != nil {
			return nil, err
		}
		property, err := d.entity(f["property"])
		if err != nil {
			return nil, err
		}
		if kind == "negativeObjectPropertyAssertion" {
			return ontology.NegativeObjectPropertyAssertion{Subject: subject, Object: object, Property: property}, nil
		}
		deg, err := degree(f["degree"])
		return ontology.ObjectPropertyAssertion{Subject: subject, Object: object, Property: property, Degree: deg}, err
	case "dataPropertyAssertion", "negativeDataPropertyAssertion":
		f, err := d.fields(body, "subject", "property", "value", "degree?")
		if err != nil {
			return nil, err
		}
		subject, err := d.individual(f["subject"])
		if err != nil {
			return nil, err
		}
		property, err := d.entity(f["property"])
		if err != nil {
			return nil, err
		}
		value, err := d.literal(f["value"])
		if err != nil {
			return nil, err
		}
		if kind == "negativeDataPropertyAssertion" {
			return ontology.NegativeDataPropertyAssertion{Subject: subject, Value: value, Property: property}, nil
		}
		deg, err := degree(f["degree"])
		return ontology.DataPropertyAssertion{Subject: subject, Value: value, Property: property, Degree: deg}, err
	case "sameIndividual", "differentIndividuals":
		individuals, err := d.individuals(body)
		if err != nil {
			return nil, err
		}
		if kind == "sameIndividual" {
			return ontology.SameIndividual{Individuals: individuals}, nil
		}
		return ontology.DifferentIndividuals{Individuals: individuals}, nil
	case "subClassOf":
		f, err := d.fields(body, "sub", "sup", "degree?")
		if err != nil {
			return nil, err
		}
		ax := ontology.SubClassOf{}
		if ax.Sub, err = d.classExpression(f["sub"]); err != nil {
			return nil, err
		}
		if ax.Super, err = d.classExpression(f["sup"]); err != nil {
			return nil, err
		}
		ax.Degree, err = degree(f["degree"])
		return ax, err
	case "equivalentClasses", "disjointClasses", "disjointUnion":
		classes, err := d.classExpressions(body)
		if err != nil {
			return nil, err
		}
		switch kind {
		case "equivalentClasses":
			return ontology.EquivalentClasses{Classes: classes}, nil
		case "disjointClasses":
			return ontology.DisjointClasses{Classes: classes}, nil
		default:
			return ontology.DisjointUnion{Classes: classes}, nil
		}
	case "subObjectPropertyOf", "subDataPropertyOf":
		f, err := d.fields(body, "sub", "sup", "degree?")
		if err != nil {
			return nil, err
		}
		sub, err := d.entity(f["sub"])
		if err != nil {
			return nil, err
		}
		sup, err := d.entity(f["sup"])
		if err != nil {
			return nil, err
		}
		deg, err := degree(f["degree"])
		if kind == "subDataPropertyOf" {
			return ontology.SubDataPropertyOf{Sub: sub, Super: sup, Degree: deg}, err
		}
		return ontology.SubObjectPropertyOf{Sub: sub, Super: sup, Degree: deg}, err
	case "subPropertyChainOf":
		f, err := d.fields(body, "chain", "sup", "degree?")
		if err != nil {
			return nil, err
		}
		chain, err := d.entities(f["chain"])
		if err != nil {
			return nil, err
		}
		sup, err := d.entity(f["sup"])
		if err != nil {
			return nil, err
		}
		deg, err := degree(f["degree"])
		return ontology.SubPropertyChainOf{Chain: chain, Super: sup, Degree: deg}, err
	case "equivalentObjectProperties", "equivalentDataProperties",
		"disjointObjectProperties", "disjointDataProperties":
		props, err := d.entities(body)
		if err != nil {
			return nil, err
		}
		switch kind {
		case "equivalentObjectProperties":
			return ontology.EquivalentObjectProperties{Properties: props}, nil
		case "equivalentDataProperties":
			return ontology.EquivalentDataProperties{Properties: props}, nil
		case "disjointObjectProperties":
			return ontology.DisjointObjectProperties{Properties: props}, nil
		default:
			return ontology.DisjointDataProperties{Properties: props}, nil
		}
	case "functionalDataProperty":
		p, err := d.entity(body)
		if err != nil {
			return nil, err
		}
		return ontology.FunctionalDataProperty{Property: p}, nil
	case "inverseObjectProperties":
		props, err := d.entities(body)
		if err != nil {
			return nil, err
		}
		if len(props) != 2 {
			return nil, errorf(body, "inverseObjectProperties takes exactly two properties, got %d", len(props))
		}
		return ontology.InverseObjectProperties{First: props[0], Second: props[1]}, nil
	case "objectPropertyDomain", "objectPropertyRange", "dataPropertyDomain":
		key := "domain"
		if kind == "objectPropertyRange" {
			key = "range"
		}
		f, err := d.fields(body, "property", key)
		if err != nil {
			return nil, err
		}
		p, err := d.entity(f["property"])
		if err != nil {
			return nil, err
		}
		c, err := d.classExpression(f[key])
		if err != nil {
			return nil, err
		}
		switch kind {
		case "objectPropertyDomain":
			return ontology.ObjectPropertyDomain{Property: p, Domain: c}, nil
		case "objectPropertyRange":
			return ontology.ObjectPropertyRange{Property: p, Range: c}, nil
		default:
			return ontology.DataPropertyDomain{Property: p, Domain: c}, nil
		}
	case "dataPropertyRange":
		f, err := d.fields(body, "property", "range")
		if err != nil {
			return nil, err
		}
		p, err := d.entity(f["property"])
		if err != nil {
			return nil, err
		}
		r, err := d.dataRange(f["range"])
		if err != nil {
			return nil, err
		}
		return ontology.DataPropertyRange{Property: p, Range: r}, nil
	case "hasKey":
		f, err := d.fields(body, "class", "objectProperties?", "dataProperties?")
		if err != nil {
			return nil, err
		}
		ax := ontology.HasKey{}
		if ax.Class, err = d.classExpression(f["class"]); err != nil {
			return nil, err
		}
		if n := f["objectProperties"]; n != nil {
			if ax.ObjectProperties, err = d.entities(n); err != nil {
				return nil, err
			}
		}
		if n := f["dataProperties"]; n != nil {
			if ax.DataProperties, err = d.entities(n); err != nil {
				return nil, err
			}
		}
		return ax, nil
	default:
		return nil, errorf(n, "unknown axiom kind %q", kind)
	}
}

var declarationKinds = map[string]ontology.EntityKind{
	"class":          ontology.KindClass,
	"objectProperty": ontology.KindObjectProperty,
	"dataProperty":   ontology.KindDataProperty,
	"individual":     ontology.KindNamedIndividual,
	"datatype":       ontology.KindDatatype,
}

func (d *decoder) declaration(n *yaml.Node) (ontology.Axiom, error) {
	key, val, err := single(n)
	if err != nil {
		return nil, err
	}
	kind, ok := declarationKinds[key]
	if !ok {
		return nil, errorf(n, "unknown declaration kind %q", key)
	}
	e, err := d.entity(val)
	if err != nil {
		return nil, err
	}
	return ontology.Declaration{Kind: kind, Entity: e}, nil
}

func (d *decoder) definitions(n *yaml.Node) ([]ontology.NamedDefinition, error) {
	items, err := sequence(n)
	if err != nil {
		return nil, err
	}
	defs := make([]ontology.NamedDefinition, 0, len(items))
	for _, item := range items {
		def, err := d.definition(item)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// definition decodes a mapping with a "name" key and exactly one key naming
// the definition kind.
func (d *decoder) definition(n *yaml.Node) (ontology.NamedDefinition, error) {
	var out ontology.NamedDefinition
	if n.Kind != yaml.MappingNode {
		return out, errorf(n, "definition must be a mapping")
	}

	var kindKey, body *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Value == "name" {
			name, err := scalar(val)
			if err != nil {
				return out, err
			}
			out.Name = name
			continue
		}
		if kindKey != nil {
			return out, errorf(key, "definition has more than one kind: %q and %q", kindKey.Value, key.Value)
		}
		kindKey, body = key, val
	}
	if out.Name == "" {
		return out, errorf(n, "definition without a name")
	}
	if kindKey == nil {
		return out, errorf(n, "definition %q has no kind", out.Name)
	}

	def, err := d.fuzzyDefinition(kindKey, body)
	if err != nil {
		return out, err
	}
	out.Definition = def
	return out, nil
}

func (d *decoder) fuzzyDefinition(kindKey, n *yaml.Node) (ontology.FuzzyDefinition, error) {
	switch kindKey.Value {
	case "linear":
		var v struct{ K1, K2, A, B float64 }
		if err := decodeStrict(n, &v, "k1", "k2", "a", "b"); err != nil {
			return nil, err
		}
		return ontology.LinearFunction{K1: v.K1, K2: v.K2, A: v.A, B: v.B}, nil
	case "triangular":
		var v struct{ K1, K2, A, B, C float64 }
		if err := decodeStrict(n, &v, "k1", "k2", "a", "b", "c"); err != nil {
			return nil, err
		}
		return ontology.TriangularFunction{K1: v.K1, K2: v.K2, A: v.A, B: v.B, C: v.C}, nil
	case "trapezoidal":
		var v struct{ K1, K2, A, B, C, D float64 }
		if err := decodeStrict(n, &v, "k1", "k2", "a", "b", "c", "d"); err != nil {
			return nil, err
		}
		return ontology.TrapezoidalFunction{K1: v.K1, K2: v.K2, A: v.A, B: v.B, C: v.C, D: v.D}, nil
	case "leftShoulder", "rightShoulder":
		var v struct{ K1, K2, A, B float64 }
		if err := decodeStrict(n, &v, "k1", "k2", "a", "b"); err != nil {
			return nil, err
		}
		if kindKey.Value == "leftShoulder" {
			return ontology.LeftShoulderFunction{K1: v.K1, K2: v.K2, A: v.A, B: v.B}, nil
		}
		return ontology.RightShoulderFunction{K1: v.K1, K2: v.K2, A: v.A, B: v.B}, nil
	case "triangularModifier":
		var v struct{ A, B, C float64 }
		if err := decodeStrict(n, &v, "a", "b", "c"); err != nil {
			return nil, err
		}
		return ontology.TriangularModifier{A: v.A, B: v.B, C: v.C}, nil
	case "linearModifier":
		var v struct{ C float64 }
		if err := decodeStrict(n, &v, "c"); err != nil {
			return nil, err
		}
		return ontology.LinearModifier{C: v.C}, nil
	case "modifiedFunction":
		var v struct{ Modifier, Datatype string }
		if err := decodeStrict(n, &v, "modifier", "datatype"); err != nil {
			return nil, err
		}
		return ontology.ModifiedFunction{Modifier: v.Modifier, Datatype: v.Datatype}, nil
	case "modifiedConcept":
		var v struct{ Modifier, Concept string }
		if err := decodeStrict(n, &v, "modifier", "concept"); err != nil {
			return nil, err
		}
		return ontology.ModifiedConcept{Modifier: v.Modifier, Concept: v.Concept}, nil
	case "modifiedProperty":
		var v struct{ Modifier, Property string }
		if err := decodeStrict(n, &v, "modifier", "property"); err != nil {
			return nil, err
		}
		return ontology.ModifiedProperty{Modifier: v.Modifier, Property: v.Property}, nil
	case "nominal":
		var v struct {
			Degree     float64
			Individual string
		}
		if err := decodeStrict(n, &v, "degree", "individual"); err != nil {
			return nil, err
		}
		return ontology.FuzzyNominal{Degree: v.Degree, Individual: v.Individual}, nil
	case "weighted":
		return d.weightedConcept(n)
	case "weightedMax", "weightedMin", "weightedSum":
		items, err := sequence(n)
		if err != nil {
			return nil, err
		}
		concepts := make([]ontology.WeightedConcept, 0, len(items))
		for _, item := range items {
			wc, err := d.weightedConcept(item)
			if err != nil {
				return nil, err
			}
			concepts = append(concepts, wc)
		}
		switch kindKey.Value {
		case "weightedMax":
			return ontology.WeightedMaxConcept{Concepts: concepts}, nil
		case "weightedMin":
			return ontology.WeightedMinConcept{Concepts: concepts}, nil
		default:
			return ontology.WeightedSumConcept{Concepts: concepts}, nil
		}
	case "owa", "choquet", "sugeno", "quasiSugeno":
		var v struct {
			Weights  []float64
			Concepts []string
		}
		if err := decodeStrict(n, &v, "weights", "concepts"); err != nil {
			return nil, err
		}
		switch kindKey.Value {
		case "owa":
			return ontology.OwaConcept{Weights: v.Weights, Concepts: v.Concepts}, nil
		case "choquet":
			return ontology.ChoquetConcept{Weights: v.Weights, Concepts: v.Concepts}, nil
		case "sugeno":
			return ontology.SugenoConcept{Weights: v.Weights, Concepts: v.Concepts}, nil
		default:
			return ontology.QuasiSugenoConcept{Weights: v.Weights, Concepts: v.Concepts}, nil
		}
	case "qowa":
		var v struct {
			Quantifier string
			Concepts   []string
		}
		if err := decodeStrict(n, &v, "quantifier", "concepts"); err != nil {
			return nil, err
		}
		return ontology.QowaConcept{Quantifier: v.Quantifier, Concepts: v.Concepts}, nil
	default:
		return nil, errorf(kindKey, "unknown definition kind %q", kindKey.Value)
	}
}

func (d *decoder) weightedConcept(n *yaml.Node) (ontology.WeightedConcept, error) {
	var v struct {
		Weight  float64
		Concept string
	}
	if err := decodeStrict(n, &v, "weight", "concept"); err != nil {
		return ontology.WeightedConcept{}, err
	}
	return ontology.WeightedConcept{Weight: v.Weight, Concept: v.Concept}, nil
}
