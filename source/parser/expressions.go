package parser

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hamhec/FLOCI/ontology"
	"github.com/hamhec/FLOCI/vocabulary/xsd"
)

// classExpression decodes a class expression. A scalar names a class; a
// mapping has a single key naming the constructor.
func (d *decoder) classExpression(n *yaml.Node) (ontology.ClassExpression, error) {
	if n.Kind == yaml.ScalarNode {
		name, err := d.name(n)
		if err != nil {
			return nil, err
		}
		return ontology.NewClass(name), nil
	}

	kind, body, err := single(n)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "class":
		name, err := d.name(body)
		if err != nil {
			return nil, err
		}
		return ontology.NewClass(name), nil
	case "and", "or":
		ops, err := d.classExpressions(body)
		if err != nil {
			return nil, err
		}
		if kind == "and" {
			return ontology.ObjectIntersectionOf{Operands: ops}, nil
		}
		return ontology.ObjectUnionOf{Operands: ops}, nil
	case "not":
		op, err := d.classExpression(body)
		if err != nil {
			return nil, err
		}
		return ontology.ObjectComplementOf{Operand: op}, nil
	case "some", "all":
		f, err := d.fields(body, "property", "filler")
		if err != nil {
			return nil, err
		}
		p, err := d.entity(f["property"])
		if err != nil {
			return nil, err
		}
		filler, err := d.classExpression(f["filler"])
		if err != nil {
			return nil, err
		}
		if kind == "some" {
			return ontology.ObjectSomeValuesFrom{Property: p, Filler: filler}, nil
		}
		return ontology.ObjectAllValuesFrom{Property: p, Filler: filler}, nil
	case "self":
		p, err := d.entity(body)
		if err != nil {
			return nil, err
		}
		return ontology.ObjectHasSelf{Property: p}, nil
	case "hasValue":
		f, err := d.fields(body, "property", "individual")
		if err != nil {
			return nil, err
		}
		p, err := d.entity(f["property"])
		if err != nil {
			return nil, err
		}
		i, err := d.individual(f["individual"])
		if err != nil {
			return nil, err
		}
		return ontology.ObjectHasValue{Property: p, Individual: i}, nil
	case "oneOf":
		individuals, err := d.individuals(body)
		if err != nil {
			return nil, err
		}
		return ontology.ObjectOneOf{Individuals: individuals}, nil
	case "minCardinality", "maxCardinality", "exactCardinality":
		f, err := d.fields(body, "n", "property", "filler?")
		if err != nil {
			return nil, err
		}
		c := ontology.ObjectCardinality{Kind: cardinalityKind(kind)}
		if c.N, err = cardinality(f["n"]); err != nil {
			return nil, err
		}
		if c.Property, err = d.entity(f["property"]); err != nil {
			return nil, err
		}
		if filler := f["filler"]; filler != nil {
			if c.Filler, err = d.classExpression(filler); err != nil {
				return nil, err
			}
		}
		return c, nil
	case "dataSome", "dataAll":
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
		if kind == "dataSome" {
			return ontology.DataSomeValuesFrom{Property: p, Range: r}, nil
		}
		return ontology.DataAllValuesFrom{Property: p, Range: r}, nil
	case "dataHasValue":
		f, err := d.fields(body, "property", "value")
		if err != nil {
			return nil, err
		}
		p, err := d.entity(f["property"])
		if err != nil {
			return nil, err
		}
		v, err := d.literal(f["value"])
		if err != nil {
			return nil, err
		}
		return ontology.DataHasValue{Property: p, Value: v}, nil
	case "dataMinCardinality", "dataMaxCardinality", "dataExactCardinality":
		f, err := d.fields(body, "n", "property", "range?")
		if err != nil {
			return nil, err
		}
		c := ontology.DataCardinality{Kind: cardinalityKind(strings.TrimPrefix(kind, "data"))}
		if c.N, err = cardinality(f["n"]); err != nil {
			return nil, err
		}
		if c.Property, err = d.entity(f["property"]); err != nil {
			return nil, err
		}
		if r := f["range"]; r != nil {
			if c.Range, err = d.dataRange(r); err != nil {
				return nil, err
			}
		}
		return c, nil
	default:
		return nil, errorf(n, "unknown class expression %q", kind)
	}
}

func cardinalityKind(key string) ontology.CardinalityKind {
	switch strings.ToLower(strings.TrimSuffix(key, "Cardinality")) {
	case "min":
		return ontology.MinCardinality
	case "max":
		return ontology.MaxCardinality
	default:
		return ontology.ExactCardinality
	}
}

func (d *decoder) classExpressions(n *yaml.Node) ([]ontology.ClassExpression, error) {
	items, err := sequence(n)
	if err != nil {
		return nil, err
	}
	out := make([]ontology.ClassExpression, 0, len(items))
	for _, item := range items {
		c, err := d.classExpression(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// dataRange decodes a data range. A scalar names a datatype.
func (d *decoder) dataRange(n *yaml.Node) (ontology.DataRange, error) {
	if n.Kind == yaml.ScalarNode {
		name, err := d.name(n)
		if err != nil {
			return nil, err
		}
		return ontology.Datatype{Name: name}, nil
	}

	kind, body, err := single(n)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "datatype":
		name, err := d.name(body)
		if err != nil {
			return nil, err
		}
		return ontology.Datatype{Name: name}, nil
	case "oneOf":
		items, err := sequence(body)
		if err != nil {
			return nil, err
		}
		values := make([]ontology.Literal, 0, len(items))
		for _, item := range items {
			v, err := d.literal(item)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return ontology.DataOneOf{Values: values}, nil
	case "intersectionOf", "unionOf":
		items, err := sequence(body)
		if err != nil {
			return nil, err
		}
		ops := make([]ontology.DataRange, 0, len(items))
		for _, item := range items {
			r, err := d.dataRange(item)
			if err != nil {
				return nil, err
			}
			ops = append(ops, r)
		}
		if kind == "intersectionOf" {
			return ontology.DataIntersectionOf{Operands: ops}, nil
		}
		return ontology.DataUnionOf{Operands: ops}, nil
	case "complementOf":
		op, err := d.dataRange(body)
		if err != nil {
			return nil, err
		}
		return ontology.DataComplementOf{Operand: op}, nil
	case "restriction":
		return d.restriction(body)
	default:
		return nil, errorf(n, "unknown data range %q", kind)
	}
}

// restriction decodes {datatype, facets}. Facets is a mapping from facet name
// to value; scalar values take the restricted datatype.
func (d *decoder) restriction(n *yaml.Node) (ontology.DataRange, error) {
	f, err := d.fields(n, "datatype", "facets")
	if err != nil {
		return nil, err
	}
	datatype, err := d.name(f["datatype"])
	if err != nil {
		return nil, err
	}

	facets := f["facets"]
	if facets.Kind != yaml.MappingNode || len(facets.Content) == 0 {
		return nil, errorf(facets, "facets must be a non-empty mapping")
	}

	r := ontology.DatatypeRestriction{Datatype: datatype}
	for i := 0; i+1 < len(facets.Content); i += 2 {
		key, val := facets.Content[i], facets.Content[i+1]
		var v ontology.Literal
		if val.Kind == yaml.ScalarNode {
			v = ontology.TypedLiteral(val.Value, datatype)
		} else if v, err = d.literal(val); err != nil {
			return nil, err
		}
		r.Facets = append(r.Facets, ontology.FacetRestriction{Facet: xsd.FacetName(key.Value), Value: v})
	}
	return r, nil
}

// literal decodes a literal. Scalars take their datatype from the YAML tag;
// a mapping spells out {value, datatype, lang}.
func (d *decoder) literal(n *yaml.Node) (ontology.Literal, error) {
	if n.Kind == yaml.ScalarNode {
		return scalarLiteral(n)
	}

	f, err := d.fields(n, "value", "datatype?", "lang?")
	if err != nil {
		return ontology.Literal{}, err
	}
	value := f["value"]
	if value.Kind != yaml.ScalarNode {
		return ontology.Literal{}, errorf(value, "literal value must be a scalar")
	}

	switch {
	case f["datatype"] != nil && f["lang"] != nil:
		return ontology.Literal{}, errorf(n, "literal has both a datatype and a language tag")
	case f["datatype"] != nil:
		dt, err := d.name(f["datatype"])
		if err != nil {
			return ontology.Literal{}, err
		}
		return ontology.TypedLiteral(value.Value, dt), nil
	case f["lang"] != nil:
		lang, err := scalar(f["lang"])
		if err != nil {
			return ontology.Literal{}, err
		}
		return ontology.Literal{Lexical: value.Value, Lang: lang}, nil
	default:
		return scalarLiteral(value)
	}
}

func scalarLiteral(n *yaml.Node) (ontology.Literal, error) {
	switch n.ShortTag() {
	case "!!int":
		return ontology.TypedLiteral(n.Value, xsd.Integer), nil
	case "!!float":
		return ontology.TypedLiteral(n.Value, xsd.Double), nil
	case "!!bool":
		return ontology.TypedLiteral(strings.ToLower(n.Value), xsd.Boolean), nil
	case "!!null":
		return ontology.Literal{}, errorf(n, "literal value is null")
	default:
		return ontology.Literal{Lexical: n.Value}, nil
	}
}
