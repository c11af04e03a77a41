package fuzzydl

import (
	"fmt"
	"strings"

	"github.com/hamhec/FLOCI/ontology"
)

// ClassExpression renders a class expression as a concept. Rendering a data
// restriction may trigger the lazy declaration of its property. If any
// sub-expression fails the whole expression fails and no fragment is
// returned.
func (e *Emitter) ClassExpression(tc *Context, c ontology.ClassExpression) (string, error) {
	const method = "ClassExpression"

	switch x := c.(type) {
	case ontology.Class:
		return ClassName(x), nil

	case ontology.ObjectIntersectionOf:
		return e.nary(tc, "and", x.Operands)
	case ontology.ObjectUnionOf:
		return e.nary(tc, "or", x.Operands)

	case ontology.ObjectComplementOf:
		inner, err := e.ClassExpression(tc, x.Operand)
		if err != nil {
			return "", err
		}
		return "(not " + inner + ")", nil

	case ontology.ObjectSomeValuesFrom:
		return e.restriction(tc, "some", x.Property, x.Filler)
	case ontology.ObjectAllValuesFrom:
		return e.restriction(tc, "all", x.Property, x.Filler)

	case ontology.ObjectHasSelf:
		p, err := tc.ObjectPropertyName(x.Property)
		if err != nil {
			return "", err
		}
		return "(self " + p + ")", nil

	case ontology.ObjectHasValue:
		p, err := tc.ObjectPropertyName(x.Property)
		if err != nil {
			return "", err
		}
		return "(b-some " + p + " " + IndividualName(x.Individual) + ")", nil

	case ontology.ObjectOneOf:
		return "", unsupported(method, "Object one of concept", x)
	case ontology.ObjectCardinality:
		return "", unsupported(method, "Object "+cardinalityConstruct(x.Kind), x)
	case ontology.DataCardinality:
		return "", unsupported(method, "Data "+cardinalityConstruct(x.Kind), x)

	case ontology.DataSomeValuesFrom:
		return e.dataSomeValuesFrom(tc, x)
	case ontology.DataAllValuesFrom:
		return e.dataAllValuesFrom(tc, x)
	case ontology.DataHasValue:
		return e.dataHasValue(tc, x)

	case nil:
		return "", structural(method, "Class expression", "is missing", nil)
	default:
		return "", unsupported(method, fmt.Sprintf("Class expression %T", c), c)
	}
}

func cardinalityConstruct(k ontology.CardinalityKind) string {
	return string(k) + " cardinality restriction"
}

func (e *Emitter) nary(tc *Context, op string, operands []ontology.ClassExpression) (string, error) {
	parts := make([]string, 0, len(operands))
	for _, operand := range operands {
		s, err := e.ClassExpression(tc, operand)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + op + " " + strings.Join(parts, " ") + ")", nil
}

func (e *Emitter) restriction(tc *Context, op string, property ontology.Entity, filler ontology.ClassExpression) (string, error) {
	p, err := tc.ObjectPropertyName(property)
	if err != nil {
		return "", err
	}
	f, err := e.ClassExpression(tc, filler)
	if err != nil {
		return "", err
	}
	return "(" + op + " " + p + " " + f + ")", nil
}

func (e *Emitter) dataSomeValuesFrom(tc *Context, x ontology.DataSomeValuesFrom) (string, error) {
	const method = "dataSomeValuesFrom"

	switch r := x.Range.(type) {
	case ontology.Datatype:
		p, err := tc.DataPropertyName(x.Property)
		if err != nil {
			return "", err
		}
		if tc.IsFuzzyDatatype(r.Name) {
			return "(some " + p + " " + fuzzyKey(r.Name) + ")", nil
		}

		switch Classify(r.Name) {
		case CategoryReal:
			if err := e.declareNumeric(tc, p, r.Name); err != nil {
				return "", err
			}
			return "(>= " + p + " " + FormatDouble(e.opts.RealMin) + ")", nil
		case CategoryInteger:
			if err := e.declareNumeric(tc, p, r.Name); err != nil {
				return "", err
			}
			return "(>= " + p + " " + formatInt(e.opts.IntegerMin) + ")", nil
		case CategoryBoolean:
			return "(= " + p + " " + r.AbbreviatedName() + ")", nil
		}

	case ontology.DataOneOf:
		// Only the first literal survives; the remaining alternatives are
		// dropped.
		if len(r.Values) > 0 {
			p, err := tc.DataPropertyName(x.Property)
			if err != nil {
				return "", err
			}
			return "(= " + p + " " + r.Values[0].Lexical + ")", nil
		}
	}
	return "", unsupported(method, "Data some values restriction", x)
}

func (e *Emitter) dataAllValuesFrom(tc *Context, x ontology.DataAllValuesFrom) (string, error) {
	if r, ok := x.Range.(ontology.Datatype); ok && tc.IsFuzzyDatatype(r.Name) {
		p, err := tc.DataPropertyName(x.Property)
		if err != nil {
			return "", err
		}
		return "(all " + p + " " + fuzzyKey(r.Name) + ")", nil
	}
	return "", unsupported("dataAllValuesFrom", "Data all values restriction", x)
}

func (e *Emitter) dataHasValue(tc *Context, x ontology.DataHasValue) (string, error) {
	cat := ClassifyLiteral(x.Value)
	if cat == CategoryString {
		return "", unsupported("dataHasValue", "Data has value restriction", x)
	}

	p, err := tc.DataPropertyName(x.Property)
	if err != nil {
		return "", err
	}
	if cat == CategoryBoolean {
		err = e.declareDataProperty(tc, p, CategoryBoolean, "*boolean*")
	} else {
		err = e.declareNumeric(tc, p, x.Value.DatatypeName())
	}
	if err != nil {
		return "", err
	}
	return "(= " + p + " " + strings.TrimSpace(x.Value.Lexical) + ")", nil
}
