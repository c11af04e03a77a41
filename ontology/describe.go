package ontology

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe renders a model value in OWL functional-style syntax for
// diagnostics. It accepts axioms, class expressions, data ranges, fuzzy
// definitions, entities, individuals and literals.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case Entity:
		return x.IRI
	case Individual:
		return x.String()
	case Literal:
		return x.String()
	case ClassExpression:
		return describeClass(x)
	case DataRange:
		return describeRange(x)
	case Axiom:
		return describeAxiom(x)
	case FuzzyDefinition:
		return fmt.Sprintf("%T%+v", x, x)
	case NamedDefinition:
		return x.Name + " = " + Describe(x.Definition)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func describeClass(c ClassExpression) string {
	switch x := c.(type) {
	case Class:
		return x.IRI
	case ObjectIntersectionOf:
		return call("ObjectIntersectionOf", classes(x.Operands)...)
	case ObjectUnionOf:
		return call("ObjectUnionOf", classes(x.Operands)...)
	case ObjectComplementOf:
		return call("ObjectComplementOf", describeClass(x.Operand))
	case ObjectSomeValuesFrom:
		return call("ObjectSomeValuesFrom", x.Property.IRI, describeClass(x.Filler))
	case ObjectAllValuesFrom:
		return call("ObjectAllValuesFrom", x.Property.IRI, describeClass(x.Filler))
	case ObjectHasSelf:
		return call("ObjectHasSelf", x.Property.IRI)
	case ObjectHasValue:
		return call("ObjectHasValue", x.Property.IRI, x.Individual.String())
	case ObjectOneOf:
		return call("ObjectOneOf", individuals(x.Individuals)...)
	case ObjectCardinality:
		args := []string{strconv.Itoa(x.N), x.Property.IRI}
		if x.Filler != nil {
			args = append(args, describeClass(x.Filler))
		}
		return call("Object"+cardinalityName(x.Kind), args...)
	case DataSomeValuesFrom:
		return call("DataSomeValuesFrom", x.Property.IRI, describeRange(x.Range))
	case DataAllValuesFrom:
		return call("DataAllValuesFrom", x.Property.IRI, describeRange(x.Range))
	case DataHasValue:
		return call("DataHasValue", x.Property.IRI, x.Value.String())
	case DataCardinality:
		args := []string{strconv.Itoa(x.N), x.Property.IRI}
		if x.Range != nil {
			args = append(args, describeRange(x.Range))
		}
		return call("Data"+cardinalityName(x.Kind), args...)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", c)
	}
}

func describeRange(r DataRange) string {
	switch x := r.(type) {
	case Datatype:
		return x.AbbreviatedName()
	case DataOneOf:
		vals := make([]string, len(x.Values))
		for i, v := range x.Values {
			vals[i] = v.String()
		}
		return call("DataOneOf", vals...)
	case DataIntersectionOf:
		return call("DataIntersectionOf", ranges(x.Operands)...)
	case DataUnionOf:
		return call("DataUnionOf", ranges(x.Operands)...)
	case DataComplementOf:
		return call("DataComplementOf", describeRange(x.Operand))
	case DatatypeRestriction:
		args := []string{AbbreviateDatatype(x.Datatype)}
		for _, f := range x.Facets {
			args = append(args, "xsd:"+f.Facet+" "+f.Value.String())
		}
		return call("DatatypeRestriction", args...)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", r)
	}
}

func describeAxiom(a Axiom) string {
	switch x := a.(type) {
	case Declaration:
		return call("Declaration", string(x.Kind)+"("+x.Entity.IRI+")")
	case ConceptAssertion:
		return call("ClassAssertion", describeClass(x.Class), x.Individual.String())
	case ObjectPropertyAssertion:
		return call("ObjectPropertyAssertion", x.Property.IRI, x.Subject.String(), x.Object.String())
	case DataPropertyAssertion:
		return call("DataPropertyAssertion", x.Property.IRI, x.Subject.String(), x.Value.String())
	case NegativeObjectPropertyAssertion:
		return call("NegativeObjectPropertyAssertion", x.Property.IRI, x.Subject.String(), x.Object.String())
	case NegativeDataPropertyAssertion:
		return call("NegativeDataPropertyAssertion", x.Property.IRI, x.Subject.String(), x.Value.String())
	case SameIndividual:
		return call("SameIndividual", individuals(x.Individuals)...)
	case DifferentIndividuals:
		return call("DifferentIndividuals", individuals(x.Individuals)...)
	case SubClassOf:
		return call("SubClassOf", describeClass(x.Sub), describeClass(x.Super))
	case EquivalentClasses:
		return call("EquivalentClasses", classes(x.Classes)...)
	case DisjointClasses:
		return call("DisjointClasses", classes(x.Classes)...)
	case DisjointUnion:
		return call("DisjointUnion", classes(x.Classes)...)
	case SubObjectPropertyOf:
		return call("SubObjectPropertyOf", x.Sub.IRI, x.Super.IRI)
	case SubDataPropertyOf:
		return call("SubDataPropertyOf", x.Sub.IRI, x.Super.IRI)
	case SubPropertyChainOf:
		return call("SubObjectPropertyOf", call("ObjectPropertyChain", entities(x.Chain)...), x.Super.IRI)
	case EquivalentObjectProperties:
		return call("EquivalentObjectProperties", entities(x.Properties)...)
	case EquivalentDataProperties:
		return call("EquivalentDataProperties", entities(x.Properties)...)
	case DisjointObjectProperties:
		return call("DisjointObjectProperties", entities(x.Properties)...)
	case DisjointDataProperties:
		return call("DisjointDataProperties", entities(x.Properties)...)
	case ObjectPropertyCharacteristic:
		return call(string(x.Characteristic)+"ObjectProperty", x.Property.IRI)
	case FunctionalDataProperty:
		return call("FunctionalDataProperty", x.Property.IRI)
	case InverseObjectProperties:
		return call("InverseObjectProperties", x.First.IRI, x.Second.IRI)
	case ObjectPropertyDomain:
		return call("ObjectPropertyDomain", x.Property.IRI, describeClass(x.Domain))
	case ObjectPropertyRange:
		return call("ObjectPropertyRange", x.Property.IRI, describeClass(x.Range))
	case DataPropertyDomain:
		return call("DataPropertyDomain", x.Property.IRI, describeClass(x.Domain))
	case DataPropertyRange:
		return call("DataPropertyRange", x.Property.IRI, describeRange(x.Range))
	case HasKey:
		return call("HasKey", describeClass(x.Class),
			"("+strings.Join(entities(x.ObjectProperties), " ")+")",
			"("+strings.Join(entities(x.DataProperties), " ")+")")
	default:
		return fmt.Sprintf("%T", a)
	}
}

func cardinalityName(k CardinalityKind) string {
	switch k {
	case MinCardinality:
		return "MinCardinality"
	case MaxCardinality:
		return "MaxCardinality"
	default:
		return "ExactCardinality"
	}
}

func call(name string, args ...string) string {
	return name + "(" + strings.Join(args, " ") + ")"
}

func classes(cs []ClassExpression) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = describeClass(c)
	}
	return out
}

func ranges(rs []DataRange) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = describeRange(r)
	}
	return out
}

func individuals(is []Individual) []string {
	out := make([]string, len(is))
	for i, ind := range is {
		out[i] = ind.String()
	}
	return out
}

func entities(es []Entity) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.IRI
	}
	return out
}
