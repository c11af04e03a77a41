package fuzzydl

import (
	"fmt"
	"strings"

	"github.com/hamhec/FLOCI/ontology"
)

// DefineFuzzyLogic emits the fuzzy logic declaration, e.g.
// "(define-fuzzy-logic lukasiewicz)".
func (e *Emitter) DefineFuzzyLogic(tc *Context, logic string) error {
	return tc.write("(define-fuzzy-logic " + logic + ")")
}

// Define emits the clause for a named fuzzy definition. Membership functions
// and modified functions are registered as fuzzy datatypes so later data
// ranges can refer to them by name.
func (e *Emitter) Define(tc *Context, def ontology.NamedDefinition) error {
	clause, err := RenderDefinition(def.Name, def.Definition)
	if err != nil {
		return e.skipUnsupported(tc, def, err)
	}
	if ontology.IsFuzzyDatatype(def.Definition) {
		tc.DeclareFuzzyDatatype(def.Name)
	}
	return tc.write(clause)
}

// RenderDefinition renders a fuzzy definition as a single clause. Lists are
// rendered in the order given. An empty combinator list is a structural
// error.
func RenderDefinition(name string, def ontology.FuzzyDefinition) (string, error) {
	const method = "RenderDefinition"

	switch d := def.(type) {
	case ontology.LinearFunction:
		return fuzzyConcept(name, "linear", d.K1, d.K2, d.A, d.B), nil
	case ontology.TriangularFunction:
		return fuzzyConcept(name, "triangular", d.K1, d.K2, d.A, d.B, d.C), nil
	case ontology.TrapezoidalFunction:
		return fuzzyConcept(name, "trapezoidal", d.K1, d.K2, d.A, d.B, d.C, d.D), nil
	case ontology.LeftShoulderFunction:
		return fuzzyConcept(name, "left-shoulder", d.K1, d.K2, d.A, d.B), nil
	case ontology.RightShoulderFunction:
		return fuzzyConcept(name, "right-shoulder", d.K1, d.K2, d.A, d.B), nil

	case ontology.TriangularModifier:
		return modifier(name, "triangular-modifier", d.A, d.B, d.C), nil
	case ontology.LinearModifier:
		return modifier(name, "linear-modifier", d.C), nil

	case ontology.ModifiedFunction:
		return defineConcept(name, "("+d.Modifier+" "+d.Datatype+")"), nil
	case ontology.ModifiedConcept:
		return defineConcept(name, "("+d.Modifier+" "+d.Concept+")"), nil
	case ontology.WeightedConcept:
		return defineConcept(name, weighted(d)), nil

	case ontology.WeightedMaxConcept:
		return weightedList(method, name, "w-max", d, d.Concepts)
	case ontology.WeightedMinConcept:
		return weightedList(method, name, "w-min", d, d.Concepts)
	case ontology.WeightedSumConcept:
		return weightedList(method, name, "w-sum", d, d.Concepts)

	case ontology.OwaConcept:
		return aggregation(method, name, "owa", d, d.Weights, d.Concepts)
	case ontology.ChoquetConcept:
		return aggregation(method, name, "choquet", d, d.Weights, d.Concepts)
	case ontology.SugenoConcept:
		return aggregation(method, name, "sugeno", d, d.Weights, d.Concepts)
	case ontology.QuasiSugenoConcept:
		return aggregation(method, name, "q-sugeno", d, d.Weights, d.Concepts)

	case ontology.QowaConcept:
		if len(d.Concepts) == 0 {
			return "", structural(method, "Quantified OWA concept", "has no concepts", d)
		}
		return defineConcept(name, "(q-owa "+d.Quantifier+" "+strings.Join(d.Concepts, " ")+")"), nil

	case ontology.ModifiedProperty:
		return "", unsupported(method, "Modified property", d)
	case ontology.FuzzyNominal:
		return "", unsupported(method, "Fuzzy nominal", d)

	default:
		return "", unsupported(method, fmt.Sprintf("Fuzzy definition %T", def), name)
	}
}

func fuzzyConcept(name, function string, params ...float64) string {
	return "(define-fuzzy-concept " + name + " " + function + "(" + joinNumbers(params, ", ") + "))"
}

func modifier(name, function string, params ...float64) string {
	return "(define-modifier " + name + " " + function + "(" + joinNumbers(params, ", ") + "))"
}

func defineConcept(name, body string) string {
	return "(define-concept " + name + " " + body + ")"
}

func weighted(w ontology.WeightedConcept) string {
	return "(" + FormatDouble(w.Weight) + " " + w.Concept + ")"
}

func weightedList(method, name, op string, subject any, concepts []ontology.WeightedConcept) (string, error) {
	if len(concepts) == 0 {
		return "", structural(method, "Weighted concept "+op, "has no weighted concepts", subject)
	}
	parts := make([]string, len(concepts))
	for i, wc := range concepts {
		parts[i] = weighted(wc)
	}
	return defineConcept(name, "("+op+" "+strings.Join(parts, " ")+")"), nil
}

func aggregation(method, name, op string, subject any, weights []float64, concepts []string) (string, error) {
	switch {
	case len(weights) == 0:
		return "", structural(method, "Aggregation "+op, "has no weights", subject)
	case len(concepts) == 0:
		return "", structural(method, "Aggregation "+op, "has no concepts", subject)
	}
	body := "(" + op + " (" + joinNumbers(weights, " ") + ") (" + strings.Join(concepts, " ") + "))"
	return defineConcept(name, body), nil
}

func joinNumbers(values []float64, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatDouble(v)
	}
	return strings.Join(parts, sep)
}
