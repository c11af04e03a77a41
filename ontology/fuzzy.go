package ontology

// FuzzyDefinition is a named fuzzy construct taken from the ontology's fuzzy
// annotations: a membership function, a modifier or a concept combinator.
type FuzzyDefinition interface {
	isFuzzyDefinition()
}

// NamedDefinition binds a fuzzy definition to the name it is declared under.
type NamedDefinition struct {
	Name       string
	Definition FuzzyDefinition
}

// LinearFunction is a linear membership function over [K1, K2].
type LinearFunction struct {
	K1, K2 float64
	A, B   float64
}

// TriangularFunction is a triangular membership function over [K1, K2].
type TriangularFunction struct {
	K1, K2  float64
	A, B, C float64
}

// TrapezoidalFunction is a trapezoidal membership function over [K1, K2].
type TrapezoidalFunction struct {
	K1, K2     float64
	A, B, C, D float64
}

// LeftShoulderFunction is a left-shoulder membership function over [K1, K2].
type LeftShoulderFunction struct {
	K1, K2 float64
	A, B   float64
}

// RightShoulderFunction is a right-shoulder membership function over
// [K1, K2].
type RightShoulderFunction struct {
	K1, K2 float64
	A, B   float64
}

// TriangularModifier is a triangular fuzzy modifier.
type TriangularModifier struct {
	A, B, C float64
}

// LinearModifier is a linear fuzzy modifier.
type LinearModifier struct {
	C float64
}

// ModifiedFunction applies a modifier to a fuzzy datatype.
type ModifiedFunction struct {
	Modifier string
	Datatype string
}

// ModifiedConcept applies a modifier to a fuzzy concept.
type ModifiedConcept struct {
	Modifier string
	Concept  string
}

// ModifiedProperty applies a modifier to a property.
type ModifiedProperty struct {
	Modifier string
	Property string
}

// FuzzyNominal is a fuzzy nominal concept.
type FuzzyNominal struct {
	Degree     float64
	Individual string
}

// WeightedConcept scales a concept by a weight.
type WeightedConcept struct {
	Weight  float64
	Concept string
}

// WeightedMaxConcept is the weighted maximum of its concepts.
type WeightedMaxConcept struct {
	Concepts []WeightedConcept
}

// WeightedMinConcept is the weighted minimum of its concepts.
type WeightedMinConcept struct {
	Concepts []WeightedConcept
}

// WeightedSumConcept is the weighted sum of its concepts.
type WeightedSumConcept struct {
	Concepts []WeightedConcept
}

// OwaConcept is an ordered weighted averaging aggregation.
type OwaConcept struct {
	Weights  []float64
	Concepts []string
}

// ChoquetConcept is a Choquet integral aggregation.
type ChoquetConcept struct {
	Weights  []float64
	Concepts []string
}

// SugenoConcept is a Sugeno integral aggregation.
type SugenoConcept struct {
	Weights  []float64
	Concepts []string
}

// QuasiSugenoConcept is a quasi-Sugeno integral aggregation.
type QuasiSugenoConcept struct {
	Weights  []float64
	Concepts []string
}

// QowaConcept is a quantifier-guided OWA aggregation.
type QowaConcept struct {
	Quantifier string
	Concepts   []string
}

func (LinearFunction) isFuzzyDefinition()        {}
func (TriangularFunction) isFuzzyDefinition()    {}
func (TrapezoidalFunction) isFuzzyDefinition()   {}
func (LeftShoulderFunction) isFuzzyDefinition()  {}
func (RightShoulderFunction) isFuzzyDefinition() {}
func (TriangularModifier) isFuzzyDefinition()    {}
func (LinearModifier) isFuzzyDefinition()        {}
func (ModifiedFunction) isFuzzyDefinition()      {}
func (ModifiedConcept) isFuzzyDefinition()       {}
func (ModifiedProperty) isFuzzyDefinition()      {}
func (FuzzyNominal) isFuzzyDefinition()          {}
func (WeightedConcept) isFuzzyDefinition()       {}
func (WeightedMaxConcept) isFuzzyDefinition()    {}
func (WeightedMinConcept) isFuzzyDefinition()    {}
func (WeightedSumConcept) isFuzzyDefinition()    {}
func (OwaConcept) isFuzzyDefinition()            {}
func (ChoquetConcept) isFuzzyDefinition()        {}
func (SugenoConcept) isFuzzyDefinition()         {}
func (QuasiSugenoConcept) isFuzzyDefinition()    {}
func (QowaConcept) isFuzzyDefinition()           {}

// IsFuzzyDatatype reports whether the definition declares a fuzzy datatype,
// i.e. a name usable as a data range.
func IsFuzzyDatatype(def FuzzyDefinition) bool {
	switch def.(type) {
	case LinearFunction, TriangularFunction, TrapezoidalFunction,
		LeftShoulderFunction, RightShoulderFunction, ModifiedFunction:
		return true
	default:
		return false
	}
}

// Document is a fuzzy ontology ready for translation.
type Document struct {
	Name string
	// Logic is the fuzzy logic, e.g. "lukasiewicz" or "zadeh". Empty means
	// no logic declaration is emitted.
	Logic       string
	Definitions []NamedDefinition
	Axioms      []Axiom
}
