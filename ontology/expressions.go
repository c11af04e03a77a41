package ontology

// ClassExpression is a class expression. The set of variants is closed.
type ClassExpression interface {
	isClassExpression()
}

// Class is an atomic (named) class.
type Class struct {
	Entity
}

// ObjectIntersectionOf is the conjunction of its operands.
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

// ObjectUnionOf is the disjunction of its operands.
type ObjectUnionOf struct {
	Operands []ClassExpression
}

// ObjectComplementOf is the negation of its operand.
type ObjectComplementOf struct {
	Operand ClassExpression
}

// ObjectSomeValuesFrom is an existential restriction.
type ObjectSomeValuesFrom struct {
	Property Entity
	Filler   ClassExpression
}

// ObjectAllValuesFrom is a universal restriction.
type ObjectAllValuesFrom struct {
	Property Entity
	Filler   ClassExpression
}

// ObjectHasSelf is a local reflexivity restriction.
type ObjectHasSelf struct {
	Property Entity
}

// ObjectHasValue restricts a property to a given individual.
type ObjectHasValue struct {
	Property   Entity
	Individual Individual
}

// ObjectOneOf is an enumeration of individuals.
type ObjectOneOf struct {
	Individuals []Individual
}

// CardinalityKind distinguishes min, max and exact cardinality restrictions.
type CardinalityKind string

// Cardinality kinds.
const (
	MinCardinality   CardinalityKind = "min"
	MaxCardinality   CardinalityKind = "max"
	ExactCardinality CardinalityKind = "exact"
)

// ObjectCardinality is an object min/max/exact cardinality restriction.
// Filler is nil for unqualified restrictions.
type ObjectCardinality struct {
	Kind     CardinalityKind
	N        int
	Property Entity
	Filler   ClassExpression
}

// DataSomeValuesFrom is an existential data restriction.
type DataSomeValuesFrom struct {
	Property Entity
	Range    DataRange
}

// DataAllValuesFrom is a universal data restriction.
type DataAllValuesFrom struct {
	Property Entity
	Range    DataRange
}

// DataHasValue restricts a data property to a literal.
type DataHasValue struct {
	Property Entity
	Value    Literal
}

// DataCardinality is a data min/max/exact cardinality restriction. Range is
// nil for unqualified restrictions.
type DataCardinality struct {
	Kind     CardinalityKind
	N        int
	Property Entity
	Range    DataRange
}

func (Class) isClassExpression()                {}
func (ObjectIntersectionOf) isClassExpression() {}
func (ObjectUnionOf) isClassExpression()        {}
func (ObjectComplementOf) isClassExpression()   {}
func (ObjectSomeValuesFrom) isClassExpression() {}
func (ObjectAllValuesFrom) isClassExpression()  {}
func (ObjectHasSelf) isClassExpression()        {}
func (ObjectHasValue) isClassExpression()       {}
func (ObjectOneOf) isClassExpression()          {}
func (ObjectCardinality) isClassExpression()    {}
func (DataSomeValuesFrom) isClassExpression()   {}
func (DataAllValuesFrom) isClassExpression()    {}
func (DataHasValue) isClassExpression()         {}
func (DataCardinality) isClassExpression()      {}

// NewClass returns an atomic class expression.
func NewClass(iri string) Class {
	return Class{Entity: NewEntity(iri)}
}

// IsAtomic reports whether c is a named class.
func IsAtomic(c ClassExpression) bool {
	_, ok := c.(Class)
	return ok
}

// DataRange is a data range. The set of variants is closed.
type DataRange interface {
	isDataRange()
}

// Datatype is a named datatype such as xsd:integer or a fuzzy datatype.
type Datatype struct {
	Name string
}

// DataOneOf is an enumeration of literals.
type DataOneOf struct {
	Values []Literal
}

// DataIntersectionOf is the intersection of data ranges.
type DataIntersectionOf struct {
	Operands []DataRange
}

// DataUnionOf is the union of data ranges.
type DataUnionOf struct {
	Operands []DataRange
}

// DataComplementOf is the complement of a data range.
type DataComplementOf struct {
	Operand DataRange
}

// FacetRestriction constrains a datatype's value space.
type FacetRestriction struct {
	// Facet is the facet name without namespace, e.g. "minInclusive".
	Facet string
	Value Literal
}

// DatatypeRestriction restricts a datatype by facets.
type DatatypeRestriction struct {
	Datatype string
	Facets   []FacetRestriction
}

func (Datatype) isDataRange()            {}
func (DataOneOf) isDataRange()           {}
func (DataIntersectionOf) isDataRange()  {}
func (DataUnionOf) isDataRange()         {}
func (DataComplementOf) isDataRange()    {}
func (DatatypeRestriction) isDataRange() {}

// AbbreviatedName returns the datatype name in prefixed form.
func (d Datatype) AbbreviatedName() string {
	return AbbreviateDatatype(d.Name)
}
