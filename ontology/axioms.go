package ontology

// Axiom is a single ontology statement. The set of variants is closed.
type Axiom interface {
	isAxiom()
}

// Declaration declares an entity of the given kind.
type Declaration struct {
	Kind   EntityKind
	Entity Entity
}

// ConceptAssertion states that an individual belongs to a class to a degree.
type ConceptAssertion struct {
	Individual Individual
	Class      ClassExpression
	Degree     float64
}

// ObjectPropertyAssertion relates two individuals to a degree.
type ObjectPropertyAssertion struct {
	Subject  Individual
	Object   Individual
	Property Entity
	Degree   float64
}

// DataPropertyAssertion relates an individual to a literal to a degree.
type DataPropertyAssertion struct {
	Subject  Individual
	Value    Literal
	Property Entity
	Degree   float64
}

// NegativeObjectPropertyAssertion states two individuals are not related.
type NegativeObjectPropertyAssertion struct {
	Subject  Individual
	Object   Individual
	Property Entity
}

// NegativeDataPropertyAssertion states an individual does not have a value.
type NegativeDataPropertyAssertion struct {
	Subject  Individual
	Value    Literal
	Property Entity
}

// SameIndividual states individuals are equal.
type SameIndividual struct {
	Individuals []Individual
}

// DifferentIndividuals states individuals are pairwise distinct.
type DifferentIndividuals struct {
	Individuals []Individual
}

// SubClassOf states Sub is subsumed by Super to a degree.
type SubClassOf struct {
	Sub    ClassExpression
	Super  ClassExpression
	Degree float64
}

// EquivalentClasses states the classes are equivalent.
type EquivalentClasses struct {
	Classes []ClassExpression
}

// DisjointClasses states the classes are pairwise disjoint.
type DisjointClasses struct {
	Classes []ClassExpression
}

// DisjointUnion states a class is the disjoint union of Classes.
type DisjointUnion struct {
	Classes []ClassExpression
}

// SubObjectPropertyOf states Sub is a subproperty of Super to a degree.
type SubObjectPropertyOf struct {
	Sub    Entity
	Super  Entity
	Degree float64
}

// SubDataPropertyOf states Sub is a subproperty of Super to a degree.
type SubDataPropertyOf struct {
	Sub    Entity
	Super  Entity
	Degree float64
}

// SubPropertyChainOf states the composition of Chain is a subproperty of
// Super.
type SubPropertyChainOf struct {
	Chain  []Entity
	Super  Entity
	Degree float64
}

// EquivalentObjectProperties states the object properties are equivalent.
type EquivalentObjectProperties struct {
	Properties []Entity
}

// EquivalentDataProperties states the data properties are equivalent.
type EquivalentDataProperties struct {
	Properties []Entity
}

// DisjointObjectProperties states the object properties are disjoint.
type DisjointObjectProperties struct {
	Properties []Entity
}

// DisjointDataProperties states the data properties are disjoint.
type DisjointDataProperties struct {
	Properties []Entity
}

// Characteristic is an object property characteristic.
type Characteristic string

// Object property characteristics.
const (
	Transitive        Characteristic = "Transitive"
	Symmetric         Characteristic = "Symmetric"
	Asymmetric        Characteristic = "Asymmetric"
	Reflexive         Characteristic = "Reflexive"
	Irreflexive       Characteristic = "Irreflexive"
	Functional        Characteristic = "Functional"
	InverseFunctional Characteristic = "InverseFunctional"
)

// ObjectPropertyCharacteristic asserts a characteristic of an object
// property.
type ObjectPropertyCharacteristic struct {
	Characteristic Characteristic
	Property       Entity
}

// FunctionalDataProperty states a data property is functional.
type FunctionalDataProperty struct {
	Property Entity
}

// InverseObjectProperties states two object properties are inverses.
type InverseObjectProperties struct {
	First  Entity
	Second Entity
}

// ObjectPropertyDomain states the domain of an object property.
type ObjectPropertyDomain struct {
	Property Entity
	Domain   ClassExpression
}

// ObjectPropertyRange states the range of an object property.
type ObjectPropertyRange struct {
	Property Entity
	Range    ClassExpression
}

// DataPropertyDomain states the domain of a data property.
type DataPropertyDomain struct {
	Property Entity
	Domain   ClassExpression
}

// DataPropertyRange states the range of a data property.
type DataPropertyRange struct {
	Property Entity
	Range    DataRange
}

// HasKey states that the listed properties identify instances of Class.
type HasKey struct {
	Class            ClassExpression
	ObjectProperties []Entity
	DataProperties   []Entity
}

func (Declaration) isAxiom()                     {}
func (ConceptAssertion) isAxiom()                {}
func (ObjectPropertyAssertion) isAxiom()         {}
func (DataPropertyAssertion) isAxiom()           {}
func (NegativeObjectPropertyAssertion) isAxiom() {}
func (NegativeDataPropertyAssertion) isAxiom()   {}
func (SameIndividual) isAxiom()                  {}
func (DifferentIndividuals) isAxiom()            {}
func (SubClassOf) isAxiom()                      {}
func (EquivalentClasses) isAxiom()               {}
func (DisjointClasses) isAxiom()                 {}
func (DisjointUnion) isAxiom()                   {}
func (SubObjectPropertyOf) isAxiom()             {}
func (SubDataPropertyOf) isAxiom()               {}
func (SubPropertyChainOf) isAxiom()              {}
func (EquivalentObjectProperties) isAxiom()      {}
func (EquivalentDataProperties) isAxiom()        {}
func (DisjointObjectProperties) isAxiom()        {}
func (DisjointDataProperties) isAxiom()          {}
func (ObjectPropertyCharacteristic) isAxiom()    {}
func (FunctionalDataProperty) isAxiom()          {}
func (InverseObjectProperties) isAxiom()         {}
func (ObjectPropertyDomain) isAxiom()            {}
func (ObjectPropertyRange) isAxiom()             {}
func (DataPropertyDomain) isAxiom()              {}
func (DataPropertyRange) isAxiom()               {}
func (HasKey) isAxiom()                          {}
