package fuzzydl

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/hamhec/FLOCI/ontology"
	"github.com/hamhec/FLOCI/vocabulary/owl"
	"github.com/hamhec/FLOCI/vocabulary/xsd"
)

// Emit translates one axiom into zero or more clauses. Unsupported constructs
// are recorded as diagnostics on tc and produce no clause; Emit then returns
// nil. Structural errors and sink failures are returned and end the run.
//
// An axiom is all or nothing: the declarations and category registrations it
// triggers are held back and dropped with the axiom if any part of it fails.
func (e *Emitter) Emit(tc *Context, ax ontology.Axiom) error {
	tc.begin()
	if err := e.emit(tc, ax); err != nil {
		tc.discard()
		return e.skipUnsupported(tc, ax, err)
	}
	return tc.commit()
}

func (e *Emitter) emit(tc *Context, ax ontology.Axiom) error {
	const method = "Emit"

	switch a := ax.(type) {
	case ontology.Declaration:
		return e.declaration(tc, a)

	case ontology.ConceptAssertion:
		c, err := e.ClassExpression(tc, a.Class)
		if err != nil {
			return err
		}
		return tc.write("(instance " + IndividualName(a.Individual) + " " + c + " " + FormatDouble(a.Degree) + ")")

	case ontology.ObjectPropertyAssertion:
		p, err := tc.ObjectPropertyName(a.Property)
		if err != nil {
			return err
		}
		return tc.write("(related " + IndividualName(a.Subject) + " " + IndividualName(a.Object) + " " + p + " " + FormatDouble(a.Degree) + ")")

	case ontology.DataPropertyAssertion:
		return e.dataPropertyAssertion(tc, a)

	case ontology.SubClassOf:
		return e.subClassOf(tc, a)
	case ontology.EquivalentClasses:
		return e.equivalentClasses(tc, a)
	case ontology.DisjointClasses:
		return e.disjointClasses(tc, a)
	case ontology.DisjointUnion:
		return e.disjointUnion(tc, a)

	case ontology.SubObjectPropertyOf:
		return e.impliesRole(tc, tc.ObjectPropertyName, a.Sub, a.Super, a.Degree)
	case ontology.SubDataPropertyOf:
		return e.impliesRole(tc, tc.DataPropertyName, a.Sub, a.Super, a.Degree)
	case ontology.EquivalentObjectProperties:
		return e.equivalentProperties(tc, tc.ObjectPropertyName, a.Properties)
	case ontology.EquivalentDataProperties:
		return e.equivalentProperties(tc, tc.DataPropertyName, a.Properties)

	case ontology.ObjectPropertyCharacteristic:
		return e.characteristic(tc, a)
	case ontology.FunctionalDataProperty:
		p, err := tc.DataPropertyName(a.Property)
		if err != nil {
			return err
		}
		return tc.write("(functional " + p + ")")
	case ontology.InverseObjectProperties:
		p1, err := tc.ObjectPropertyName(a.First)
		if err != nil {
			return err
		}
		p2, err := tc.ObjectPropertyName(a.Second)
		if err != nil {
			return err
		}
		return tc.write("(inverse " + p1 + " " + p2 + ")")

	case ontology.ObjectPropertyDomain:
		return e.propertyClause(tc, "domain", tc.ObjectPropertyName, a.Property, a.Domain)
	case ontology.ObjectPropertyRange:
		return e.propertyClause(tc, "range", tc.ObjectPropertyName, a.Property, a.Range)
	case ontology.DataPropertyDomain:
		return e.propertyClause(tc, "domain", tc.DataPropertyName, a.Property, a.Domain)
	case ontology.DataPropertyRange:
		return e.dataPropertyRange(tc, a)

	case ontology.NegativeObjectPropertyAssertion:
		return unsupported(method, "Negative object property assertion", a)
	case ontology.NegativeDataPropertyAssertion:
		return unsupported(method, "Negative data property assertion", a)
	case ontology.SameIndividual:
		return unsupported(method, "Same individual axiom", a)
	case ontology.DifferentIndividuals:
		return unsupported(method, "Different individuals axiom", a)
	case ontology.DisjointObjectProperties:
		return unsupported(method, "Disjoint object properties axiom", a)
	case ontology.DisjointDataProperties:
		return unsupported(method, "Disjoint data properties axiom", a)
	case ontology.SubPropertyChainOf:
		return unsupported(method, "Subproperty chain axiom", a)
	case ontology.HasKey:
		return unsupported(method, "Has key axiom", a)

	case nil:
		return structural(method, "Axiom", "is missing", nil)
	default:
		return unsupported(method, fmt.Sprintf("Axiom %T", ax), ax)
	}
}

func (e *Emitter) declaration(tc *Context, a ontology.Declaration) error {
	switch a.Kind {
	case ontology.KindClass:
		if a.Entity.Is(owl.Thing) || a.Entity.Is(owl.Nothing) {
			return nil
		}
		return tc.write("(define-primitive-concept " + ShortName(a.Entity) + " " + TopConcept + ")")
	case ontology.KindObjectProperty:
		_, err := tc.ObjectPropertyName(a.Entity)
		return err
	case ontology.KindDataProperty:
		_, err := tc.DataPropertyName(a.Entity)
		return err
	default:
		return nil
	}
}

func (e *Emitter) dataPropertyAssertion(tc *Context, a ontology.DataPropertyAssertion) error {
	const method = "dataPropertyAssertion"

	p, err := tc.DataPropertyName(a.Property)
	if err != nil {
		return err
	}
	subject := IndividualName(a.Subject)
	degree := FormatDouble(a.Degree)
	lit := a.Value

	if lit.Datatype != "" && tc.IsFuzzyDatatype(lit.Datatype) {
		return tc.write("(instance " + subject + " (some " + p + " " + fuzzyKey(lit.Datatype) + ") " + degree + ")")
	}

	if ClassifyLiteral(lit).Numeric() {
		value, ok := numericValue(lit)
		if !ok {
			return unsupported(method, "Data property assertion with malformed literal", lit)
		}
		if err := e.declareNumeric(tc, p, lit.DatatypeName()); err != nil {
			return err
		}
		return tc.write("(instance " + subject + " (= " + p + " " + value + ") " + degree + ")")
	}

	if err := e.declareDataProperty(tc, p, CategoryString, "*string*"); err != nil {
		return err
	}
	return tc.write("(instance " + subject + " (= " + p + ` "` + SanitizeString(lit.Lexical) + `") ` + degree + ")")
}

// numericValue parses a numeric literal and renders it in canonical form:
// integers as plain decimal integers, floats in single precision and every
// other real in double precision.
func numericValue(lit ontology.Literal) (string, bool) {
	lexical := strings.TrimSpace(lit.Lexical)
	dt := lit.DatatypeName()

	if Classify(dt) == CategoryInteger {
		n, ok := new(big.Int).SetString(lexical, 10)
		if !ok {
			return "", false
		}
		return n.String(), true
	}
	if dt == xsd.Float {
		f, err := strconv.ParseFloat(lexical, 32)
		if err != nil {
			return "", false
		}
		return FormatFloat(float32(f)), true
	}
	f, err := strconv.ParseFloat(lexical, 64)
	if err != nil {
		return "", false
	}
	return FormatDouble(f), true
}

// SanitizeString makes a string value safe to quote in a clause: whitespace
// becomes "_", parentheses become "--", double quotes become single quotes,
// and a leading digit is prefixed with "_".
func SanitizeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			b.WriteByte('_')
		case '(', ')':
			b.WriteString("--")
		case '"':
			b.WriteByte('\'')
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

func (e *Emitter) subClassOf(tc *Context, a ontology.SubClassOf) error {
	if sub, ok := a.Sub.(ontology.Class); ok && a.Degree == 1 {
		sup, err := e.ClassExpression(tc, a.Super)
		if err != nil {
			return err
		}
		return tc.write("(define-primitive-concept " + ClassName(sub) + " " + sup + ")")
	}

	sub, err := e.ClassExpression(tc, a.Sub)
	if err != nil {
		return err
	}
	sup, err := e.ClassExpression(tc, a.Super)
	if err != nil {
		return err
	}
	return tc.write("(implies " + sub + " " + sup + " " + FormatDouble(a.Degree) + ")")
}

func (e *Emitter) equivalentClasses(tc *Context, a ontology.EquivalentClasses) error {
	named := -1
	for i, c := range a.Classes {
		if ontology.IsAtomic(c) {
			named = i
			break
		}
	}
	if named < 0 {
		return structural("equivalentClasses", "Equivalent classes axiom", "requires at least one atomic class", a)
	}
	name := ClassName(a.Classes[named].(ontology.Class))

	definitions := make([]string, 0, len(a.Classes)-1)
	for i, c := range a.Classes {
		if i == named {
			continue
		}
		expr, err := e.ClassExpression(tc, c)
		if err != nil {
			return err
		}
		definitions = append(definitions, "(define-concept "+name+" "+expr+")")
	}
	return writeAll(tc, definitions)
}

func (e *Emitter) disjointClasses(tc *Context, a ontology.DisjointClasses) error {
	if len(a.Classes) < 2 {
		return nil
	}
	names := make([]string, len(a.Classes))
	for i, c := range a.Classes {
		class, ok := c.(ontology.Class)
		if !ok {
			return unsupported("disjointClasses", "Disjoint classes axiom with complex class", a)
		}
		names[i] = ClassName(class)
	}
	return tc.write("(disjoint " + strings.Join(names, " ") + ")")
}

func (e *Emitter) disjointUnion(tc *Context, a ontology.DisjointUnion) error {
	if len(a.Classes) < 2 {
		return nil
	}
	names := make([]string, len(a.Classes))
	for i, c := range a.Classes {
		class, ok := c.(ontology.Class)
		if !ok {
			return structural("disjointUnion", "Disjoint union axiom",
				"requires atomic classes, got "+ontology.Describe(c), a)
		}
		names[i] = ClassName(class)
	}
	return tc.write("(disjoint-union " + strings.Join(names, " ") + ")")
}

type propertyNamer func(ontology.Entity) (string, error)

func (e *Emitter) impliesRole(tc *Context, name propertyNamer, sub, super ontology.Entity, degree float64) error {
	s, err := name(sub)
	if err != nil {
		return err
	}
	p, err := name(super)
	if err != nil {
		return err
	}
	return tc.write("(implies-role " + s + " " + p + " " + FormatDouble(degree) + ")")
}

func (e *Emitter) equivalentProperties(tc *Context, name propertyNamer, properties []ontology.Entity) error {
	if len(properties) == 0 {
		return nil
	}
	names := make([]string, len(properties))
	for i, p := range properties {
		n, err := name(p)
		if err != nil {
			return err
		}
		names[i] = n
	}

	first := names[0]
	clauses := make([]string, 0, 2*(len(names)-1))
	for _, n := range names[1:] {
		clauses = append(clauses,
			"(implies-role "+first+" "+n+")",
			"(implies-role "+n+" "+first+")")
	}
	return writeAll(tc, clauses)
}

func (e *Emitter) characteristic(tc *Context, a ontology.ObjectPropertyCharacteristic) error {
	var keyword string
	switch a.Characteristic {
	case ontology.Transitive:
		keyword = "transitive"
	case ontology.Symmetric:
		keyword = "symmetric"
	case ontology.Reflexive:
		keyword = "reflexive"
	case ontology.Functional:
		keyword = "functional"
	case ontology.InverseFunctional:
		keyword = "inverse-functional"
	default:
		return unsupported("characteristic", string(a.Characteristic)+" object property axiom", a)
	}

	p, err := tc.ObjectPropertyName(a.Property)
	if err != nil {
		return err
	}
	return tc.write("(" + keyword + " " + p + ")")
}

func (e *Emitter) propertyClause(tc *Context, keyword string, name propertyNamer, property ontology.Entity, c ontology.ClassExpression) error {
	p, err := name(property)
	if err != nil {
		return err
	}
	expr, err := e.ClassExpression(tc, c)
	if err != nil {
		return err
	}
	return tc.write("(" + keyword + " " + p + " " + expr + ")")
}

func (e *Emitter) dataPropertyRange(tc *Context, a ontology.DataPropertyRange) error {
	const method = "dataPropertyRange"

	p, err := tc.DataPropertyName(a.Property)
	if err != nil {
		return err
	}

	switch r := a.Range.(type) {
	case ontology.Datatype:
		switch dt := r.AbbreviatedName(); {
		case dt == xsd.String, dt == xsd.Date, dt == xsd.DateTime, dt == xsd.AnyURI:
			return e.declareDataProperty(tc, p, CategoryString, "*string*")
		case dt == xsd.Boolean:
			return e.declareDataProperty(tc, p, CategoryBoolean, "*boolean*")
		case dt == xsd.Float, dt == xsd.Double:
			return e.declareDataProperty(tc, p, CategoryReal, e.realRange())
		case Classify(dt) == CategoryInteger:
			return e.declareDataProperty(tc, p, CategoryInteger, e.integerRange(dt))
		}

	case ontology.DataIntersectionOf:
		b, err := e.FacetBounds(r)
		if err != nil {
			return err
		}
		cat := CategoryReal
		if b.Integer {
			cat = CategoryInteger
		}
		return e.declareDataProperty(tc, p, cat, b.Spec())

	case ontology.DataOneOf:
		return unsupported(method, "Data one of range axiom", a)
	}
	return unsupported(method, "Data property range axiom with range", a.Range)
}

func writeAll(tc *Context, clauses []string) error {
	for _, c := range clauses {
		if err := tc.write(c); err != nil {
			return err
		}
	}
	return nil
}
