// Package ontology defines the in-memory model of a fuzzy OWL 2 ontology as
// seen by the fuzzyDL translator: entities, literals, class expressions, data
// ranges, axioms and fuzzy definitions.
//
// Class expressions, data ranges, axioms and fuzzy definitions are closed sum
// types. Each is an interface with an unexported marker method, so only the
// variants declared in this package can satisfy it and consumers match them
// with a type switch.
package ontology

import (
	"strings"

	"github.com/hamhec/FLOCI/vocabulary/owl"
	"github.com/hamhec/FLOCI/vocabulary/xsd"
)

// Entity is a named ontology entity: a class, property, individual or
// datatype, identified by its IRI (or a prefixed name).
type Entity struct {
	IRI string
}

// NewEntity returns an entity for the given IRI.
func NewEntity(iri string) Entity {
	return Entity{IRI: iri}
}

// ShortForm returns the local name of the entity: the IRI fragment, the last
// path segment, or the local part of a default-prefix name. Other prefixed
// names are returned whole.
func (e Entity) ShortForm() string {
	iri := strings.TrimSuffix(strings.TrimPrefix(e.IRI, "<"), ">")
	if i := strings.LastIndex(iri, "#"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	if strings.HasPrefix(iri, ":") && len(iri) > 1 {
		return iri[1:]
	}
	return iri
}

// Is reports whether the entity denotes the given built-in IRI, accepting
// both the full and the "owl:" prefixed spelling.
func (e Entity) Is(builtin string) bool {
	return e.IRI == builtin || owl.Expand(e.IRI) == builtin
}

func (e Entity) String() string {
	return e.IRI
}

// Individual is a named or anonymous individual.
type Individual struct {
	Entity
	Anonymous bool
	// NodeID identifies an anonymous individual, e.g. "_:genid12".
	NodeID string
}

// NamedIndividual returns a named individual.
func NamedIndividual(iri string) Individual {
	return Individual{Entity: NewEntity(iri)}
}

// AnonymousIndividual returns an anonymous individual with the given node ID.
func AnonymousIndividual(nodeID string) Individual {
	return Individual{Anonymous: true, NodeID: nodeID}
}

func (i Individual) String() string {
	if i.Anonymous {
		return i.NodeID
	}
	return i.IRI
}

// EntityKind identifies what a declaration declares.
type EntityKind string

// Entity kinds.
const (
	KindClass           EntityKind = "Class"
	KindObjectProperty  EntityKind = "ObjectProperty"
	KindDataProperty    EntityKind = "DataProperty"
	KindNamedIndividual EntityKind = "NamedIndividual"
	KindDatatype        EntityKind = "Datatype"
)

// Literal is a data value with its datatype.
type Literal struct {
	Lexical string
	// Datatype is the datatype name; empty means a plain string literal.
	Datatype string
	Lang     string
}

// TypedLiteral returns a literal of the given datatype.
func TypedLiteral(lexical, datatype string) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// DatatypeName returns the abbreviated datatype of the literal, defaulting to
// xsd:string for plain literals.
func (l Literal) DatatypeName() string {
	if l.Datatype == "" {
		return xsd.String
	}
	return AbbreviateDatatype(l.Datatype)
}

func (l Literal) String() string {
	s := `"` + l.Lexical + `"`
	if l.Lang != "" {
		return s + "@" + l.Lang
	}
	return s + "^^" + l.DatatypeName()
}

// AbbreviateDatatype rewrites XML Schema and OWL datatype IRIs into their
// prefixed form.
func AbbreviateDatatype(name string) string {
	return owl.Abbreviate(xsd.Abbreviate(name))
}
