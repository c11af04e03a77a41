package ontology_test

import (
	"testing"

	"github.com/hamhec/FLOCI/ontology"
	"github.com/hamhec/FLOCI/vocabulary/owl"
	"github.com/hamhec/FLOCI/vocabulary/xsd"
	"github.com/stretchr/testify/assert"
)

func TestEntity_ShortForm(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{"http://example.org/onto#Person", "Person"},
		{"http://example.org/onto/Person", "Person"},
		{"<http://example.org/onto#hasAge>", "hasAge"},
		{":Person", "Person"},
		{"ex:Person", "ex:Person"},
		{"Person", "Person"},
	}

	for _, tt := range tests {
		t.Run(tt.iri, func(t *testing.T) {
			assert.Equal(t, tt.want, ontology.NewEntity(tt.iri).ShortForm())
		})
	}
}

func TestEntity_Is(t *testing.T) {
	assert.True(t, ontology.NewEntity(owl.Thing).Is(owl.Thing))
	assert.True(t, ontology.NewEntity("owl:Thing").Is(owl.Thing))
	assert.False(t, ontology.NewEntity("Thing").Is(owl.Thing))
}

func TestLiteral_DatatypeName(t *testing.T) {
	assert.Equal(t, xsd.String, ontology.Literal{Lexical: "x"}.DatatypeName())
	assert.Equal(t, xsd.Integer, ontology.TypedLiteral("3", xsd.Namespace+"integer").DatatypeName())
	assert.Equal(t, owl.Real, ontology.TypedLiteral("3", owl.Namespace+"real").DatatypeName())
}

func TestIndividual_String(t *testing.T) {
	assert.Equal(t, "_:genid7", ontology.AnonymousIndividual("_:genid7").String())
	assert.Equal(t, "ex:john", ontology.NamedIndividual("ex:john").String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "qualified cardinality",
			in: ontology.ObjectCardinality{
				Kind:     ontology.MinCardinality,
				N:        2,
				Property: ontology.NewEntity("hasChild"),
				Filler:   ontology.NewClass("Person"),
			},
			want: "ObjectMinCardinality(2 hasChild Person)",
		},
		{
			name: "unqualified data cardinality",
			in: ontology.DataCardinality{
				Kind:     ontology.ExactCardinality,
				N:        1,
				Property: ontology.NewEntity("hasAge"),
			},
			want: "DataExactCardinality(1 hasAge)",
		},
		{
			name: "one of",
			in: ontology.ObjectOneOf{Individuals: []ontology.Individual{
				ontology.NamedIndividual("a"), ontology.NamedIndividual("b"),
			}},
			want: "ObjectOneOf(a b)",
		},
		{
			name: "negative assertion",
			in: ontology.NegativeObjectPropertyAssertion{
				Subject:  ontology.NamedIndividual("a"),
				Object:   ontology.NamedIndividual("b"),
				Property: ontology.NewEntity("knows"),
			},
			want: "NegativeObjectPropertyAssertion(knows a b)",
		},
		{
			name: "facet restriction",
			in: ontology.DatatypeRestriction{
				Datatype: xsd.Integer,
				Facets: []ontology.FacetRestriction{
					{Facet: xsd.MinInclusive, Value: ontology.TypedLiteral("18", xsd.Integer)},
				},
			},
			want: `DatatypeRestriction(xsd:integer xsd:minInclusive "18"^^xsd:integer)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ontology.Describe(tt.in))
		})
	}
}

func TestIsFuzzyDatatype(t *testing.T) {
	assert.True(t, ontology.IsFuzzyDatatype(ontology.TriangularFunction{}))
	assert.True(t, ontology.IsFuzzyDatatype(ontology.ModifiedFunction{}))
	assert.False(t, ontology.IsFuzzyDatatype(ontology.LinearModifier{}))
	assert.False(t, ontology.IsFuzzyDatatype(ontology.OwaConcept{}))
}
