package fuzzydl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamhec/FLOCI/ontology"
	"github.com/hamhec/FLOCI/vocabulary/xsd"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		datatype string
		want     Category
	}{
		{xsd.Double, CategoryReal},
		{xsd.Float, CategoryReal},
		{xsd.Decimal, CategoryReal},
		{"owl:real", CategoryReal},
		{"http://www.w3.org/2002/07/owl#rational", CategoryReal},
		{xsd.Integer, CategoryInteger},
		{xsd.Int, CategoryInteger},
		{xsd.Long, CategoryInteger},
		{xsd.Short, CategoryInteger},
		{xsd.Byte, CategoryInteger},
		{xsd.NonNegativeInteger, CategoryInteger},
		{xsd.NonPositiveInteger, CategoryInteger},
		{xsd.PositiveInteger, CategoryInteger},
		{xsd.NegativeInteger, CategoryInteger},
		{xsd.UnsignedLong, CategoryInteger},
		{xsd.UnsignedInt, CategoryInteger},
		{xsd.UnsignedShort, CategoryInteger},
		{"http://www.w3.org/2001/XMLSchema#unsignedByte", CategoryInteger},
		{xsd.Boolean, CategoryBoolean},
		{xsd.String, CategoryString},
		{xsd.DateTime, CategoryString},
		{"http://example.org/onto#High", CategoryString},
	}

	for _, tt := range tests {
		t.Run(tt.datatype, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.datatype))
		})
	}
}

func TestClassifyLiteral(t *testing.T) {
	assert.Equal(t, CategoryString, ClassifyLiteral(ontology.Literal{Lexical: "plain"}))
	assert.Equal(t, CategoryInteger, ClassifyLiteral(ontology.TypedLiteral("3", xsd.Integer)))
	assert.Equal(t, CategoryBoolean, ClassifyLiteral(ontology.TypedLiteral("true", xsd.Boolean)))
	assert.True(t, CategoryReal.Numeric())
	assert.False(t, CategoryBoolean.Numeric())
}

func TestIntegerBounds(t *testing.T) {
	e, _, _ := newTestRun(t)

	tests := []struct {
		datatype string
		min, max int64
	}{
		{xsd.Integer, -1000000, 1000000},
		{xsd.PositiveInteger, 1, 1000000},
		{xsd.NonNegativeInteger, 0, 1000000},
		{xsd.NonPositiveInteger, -1000000, 0},
		{xsd.NegativeInteger, -1000000, -1},
		{"http://www.w3.org/2001/XMLSchema#positiveInteger", 1, 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.datatype, func(t *testing.T) {
			min, max := e.IntegerBounds(tt.datatype)
			assert.Equal(t, tt.min, min)
			assert.Equal(t, tt.max, max)
		})
	}
}

func facet(name, lexical, datatype string) ontology.DataRange {
	return ontology.DatatypeRestriction{
		Datatype: datatype,
		Facets: []ontology.FacetRestriction{
			{Facet: name, Value: ontology.TypedLiteral(lexical, datatype)},
		},
	}
}

func TestFacetBounds(t *testing.T) {
	e, _, _ := newTestRun(t)

	t.Run("integer inclusive and exclusive", func(t *testing.T) {
		b, err := e.FacetBounds(ontology.DataIntersectionOf{Operands: []ontology.DataRange{
			facet(xsd.MinInclusive, "18", xsd.Integer),
			facet(xsd.MaxExclusive, "65", xsd.Integer),
		}})
		require.NoError(t, err)
		assert.Equal(t, Bounds{Integer: true, Min: 18, Max: 64}, b)
		assert.Equal(t, "*integer* 18 64", b.Spec())
	})

	t.Run("integer min exclusive", func(t *testing.T) {
		b, err := e.FacetBounds(ontology.DataIntersectionOf{Operands: []ontology.DataRange{
			facet(xsd.MaxInclusive, "10", xsd.Integer),
			facet(xsd.MinExclusive, "0", xsd.Integer),
		}})
		require.NoError(t, err)
		assert.Equal(t, "*integer* 1 10", b.Spec())
	})

	t.Run("real bounds", func(t *testing.T) {
		b, err := e.FacetBounds(ontology.DataIntersectionOf{Operands: []ontology.DataRange{
			facet(xsd.MinInclusive, "0", xsd.Double),
			facet(xsd.MaxInclusive, "10.5", xsd.Double),
		}})
		require.NoError(t, err)
		assert.False(t, b.Integer)
		assert.Equal(t, "*real* 0.0 10.5", b.Spec())
	})

	t.Run("real exclusive uses epsilon", func(t *testing.T) {
		b, err := e.FacetBounds(ontology.DataIntersectionOf{Operands: []ontology.DataRange{
			facet("http://www.w3.org/2001/XMLSchema#minExclusive", "0.5", xsd.Double),
			facet(xsd.MaxExclusive, "1.5", xsd.Decimal),
		}})
		require.NoError(t, err)
		assert.False(t, b.Integer)
		assert.InDelta(t, 0.501, b.Min, 1e-9)
		assert.InDelta(t, 1.499, b.Max, 1e-9)
	})

	t.Run("mixed values give a real range", func(t *testing.T) {
		b, err := e.FacetBounds(ontology.DataIntersectionOf{Operands: []ontology.DataRange{
			facet(xsd.MinInclusive, "1", xsd.Integer),
			facet(xsd.MaxInclusive, "2.5", xsd.Double),
		}})
		require.NoError(t, err)
		assert.Equal(t, "*real* 1.0 2.5", b.Spec())
	})

	invalid := map[string]ontology.DataIntersectionOf{
		"single operand": {Operands: []ontology.DataRange{
			facet(xsd.MinInclusive, "1", xsd.Integer),
		}},
		"three operands": {Operands: []ontology.DataRange{
			facet(xsd.MinInclusive, "1", xsd.Integer),
			facet(xsd.MaxInclusive, "5", xsd.Integer),
			facet(xsd.MaxInclusive, "6", xsd.Integer),
		}},
		"two min facets": {Operands: []ontology.DataRange{
			facet(xsd.MinInclusive, "1", xsd.Integer),
			facet(xsd.MinExclusive, "2", xsd.Integer),
		}},
		"missing max": {Operands: []ontology.DataRange{
			facet(xsd.MinInclusive, "1", xsd.Integer),
			ontology.Datatype{Name: xsd.Integer},
		}},
		"non numeric facet value": {Operands: []ontology.DataRange{
			facet(xsd.MinInclusive, "low", xsd.String),
			facet(xsd.MaxInclusive, "5", xsd.Integer),
		}},
	}
	for name, r := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := e.FacetBounds(r)
			require.Error(t, err)
			assert.True(t, IsUnsupported(err))
		})
	}
}
