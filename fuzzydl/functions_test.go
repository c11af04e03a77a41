package fuzzydl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamhec/FLOCI/ontology"
)

func TestRenderDefinition(t *testing.T) {
	tests := []struct {
		name string
		def  ontology.FuzzyDefinition
		want string
	}{
		{
			name: "Rising",
			def:  ontology.LinearFunction{K1: 0, K2: 10, A: 2, B: 0.5},
			want: "(define-fuzzy-concept Rising linear(0.0, 10.0, 2.0, 0.5))",
		},
		{
			name: "High",
			def:  ontology.TriangularFunction{K1: 0, K2: 100, A: 50, B: 70, C: 90},
			want: "(define-fuzzy-concept High triangular(0.0, 100.0, 50.0, 70.0, 90.0))",
		},
		{
			name: "Warm",
			def:  ontology.TrapezoidalFunction{K1: -10, K2: 50, A: 10, B: 18, C: 25, D: 30},
			want: "(define-fuzzy-concept Warm trapezoidal(-10.0, 50.0, 10.0, 18.0, 25.0, 30.0))",
		},
		{
			name: "Cold",
			def:  ontology.LeftShoulderFunction{K1: -10, K2: 50, A: 0, B: 10},
			want: "(define-fuzzy-concept Cold left-shoulder(-10.0, 50.0, 0.0, 10.0))",
		},
		{
			name: "Hot",
			def:  ontology.RightShoulderFunction{K1: -10, K2: 50, A: 30, B: 40},
			want: "(define-fuzzy-concept Hot right-shoulder(-10.0, 50.0, 30.0, 40.0))",
		},
		{
			name: "somewhat",
			def:  ontology.TriangularModifier{A: 0.1, B: 0.5, C: 0.9},
			want: "(define-modifier somewhat triangular-modifier(0.1, 0.5, 0.9))",
		},
		{
			name: "very",
			def:  ontology.LinearModifier{C: 0.8},
			want: "(define-modifier very linear-modifier(0.8))",
		},
		{
			name: "VeryHigh",
			def:  ontology.ModifiedFunction{Modifier: "very", Datatype: "High"},
			want: "(define-concept VeryHigh (very High))",
		},
		{
			name: "VeryTall",
			def:  ontology.ModifiedConcept{Modifier: "very", Concept: "Tall"},
			want: "(define-concept VeryTall (very Tall))",
		},
		{
			name: "HalfTall",
			def:  ontology.WeightedConcept{Weight: 0.5, Concept: "Tall"},
			want: "(define-concept HalfTall (0.5 Tall))",
		},
		{
			name: "Best",
			def: ontology.WeightedMaxConcept{Concepts: []ontology.WeightedConcept{
				{Weight: 0.3, Concept: "A"}, {Weight: 0.7, Concept: "B"},
			}},
			want: "(define-concept Best (w-max (0.3 A) (0.7 B)))",
		},
		{
			name: "Worst",
			def: ontology.WeightedMinConcept{Concepts: []ontology.WeightedConcept{
				{Weight: 0.7, Concept: "B"}, {Weight: 0.3, Concept: "A"},
			}},
			want: "(define-concept Worst (w-min (0.7 B) (0.3 A)))",
		},
		{
			name: "Score",
			def: ontology.WeightedSumConcept{Concepts: []ontology.WeightedConcept{
				{Weight: 0.2, Concept: "A"}, {Weight: 0.2, Concept: "A"}, {Weight: 0.6, Concept: "C"},
			}},
			want: "(define-concept Score (w-sum (0.2 A) (0.2 A) (0.6 C)))",
		},
		{
			name: "Owa",
			def:  ontology.OwaConcept{Weights: []float64{0.6, 0.4}, Concepts: []string{"A", "B"}},
			want: "(define-concept Owa (owa (0.6 0.4) (A B)))",
		},
		{
			name: "Choquet",
			def:  ontology.ChoquetConcept{Weights: []float64{0.1, 0.9}, Concepts: []string{"B", "A"}},
			want: "(define-concept Choquet (choquet (0.1 0.9) (B A)))",
		},
		{
			name: "Sugeno",
			def:  ontology.SugenoConcept{Weights: []float64{1}, Concepts: []string{"A"}},
			want: "(define-concept Sugeno (sugeno (1.0) (A)))",
		},
		{
			name: "QSugeno",
			def:  ontology.QuasiSugenoConcept{Weights: []float64{0.5, 0.5}, Concepts: []string{"A", "B"}},
			want: "(define-concept QSugeno (q-sugeno (0.5 0.5) (A B)))",
		},
		{
			name: "Most",
			def:  ontology.QowaConcept{Quantifier: "most", Concepts: []string{"A", "B", "C"}},
			want: "(define-concept Most (q-owa most A B C))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderDefinition(tt.name, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderDefinitionEmptyLists(t *testing.T) {
	defs := map[string]ontology.FuzzyDefinition{
		"w-max":          ontology.WeightedMaxConcept{},
		"w-min":          ontology.WeightedMinConcept{Concepts: []ontology.WeightedConcept{}},
		"w-sum":          ontology.WeightedSumConcept{},
		"owa weights":    ontology.OwaConcept{Concepts: []string{"A"}},
		"owa concepts":   ontology.OwaConcept{Weights: []float64{1}},
		"choquet":        ontology.ChoquetConcept{},
		"sugeno":         ontology.SugenoConcept{},
		"q-sugeno":       ontology.QuasiSugenoConcept{},
		"q-owa concepts": ontology.QowaConcept{Quantifier: "most"},
	}

	for name, def := range defs {
		t.Run(name, func(t *testing.T) {
			_, err := RenderDefinition("X", def)
			require.Error(t, err)
			assert.True(t, IsStructural(err))
			assert.False(t, IsUnsupported(err))
		})
	}
}

func TestDefine(t *testing.T) {
	t.Run("membership function registers a fuzzy datatype", func(t *testing.T) {
		e, tc, out := newTestRun(t)

		err := e.Define(tc, ontology.NamedDefinition{
			Name:       "High",
			Definition: ontology.TriangularFunction{K1: 0, K2: 100, A: 50, B: 70, C: 90},
		})
		require.NoError(t, err)

		assertClauses(t, []string{
			"(define-fuzzy-concept High triangular(0.0, 100.0, 50.0, 70.0, 90.0))",
		}, out.clauses)
		assert.True(t, tc.IsFuzzyDatatype("High"))
		assert.True(t, tc.IsFuzzyDatatype(ns+"High"))
	})

	t.Run("modifier is not a datatype", func(t *testing.T) {
		e, tc, _ := newTestRun(t)

		require.NoError(t, e.Define(tc, ontology.NamedDefinition{
			Name:       "very",
			Definition: ontology.LinearModifier{C: 0.8},
		}))
		assert.False(t, tc.IsFuzzyDatatype("very"))
	})

	t.Run("unsupported definitions are reported", func(t *testing.T) {
		e, tc, out := newTestRun(t)

		require.NoError(t, e.Define(tc, ontology.NamedDefinition{
			Name:       "VeryClose",
			Definition: ontology.ModifiedProperty{Modifier: "very", Property: "near"},
		}))
		require.NoError(t, e.Define(tc, ontology.NamedDefinition{
			Name:       "AlmostJohn",
			Definition: ontology.FuzzyNominal{Degree: 0.8, Individual: "john"},
		}))

		assert.Empty(t, out.clauses)
		diags := tc.Diagnostics()
		require.Len(t, diags, 2)
		assert.Equal(t, "Modified property", diags[0].Construct)
		assert.Equal(t, "Fuzzy nominal", diags[1].Construct)
		assert.Contains(t, diags[1].Context, "AlmostJohn")
	})

	t.Run("empty combinator aborts", func(t *testing.T) {
		e, tc, out := newTestRun(t)

		err := e.Define(tc, ontology.NamedDefinition{Name: "Empty", Definition: ontology.OwaConcept{}})
		require.Error(t, err)
		assert.True(t, IsStructural(err))
		assert.Empty(t, out.clauses)
		assert.Empty(t, tc.Diagnostics())
	})
}

func TestDefineFuzzyLogic(t *testing.T) {
	e, tc, out := newTestRun(t)

	require.NoError(t, e.DefineFuzzyLogic(tc, "lukasiewicz"))
	assertClauses(t, []string{"(define-fuzzy-logic lukasiewicz)"}, out.clauses)
	assert.Equal(t, 1, tc.Clauses())
}
