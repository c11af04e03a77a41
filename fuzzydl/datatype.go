package fuzzydl

import (
	"strconv"
	"strings"

	"github.com/hamhec/FLOCI/ontology"
	"github.com/hamhec/FLOCI/vocabulary/owl"
	"github.com/hamhec/FLOCI/vocabulary/xsd"
)

// Category is the fuzzyDL value category of a datatype or literal.
type Category int

// Categories.
const (
	CategoryString Category = iota
	CategoryBoolean
	CategoryInteger
	CategoryReal
)

func (c Category) String() string {
	switch c {
	case CategoryBoolean:
		return "boolean"
	case CategoryInteger:
		return "integer"
	case CategoryReal:
		return "real"
	default:
		return "string"
	}
}

// Numeric reports whether the category is integer or real.
func (c Category) Numeric() bool {
	return c == CategoryInteger || c == CategoryReal
}

var realDatatypes = map[string]struct{}{
	xsd.Double:   {},
	xsd.Float:    {},
	xsd.Decimal:  {},
	owl.Real:     {},
	owl.Rational: {},
}

var integerDatatypes = map[string]struct{}{
	xsd.Integer:            {},
	xsd.Int:                {},
	xsd.Long:               {},
	xsd.Short:              {},
	xsd.Byte:               {},
	xsd.NonNegativeInteger: {},
	xsd.NonPositiveInteger: {},
	xsd.PositiveInteger:    {},
	xsd.NegativeInteger:    {},
	xsd.UnsignedLong:       {},
	xsd.UnsignedInt:        {},
	xsd.UnsignedShort:      {},
	xsd.UnsignedByte:       {},
}

// Classify returns the category of a datatype, given by IRI or prefixed name.
func Classify(datatype string) Category {
	dt := ontology.AbbreviateDatatype(datatype)
	if _, ok := realDatatypes[dt]; ok {
		return CategoryReal
	}
	if _, ok := integerDatatypes[dt]; ok {
		return CategoryInteger
	}
	if dt == xsd.Boolean {
		return CategoryBoolean
	}
	return CategoryString
}

// ClassifyLiteral returns the category of a literal's datatype.
func ClassifyLiteral(l ontology.Literal) Category {
	return Classify(l.DatatypeName())
}

// IntegerBounds returns the inclusive bounds of an integer datatype. Bounded
// XSD subtypes pin one end; every other end is the configured sentinel.
func (e *Emitter) IntegerBounds(datatype string) (min, max int64) {
	min, max = e.opts.IntegerMin, e.opts.IntegerMax
	switch ontology.AbbreviateDatatype(datatype) {
	case xsd.NonPositiveInteger:
		max = 0
	case xsd.NegativeInteger:
		max = -1
	case xsd.NonNegativeInteger:
		min = 0
	case xsd.PositiveInteger:
		min = 1
	}
	return min, max
}

// Bounds is a closed numeric interval for a data property range.
type Bounds struct {
	Integer  bool
	Min, Max float64
}

// Spec renders the bounds as a fuzzyDL range, e.g. "*integer* 0 10".
func (b Bounds) Spec() string {
	if b.Integer {
		return "*integer* " + formatInt(int64(b.Min)) + " " + formatInt(int64(b.Max))
	}
	return "*real* " + FormatDouble(b.Min) + " " + FormatDouble(b.Max)
}

// FacetBounds derives inclusive bounds from an intersection of two facet
// restrictions, one giving the lower and one the upper bound. Exclusive
// bounds are tightened by 1 for integer values and by the configured epsilon
// otherwise. The bounds are integer only if both facet values are integers.
func (e *Emitter) FacetBounds(r ontology.DataIntersectionOf) (Bounds, error) {
	const method = "FacetBounds"
	const construct = "Data property range axiom with range"

	if len(r.Operands) != 2 {
		return Bounds{}, unsupported(method, construct, r)
	}

	var (
		b              Bounds
		hasMin, hasMax bool
		integers       int
	)
	for _, op := range r.Operands {
		restriction, ok := op.(ontology.DatatypeRestriction)
		if !ok || len(restriction.Facets) != 1 {
			continue
		}
		facet := restriction.Facets[0]
		k, err := strconv.ParseFloat(strings.TrimSpace(facet.Value.Lexical), 64)
		if err != nil {
			return Bounds{}, unsupported(method, construct, r)
		}

		step := e.opts.Epsilon
		if ClassifyLiteral(facet.Value) == CategoryInteger {
			step = 1
			integers++
		}

		switch xsd.FacetName(facet.Facet) {
		case xsd.MinInclusive, xsd.MinExclusive:
			if hasMin {
				return Bounds{}, unsupported(method, construct, r)
			}
			hasMin = true
			b.Min = k
			if xsd.FacetName(facet.Facet) == xsd.MinExclusive {
				b.Min = k + step
			}
		case xsd.MaxInclusive, xsd.MaxExclusive:
			if hasMax {
				return Bounds{}, unsupported(method, construct, r)
			}
			hasMax = true
			b.Max = k
			if xsd.FacetName(facet.Facet) == xsd.MaxExclusive {
				b.Max = k - step
			}
		}
	}

	if !hasMin || !hasMax {
		return Bounds{}, unsupported(method, construct, r)
	}
	b.Integer = integers == 2
	return b, nil
}

func (e *Emitter) realRange() string {
	return Bounds{Min: e.opts.RealMin, Max: e.opts.RealMax}.Spec()
}

func (e *Emitter) integerRange(datatype string) string {
	min, max := e.IntegerBounds(datatype)
	return "*integer* " + formatInt(min) + " " + formatInt(max)
}

// numericRange renders the default range of a numeric datatype.
func (e *Emitter) numericRange(datatype string) string {
	if Classify(datatype) == CategoryInteger {
		return e.integerRange(datatype)
	}
	return e.realRange()
}

// declareDataProperty fixes the category of a data property on first use and
// emits its functional and range declarations. Later calls, for whatever
// category, emit nothing.
func (e *Emitter) declareDataProperty(tc *Context, name string, cat Category, rangeSpec string) error {
	if !tc.categorize(name, cat) {
		if got, _ := tc.Category(name); got != cat && !(got.Numeric() && cat.Numeric()) {
			e.logger.Debug("Data property already declared with another category",
				"property", name, "declared", got.String(), "requested", cat.String())
		}
		return nil
	}
	if err := tc.write("(functional " + name + ")"); err != nil {
		return err
	}
	return tc.write("(range " + name + " " + rangeSpec + ")")
}

// declareNumeric declares a data property numeric with the default range of
// datatype.
func (e *Emitter) declareNumeric(tc *Context, name, datatype string) error {
	return e.declareDataProperty(tc, name, Classify(datatype), e.numericRange(datatype))
}
