package fuzzydl

import (
	"strconv"
	"strings"

	"github.com/hamhec/FLOCI/ontology"
	"github.com/hamhec/FLOCI/vocabulary/owl"
)

// Names fuzzyDL reserves for built-in concepts.
const (
	TopConcept    = "*top*"
	BottomConcept = "*bottom*"
)

// Prefixes applied when an object and a data property share a short name.
const (
	objectPropertyPrefix = "_op@"
	dataPropertyPrefix   = "_dp@"
)

// reservedWords collide with fuzzyDL keywords.
var reservedWords = map[string]struct{}{
	"linear":      {},
	"triangular":  {},
	"trapezoidal": {},
	"crisp":       {},
	"classical":   {},
	"disjoint":    {},
	"instance":    {},
	"related":     {},
	"domain":      {},
	"range":       {},
}

// ShortName returns the entity's local name, prefixed with "_" when it is a
// fuzzyDL keyword or would be read as a number.
func ShortName(e ontology.Entity) string {
	return escapeName(e.ShortForm())
}

func escapeName(name string) string {
	if isReservedWord(name) {
		return "_" + name
	}
	return name
}

func isReservedWord(name string) bool {
	if _, ok := reservedWords[name]; ok {
		return true
	}
	return looksNumeric(name)
}

// looksNumeric mirrors the lexical space of decimal floating point literals:
// optional surrounding whitespace, optional sign, optional d/D/f/F suffix,
// plus "NaN" and "Infinity" spelled exactly.
func looksNumeric(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}

	unsigned := strings.TrimLeft(t, "+-")
	switch strings.ToLower(unsigned) {
	case "nan", "inf", "infinity":
		return unsigned == "NaN" || unsigned == "Infinity"
	}

	if last := t[len(t)-1]; last == 'd' || last == 'D' || last == 'f' || last == 'F' {
		// hex floats end in an exponent, never in a bare suffix letter
		if !strings.HasPrefix(strings.ToLower(unsigned), "0x") {
			t = t[:len(t)-1]
		}
	}
	if t == "" || strings.Contains(t, "_") {
		return false
	}
	_, err := strconv.ParseFloat(t, 64)
	return err == nil
}

// ClassName renders an atomic class.
func ClassName(c ontology.Class) string {
	switch {
	case c.Is(owl.Thing):
		return TopConcept
	case c.Is(owl.Nothing):
		return BottomConcept
	default:
		return ShortName(c.Entity)
	}
}

// IndividualName renders an individual; anonymous individuals keep their node
// ID.
func IndividualName(i ontology.Individual) string {
	if i.Anonymous {
		return i.NodeID
	}
	return ShortName(i.Entity)
}

// ObjectPropertyName renders an object property. The first property of either
// kind to use a short name claims it; an object property arriving after a
// data property with the same short name is rendered "_op@name".
func (c *Context) ObjectPropertyName(p ontology.Entity) (string, error) {
	switch {
	case p.Is(owl.TopObjectProperty):
		return "", unsupported("ObjectPropertyName", "Top object property", p)
	case p.Is(owl.BottomObjectProperty):
		return "", unsupported("ObjectPropertyName", "Bottom object property", p)
	}

	name := ShortName(p)
	if c.dataProperties.has(name) {
		return objectPropertyPrefix + name, nil
	}
	c.objectProperties.add(name)
	return name, nil
}

// DataPropertyName renders a data property, symmetrically to
// ObjectPropertyName, using the "_dp@" prefix.
func (c *Context) DataPropertyName(p ontology.Entity) (string, error) {
	switch {
	case p.Is(owl.TopDataProperty):
		return "", unsupported("DataPropertyName", "Top data property", p)
	case p.Is(owl.BottomDataProperty):
		return "", unsupported("DataPropertyName", "Bottom data property", p)
	}

	name := ShortName(p)
	if c.objectProperties.has(name) {
		return dataPropertyPrefix + name, nil
	}
	c.dataProperties.add(name)
	return name, nil
}
