package fuzzydl

import (
	"sort"

	sserrors "github.com/c360studio/semstreams/pkg/errs"
	"github.com/hamhec/FLOCI/ontology"
)

// Sink receives clauses in emission order, one clause per call.
type Sink interface {
	WriteClause(clause string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(clause string) error

// WriteClause calls f.
func (f SinkFunc) WriteClause(clause string) error {
	return f(clause)
}

type nameSet map[string]struct{}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s nameSet) add(name string) {
	s[name] = struct{}{}
}

func (s nameSet) sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Context is the state of a single translation run: the registries that fix
// property names and data property categories, the fuzzy datatypes declared
// so far, the output sink and the diagnostics collected along the way.
//
// A Context is created empty at the start of a run and only ever grows. It is
// not safe for concurrent use; one run visits axioms strictly in sequence.
type Context struct {
	sink Sink

	objectProperties nameSet
	dataProperties   nameSet

	booleanDatatypes   nameSet
	numericalDatatypes nameSet
	stringDatatypes    nameSet

	fuzzyDatatypes nameSet

	// staged holds the work of the axiom being emitted until it commits.
	staged *stage

	diagnostics []Diagnostic
	clauses     int
}

// stage buffers the clauses and category registrations of one axiom.
type stage struct {
	clauses    []string
	categories map[string]Category
}

// NewContext creates an empty translation context writing to sink.
func NewContext(sink Sink) *Context {
	return &Context{
		sink:               sink,
		objectProperties:   make(nameSet),
		dataProperties:     make(nameSet),
		booleanDatatypes:   make(nameSet),
		numericalDatatypes: make(nameSet),
		stringDatatypes:    make(nameSet),
		fuzzyDatatypes:     make(nameSet),
	}
}

func (c *Context) write(clause string) error {
	if c.staged != nil {
		c.staged.clauses = append(c.staged.clauses, clause)
		return nil
	}
	return c.flush(clause)
}

func (c *Context) flush(clause string) error {
	if err := c.sink.WriteClause(clause); err != nil {
		return sserrors.WrapFatal(err, component, "write", "write clause")
	}
	c.clauses++
	return nil
}

// begin starts buffering clauses and category registrations. Nothing reaches
// the sink or the registries until commit.
func (c *Context) begin() {
	c.staged = &stage{categories: make(map[string]Category)}
}

// commit applies the buffered registrations and writes the buffered clauses
// in order.
func (c *Context) commit() error {
	st := c.staged
	c.staged = nil
	if st == nil {
		return nil
	}
	for name, cat := range st.categories {
		c.register(name, cat)
	}
	for _, clause := range st.clauses {
		if err := c.flush(clause); err != nil {
			return err
		}
	}
	return nil
}

// discard drops everything buffered since begin.
func (c *Context) discard() {
	c.staged = nil
}

// Clauses returns the number of clauses written so far.
func (c *Context) Clauses() int {
	return c.clauses
}

// Diagnostics returns the unsupported constructs reported so far, in order.
func (c *Context) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

func (c *Context) report(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// DeclareFuzzyDatatype records name as a fuzzy datatype usable in data
// ranges. Names are compared by short form.
func (c *Context) DeclareFuzzyDatatype(name string) {
	c.fuzzyDatatypes.add(fuzzyKey(name))
}

// IsFuzzyDatatype reports whether name was declared as a fuzzy datatype.
func (c *Context) IsFuzzyDatatype(name string) bool {
	return c.fuzzyDatatypes.has(fuzzyKey(name))
}

func fuzzyKey(name string) string {
	return ontology.NewEntity(name).ShortForm()
}

// Category returns the category a data property was fixed to, if any.
// Integer and real properties share the numerical registry and report
// CategoryReal.
func (c *Context) Category(dataProperty string) (Category, bool) {
	switch {
	case c.booleanDatatypes.has(dataProperty):
		return CategoryBoolean, true
	case c.numericalDatatypes.has(dataProperty):
		return CategoryReal, true
	case c.stringDatatypes.has(dataProperty):
		return CategoryString, true
	}
	if c.staged != nil {
		if cat, ok := c.staged.categories[dataProperty]; ok {
			return cat, true
		}
	}
	return 0, false
}

// categorize fixes the category of a data property on first use. It returns
// false if the property was already categorized, in which case nothing
// changes. While an axiom is staged the registration is held back until
// commit.
func (c *Context) categorize(dataProperty string, cat Category) bool {
	if _, ok := c.Category(dataProperty); ok {
		return false
	}
	if c.staged != nil {
		if cat == CategoryInteger {
			cat = CategoryReal
		}
		c.staged.categories[dataProperty] = cat
		return true
	}
	c.register(dataProperty, cat)
	return true
}

func (c *Context) register(dataProperty string, cat Category) {
	switch cat {
	case CategoryBoolean:
		c.booleanDatatypes.add(dataProperty)
	case CategoryInteger, CategoryReal:
		c.numericalDatatypes.add(dataProperty)
	default:
		c.stringDatatypes.add(dataProperty)
	}
}

// ObjectProperties returns the short names claimed by object properties.
func (c *Context) ObjectProperties() []string { return c.objectProperties.sorted() }

// DataProperties returns the short names claimed by data properties.
func (c *Context) DataProperties() []string { return c.dataProperties.sorted() }

// BooleanDatatypes returns the data properties declared boolean.
func (c *Context) BooleanDatatypes() []string { return c.booleanDatatypes.sorted() }

// NumericalDatatypes returns the data properties declared numeric.
func (c *Context) NumericalDatatypes() []string { return c.numericalDatatypes.sorted() }

// StringDatatypes returns the data properties declared string.
func (c *Context) StringDatatypes() []string { return c.stringDatatypes.sorted() }
