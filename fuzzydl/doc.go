// Package fuzzydl translates a fuzzy OWL 2 ontology model into fuzzyDL
// syntax, one clause per line.
//
// The package does not traverse ontologies. A driver creates a Context for
// the run, then calls the Emitter once per item in document order:
//
//	e := fuzzydl.NewEmitter(fuzzydl.DefaultOptions(), logger)
//	tc := fuzzydl.NewContext(sink)
//	_ = e.DefineFuzzyLogic(tc, "lukasiewicz")
//	for _, def := range doc.Definitions {
//		if err := e.Define(tc, def); err != nil {
//			return err
//		}
//	}
//	for _, ax := range doc.Axioms {
//		if err := e.Emit(tc, ax); err != nil {
//			return err
//		}
//	}
//
// Output depends on visit order. Object and data properties share one
// namespace in fuzzyDL: the first property to use a short name keeps it, and
// a later property of the other kind is written "_op@name" or "_dp@name".
// Data properties are declared functional with a range the first time they
// are used, and their category (boolean, numeric or string) is fixed from
// then on.
//
// Constructs fuzzyDL cannot express are skipped and recorded as Diagnostics
// on the Context. Errors returned by Emit and Define are fatal: a malformed
// input shape (see IsStructural) or a failing sink.
package fuzzydl
