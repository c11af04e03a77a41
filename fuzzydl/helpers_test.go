package fuzzydl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hamhec/FLOCI/ontology"
)

const ns = "http://example.org/onto#"

type capture struct {
	clauses []string
}

func (c *capture) WriteClause(clause string) error {
	c.clauses = append(c.clauses, clause)
	return nil
}

func newTestRun(t *testing.T) (*Emitter, *Context, *capture) {
	t.Helper()
	out := &capture{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEmitter(DefaultOptions(), logger), NewContext(out), out
}

func ent(name string) ontology.Entity {
	return ontology.NewEntity(ns + name)
}

func class(name string) ontology.Class {
	return ontology.NewClass(ns + name)
}

func ind(name string) ontology.Individual {
	return ontology.NamedIndividual(ns + name)
}

func assertClauses(t *testing.T, want, got []string) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("clauses mismatch (-want +got):\n%s", diff)
	}
}
