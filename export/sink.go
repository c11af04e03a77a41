// Package export writes translated fuzzyDL clauses to their destination.
//
// Every writer in this package satisfies fuzzydl.Sink. Writers buffer their
// output; call Flush once the run is complete.
package export

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"sync"
)

// ClauseWriter receives clauses in order and flushes them to the underlying
// destination.
type ClauseWriter interface {
	WriteClause(clause string) error
	Flush() error
}

// LineWriter writes one clause per line, UTF-8 encoded.
type LineWriter struct {
	w     *bufio.Writer
	lines int
}

// NewLineWriter creates a line writer over w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// WriteClause writes the clause followed by a newline.
func (l *LineWriter) WriteClause(clause string) error {
	if _, err := l.w.WriteString(clause); err != nil {
		return err
	}
	if err := l.w.WriteByte('\n'); err != nil {
		return err
	}
	l.lines++
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (l *LineWriter) Flush() error {
	return l.w.Flush()
}

// Lines returns the number of clauses written.
func (l *LineWriter) Lines() int {
	return l.lines
}

// Buffer collects clauses in memory. It is safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	clauses []string
}

// WriteClause appends the clause.
func (b *Buffer) WriteClause(clause string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clauses = append(b.clauses, clause)
	return nil
}

// Flush is a no-op.
func (b *Buffer) Flush() error {
	return nil
}

// Clauses returns a copy of the collected clauses.
func (b *Buffer) Clauses() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.clauses))
	copy(out, b.clauses)
	return out
}

// Len returns the number of collected clauses.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clauses)
}

// Reset discards the collected clauses.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clauses = nil
}

// String returns the clauses as fuzzyDL text, one per line.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.clauses) == 0 {
		return ""
	}
	return strings.Join(b.clauses, "\n") + "\n"
}

// JSONDocument is the JSON rendering of a translation.
type JSONDocument struct {
	Clauses []string `json:"clauses"`
}

// JSONWriter collects clauses and writes them as a single JSON document on
// Flush.
type JSONWriter struct {
	w   io.Writer
	doc JSONDocument
}

// NewJSONWriter creates a JSON writer over w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, doc: JSONDocument{Clauses: make([]string, 0)}}
}

// WriteClause appends the clause to the document.
func (j *JSONWriter) WriteClause(clause string) error {
	j.doc.Clauses = append(j.doc.Clauses, clause)
	return nil
}

// Flush writes the document.
func (j *JSONWriter) Flush() error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(j.doc)
}
