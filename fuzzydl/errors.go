package fuzzydl

import (
	"errors"
	"fmt"

	sserrors "github.com/c360studio/semstreams/pkg/errs"
	"github.com/hamhec/FLOCI/ontology"
)

const component = "fuzzydl"

// Error kinds. Both are wrapped in a *ConstructError and then classified with
// the semstreams error classes: unsupported constructs are Invalid, structural
// errors are Fatal.
var (
	// ErrUnsupported marks a construct fuzzyDL cannot express. The construct
	// is reported and skipped; translation continues.
	ErrUnsupported = errors.New("not supported")

	// ErrStructural marks an input shape the translator cannot recover from.
	// Translation stops.
	ErrStructural = errors.New("structurally invalid")
)

// ConstructError describes a construct the translator refused.
type ConstructError struct {
	// Construct names the kind of construct, e.g. "Object min cardinality
	// restriction".
	Construct string
	// Reason optionally explains a structural error.
	Reason string
	// Form is the construct's textual form.
	Form string
	Err  error
}

func (e *ConstructError) Error() string {
	msg := e.Construct + " " + e.Err.Error()
	if e.Reason != "" {
		msg = e.Construct + " " + e.Reason
	}
	if e.Form != "" {
		msg += ": " + e.Form
	}
	return msg
}

func (e *ConstructError) Unwrap() error {
	return e.Err
}

// unsupported builds a recoverable error for a construct fuzzyDL cannot
// express. subject is rendered with ontology.Describe.
func unsupported(method, construct string, subject any) error {
	ce := &ConstructError{
		Construct: construct,
		Form:      describe(subject),
		Err:       ErrUnsupported,
	}
	return sserrors.WrapInvalid(ce, component, method, "translate")
}

// structural builds a fatal error that aborts the run.
func structural(method, construct, reason string, subject any) error {
	ce := &ConstructError{
		Construct: construct,
		Reason:    reason,
		Form:      describe(subject),
		Err:       ErrStructural,
	}
	return sserrors.WrapFatal(ce, component, method, "translate")
}

func describe(subject any) string {
	if subject == nil {
		return ""
	}
	if s, ok := subject.(string); ok {
		return s
	}
	return ontology.Describe(subject)
}

// IsUnsupported reports whether err marks an unsupported construct.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

// IsStructural reports whether err is a fatal structural error.
func IsStructural(err error) bool {
	return errors.Is(err, ErrStructural)
}

// Diagnostic records an unsupported construct that was skipped.
type Diagnostic struct {
	Construct string
	// Form is the textual form of the offending construct.
	Form string
	// Context is the textual form of the enclosing axiom or definition.
	Context string
}

func (d Diagnostic) String() string {
	s := d.Construct + " not supported"
	if d.Form != "" {
		s += ": " + d.Form
	}
	if d.Context != "" && d.Context != d.Form {
		s += " (in " + d.Context + ")"
	}
	return s
}

// diagnosticFor extracts the diagnostic carried by an unsupported-construct
// error.
func diagnosticFor(err error, context string) Diagnostic {
	var ce *ConstructError
	if errors.As(err, &ce) {
		return Diagnostic{Construct: ce.Construct, Form: ce.Form, Context: context}
	}
	return Diagnostic{Construct: fmt.Sprint(err), Context: context}
}
