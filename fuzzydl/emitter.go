package fuzzydl

import (
	"fmt"
	"log/slog"

	"github.com/hamhec/FLOCI/ontology"
)

// Options tunes numeric encoding.
type Options struct {
	// Epsilon tightens exclusive real bounds into inclusive ones.
	Epsilon float64
	// IntegerMin and IntegerMax stand in for unbounded integer ranges.
	IntegerMin, IntegerMax int64
	// RealMin and RealMax stand in for unbounded real ranges.
	RealMin, RealMax float64
}

// DefaultOptions returns the standard sentinels: ±1,000,000 and an epsilon of
// 0.001.
func DefaultOptions() Options {
	return Options{
		Epsilon:    0.001,
		IntegerMin: -1000000,
		IntegerMax: 1000000,
		RealMin:    -1000000,
		RealMax:    1000000,
	}
}

// Validate checks the options are usable.
func (o Options) Validate() error {
	if o.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %v", o.Epsilon)
	}
	if o.IntegerMin >= o.IntegerMax {
		return fmt.Errorf("integer bounds must satisfy min < max, got [%d, %d]", o.IntegerMin, o.IntegerMax)
	}
	if o.RealMin >= o.RealMax {
		return fmt.Errorf("real bounds must satisfy min < max, got [%v, %v]", o.RealMin, o.RealMax)
	}
	return nil
}

// Emitter translates axioms, class expressions and fuzzy definitions into
// fuzzyDL clauses. It holds no per-run state: every call takes the Context of
// the run it belongs to, so one Emitter can serve many runs.
type Emitter struct {
	opts   Options
	logger *slog.Logger
}

// NewEmitter creates an emitter. A nil logger means slog.Default().
func NewEmitter(opts Options, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{opts: opts, logger: logger}
}

// Options returns the emitter's options.
func (e *Emitter) Options() Options {
	return e.opts
}

// skipUnsupported turns an unsupported-construct error into a diagnostic on tc and
// swallows it. Any other error is returned unchanged.
func (e *Emitter) skipUnsupported(tc *Context, subject any, err error) error {
	if err == nil || !IsUnsupported(err) {
		return err
	}
	d := diagnosticFor(err, ontology.Describe(subject))
	tc.report(d)
	e.logger.Warn("Construct not supported",
		"construct", d.Construct,
		"form", d.Form,
		"context", d.Context)
	return nil
}
