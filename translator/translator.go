// Package translator drives fuzzyDL translation runs: it loads ontology
// documents, feeds them through the fuzzydl emitter in document order and
// writes the clauses to their destination.
//
// Each run gets its own fuzzydl.Context and a run ID. Unsupported constructs
// are collected on the run's Report; structural errors abort the run.
package translator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	sserrors "github.com/c360studio/semstreams/pkg/errs"

	"github.com/hamhec/FLOCI/config"
	"github.com/hamhec/FLOCI/export"
	"github.com/hamhec/FLOCI/fuzzydl"
	"github.com/hamhec/FLOCI/ontology"
	"github.com/hamhec/FLOCI/source/parser"
	"github.com/hamhec/FLOCI/source/weburl"
)

const component = "Translator"

// Version is reported in the User-Agent of remote fetches.
const Version = "0.1.0"

// ErrUnsupportedConstructs is returned when fail_on_unsupported is set and
// the run produced diagnostics.
var ErrUnsupportedConstructs = errors.New("unsupported constructs")

// Report summarizes a translation run.
type Report struct {
	RunID       string               `json:"run_id"`
	Document    string               `json:"document"`
	Input       string               `json:"input,omitempty"`
	Output      string               `json:"output,omitempty"`
	Clauses     int                  `json:"clauses"`
	Diagnostics []fuzzydl.Diagnostic `json:"diagnostics,omitempty"`
	Duration    time.Duration        `json:"duration"`
}

// Translator runs translations with a fixed configuration.
type Translator struct {
	cfg     *config.Config
	emitter *fuzzydl.Emitter
	parsers *parser.Registry
	policy  weburl.Policy
	fetcher *weburl.Fetcher
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a translator. A nil config means config.DefaultConfig(), a nil
// logger means slog.Default() and a nil metrics disables instrumentation.
func New(cfg *config.Config, logger *slog.Logger, metrics *Metrics) (*Translator, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, sserrors.WrapInvalid(err, component, "New", "validate config")
	}
	if logger == nil {
		logger = slog.Default()
	}
	policy := weburl.Policy{
		AllowHTTP:    cfg.Input.AllowHTTP,
		AllowPrivate: cfg.Input.AllowPrivate,
	}
	return &Translator{
		cfg:     cfg,
		emitter: fuzzydl.NewEmitter(cfg.Translation.Options(), logger),
		parsers: parser.DefaultRegistry,
		policy:  policy,
		fetcher: weburl.NewFetcher(weburl.FetcherConfig{
			Policy:         policy,
			Timeout:        cfg.Input.Timeout,
			UserAgent:      "floci/" + Version,
			MaxContentSize: cfg.Input.MaxSize,
		}),
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Config returns the translator's configuration.
func (t *Translator) Config() *config.Config {
	return t.cfg
}

// Translate writes the fuzzyDL rendering of doc to sink: the logic
// declaration, then the fuzzy definitions, then the axioms in document order.
// Cancellation is checked between items.
//
// The returned Report is non-nil whenever the run started, including when it
// fails part way.
func (t *Translator) Translate(ctx context.Context, doc *ontology.Document, sink fuzzydl.Sink) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.New().String(), Document: doc.Name}
	logger := t.logger.With("run_id", report.RunID, "document", doc.Name)

	logger.Debug("Translation started",
		"definitions", len(doc.Definitions),
		"axioms", len(doc.Axioms))

	tc := fuzzydl.NewContext(sink)
	err := t.run(ctx, tc, doc)

	report.Clauses = tc.Clauses()
	report.Diagnostics = tc.Diagnostics()
	report.Duration = time.Since(start)
	t.metrics.recordRun(report, err)

	if err != nil {
		logger.Error("Translation failed", "error", err, "clauses", report.Clauses)
		return report, err
	}

	if t.cfg.Translation.FailOnUnsupported && len(report.Diagnostics) > 0 {
		return report, sserrors.WrapInvalid(
			fmt.Errorf("%w: %d", ErrUnsupportedConstructs, len(report.Diagnostics)),
			component, "Translate", "check diagnostics")
	}

	logger.Info("Translation complete",
		"clauses", report.Clauses,
		"diagnostics", len(report.Diagnostics),
		"duration", report.Duration)
	return report, nil
}

func (t *Translator) run(ctx context.Context, tc *fuzzydl.Context, doc *ontology.Document) error {
	if doc.Logic != "" {
		if err := t.emitter.DefineFuzzyLogic(tc, doc.Logic); err != nil {
			return err
		}
	}

	for i, def := range doc.Definitions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.emitter.Define(tc, def); err != nil {
			return fmt.Errorf("definition %d (%s): %w", i, def.Name, err)
		}
	}

	for i, ax := range doc.Axioms {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.emitter.Emit(tc, ax); err != nil {
			return fmt.Errorf("axiom %d (%s): %w", i, ontology.Describe(ax), err)
		}
	}
	return nil
}

// Load parses the ontology document at path. A path that is an http or
// https URL is fetched under the configured input policy.
func (t *Translator) Load(ctx context.Context, path string) (*ontology.Document, error) {
	if weburl.IsRemote(path) {
		return t.loadRemote(ctx, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, sserrors.WrapInvalid(err, component, "Load", "read input")
	}
	doc, err := t.parsers.Parse(path, content)
	if err != nil {
		return nil, sserrors.WrapInvalid(err, component, "Load", "parse input")
	}
	return doc, nil
}

// loadRemote picks the parser from the URL's file extension, then from the
// response content type.
func (t *Translator) loadRemote(ctx context.Context, rawURL string) (*ontology.Document, error) {
	if err := t.policy.Validate(rawURL); err != nil {
		return nil, sserrors.WrapInvalid(err, component, "Load", "check input URL")
	}

	result, err := t.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, sserrors.WrapTransient(err, component, "Load", "fetch input")
	}
	t.logger.Debug("Fetched input", "url", rawURL, "bytes", len(result.Body), "content_type", result.ContentType)

	name := weburl.FileName(rawURL)
	p := t.parsers.GetByExtension(name)
	if p == nil && result.ContentType != "" {
		p = t.parsers.GetByMimeType(result.ContentType)
	}
	if p == nil {
		return nil, sserrors.WrapInvalid(fmt.Errorf("no parser for %s (content type %q)", name, result.ContentType),
			component, "Load", "parse input")
	}

	doc, err := p.Parse(name, result.Body)
	if err != nil {
		return nil, sserrors.WrapInvalid(err, component, "Load", "parse input")
	}
	return doc, nil
}

// TranslateFile translates the document at in and writes the result to out.
// An out of "-" writes to standard output. File output is written to a
// temporary file and renamed into place once the run succeeds.
func (t *Translator) TranslateFile(ctx context.Context, in, out string) (*Report, error) {
	doc, err := t.Load(ctx, in)
	if err != nil {
		return nil, err
	}

	format, err := export.ParseFormat(t.cfg.Output.Format)
	if err != nil {
		return nil, sserrors.WrapInvalid(err, component, "TranslateFile", "resolve output format")
	}

	if out == "-" {
		report, err := t.translateTo(ctx, doc, format, os.Stdout)
		if report != nil {
			report.Input = in
		}
		return report, err
	}

	if !t.cfg.Output.Overwrite {
		if _, err := os.Stat(out); err == nil {
			return nil, sserrors.WrapInvalid(fmt.Errorf("%s already exists", out),
				component, "TranslateFile", "check output")
		}
	}

	dir := filepath.Dir(out)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, sserrors.WrapFatal(err, component, "TranslateFile", "create output directory")
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(out)+".*")
	if err != nil {
		return nil, sserrors.WrapFatal(err, component, "TranslateFile", "create output")
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	report, err := t.translateTo(ctx, doc, format, tmp)
	if report != nil {
		report.Input, report.Output = in, out
	}
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = sserrors.WrapFatal(closeErr, component, "TranslateFile", "close output")
	}
	if err != nil {
		return report, err
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return report, sserrors.WrapFatal(err, component, "TranslateFile", "set output permissions")
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return report, sserrors.WrapFatal(err, component, "TranslateFile", "move output into place")
	}
	return report, nil
}

func (t *Translator) translateTo(ctx context.Context, doc *ontology.Document, format export.Format, w io.Writer) (*Report, error) {
	writer, err := export.NewWriter(format, w)
	if err != nil {
		return nil, sserrors.WrapInvalid(err, component, "translateTo", "create writer")
	}

	report, err := t.Translate(ctx, doc, writer)
	if err != nil && !errors.Is(err, ErrUnsupportedConstructs) {
		return report, err
	}
	// A run failed by unsupported constructs still flushes what it translated.
	if flushErr := writer.Flush(); flushErr != nil {
		return report, sserrors.WrapFatal(flushErr, component, "translateTo", "flush output")
	}
	return report, err
}
