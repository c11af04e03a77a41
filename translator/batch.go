package translator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	sserrors "github.com/c360studio/semstreams/pkg/errs"
)

// TranslateGlob translates every ontology document matching pattern (which
// may use ** for recursive matches) into outDir. Outputs keep their path
// relative to the pattern's base directory, with the configured extension.
//
// Files are translated sequentially in lexical order. A failing file does not
// stop the batch; its error is joined into the returned error. Cancellation
// stops the batch before the next file.
func (t *Translator) TranslateGlob(ctx context.Context, pattern, outDir string) ([]*Report, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, sserrors.WrapInvalid(err, component, "TranslateGlob", "expand pattern")
	}
	sort.Strings(matches)

	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base = filepath.FromSlash(base)

	var (
		reports []*Report
		errs    []error
	)
	inputs := 0
	for _, in := range matches {
		if !t.parsers.Supported(in) {
			continue
		}
		inputs++

		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		out := t.outputPath(base, in, outDir)
		report, err := t.TranslateFile(ctx, in, out)
		if report != nil {
			reports = append(reports, report)
		}
		if err != nil {
			t.logger.Warn("Batch input failed", "input", in, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", in, err))
		}
	}

	if inputs == 0 {
		return nil, sserrors.WrapInvalid(fmt.Errorf("no ontology documents match %s", pattern),
			component, "TranslateGlob", "expand pattern")
	}

	t.logger.Info("Batch complete",
		"inputs", inputs,
		"succeeded", inputs-len(errs),
		"failed", len(errs))
	return reports, errors.Join(errs...)
}

// outputPath maps an input below base to its output below outDir.
func (t *Translator) outputPath(base, in, outDir string) string {
	rel, err := filepath.Rel(base, in)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(in)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(outDir, rel+t.cfg.Output.Extension)
}
