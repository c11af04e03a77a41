package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sserrors "github.com/c360studio/semstreams/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamhec/FLOCI/config"
	"github.com/hamhec/FLOCI/export"
	"github.com/hamhec/FLOCI/translator"
)

const sampleOntology = `
name: sample
logic: lukasiewicz
axioms:
  - subClassOf: {sub: Dog, sup: Animal}
  - classAssertion: {individual: rex, class: Dog, degree: 0.9}
`

var sampleClauses = []string{
	"(define-fuzzy-logic lukasiewicz)",
	"(define-primitive-concept Dog Animal)",
	"(instance rex Dog 0.9)",
}

// execute runs the root command with an isolated home directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "floci version "+Version+" (build: "+BuildTime+")\n", stdout)
}

func TestRootRequiresInputAndOutput(t *testing.T) {
	_, _, err := execute(t, "only-input.yaml")
	assert.Error(t, err)
}

func TestTranslateCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.yaml")
	out := filepath.Join(dir, "sample.fdl")
	writeFile(t, in, sampleOntology)

	_, _, err := execute(t, in, out)
	require.NoError(t, err)
	assert.Equal(t, sampleClauses, readLines(t, out))
}

func TestTranslateCommandFormatFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.yaml")
	out := filepath.Join(dir, "sample.json")
	writeFile(t, in, sampleOntology)

	_, _, err := execute(t, "--format", "json", in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc export.JSONDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, sampleClauses, doc.Clauses)
}

func TestTranslateCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.yaml")
	out := filepath.Join(dir, "sample.json")
	cfgPath := filepath.Join(dir, "custom.yaml")
	writeFile(t, in, sampleOntology)
	writeFile(t, cfgPath, "output:\n  format: json\n")

	_, _, err := execute(t, "--config", cfgPath, in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestTranslateCommandFailOnUnsupported(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "partial.yaml")
	writeFile(t, in, "axioms:\n  - classAssertion: {individual: a, class: {oneOf: [b]}}\n  - transitive: partOf\n")

	_, _, err := execute(t, in, filepath.Join(dir, "lenient.fdl"))
	require.NoError(t, err)
	assert.Equal(t, []string{"(transitive partOf)"}, readLines(t, filepath.Join(dir, "lenient.fdl")))

	_, _, err = execute(t, "--fail-on-unsupported", in, filepath.Join(dir, "strict.fdl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, translator.ErrUnsupportedConstructs))
}

func TestTranslateCommandInvalidFlags(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.yaml")
	writeFile(t, in, sampleOntology)

	_, _, err := execute(t, "--format", "owl", in, filepath.Join(dir, "out.fdl"))
	assert.Error(t, err)

	_, _, err = execute(t, "--log-level", "verbose", in, filepath.Join(dir, "out.fdl"))
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	src := t.TempDir()
	outDir := t.TempDir()
	writeFile(t, filepath.Join(src, "zoo", "dogs.yaml"), sampleOntology)
	writeFile(t, filepath.Join(src, "zoo", "cats.yaml"), "axioms:\n  - reflexive: knows\n")

	_, _, err := execute(t, "batch", filepath.Join(src, "**", "*.yaml"), outDir)
	require.NoError(t, err)

	assert.Equal(t, sampleClauses, readLines(t, filepath.Join(outDir, "zoo", "dogs.fdl")))
	assert.Equal(t, []string{"(reflexive knows)"}, readLines(t, filepath.Join(outDir, "zoo", "cats.fdl")))
}

func TestConfigInitAndShow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var stdout bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "init"})
	require.NoError(t, cmd.Execute())

	path := filepath.Join(home, config.UserConfigDir, config.UserConfigFile)
	assert.Equal(t, path+"\n", stdout.String())
	assert.FileExists(t, path)

	stdout.Reset()
	cmd = rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "show", "--format", "json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "format: json")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "input", "a.yaml")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "a.yaml", entry["input"])

	_, err = newLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", sserrors.WrapInvalid(cause, "Translator", "Load", "parse input"), exitInvalid},
		{"transient", sserrors.WrapTransient(cause, "Translator", "Load", "fetch input"), exitTransient},
		{"fatal", sserrors.WrapFatal(cause, "Translator", "TranslateFile", "create output"), exitFatal},
		{"wrapped invalid", fmt.Errorf("batch: %w", sserrors.WrapInvalid(cause, "Translator", "Load", "read input")), exitInvalid},
		{"interrupted", fmt.Errorf("translate: %w", context.Canceled), exitInterrupted},
		{"unclassified", errors.New("accepts 2 arg(s), received 1"), exitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestCommandErrorsExitByClass(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "partial.yaml")
	writeFile(t, in, "axioms:\n  - classAssertion: {individual: a, class: {oneOf: [b]}}\n")

	_, _, err := execute(t, "--fail-on-unsupported", in, filepath.Join(dir, "out.fdl"))
	require.Error(t, err)
	assert.Equal(t, exitInvalid, exitCode(err))

	_, _, err = execute(t, "--format", "owl", in, filepath.Join(dir, "out.fdl"))
	require.Error(t, err)
	assert.Equal(t, exitInvalid, exitCode(err))

	_, _, err = execute(t, filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "out.fdl"))
	require.Error(t, err)
	assert.Equal(t, exitInvalid, exitCode(err))
}
