package translator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamhec/FLOCI/config"
)

func TestTranslateGlob(t *testing.T) {
	tr := newTestTranslator(t, nil)
	src := t.TempDir()
	outDir := t.TempDir()

	writeInput(t, filepath.Join(src, "people.yaml"), peopleYAML)
	writeInput(t, filepath.Join(src, "nested", "parts.yml"), "axioms:\n  - transitive: partOf\n")
	writeInput(t, filepath.Join(src, "nested", "README.md"), "# not an ontology\n")

	reports, err := tr.TranslateGlob(context.Background(), filepath.Join(src, "**", "*"), outDir)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, []string{"(transitive partOf)"}, readLines(t, filepath.Join(outDir, "nested", "parts.fdl")))
	assert.Equal(t, peopleClauses, readLines(t, filepath.Join(outDir, "people.fdl")))

	_, err = os.Stat(filepath.Join(outDir, "nested", "README.fdl"))
	assert.True(t, os.IsNotExist(err))
}

func TestTranslateGlobExtension(t *testing.T) {
	tr := newTestTranslator(t, func(c *config.Config) { c.Output.Extension = ".fuzzydl" })
	src := t.TempDir()
	outDir := t.TempDir()
	writeInput(t, filepath.Join(src, "people.yaml"), peopleYAML)

	_, err := tr.TranslateGlob(context.Background(), filepath.Join(src, "*.yaml"), outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "people.fuzzydl"))
}

func TestTranslateGlobContinuesAfterFailure(t *testing.T) {
	tr := newTestTranslator(t, nil)
	src := t.TempDir()
	outDir := t.TempDir()

	writeInput(t, filepath.Join(src, "a.yaml"), "axioms: [{subsumes: x}]")
	writeInput(t, filepath.Join(src, "b.yaml"), "axioms:\n  - symmetric: sibling\n")

	reports, err := tr.TranslateGlob(context.Background(), filepath.Join(src, "*.yaml"), outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.yaml")
	require.Len(t, reports, 1)
	assert.Equal(t, []string{"(symmetric sibling)"}, readLines(t, filepath.Join(outDir, "b.fdl")))
}

func TestTranslateGlobNoMatches(t *testing.T) {
	tr := newTestTranslator(t, nil)
	_, err := tr.TranslateGlob(context.Background(), filepath.Join(t.TempDir(), "*.yaml"), t.TempDir())
	assert.Error(t, err)
}

func TestTranslateGlobCancelled(t *testing.T) {
	tr := newTestTranslator(t, nil)
	src := t.TempDir()
	writeInput(t, filepath.Join(src, "people.yaml"), peopleYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := tr.TranslateGlob(ctx, filepath.Join(src, "*.yaml"), t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reports)
}

func TestOutputPath(t *testing.T) {
	tr := newTestTranslator(t, nil)

	assert.Equal(t, filepath.Join("out", "a", "b.fdl"), tr.outputPath("src", filepath.Join("src", "a", "b.yaml"), "out"))
	assert.Equal(t, filepath.Join("out", "c.fdl"), tr.outputPath("src", filepath.Join("elsewhere", "c.json"), "out"))
}
