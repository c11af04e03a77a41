package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetByMimeType(t *testing.T) {
	r := NewRegistry()

	t.Run("direct match", func(t *testing.T) {
		p := r.GetByMimeType("application/yaml")
		require.NotNil(t, p)
		assert.Equal(t, "application/yaml", p.MimeType())
	})

	t.Run("CanParse fallback", func(t *testing.T) {
		assert.NotNil(t, r.GetByMimeType("text/yaml"))
	})

	t.Run("JSON handled by YAML parser", func(t *testing.T) {
		assert.NotNil(t, r.GetByMimeType("application/json"))
	})

	t.Run("no parser for RDF/XML", func(t *testing.T) {
		assert.Nil(t, r.GetByMimeType("application/rdf+xml"))
	})

	t.Run("no parser for unknown type", func(t *testing.T) {
		assert.Nil(t, r.GetByMimeType("application/octet-stream"))
	})
}

func TestRegistry_GetByExtension(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		filename string
		wantNil  bool
	}{
		{"onto.yaml", false},
		{"onto.yml", false},
		{"onto.YAML", false},
		{"onto.json", false},
		{"onto.owl", true},
		{"onto.rdf", true},
		{"onto.ofn", true},
		{"onto.fdl", true},
		{"noextension", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			p := r.GetByExtension(tt.filename)
			if tt.wantNil {
				assert.Nil(t, p)
			} else {
				assert.NotNil(t, p)
			}
			assert.Equal(t, !tt.wantNil, r.Supported(tt.filename))
		})
	}
}

func TestRegistry_Parse(t *testing.T) {
	r := NewRegistry()

	doc, err := r.Parse("wine.json", []byte(`{"logic": "zadeh", "axioms": [{"subClassOf": {"sub": "A", "sup": "B"}}]}`))
	require.NoError(t, err)
	assert.Equal(t, "wine", doc.Name)
	assert.Equal(t, "zadeh", doc.Logic)
	assert.Len(t, doc.Axioms, 1)

	_, err = r.Parse("wine.owl", []byte("<rdf:RDF/>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser for file type: .owl")
}

func TestRegistry_ListMimeTypes(t *testing.T) {
	assert.Equal(t, []string{"application/yaml"}, NewRegistry().ListMimeTypes())
}

func TestMimeTypeFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".yaml", "application/yaml"},
		{".yml", "application/yaml"},
		{".json", "application/json"},
		{".YML", "application/yaml"},
		{".owl", "application/octet-stream"},
		{".ofn", "application/octet-stream"},
		{".xyz", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, MimeTypeFromExtension(tt.ext))
		})
	}
}

func TestExtensionFromMimeType(t *testing.T) {
	assert.Equal(t, ".yaml", ExtensionFromMimeType("text/yaml"))
	assert.Equal(t, ".json", ExtensionFromMimeType("application/json"))
	assert.Equal(t, "", ExtensionFromMimeType("application/rdf+xml"))
	assert.Equal(t, "", ExtensionFromMimeType("application/pdf"))
}
