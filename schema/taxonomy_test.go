package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTaxonomyCoversClassifierCategories ensures every category in the
// evaluation order has a taxonomy entry, so the classifier and the
// detector never disagree on category names.
func TestTaxonomyCoversClassifierCategories(t *testing.T) {
	for _, cat := range ClassifierCategories {
		markers, ok := Taxonomy[cat]
		require.True(t, ok, "missing taxonomy entry for %q", cat)
		assert.NotEmpty(t, markers.Keywords, "category %q has no keywords", cat)
	}
	assert.Len(t, ClassifierCategories, len(Taxonomy))
}

// TestTaxonomyKeywordsAreLowercase guards the classifier's case-folded
// substring matching: a mixed-case keyword could never match.
func TestTaxonomyKeywordsAreLowercase(t *testing.T) {
	for cat, markers := range Taxonomy {
		for _, kw := range markers.Keywords {
			assert.Equal(t, strings.ToLower(kw), kw, "category %q keyword %q", cat, kw)
		}
	}
}

// TestTaxonomyFileMarkers spot-checks the file-oriented attribute sets
// consumed by the expertise detector.
func TestTaxonomyFileMarkers(t *testing.T) {
	assert.Contains(t, Taxonomy[CategoryBackend].Extensions, "go")
	assert.Contains(t, Taxonomy[CategoryFrontend].Extensions, "tsx")
	assert.Contains(t, Taxonomy[CategoryMobile].ConfigFiles, "Podfile")
	assert.Contains(t, Taxonomy[CategoryDevOps].PathMarkers, "terraform/")

	// Full Stack is text-only: it has no file markers of its own.
	fs := Taxonomy[CategoryFullStack]
	assert.Empty(t, fs.Extensions)
	assert.Empty(t, fs.ConfigFiles)
	assert.Empty(t, fs.PathMarkers)
}
