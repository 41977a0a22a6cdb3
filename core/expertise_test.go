package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

func changes(filenames ...string) []schema.FileChange {
	files := make([]schema.FileChange, len(filenames))
	for i, f := range filenames {
		files[i] = schema.FileChange{Filename: f}
	}
	return files
}

// TestDetectExpertiseSingleCategory checks extension, config and path
// weights for a clearly backend-leaning file set.
func TestDetectExpertiseSingleCategory(t *testing.T) {
	profile := DetectExpertise(changes("api/server.go", "go.mod"), nil)

	assert.Equal(t, schema.CategoryBackend, profile.Primary)
	require.Len(t, profile.All, 1)
	// server.go: +2 extension, +3 "api/" marker; go.mod: +5 config marker.
	assert.Equal(t, float64(10), profile.All[0].Score)
	assert.Contains(t, profile.Technologies, "GO")
	assert.Contains(t, profile.Technologies, "go.mod")
}

// TestDetectExpertiseFullStack promotes to Full Stack when three or more
// categories land within half of the top score.
func TestDetectExpertiseFullStack(t *testing.T) {
	files := changes("ios/App.swift", "src/components/App.jsx", "api/server.py")
	profile := DetectExpertise(files, nil)

	assert.Equal(t, schema.CategoryFullStack, profile.Primary)
	require.Len(t, profile.All, 3)
	names := []schema.Category{profile.All[0].Name, profile.All[1].Name, profile.All[2].Name}
	assert.Contains(t, names, schema.CategoryMobile)
	assert.Contains(t, names, schema.CategoryFrontend)
	assert.Contains(t, names, schema.CategoryBackend)
}

// TestDetectExpertiseZeroSignal falls back to General Development.
func TestDetectExpertiseZeroSignal(t *testing.T) {
	profile := DetectExpertise(changes("LICENSE", "NOTICE"), nil)

	assert.Equal(t, schema.CategoryGeneral, profile.Primary)
	require.Len(t, profile.All, 1)
	assert.Equal(t, float64(0), profile.All[0].Score)
	assert.Empty(t, profile.Technologies)
}

// TestDetectExpertiseFrequencyWeights verifies the extension-frequency
// pass that rewards many small commits as much as one large one.
func TestDetectExpertiseFrequencyWeights(t *testing.T) {
	fileTypes := []schema.FileTypeCount{{Name: ".sql", Value: 12}}
	profile := DetectExpertise(nil, fileTypes)

	assert.Equal(t, schema.CategoryDatabase, profile.Primary)
	require.Len(t, profile.All, 1)
	assert.Equal(t, float64(12), profile.All[0].Score)
}

// TestDetectExpertiseSharedExtension checks that ambiguous extensions
// credit every category claiming them.
func TestDetectExpertiseSharedExtension(t *testing.T) {
	// .py belongs to both Backend Development and Data Science/ML.
	profile := DetectExpertise(changes("training/model.py"), nil)

	var names []schema.Category
	for _, entry := range profile.All {
		names = append(names, entry.Name)
	}
	assert.Contains(t, names, schema.CategoryDataML)
	assert.Contains(t, names, schema.CategoryBackend)
	// training/ is a Data Science marker, so it outranks Backend.
	assert.Equal(t, schema.CategoryDataML, profile.All[0].Name)
}

// TestDetectExpertiseRankedListCap bounds a single-specialty ranked list
// to four entries.
func TestDetectExpertiseRankedListCap(t *testing.T) {
	files := changes(
		"api/server.go", "api/handler.go", "api/auth.go", "api/user.go",
		"styles/site.css",
		"migrations/001_init.sql",
		"deploy/app.yml",
		"Scripts/player.lua",
	)
	profile := DetectExpertise(files, nil)

	assert.NotEqual(t, schema.CategoryGeneral, profile.Primary)
	assert.LessOrEqual(t, len(profile.All), 4)
}
