package aiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

func TestNewWithoutKey(t *testing.T) {
	cfg := &contract.Config{}
	assert.Nil(t, New(cfg))
}

func TestNewDefaults(t *testing.T) {
	cfg := &contract.Config{AIAPIKey: "test-key"}
	classifier := New(cfg)
	assert.NotNil(t, classifier)
	assert.Equal(t, DefaultModel, classifier.model)
}

func TestMatchCategory(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected schema.Category
		wantErr  bool
	}{
		{name: "exact", answer: "Backend Development", expected: schema.CategoryBackend},
		{name: "case insensitive", answer: "backend development", expected: schema.CategoryBackend},
		{name: "trailing period", answer: "Frontend Development.", expected: schema.CategoryFrontend},
		{name: "quoted", answer: `"Mobile Development"`, expected: schema.CategoryMobile},
		{name: "chatty answer", answer: "I would go with Data Science/ML here", expected: schema.CategoryDataML},
		{name: "full stack", answer: "Full Stack", expected: schema.CategoryFullStack},
		{name: "empty", answer: "   ", wantErr: true},
		{name: "nonsense", answer: "underwater basket weaving", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchCategory(tt.answer)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSystemPromptListsAllCategories(t *testing.T) {
	prompt := systemPrompt()
	for _, cat := range schema.ClassifierCategories {
		assert.Contains(t, prompt, string(cat))
	}
}
