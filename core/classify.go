package core

import (
	"context"
	"strings"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// ClassifyEpic assigns a domain category to an epic from its title and
// description. The keyword rule pass wins outright when a single category
// dominates; ties are broken by the injected AI capability when one is
// available, and degrade to the first tied category otherwise. A failing
// or absent AI classifier never surfaces as an error: classification
// always returns a best-effort result.
func ClassifyEpic(ctx context.Context, ai contract.AIClassifier, epic *schema.Epic) schema.EpicClassification {
	text := strings.ToLower(epic.Title + " " + epic.Description)

	maxScore := 0
	var tied []schema.Category
	for _, cat := range schema.ClassifierCategories {
		score := keywordScore(text, schema.Taxonomy[cat].Keywords)
		if score == 0 {
			continue
		}
		switch {
		case score > maxScore:
			maxScore = score
			tied = []schema.Category{cat}
		case score == maxScore:
			tied = append(tied, cat)
		}
	}

	if len(tied) == 1 {
		return schema.EpicClassification{
			Primary:    tied[0],
			Confidence: schema.HighConfidence,
			Method:     schema.KeywordMethod,
			Score:      maxScore,
		}
	}

	if len(tied) > 1 {
		if ai != nil {
			if cat, err := ai.Classify(ctx, epic.Title, epic.Description); err == nil && cat != "" {
				return schema.EpicClassification{
					Primary:      cat,
					Confidence:   schema.MediumConfidence,
					Method:       schema.AIFallbackMethod,
					Alternatives: tied,
				}
			}
		}
		// AI unavailable or unusable: first tied category in taxonomy
		// order, remaining ties recorded as alternatives.
		return schema.EpicClassification{
			Primary:      tied[0],
			Confidence:   schema.LowConfidence,
			Method:       schema.KeywordMethod,
			Score:        maxScore,
			Alternatives: tied[1:],
		}
	}

	return schema.EpicClassification{
		Primary:    schema.CategoryFullStack,
		Confidence: schema.LowConfidence,
		Method:     schema.DefaultMethod,
	}
}

// ClassifyEpics classifies a batch of epics in input order.
func ClassifyEpics(ctx context.Context, ai contract.AIClassifier, epics []schema.Epic) []schema.EpicResult {
	results := make([]schema.EpicResult, 0, len(epics))
	for i := range epics {
		results = append(results, schema.EpicResult{
			EpicID:         epics[i].ID,
			Classification: ClassifyEpic(ctx, ai, &epics[i]),
		})
	}
	return results
}

// keywordScore counts how many of the category's keyword phrases occur
// as literal substrings of the case-folded text.
func keywordScore(text string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	return score
}
