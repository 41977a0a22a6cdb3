package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// TestCalculateExperienceLevel walks each step function through its bands
// and checks the composite tier mapping.
func TestCalculateExperienceLevel(t *testing.T) {
	tests := []struct {
		name          string
		commits       int
		onTimePct     float64
		quality       float64
		consistency   float64
		expectedScore int
		expectedTier  schema.Tier
	}{
		{
			name:          "all zero input is total",
			expectedScore: 22, // 10 + 2 + 5 + 5
			expectedTier:  schema.BeginnerTier,
		},
		{
			name:    "max everything",
			commits: 250, onTimePct: 70, quality: 45, consistency: 80,
			expectedScore: 100,
			expectedTier:  schema.SeniorTier,
		},
		{
			name:    "solid mid-level",
			commits: 120, onTimePct: 55, quality: 35, consistency: 65,
			expectedScore: 75, // 30 + 10 + 20 + 15
			expectedTier:  schema.MidLevelTier,
		},
		{
			name:    "junior",
			commits: 60, onTimePct: 40, quality: 25, consistency: 50,
			expectedScore: 55, // 25 + 5 + 15 + 10
			expectedTier:  schema.JuniorTier,
		},
		{
			name:    "consistency gated by volume",
			commits: 40, onTimePct: 70, quality: 45, consistency: 90,
			expectedScore: 60, // 10 + 15 + 25 + 10: high consistency but only 40 commits
			expectedTier:  schema.MidLevelTier,
		},
		{
			name:    "volume band boundary at 200",
			commits: 201, onTimePct: 0, quality: 0, consistency: 0,
			expectedScore: 52, // 40 + 2 + 5 + 5
			expectedTier:  schema.JuniorTier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := CalculateExperienceLevel(tt.commits, tt.onTimePct, tt.quality, tt.consistency)
			assert.Equal(t, tt.expectedScore, level.Score)
			assert.Equal(t, tt.expectedTier, level.Level)
			assert.GreaterOrEqual(t, level.Score, 0)
			assert.LessOrEqual(t, level.Score, 100)
			assert.Equal(t, schema.TierForScore(level.Score), level.Level)
		})
	}
}
