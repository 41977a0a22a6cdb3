package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEpicTotalStoryPoints pins the story point defaulting rules: 5 per
// unestimated story, 10 for an epic with no stories at all.
func TestEpicTotalStoryPoints(t *testing.T) {
	tests := []struct {
		name     string
		epic     Epic
		expected int
	}{
		{
			name:     "no stories defaults to 10",
			epic:     Epic{ID: "E1"},
			expected: DefaultEpicStoryPoints,
		},
		{
			name: "estimated stories are summed",
			epic: Epic{ID: "E2", UserStories: []UserStory{
				{Title: "a", StoryPoints: 3},
				{Title: "b", StoryPoints: 8},
			}},
			expected: 11,
		},
		{
			name: "unestimated story defaults to 5",
			epic: Epic{ID: "E3", UserStories: []UserStory{
				{Title: "a", StoryPoints: 2},
				{Title: "b"},
			}},
			expected: 7,
		},
		{
			name: "all unestimated",
			epic: Epic{ID: "E4", UserStories: []UserStory{
				{Title: "a"}, {Title: "b"}, {Title: "c"},
			}},
			expected: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.epic.TotalStoryPoints())
		})
	}
}

// TestCommitRecordSize verifies that size falls back to 0 without stats.
func TestCommitRecordSize(t *testing.T) {
	detailed := CommitRecord{Stats: &CommitStats{Additions: 30, Deletions: 12}}
	assert.Equal(t, 42, detailed.Size())

	plain := CommitRecord{}
	assert.Equal(t, 0, plain.Size())
}

// TestWorkloadTotal verifies the grand total helper used by the
// bookkeeping invariants.
func TestWorkloadTotal(t *testing.T) {
	assert.Equal(t, 0, WorkloadDistribution{}.Total())
	assert.Equal(t, 60, WorkloadDistribution{"a": 10, "b": 20, "c": 30}.Total())
}

// TestTierForScore pins the monotonic tier boundaries.
func TestTierForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected Tier
	}{
		{100, SeniorTier},
		{80, SeniorTier},
		{79, MidLevelTier},
		{60, MidLevelTier},
		{59, JuniorTier},
		{40, JuniorTier},
		{39, BeginnerTier},
		{0, BeginnerTier},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierForScore(tt.score), "score %d", tt.score)
	}
}

// TestConfidenceForScore pins the assignment confidence thresholds.
func TestConfidenceForScore(t *testing.T) {
	assert.Equal(t, HighConfidence, ConfidenceForScore(70))
	assert.Equal(t, MediumConfidence, ConfidenceForScore(69.9))
	assert.Equal(t, MediumConfidence, ConfidenceForScore(50))
	assert.Equal(t, LowConfidence, ConfidenceForScore(49.9))
}

// TestTierScore covers the known tiers and the unknown fallback.
func TestTierScore(t *testing.T) {
	assert.Equal(t, float64(30), TierScore(SeniorTier))
	assert.Equal(t, float64(20), TierScore(MidLevelTier))
	assert.Equal(t, float64(10), TierScore(JuniorTier))
	assert.Equal(t, float64(5), TierScore(BeginnerTier))
	assert.Equal(t, float64(5), TierScore(Tier("")))
}
