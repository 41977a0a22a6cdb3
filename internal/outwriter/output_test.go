package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

func sampleProfiles() []schema.DeveloperProfile {
	return []schema.DeveloperProfile{
		{
			Username: "alice",
			Analysis: &schema.CommitAnalysis{
				TotalCommits:     120,
				OnTimePercentage: 95.5,
				MessageQuality:   42.3,
				ConsistencyScore: 71.0,
				AvgCommitSize:    180,
				Expertise:        schema.ExpertiseProfile{Primary: schema.CategoryBackend},
				ExperienceLevel:  schema.ExperienceLevel{Level: schema.SeniorTier, Score: 85},
			},
		},
	}
}

func sampleAssignments() *schema.AssignmentResult {
	return &schema.AssignmentResult{
		Assignments: []schema.Assignment{
			{
				Epic: schema.EpicSummary{
					ID:    "epic-1",
					Title: "Payment API",
					Classification: schema.EpicClassification{
						Primary:    schema.CategoryBackend,
						Confidence: schema.HighConfidence,
						Method:     schema.KeywordMethod,
					},
					TotalStoryPoints: 13,
					UserStoryCount:   3,
				},
				Developer: schema.DeveloperSnapshot{
					Username:        "alice",
					Expertise:       schema.CategoryBackend,
					ExperienceLevel: schema.SeniorTier,
				},
				Score:      82,
				Confidence: schema.HighConfidence,
			},
		},
		Workload: schema.WorkloadDistribution{"alice": 13, "bob": 0},
		Summary: schema.AssignmentSummary{
			TotalEpics:           1,
			TotalStoryPoints:     13,
			AvgStoryPointsPerDev: 6.5,
			HighConfidence:       1,
		},
	}
}

func TestWriteProfileTable(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Width: 120}

	var buf bytes.Buffer
	err := writeProfileTable(&buf, sampleProfiles(), cfg, createFloatFormatter(cfg.Precision))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Backend Development")
	assert.Contains(t, out, "Senior")
	assert.Contains(t, out, "95.5")
	assert.Contains(t, out, "Analyzed 1 developers")
}

func TestWriteProfileCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeProfileCSV(&buf, sampleProfiles(), createFloatFormatter(1))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2) // header + 1 row

	assert.Contains(t, lines[0], "developer")
	assert.Contains(t, lines[0], "experience_level")
	assert.Contains(t, lines[1], "alice")
	assert.Contains(t, lines[1], "Backend Development")
	assert.Contains(t, lines[1], "42.3")
}

func TestWriteAssignmentTable(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Width: 140}

	var buf bytes.Buffer
	err := writeAssignmentTable(&buf, sampleAssignments(), cfg, createFloatFormatter(cfg.Precision))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "epic-1")
	assert.Contains(t, out, "Payment API")
	assert.Contains(t, out, "alice: 13 story points")
	assert.Contains(t, out, "bob: 0 story points")
	assert.Contains(t, out, "Assigned 1 epics (13 story points, 6.5 avg per developer)")
	assert.Contains(t, out, "Confidence: 1 high, 0 medium, 0 low")
}

func TestWriteAssignmentCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeAssignmentCSV(&buf, sampleAssignments())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "epic_id,epic_title,category,story_points,story_count,developer,expertise,experience_level,score,confidence", lines[0])
	assert.Equal(t, "epic-1,Payment API,Backend Development,13,3,alice,Backend Development,Senior,82,high", lines[1])
}

func TestWriteClassificationJSON(t *testing.T) {
	results := []schema.EpicResult{
		{
			EpicID: "epic-7",
			Classification: schema.EpicClassification{
				Primary:    schema.CategoryDatabase,
				Confidence: schema.HighConfidence,
				Method:     schema.KeywordMethod,
				Score:      2,
			},
		},
	}

	var buf bytes.Buffer
	err := writeJSON(&buf, results)
	require.NoError(t, err)

	var decoded []map[string]any
	err = json.Unmarshal(buf.Bytes(), &decoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "epic-7", decoded[0]["epic_id"])
}

func TestGetMaxTableTitleWidth(t *testing.T) {
	// Width override is respected and clamped to sane bounds
	assert.Equal(t, 15, getMaxTableTitleWidth(&contract.Config{Width: 40}))
	assert.Equal(t, 50, getMaxTableTitleWidth(&contract.Config{Width: 120}))
	assert.Equal(t, 60, getMaxTableTitleWidth(&contract.Config{Width: 500}))
}
