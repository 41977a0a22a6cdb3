package profilestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

func TestStore_NoneBackend(t *testing.T) {
	store, err := NewStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// All operations are no-ops for the none backend
	err = store.SaveProfile(&schema.DeveloperProfile{Username: "alice"})
	assert.NoError(t, err)

	profile, err := store.GetProfile("alice")
	assert.NoError(t, err)
	assert.Nil(t, profile)

	usernames, err := store.ListProfiles()
	assert.NoError(t, err)
	assert.Empty(t, usernames)

	runID, err := store.SaveAssignmentRun(&schema.AssignmentResult{})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	err = store.Close()
	assert.NoError(t, err)
}

func TestStore_UnsupportedBackend(t *testing.T) {
	_, err := NewStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

func TestStore_SQLiteProfiles(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	profile := &schema.DeveloperProfile{
		Username: "alice",
		Avatar:   "https://github.com/alice.png",
		Analysis: &schema.CommitAnalysis{
			TotalCommits: 42,
			Expertise: schema.ExpertiseProfile{
				Primary: schema.CategoryBackend,
				All:     []schema.ExpertiseScore{{Name: schema.CategoryBackend, Score: 20}},
			},
			ExperienceLevel: schema.ExperienceLevel{Level: schema.MidLevelTier, Score: 63},
		},
	}

	err = store.SaveProfile(profile)
	require.NoError(t, err)

	got, err := store.GetProfile("alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, 42, got.Analysis.TotalCommits)
	assert.Equal(t, schema.CategoryBackend, got.Analysis.Expertise.Primary)
	assert.Equal(t, schema.MidLevelTier, got.Analysis.ExperienceLevel.Level)

	// Upsert replaces the stored analysis wholesale
	profile.Analysis.TotalCommits = 100
	err = store.SaveProfile(profile)
	require.NoError(t, err)

	got, err = store.GetProfile("alice")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Analysis.TotalCommits)

	// Unknown username is nil, not an error
	missing, err := store.GetProfile("nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_SQLiteListProfiles(t *testing.T) {
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	for _, name := range []string{"carol", "alice", "bob"} {
		err := store.SaveProfile(&schema.DeveloperProfile{Username: name})
		require.NoError(t, err)
	}

	usernames, err := store.ListProfiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, usernames)
}

func TestStore_SQLiteAssignmentRun(t *testing.T) {
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	result := &schema.AssignmentResult{
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
		Workload: schema.WorkloadDistribution{"alice": 13},
		Summary: schema.AssignmentSummary{
			TotalEpics:           1,
			TotalStoryPoints:     13,
			AvgStoryPointsPerDev: 13,
			HighConfidence:       1,
		},
	}

	runID, err := store.SaveAssignmentRun(result)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	// A second run gets a new id
	secondID, err := store.SaveAssignmentRun(result)
	require.NoError(t, err)
	assert.Greater(t, secondID, runID)
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`epicassign_profiles`", quoteTableName(profilesTable, schema.MySQLBackend))
	assert.Equal(t, `"epicassign_profiles"`, quoteTableName(profilesTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"epicassign_profiles"`, quoteTableName(profilesTable, schema.SQLiteBackend))
}
