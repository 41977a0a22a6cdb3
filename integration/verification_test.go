//go:build basic

// Package integration contains integration tests for epicassign.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// TestAssignPipeline runs classify and assign end to end on fixture files
// and verifies the workload bookkeeping of the result.
func TestAssignPipeline(t *testing.T) {
	dir := t.TempDir()
	epicsPath, developersPath := writeFixtures(t, dir)

	// Classification alone should succeed and report both epics.
	output, err := runCommand(t, "classify", "--epics", epicsPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Classified 2 epics")

	// Full assignment run with JSON output.
	resultPath := filepath.Join(dir, "assignments.json")
	_, err = runCommand(t, "assign",
		"--epics", epicsPath,
		"--developers", developersPath,
		"--output", "json",
		"--output-file", resultPath,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(resultPath)
	require.NoError(t, err)

	var result schema.AssignmentResult
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result.Assignments, 2)

	// The backend epic carries explicit story estimates, the story-less
	// mobile epic falls back to the default.
	assert.Equal(t, 8+schema.DefaultEpicStoryPoints, result.Summary.TotalStoryPoints)
	assert.Equal(t, result.Summary.TotalStoryPoints, result.Workload.Total())

	// Expertise should split the epics between the two developers.
	assignees := map[string]string{}
	for _, a := range result.Assignments {
		assignees[a.Epic.ID] = a.Developer.Username
	}
	assert.Equal(t, "alice", assignees["epic-1"])
	assert.Equal(t, "bob", assignees["epic-2"])
}

// TestReassignRoundTrip verifies that a manual reassignment moves story
// points and survives a file round trip.
func TestReassignRoundTrip(t *testing.T) {
	dir := t.TempDir()
	epicsPath, developersPath := writeFixtures(t, dir)

	resultPath := filepath.Join(dir, "assignments.json")
	_, err := runCommand(t, "assign",
		"--epics", epicsPath,
		"--developers", developersPath,
		"--output", "json",
		"--output-file", resultPath,
	)
	require.NoError(t, err)

	output, err := runCommand(t, "reassign", "epic-1", "bob", "--assignments", resultPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Reassigned epic-1 to bob")

	data, err := os.ReadFile(resultPath)
	require.NoError(t, err)

	var result schema.AssignmentResult
	require.NoError(t, json.Unmarshal(data, &result))

	for _, a := range result.Assignments {
		if a.Epic.ID == "epic-1" {
			assert.Equal(t, "bob", a.Developer.Username)
			assert.Equal(t, schema.ManualConfidence, a.Confidence)
		}
	}
	assert.Equal(t, 0, result.Workload["alice"])
	assert.Equal(t, result.Summary.TotalStoryPoints, result.Workload["bob"])

	// An unknown epic id must fail without touching the file.
	before, err := os.ReadFile(resultPath)
	require.NoError(t, err)
	_, err = runCommand(t, "reassign", "epic-999", "alice", "--assignments", resultPath)
	require.Error(t, err)
	after, err := os.ReadFile(resultPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
