// Package parquet exports assignment results to Parquet files using
// github.com/parquet-go/parquet-go, for analysis in notebooks and BI tools.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// AssignmentRecord is one flattened epic assignment. The field order
// matches the CSV export and the epicassign_assignments database table.
type AssignmentRecord struct {
	// EpicID is the assigned epic's identifier
	EpicID string `parquet:"epic_id,snappy"`

	// EpicTitle is the epic's human-readable title
	EpicTitle string `parquet:"epic_title,snappy"`

	// Category is the classified taxonomy category
	Category string `parquet:"category,snappy"`

	// StoryPoints is the epic's total story point estimate
	StoryPoints int32 `parquet:"story_points,snappy"`

	// StoryCount is the number of user stories in the epic
	StoryCount int32 `parquet:"story_count,snappy"`

	// Developer is the assigned developer's username
	Developer string `parquet:"developer,snappy"`

	// Expertise is the developer's primary expertise category
	Expertise string `parquet:"expertise,snappy"`

	// ExperienceLevel is the developer's seniority tier
	ExperienceLevel string `parquet:"experience_level,snappy"`

	// Score is the 0-100 assignment score
	Score int32 `parquet:"score,snappy"`

	// Confidence is the assignment confidence bucket
	Confidence string `parquet:"confidence,snappy"`
}

// FlattenAssignments converts an assignment result into export records.
func FlattenAssignments(result *schema.AssignmentResult) []AssignmentRecord {
	records := make([]AssignmentRecord, 0, len(result.Assignments))
	for i := range result.Assignments {
		a := &result.Assignments[i]
		records = append(records, AssignmentRecord{
			EpicID:          a.Epic.ID,
			EpicTitle:       a.Epic.Title,
			Category:        string(a.Epic.Classification.Primary),
			StoryPoints:     int32(a.Epic.TotalStoryPoints),
			StoryCount:      int32(a.Epic.UserStoryCount),
			Developer:       a.Developer.Username,
			Expertise:       string(a.Developer.Expertise),
			ExperienceLevel: string(a.Developer.ExperienceLevel),
			Score:           int32(a.Score),
			Confidence:      string(a.Confidence),
		})
	}
	return records
}

// WriteAssignmentsParquet writes assignment records to a Parquet file.
func WriteAssignmentsParquet(result *schema.AssignmentResult, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the AssignmentRecord struct tags
	writer := parquet.NewGenericWriter[AssignmentRecord](file)

	if _, err := writer.Write(FlattenAssignments(result)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
