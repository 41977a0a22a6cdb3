package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/internal/parquet"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// WriteAssignmentResults outputs an assignment result, dispatching based on
// the output format configured.
func WriteAssignmentResults(result *schema.AssignmentResult, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssignmentCSV(w, result)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteAssignmentsParquet(result, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssignmentTable(w, result, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeAssignmentTable generates and writes the human-readable table plus
// the workload and summary trailer.
func writeAssignmentTable(writer io.Writer, result *schema.AssignmentResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Epic", "Title", "Category", "Points", "Developer", "Level", "Score", "Confidence"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	titleWidth := getMaxTableTitleWidth(cfg)
	var data [][]string
	for i := range result.Assignments {
		a := &result.Assignments[i]
		data = append(data, []string{
			a.Epic.ID,
			contract.TruncateText(a.Epic.Title, titleWidth),
			string(a.Epic.Classification.Primary),
			strconv.Itoa(a.Epic.TotalStoryPoints),
			a.Developer.Username,
			contract.GetTierLabel(a.Developer.ExperienceLevel, cfg.UseColors),
			strconv.Itoa(a.Score),
			contract.GetConfidenceLabel(a.Confidence, cfg.UseColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Workload distribution in a stable order
	usernames := make([]string, 0, len(result.Workload))
	for username := range result.Workload {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)
	for _, username := range usernames {
		if _, err := fmt.Fprintf(writer, "%s: %d story points\n", username, result.Workload[username]); err != nil {
			return err
		}
	}

	s := result.Summary
	if _, err := fmt.Fprintf(writer, "Assigned %d epics (%d story points, %s avg per developer)\n",
		s.TotalEpics, s.TotalStoryPoints, fmtFloat(s.AvgStoryPointsPerDev)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Confidence: %d high, %d medium, %d low\n",
		s.HighConfidence, s.MediumConfidence, s.LowConfidence); err != nil {
		return err
	}
	return nil
}

// writeAssignmentCSV writes the flattened assignment rows in CSV format.
// The column order matches the Parquet export and the store tables.
func writeAssignmentCSV(w io.Writer, result *schema.AssignmentResult) error {
	header := []string{
		"epic_id",
		"epic_title",
		"category",
		"story_points",
		"story_count",
		"developer",
		"expertise",
		"experience_level",
		"score",
		"confidence",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, rec := range parquet.FlattenAssignments(result) {
			row := []string{
				rec.EpicID,
				rec.EpicTitle,
				rec.Category,
				strconv.Itoa(int(rec.StoryPoints)),
				strconv.Itoa(int(rec.StoryCount)),
				rec.Developer,
				rec.Expertise,
				rec.ExperienceLevel,
				strconv.Itoa(int(rec.Score)),
				rec.Confidence,
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
