package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// WriteProfileResults outputs developer profiles, dispatching based on the
// output format configured.
func WriteProfileResults(profiles []schema.DeveloperProfile, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, profiles)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileCSV(w, profiles, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for assignments")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileTable(w, profiles, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeProfileTable generates and writes the human-readable table.
func writeProfileTable(writer io.Writer, profiles []schema.DeveloperProfile, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Developer", "Expertise", "Level", "Score", "Commits", "On-Time %", "Msg Quality", "Consistency"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i := range profiles {
		p := &profiles[i]
		a := p.Analysis
		data = append(data, []string{
			p.Username,
			string(a.Expertise.Primary),
			contract.GetTierLabel(a.ExperienceLevel.Level, cfg.UseColors),
			strconv.Itoa(a.ExperienceLevel.Score),
			strconv.Itoa(a.TotalCommits),
			fmtFloat(a.OnTimePercentage),
			fmtFloat(a.MessageQuality),
			fmtFloat(a.ConsistencyScore),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Analyzed %d developers\n", len(profiles)); err != nil {
		return err
	}
	return nil
}

// writeProfileCSV writes the flattened per-developer metrics in CSV format.
func writeProfileCSV(w io.Writer, profiles []schema.DeveloperProfile, fmtFloat func(float64) string) error {
	header := []string{
		"developer",
		"expertise",
		"experience_level",
		"experience_score",
		"total_commits",
		"on_time_pct",
		"message_quality",
		"consistency",
		"avg_commit_size",
		"lines_added",
		"lines_deleted",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i := range profiles {
			p := &profiles[i]
			a := p.Analysis
			rec := []string{
				p.Username,
				string(a.Expertise.Primary),
				string(a.ExperienceLevel.Level),
				strconv.Itoa(a.ExperienceLevel.Score),
				strconv.Itoa(a.TotalCommits),
				fmtFloat(a.OnTimePercentage),
				fmtFloat(a.MessageQuality),
				fmtFloat(a.ConsistencyScore),
				strconv.Itoa(a.AvgCommitSize),
				strconv.Itoa(a.TotalLinesAdded),
				strconv.Itoa(a.TotalLinesDeleted),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
