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

// WriteClassificationResults outputs epic classifications, dispatching
// based on the output format configured.
func WriteClassificationResults(results []schema.EpicResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClassificationCSV(w, results)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for assignments")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClassificationTable(w, results, cfg)
		}, "Wrote table")
	}
}

// writeClassificationTable generates and writes the human-readable table.
func writeClassificationTable(writer io.Writer, results []schema.EpicResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Epic", "Category", "Confidence", "Method", "Score"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i := range results {
		r := &results[i]
		data = append(data, []string{
			r.EpicID,
			string(r.Classification.Primary),
			contract.GetConfidenceLabel(r.Classification.Confidence, cfg.UseColors),
			string(r.Classification.Method),
			strconv.Itoa(r.Classification.Score),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Classified %d epics\n", len(results)); err != nil {
		return err
	}
	return nil
}

// writeClassificationCSV writes classifications in CSV format.
func writeClassificationCSV(w io.Writer, results []schema.EpicResult) error {
	header := []string{"epic_id", "category", "confidence", "method", "score"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i := range results {
			r := &results[i]
			rec := []string{
				r.EpicID,
				string(r.Classification.Primary),
				string(r.Classification.Confidence),
				string(r.Classification.Method),
				strconv.Itoa(r.Classification.Score),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
