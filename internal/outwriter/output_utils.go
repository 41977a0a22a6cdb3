package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
)

// writeWithFile resolves the output destination, runs the writer against it,
// and reports where file output landed. Stdout is never closed.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	dest, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	toFile := dest != os.Stdout
	if toFile {
		defer func() { _ = dest.Close() }()
	}

	if err := writer(dest); err != nil {
		return err
	}

	if toFile {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON encodes data with two-space indentation.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader writes the header row, hands the writer to writeRows,
// and flushes before surfacing any buffered write error.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(cw); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// createFloatFormatter builds the score formatter shared by table and CSV
// output so both render at the configured precision.
func createFloatFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}
