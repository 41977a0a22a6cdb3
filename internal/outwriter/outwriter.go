// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteProfiles prints developer profiles using the configured output format.
func (ow *OutWriter) WriteProfiles(profiles []schema.DeveloperProfile, cfg *contract.Config) error {
	return WriteProfileResults(profiles, cfg)
}

// WriteAssignments prints an assignment result using the configured output
// format.
func (ow *OutWriter) WriteAssignments(result *schema.AssignmentResult, cfg *contract.Config) error {
	return WriteAssignmentResults(result, cfg)
}

// WriteClassifications prints epic classifications using the configured
// output format.
func (ow *OutWriter) WriteClassifications(results []schema.EpicResult, cfg *contract.Config) error {
	return WriteClassificationResults(results, cfg)
}

// getMaxTableTitleWidth calculates the maximum width for epic titles in
// table output based on terminal width.
func getMaxTableTitleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns: epic id, category, points,
	// developer, score, confidence, plus borders and padding.
	baseWidth := 70

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable title width
		return 15
	}
	if available > 60 {
		// Maximum title width to prevent overly wide tables
		return 60
	}
	return available
}
