package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// Color variables for console output.
var (
	HighColor   = color.New(color.FgGreen, color.Bold) // confident algorithmic match
	MediumColor = color.New(color.FgYellow)            // acceptable but worth a look
	LowColor    = color.New(color.FgCyan)              // weak signal, review suggested
	ManualColor = color.New(color.FgMagenta, color.Bold)

	SeniorColor   = color.New(color.FgMagenta, color.Bold)
	MidLevelColor = color.New(color.FgBlue)
	JuniorColor   = color.New(color.FgGreen)
	BeginnerColor = color.New(color.FgYellow)
)

// GetConfidenceLabel returns the confidence string, colored for table
// output when useColors is set.
func GetConfidenceLabel(c schema.Confidence, useColors bool) string {
	text := string(c)
	if !useColors {
		return text
	}
	switch c {
	case schema.HighConfidence:
		return HighColor.Sprint(text)
	case schema.MediumConfidence:
		return MediumColor.Sprint(text)
	case schema.ManualConfidence:
		return ManualColor.Sprint(text)
	default:
		return LowColor.Sprint(text)
	}
}

// GetTierLabel returns the experience tier, colored for table output
// when useColors is set.
func GetTierLabel(t schema.Tier, useColors bool) string {
	text := string(t)
	if !useColors {
		return text
	}
	switch t {
	case schema.SeniorTier:
		return SeniorColor.Sprint(text)
	case schema.MidLevelTier:
		return MidLevelColor.Sprint(text)
	case schema.JuniorTier:
		return JuniorColor.Sprint(text)
	default:
		return BeginnerColor.Sprint(text)
	}
}

// TruncateText shortens long text for table cells, keeping the tail
// because identifiers tend to differ at the end.
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}
	if maxWidth <= 3 {
		return text[len(text)-maxWidth:]
	}
	return "..." + text[len(text)-(maxWidth-3):]
}

// SelectOutputFile returns the appropriate file handle for output, based
// on the provided file path. An empty path targets stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for the
// profile store.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".epicassign.db"
	}
	return filepath.Join(homeDir, ".epicassign.db")
}
