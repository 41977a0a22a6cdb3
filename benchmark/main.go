// Package main provides a performance benchmarking tool for the epicassign CLI.
// It generates synthetic epic and developer fixtures of increasing sizes,
// measures classify and assign execution times with and without the profile
// store, and writes a CSV summary for performance tracking.
//
// Prerequisites:
// - epicassign binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where fixture files are generated
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-store average, cold run and average of warm runs).
type BenchmarkResult struct {
	Fixture     string
	Command     string
	NoStoreTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoStoreRuns int
	StoreRuns   int
	EpicCounts  []int
	Developers  int
}

// epicFixture mirrors the epic JSON contract consumed by the CLI.
type epicFixture struct {
	ID          string         `json:"epic_id"`
	Title       string         `json:"epic_title"`
	Description string         `json:"epic_description"`
	UserStories []storyFixture `json:"user_stories,omitempty"`
}

type storyFixture struct {
	Title       string `json:"story_title"`
	StoryPoints int    `json:"story_points,omitempty"`
}

// developerFixture mirrors the developer profile JSON contract.
type developerFixture struct {
	Username string         `json:"username"`
	Analysis map[string]any `json:"analysis"`
}

var epicTemplates = []struct {
	title       string
	description string
}{
	{"Build the %d REST API service", "endpoint and database work for service %d"},
	{"Mobile app screen %d", "ios and android flow for feature %d"},
	{"Deploy pipeline %d", "docker and kubernetes automation for stage %d"},
	{"Dashboard widget %d", "react component and ui polish for widget %d"},
	{"Training pipeline %d", "machine learning model for dataset %d"},
}

var expertiseCategories = []string{
	"Backend Development",
	"Mobile Development",
	"DevOps/Infrastructure",
	"Frontend Development",
	"Data Science/ML",
}

func main() {
	workDir := "/tmp/epicassign-bench"
	if len(os.Args) == 2 {
		workDir = os.Args[1]
	}

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     2 * time.Minute,
		NoStoreRuns: 3,
		StoreRuns:   4,
		EpicCounts:  []int{10, 100, 1000},
		Developers:  8,
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the epicassign binary exists and the
// work directory is writable.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("epicassign"); err != nil {
		return fmt.Errorf("epicassign binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work directory %s: %w", config.WorkDir, err)
	}
	return nil
}

// runBenchmarks executes all benchmark tests across fixture sizes.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %v epics, %v timeout, no-store: %d runs, store: %d runs\n",
		config.EpicCounts, config.Timeout, config.NoStoreRuns, config.StoreRuns)

	for _, count := range config.EpicCounts {
		fixture := fmt.Sprintf("epics-%d", count)
		fmt.Printf("Benchmarking %s\n", fixture)

		epicsPath, developersPath, err := generateFixtures(config.WorkDir, count, config.Developers)
		if err != nil {
			fmt.Printf("Warning: failed to generate fixtures for %s: %v\n", fixture, err)
			continue
		}

		classifyArgs := []string{"classify", "--epics", epicsPath}
		results = append(results, runBenchmarkSuite(config, fixture, "classify", classifyArgs))

		assignArgs := []string{"assign", "--epics", epicsPath, "--developers", developersPath}
		results = append(results, runBenchmarkSuite(config, fixture, "assign", assignArgs))
	}

	return results
}

// generateFixtures writes deterministic epic and developer files for one
// fixture size and returns their paths.
func generateFixtures(workDir string, epicCount, developerCount int) (string, string, error) {
	epics := make([]epicFixture, 0, epicCount)
	for i := range epicCount {
		tmpl := epicTemplates[i%len(epicTemplates)]
		epic := epicFixture{
			ID:          fmt.Sprintf("epic-%d", i+1),
			Title:       fmt.Sprintf(tmpl.title, i+1),
			Description: fmt.Sprintf(tmpl.description, i+1),
		}
		if i%2 == 0 {
			epic.UserStories = []storyFixture{
				{Title: "first story", StoryPoints: 3},
				{Title: "second story", StoryPoints: 5},
			}
		}
		epics = append(epics, epic)
	}

	developers := make([]developerFixture, 0, developerCount)
	for i := range developerCount {
		category := expertiseCategories[i%len(expertiseCategories)]
		developers = append(developers, developerFixture{
			Username: fmt.Sprintf("dev-%d", i+1),
			Analysis: map[string]any{
				"expertise": map[string]any{
					"primary": category,
					"all":     []map[string]any{{"name": category, "score": 80}},
				},
				"experienceLevel": map[string]any{"level": "Mid-Level", "score": 65},
			},
		})
	}

	epicsPath := filepath.Join(workDir, fmt.Sprintf("epics-%d.json", epicCount))
	developersPath := filepath.Join(workDir, "developers.json")
	if err := writeJSON(epicsPath, epics); err != nil {
		return "", "", err
	}
	if err := writeJSON(developersPath, developers); err != nil {
		return "", "", err
	}
	return epicsPath, developersPath, nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// runBenchmarkSuite runs both no-store and store benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, fixture, command string, args []string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", command, fixture)

	// Helper to run a benchmark phase
	runPhase := func(storeBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, args, storeBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-store runs
	_, noStoreAvg := runPhase("none", config.NoStoreRuns, "No-store")

	// Phase 2: Store runs
	coldTime, warmAvg := runPhase("sqlite", config.StoreRuns, "Store")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-store average: %s, Cold time: %s, Warm average: %s\n", noStoreAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Fixture:     fixture,
		Command:     command,
		NoStoreTime: noStoreAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes an epicassign command multiple times with the given
// store backend and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, args []string, storeBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	fullArgs := append(append([]string{}, args...), "--store-backend", storeBackend)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("epicassign", fullArgs...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion.
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Classified") || strings.Contains(outputStr, "Assigned")
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/epicassign_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"fixture", "cmd", "no_store_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Fixture, result.Command, result.NoStoreTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "classify", "Classification:")
	printCommandSummary(results, "assign", "Assignment:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type.
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %s: no-store %s, cold %s, warm %s\n",
				result.Fixture, result.NoStoreTime, result.ColdTime, result.WarmTime)
		}
	}
}
