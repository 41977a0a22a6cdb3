// Package core has the analysis and assignment logic: commit metrics,
// expertise detection, experience scoring, epic classification and the
// workload-balanced assignment engine.
package core

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// DefaultDetailCap bounds how many commits contribute file-level stats.
// Timing and message statistics always cover the full input.
const DefaultDetailCap = 200

// lateHour is the only hour-of-day counted as "late". This narrow window
// (midnight to 1am local) is a fixed policy constant, not a day/night
// split, and is deliberately not user-configurable.
const lateHour = 0

// maxGapTimelinePoints bounds the consistency timeline for visualization.
const maxGapTimelinePoints = 30

// Message quality heuristics. Each commit accumulates at most 85 points.
var (
	conventionalPrefixRe = regexp.MustCompile(`^(feat|fix|docs|style|refactor|test|chore):`)
	issueRefRe           = regexp.MustCompile(`#\d+`)
)

// AnalyzeCommits aggregates raw commit records into the full per-developer
// analysis: timing classification, message quality, consistency, size
// distribution, activity timelines, expertise and experience level.
// detailCap bounds the number of commits considered for file-level stats;
// values <= 0 fall back to DefaultDetailCap. The function never divides by
// zero: empty input yields a zeroed analysis with default expertise.
func AnalyzeCommits(records []schema.CommitRecord, detailCap int) *schema.CommitAnalysis {
	if detailCap <= 0 {
		detailCap = DefaultDetailCap
	}

	analysis := &schema.CommitAnalysis{
		TotalCommits:    len(records),
		HourlyActivity:  makeHourlyBuckets(),
		WeekdayActivity: makeWeekdayBuckets(),
		SizeHistogram:   makeSizeBuckets(),
	}

	var (
		qualityTotal float64
		timestamps   []time.Time
	)

	for i := range records {
		c := &records[i]
		hour := c.Timestamp.Hour()
		timestamps = append(timestamps, c.Timestamp)

		analysis.HourlyActivity[hour].Commits++
		analysis.WeekdayActivity[int(c.Timestamp.Weekday())].Commits++

		if hour == lateHour {
			analysis.LateCount++
		} else {
			analysis.OnTimeCount++
		}

		qualityTotal += messageQuality(c.Message)
	}

	// File-level stats are bounded to the first detailCap commits.
	detailed := records
	if len(detailed) > detailCap {
		detailed = detailed[:detailCap]
	}
	detailedCount := 0
	fileTypeCounts := make(map[string]int)
	var files []schema.FileChange
	for i := range detailed {
		c := &detailed[i]
		if c.Stats == nil {
			continue
		}
		detailedCount++
		analysis.TotalLinesAdded += c.Stats.Additions
		analysis.TotalLinesDeleted += c.Stats.Deletions
		analysis.SizeHistogram[schema.SizeBucketIndex(c.Size())].Count++

		for _, f := range c.Files {
			files = append(files, f)
			ext := schema.FileExtension(f.Filename)
			if ext == "" {
				ext = "other"
			}
			fileTypeCounts[ext]++
		}
	}

	if len(records) > 0 {
		analysis.OnTimePercentage = round1(float64(analysis.OnTimeCount) / float64(len(records)) * 100)
		analysis.MessageQuality = round1(qualityTotal / float64(len(records)))
	}
	if detailedCount > 0 {
		totalChurn := analysis.TotalLinesAdded + analysis.TotalLinesDeleted
		analysis.AvgCommitSize = int(math.Round(float64(totalChurn) / float64(detailedCount)))
	}

	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })
	analysis.ConsistencyScore = round1(consistencyScore(timestamps))
	analysis.GapTimeline = gapTimeline(timestamps)

	analysis.FileTypes = topFileTypes(fileTypeCounts, 10)
	analysis.Expertise = DetectExpertise(files, analysis.FileTypes)
	analysis.ExperienceLevel = CalculateExperienceLevel(
		analysis.TotalCommits,
		analysis.OnTimePercentage,
		analysis.MessageQuality,
		analysis.ConsistencyScore,
	)

	return analysis
}

// messageQuality scores a single commit message on the 0-85 heuristic:
// length, conventional-commit prefix and issue references.
func messageQuality(message string) float64 {
	var score float64
	length := utf8.RuneCountInString(message)
	if length > 10 {
		score += 10
	}
	if length > 30 {
		score += 25
	}
	if conventionalPrefixRe.MatchString(message) {
		score += 25
	}
	if issueRefRe.MatchString(message) {
		score += 25
	}
	return score
}

// consistencyScore maps the mean inter-commit interval in days onto a
// 0-100 scale: 100 - 5*meanIntervalDays, clamped. Fewer than two commits
// carry no interval signal and score 0.
func consistencyScore(sorted []time.Time) float64 {
	if len(sorted) < 2 {
		return 0
	}
	var totalDays float64
	for i := 1; i < len(sorted); i++ {
		totalDays += sorted[i].Sub(sorted[i-1]).Hours() / 24
	}
	mean := totalDays / float64(len(sorted)-1)
	return schema.Clamp(0, 100, 100-mean*5)
}

// gapTimeline produces up to maxGapTimelinePoints day-gaps between
// consecutive commits. A single data point of zero stands in when there
// are not enough commits to form a gap.
func gapTimeline(sorted []time.Time) []schema.GapPoint {
	n := len(sorted) - 1
	if n > maxGapTimelinePoints {
		n = maxGapTimelinePoints
	}
	if n <= 0 {
		return []schema.GapPoint{{Commit: "#1", Days: 0}}
	}
	points := make([]schema.GapPoint, 0, n)
	for i := 0; i < n; i++ {
		days := sorted[i+1].Sub(sorted[i]).Hours() / 24
		points = append(points, schema.GapPoint{
			Commit: "#" + strconv.Itoa(i+1),
			Days:   round1(days),
		})
	}
	return points
}

// topFileTypes converts the extension frequency map into a histogram
// sorted by count descending, bounded to limit entries. Ties follow
// lexicographic extension order for stable output.
func topFileTypes(counts map[string]int, limit int) []schema.FileTypeCount {
	types := make([]schema.FileTypeCount, 0, len(counts))
	for ext, count := range counts {
		types = append(types, schema.FileTypeCount{Name: "." + ext, Value: count})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Value != types[j].Value {
			return types[i].Value > types[j].Value
		}
		return types[i].Name < types[j].Name
	})
	if len(types) > limit {
		types = types[:limit]
	}
	return types
}

func makeHourlyBuckets() []schema.ActivityBucket {
	buckets := make([]schema.ActivityBucket, 24)
	for h := range buckets {
		buckets[h].Label = strconv.Itoa(h) + ":00"
	}
	return buckets
}

func makeWeekdayBuckets() []schema.ActivityBucket {
	buckets := make([]schema.ActivityBucket, len(schema.WeekdayLabels))
	for i, label := range schema.WeekdayLabels {
		buckets[i].Label = label
	}
	return buckets
}

func makeSizeBuckets() []schema.SizeBucket {
	buckets := make([]schema.SizeBucket, len(schema.SizeRangeLabels))
	for i, label := range schema.SizeRangeLabels {
		buckets[i].Range = label
	}
	return buckets
}

// round1 rounds to one decimal place, matching the precision of the
// exported analysis fields.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
