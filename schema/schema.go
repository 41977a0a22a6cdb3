// Package schema has the data model, shared taxonomy and global defaults
// for all parts of the epic assignment pipeline.
package schema

import "time"

// CommitStats holds the aggregate line counts of a single commit. It is
// only present for commits fetched with file-level detail.
type CommitStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// FileChange describes one file touched by a commit.
type FileChange struct {
	Filename  string `json:"filename"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// CommitRecord is one raw commit as returned by the commit source.
// Records are immutable once fetched and live for a single analysis pass.
// Stats and Files are nil for commits without file-level detail.
type CommitRecord struct {
	SHA       string       `json:"sha"`
	Author    string       `json:"author"`
	Timestamp time.Time    `json:"timestamp"`
	Message   string       `json:"message"`
	Stats     *CommitStats `json:"stats,omitempty"`
	Files     []FileChange `json:"files,omitempty"`
}

// Size returns additions plus deletions, or 0 when the commit carries no
// file-level detail.
func (c *CommitRecord) Size() int {
	if c.Stats == nil {
		return 0
	}
	return c.Stats.Additions + c.Stats.Deletions
}

// FileTypeCount is one entry of the file-extension frequency histogram.
type FileTypeCount struct {
	Name  string `json:"name"` // extension including the leading dot
	Value int    `json:"value"`
}

// ExpertiseScore is one ranked entry of an expertise profile.
type ExpertiseScore struct {
	Name  Category `json:"name"`
	Score float64  `json:"score"`
}

// ExpertiseProfile is the ranked specialization profile inferred from
// touched files. Primary is the single highest-scoring category unless
// three or more categories score within 50% of the top, in which case
// Primary is Full Stack and All lists every such category. Zero signal
// yields General Development.
type ExpertiseProfile struct {
	Primary      Category         `json:"primary"`
	All          []ExpertiseScore `json:"all"`
	Technologies []string         `json:"technologies"`
}

// ExperienceLevel is a seniority tier with its composite 0-100 score.
type ExperienceLevel struct {
	Level Tier `json:"level"`
	Score int  `json:"score"`
}

// ActivityBucket is one point of an activity histogram (hour-of-day or
// weekday), shaped for direct charting downstream.
type ActivityBucket struct {
	Label   string `json:"label"`
	Commits int    `json:"commits"`
}

// SizeBucket is one bucket of the commit size distribution.
type SizeBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// GapPoint is one point of the consistency timeline: the day gap between
// two consecutive commits.
type GapPoint struct {
	Commit string  `json:"commit"`
	Days   float64 `json:"days"`
}

// CommitAnalysis aggregates everything derived from a developer's raw
// commits in one analysis pass. A new analysis replaces it wholesale.
type CommitAnalysis struct {
	TotalCommits      int     `json:"totalCommits"`
	OnTimeCount       int     `json:"onTimeCount"`
	LateCount         int     `json:"lateCount"`
	OnTimePercentage  float64 `json:"onTimePercentage"`
	MessageQuality    float64 `json:"messageQualityScore"`
	ConsistencyScore  float64 `json:"consistencyScore"`
	AvgCommitSize     int     `json:"avgCommitSize"`
	TotalLinesAdded   int     `json:"totalLinesAdded"`
	TotalLinesDeleted int     `json:"totalLinesDeleted"`

	FileTypes []FileTypeCount `json:"fileTypes"`

	Expertise       ExpertiseProfile `json:"expertise"`
	ExperienceLevel ExperienceLevel  `json:"experienceLevel"`

	HourlyActivity  []ActivityBucket `json:"hourlyActivity"`  // 24 buckets
	WeekdayActivity []ActivityBucket `json:"weekdayActivity"` // 7 buckets, Sun first
	SizeHistogram   []SizeBucket     `json:"commitSizeDistribution"`
	GapTimeline     []GapPoint       `json:"consistencyTimeline"` // at most 30 points
}

// DeveloperProfile couples a developer's identity with one completed
// commit analysis. Profiles are never mutated after creation.
type DeveloperProfile struct {
	Username      string          `json:"username"`
	Owner         string          `json:"owner,omitempty"`
	Repo          string          `json:"repo,omitempty"`
	ReposAnalyzed []string        `json:"reposAnalyzed,omitempty"`
	Avatar        string          `json:"avatar,omitempty"`
	Analysis      *CommitAnalysis `json:"analysis"`
}

// UserStory is a fine-grained requirement inside an epic.
type UserStory struct {
	ID                 string   `json:"story_id,omitempty"`
	Title              string   `json:"story_title"`
	Description        string   `json:"story_description,omitempty"`
	StoryPoints        int      `json:"story_points,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	TestCases          []string `json:"test_cases,omitempty"`
}

// EpicClassification labels an epic with a taxonomy category.
type EpicClassification struct {
	Primary      Category       `json:"primary"`
	Confidence   Confidence     `json:"confidence"`
	Method       ClassifyMethod `json:"method"`
	Score        int            `json:"score,omitempty"`
	Alternatives []Category     `json:"alternatives,omitempty"`
}

// Epic is a coarse unit of work with zero or more user stories.
type Epic struct {
	ID             string              `json:"epic_id"`
	Title          string              `json:"epic_title"`
	Description    string              `json:"epic_description"`
	UserStories    []UserStory         `json:"user_stories,omitempty"`
	Classification *EpicClassification `json:"classification,omitempty"`
}

// Default story point values for unestimated work.
const (
	DefaultStoryPoints     = 5  // per story without an estimate
	DefaultEpicStoryPoints = 10 // for an epic with no stories at all
)

// TotalStoryPoints sums per-story estimates, substituting DefaultStoryPoints
// for unestimated stories and DefaultEpicStoryPoints for story-less epics.
func (e *Epic) TotalStoryPoints() int {
	if len(e.UserStories) == 0 {
		return DefaultEpicStoryPoints
	}
	total := 0
	for _, s := range e.UserStories {
		if s.StoryPoints > 0 {
			total += s.StoryPoints
		} else {
			total += DefaultStoryPoints
		}
	}
	return total
}

// EpicResult pairs an epic identifier with its classification.
type EpicResult struct {
	EpicID         string             `json:"epic_id"`
	Classification EpicClassification `json:"classification"`
}

// EpicSummary is the epic snapshot embedded in an assignment.
type EpicSummary struct {
	ID               string             `json:"epic_id"`
	Title            string             `json:"epic_title"`
	Classification   EpicClassification `json:"classification"`
	TotalStoryPoints int                `json:"totalStoryPoints"`
	UserStoryCount   int                `json:"userStoriesCount"`
}

// DeveloperSnapshot is the developer snapshot embedded in an assignment.
type DeveloperSnapshot struct {
	Username        string   `json:"username"`
	Expertise       Category `json:"expertise"`
	ExperienceLevel Tier     `json:"experienceLevel"`
	Avatar          string   `json:"avatar,omitempty"`
}

// ScoreBreakdown records the three capped components of an assignment score.
type ScoreBreakdown struct {
	ExpertiseMatch  float64 `json:"expertiseMatch"`
	ExperienceLevel float64 `json:"experienceLevel"`
	WorkloadBalance float64 `json:"workloadBalance"`
}

// AlternativeDeveloper is a runner-up candidate recorded with an assignment.
type AlternativeDeveloper struct {
	Username  string   `json:"username"`
	Score     int      `json:"score"`
	Expertise Category `json:"expertise"`
}

// Assignment binds one epic to one developer with full scoring context.
type Assignment struct {
	Epic         EpicSummary            `json:"epic"`
	Developer    DeveloperSnapshot      `json:"developer"`
	Score        int                    `json:"score"`
	Confidence   Confidence             `json:"confidence"`
	Breakdown    ScoreBreakdown         `json:"breakdown"`
	Alternatives []AlternativeDeveloper `json:"alternatives,omitempty"`
}

// WorkloadDistribution maps developer username to accumulated story points.
// Invariant: workload[d] equals the sum of TotalStoryPoints over all
// assignments currently assigned to d.
type WorkloadDistribution map[string]int

// Total returns the grand total of story points across all developers.
func (w WorkloadDistribution) Total() int {
	total := 0
	for _, points := range w {
		total += points
	}
	return total
}

// AssignmentSummary reports run totals and per-confidence counts.
type AssignmentSummary struct {
	TotalEpics           int     `json:"totalEpics"`
	TotalStoryPoints     int     `json:"totalStoryPoints"`
	AvgStoryPointsPerDev float64 `json:"avgStoryPointsPerDev"`
	HighConfidence       int     `json:"highConfidenceAssignments"`
	MediumConfidence     int     `json:"mediumConfidenceAssignments"`
	LowConfidence        int     `json:"lowConfidenceAssignments"`
}

// AssignmentResult is the full output of one auto-assignment run.
type AssignmentResult struct {
	Assignments []Assignment         `json:"assignments"`
	Workload    WorkloadDistribution `json:"workloadDistribution"`
	Summary     AssignmentSummary    `json:"summary"`
}
