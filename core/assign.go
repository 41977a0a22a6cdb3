package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// ErrEpicNotFound is returned by ReassignEpic when the target epic is not
// among the current assignments.
var ErrEpicNotFound = errors.New("epic not found in assignments")

// Component caps of the assignment score. They sum to 100 so the total
// never needs a separate cap.
const (
	maxExpertisePoints = 50
	fullStackBonus     = 25
	maxWorkloadPoints  = 20
	workloadDivisor    = 5
)

// maxAlternatives is how many runner-up developers each assignment records.
const maxAlternatives = 2

// workloadAccumulator threads the running story point distribution through
// the epic-processing loop. Each epic is scored against the distribution
// left by all previously processed epics, which is the documented
// sequential property of the engine, so the accumulator is mutated between
// iterations rather than recomputed.
type workloadAccumulator struct {
	points   schema.WorkloadDistribution
	devCount int
}

func newWorkloadAccumulator(developers []schema.DeveloperProfile) *workloadAccumulator {
	acc := &workloadAccumulator{
		points:   make(schema.WorkloadDistribution, len(developers)),
		devCount: len(developers),
	}
	for i := range developers {
		acc.points[developers[i].Username] = 0
	}
	return acc
}

// average returns the mean workload across all developers.
func (a *workloadAccumulator) average() float64 {
	if a.devCount == 0 {
		return 0
	}
	return float64(a.points.Total()) / float64(a.devCount)
}

// add credits story points to a developer's running workload.
func (a *workloadAccumulator) add(username string, storyPoints int) {
	a.points[username] += storyPoints
}

// devScore is one developer's score for a single epic.
type devScore struct {
	dev       *schema.DeveloperProfile
	score     float64
	breakdown schema.ScoreBreakdown
}

// AutoAssignEpics greedily allocates epics to developers in input order.
// Each epic is classified on demand, scored against every developer on
// expertise match, experience level and inverse workload balance, and
// handed to the top scorer; the winner's workload is updated before the
// next epic is scored. Empty inputs are hard errors; everything else
// produces a best-effort result.
func AutoAssignEpics(ctx context.Context, ai contract.AIClassifier, epics []schema.Epic, developers []schema.DeveloperProfile) (*schema.AssignmentResult, error) {
	if len(epics) == 0 {
		return nil, errors.New("no epics to assign")
	}
	if len(developers) == 0 {
		return nil, errors.New("no developers available")
	}

	acc := newWorkloadAccumulator(developers)
	assignments := make([]schema.Assignment, 0, len(epics))

	for i := range epics {
		epic := &epics[i]
		if epic.Classification == nil {
			classification := ClassifyEpic(ctx, ai, epic)
			epic.Classification = &classification
		}
		storyPoints := epic.TotalStoryPoints()

		scores := make([]devScore, 0, len(developers))
		for j := range developers {
			scores = append(scores, scoreDeveloper(&developers[j], epic.Classification.Primary, acc))
		}

		// Stable sort keeps input order among equal scores; no further
		// tie-break rule is applied.
		sort.SliceStable(scores, func(a, b int) bool { return scores[a].score > scores[b].score })

		winner := scores[0]
		assignment := schema.Assignment{
			Epic: schema.EpicSummary{
				ID:               epic.ID,
				Title:            epic.Title,
				Classification:   *epic.Classification,
				TotalStoryPoints: storyPoints,
				UserStoryCount:   len(epic.UserStories),
			},
			Developer:  SnapshotDeveloper(winner.dev),
			Score:      int(math.Round(winner.score)),
			Confidence: schema.ConfidenceForScore(winner.score),
			Breakdown:  winner.breakdown,
		}
		for _, alt := range scores[1:] {
			if len(assignment.Alternatives) == maxAlternatives {
				break
			}
			assignment.Alternatives = append(assignment.Alternatives, schema.AlternativeDeveloper{
				Username:  alt.dev.Username,
				Score:     int(math.Round(alt.score)),
				Expertise: primaryExpertise(alt.dev),
			})
		}
		assignments = append(assignments, assignment)

		acc.add(winner.dev.Username, storyPoints)
	}

	totalPoints := acc.points.Total()
	summary := schema.AssignmentSummary{
		TotalEpics:           len(epics),
		TotalStoryPoints:     totalPoints,
		AvgStoryPointsPerDev: float64(totalPoints) / float64(len(developers)),
		HighConfidence: lo.CountBy(assignments, func(a schema.Assignment) bool {
			return a.Confidence == schema.HighConfidence
		}),
		MediumConfidence: lo.CountBy(assignments, func(a schema.Assignment) bool {
			return a.Confidence == schema.MediumConfidence
		}),
		LowConfidence: lo.CountBy(assignments, func(a schema.Assignment) bool {
			return a.Confidence == schema.LowConfidence
		}),
	}

	return &schema.AssignmentResult{
		Assignments: assignments,
		Workload:    acc.points,
		Summary:     summary,
	}, nil
}

// scoreDeveloper computes the three capped components for one developer
// against one epic category, relative to the accumulator's current state.
func scoreDeveloper(dev *schema.DeveloperProfile, category schema.Category, acc *workloadAccumulator) devScore {
	var breakdown schema.ScoreBreakdown

	if analysis := dev.Analysis; analysis != nil {
		// Expertise match (50 points max): a direct entry contributes half
		// its raw score, capped; a Full Stack generalist gets a flat bonus.
		if entry, found := lo.Find(analysis.Expertise.All, func(e schema.ExpertiseScore) bool {
			return e.Name == category
		}); found {
			breakdown.ExpertiseMatch = math.Min(maxExpertisePoints, entry.Score/2)
		} else if analysis.Expertise.Primary == schema.CategoryFullStack {
			breakdown.ExpertiseMatch = fullStackBonus
		}

		// Experience level (30 points max).
		breakdown.ExperienceLevel = schema.TierScore(analysis.ExperienceLevel.Level)
	} else {
		// A profile without an analysis still competes on workload
		// balance; it carries no expertise signal and scores as Beginner.
		breakdown.ExperienceLevel = schema.TierScore(schema.BeginnerTier)
	}

	// Workload balance (20 points max, inverse): developers below the
	// current average earn points, pushing the distribution to converge.
	diff := acc.average() - float64(acc.points[dev.Username])
	breakdown.WorkloadBalance = schema.Clamp(0, maxWorkloadPoints, diff/workloadDivisor)

	return devScore{
		dev:       dev,
		score:     breakdown.ExpertiseMatch + breakdown.ExperienceLevel + breakdown.WorkloadBalance,
		breakdown: breakdown,
	}
}

// SnapshotDeveloper captures the developer fields embedded in an
// assignment. A profile without an analysis yields a snapshot with
// empty expertise and tier.
func SnapshotDeveloper(dev *schema.DeveloperProfile) schema.DeveloperSnapshot {
	snapshot := schema.DeveloperSnapshot{
		Username: dev.Username,
		Avatar:   dev.Avatar,
	}
	if dev.Analysis != nil {
		snapshot.Expertise = dev.Analysis.Expertise.Primary
		snapshot.ExperienceLevel = dev.Analysis.ExperienceLevel.Level
	}
	return snapshot
}

// primaryExpertise tolerates profiles that carry no analysis.
func primaryExpertise(dev *schema.DeveloperProfile) schema.Category {
	if dev.Analysis == nil {
		return ""
	}
	return dev.Analysis.Expertise.Primary
}

// ReassignEpic moves an existing assignment to another developer. The
// moved epic's story points shift atomically between the two workload
// entries (the new developer's entry is created when absent), the
// developer snapshot is replaced, and confidence is forced to manual so
// the change survives until a fresh full run. When the new developer
// already holds another assignment their snapshot fields carry over;
// otherwise the snapshot is username-only. An unknown epic id is a
// hard error, never a silent no-op.
func ReassignEpic(assignments []schema.Assignment, epicID, newDeveloperID string, workload schema.WorkloadDistribution) error {
	idx := -1
	for i := range assignments {
		if assignments[i].Epic.ID == epicID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("epic %s: %w", epicID, ErrEpicNotFound)
	}

	assignment := &assignments[idx]
	storyPoints := assignment.Epic.TotalStoryPoints

	workload[assignment.Developer.Username] -= storyPoints
	workload[newDeveloperID] += storyPoints

	snapshot := schema.DeveloperSnapshot{Username: newDeveloperID}
	for i := range assignments {
		if i != idx && assignments[i].Developer.Username == newDeveloperID {
			snapshot = assignments[i].Developer
			break
		}
	}

	assignment.Developer = snapshot
	assignment.Confidence = schema.ManualConfidence
	return nil
}
