package core

import "github.com/abdulahadd002/epic-dev-assignment/schema"

// CalculateExperienceLevel converts aggregate commit metrics into a
// seniority tier with a 0-100 composite score. Each input maps through a
// fixed step function; the weights sum to 100 (volume 40, work pattern
// 15, message quality 25, consistency 20). The function is total: all
// zero inputs score 22 and land in Beginner.
func CalculateExperienceLevel(totalCommits int, onTimePct, messageQuality, consistency float64) schema.ExperienceLevel {
	score := 0

	// Commit volume (40 points max)
	switch {
	case totalCommits > 200:
		score += 40
	case totalCommits > 150:
		score += 35
	case totalCommits > 100:
		score += 30
	case totalCommits > 50:
		score += 25
	default:
		score += 10
	}

	// Work pattern (15 points max)
	switch {
	case onTimePct >= 60:
		score += 15
	case onTimePct >= 50:
		score += 10
	case onTimePct >= 30:
		score += 5
	default:
		score += 2
	}

	// Message quality (25 points max)
	switch {
	case messageQuality >= 40:
		score += 25
	case messageQuality >= 30:
		score += 20
	case messageQuality >= 20:
		score += 15
	default:
		score += 5
	}

	// Consistency (20 points max), gated by volume so sparse histories
	// cannot buy consistency points with two adjacent commits.
	switch {
	case consistency >= 70 && totalCommits > 100:
		score += 20
	case consistency >= 60 && totalCommits > 50:
		score += 15
	case consistency >= 40 && totalCommits > 30:
		score += 10
	default:
		score += 5
	}

	return schema.ExperienceLevel{Level: schema.TierForScore(score), Score: score}
}
