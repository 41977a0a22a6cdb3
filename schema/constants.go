package schema

// Custom string types for type safety.
type (
	// Category represents a domain specialization shared by the epic
	// classifier and the expertise detector.
	Category string

	// Confidence represents the reliability label on a classification or
	// assignment decision.
	Confidence string

	// ClassifyMethod represents how an epic classification was produced.
	ClassifyMethod string

	// Tier represents a developer seniority tier.
	Tier string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the profile store.
	DatabaseBackend string
)

// The shared category taxonomy. ClassifierCategories below fixes the
// evaluation order, which matters for tie resolution.
const (
	CategoryMobile    Category = "Mobile Development"
	CategoryFrontend  Category = "Frontend Development"
	CategoryBackend   Category = "Backend Development"
	CategoryDevOps    Category = "DevOps/Infrastructure"
	CategoryDataML    Category = "Data Science/ML"
	CategoryDatabase  Category = "Database/SQL"
	CategoryGameDev   Category = "Game Development"
	CategoryFullStack Category = "Full Stack"

	// CategoryGeneral is the zero-signal fallback for expertise detection.
	// It is not part of the classifier taxonomy.
	CategoryGeneral Category = "General Development"
)

// All confidence labels supported.
const (
	HighConfidence   Confidence = "high"
	MediumConfidence Confidence = "medium"
	LowConfidence    Confidence = "low"

	// ManualConfidence marks an assignment touched by a human. Once set it
	// survives until a fresh full assignment run.
	ManualConfidence Confidence = "manual"
)

// All classification methods supported.
const (
	KeywordMethod    ClassifyMethod = "keyword"
	AIFallbackMethod ClassifyMethod = "ai-fallback"
	DefaultMethod    ClassifyMethod = "default"
)

// All experience tiers supported.
const (
	SeniorTier   Tier = "Senior"
	MidLevelTier Tier = "Mid-Level"
	JuniorTier   Tier = "Junior"
	BeginnerTier Tier = "Beginner"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ClassifierCategories lists the taxonomy in evaluation order. Both the
// keyword pass and the expertise detector iterate in this order so that
// tie resolution and "first tied category" fallbacks are deterministic.
var ClassifierCategories = []Category{
	CategoryMobile,
	CategoryFrontend,
	CategoryBackend,
	CategoryDevOps,
	CategoryDataML,
	CategoryDatabase,
	CategoryGameDev,
	CategoryFullStack,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// TierScore returns the assignment-engine contribution for a tier.
// Unknown tiers score like Beginner.
func TierScore(t Tier) float64 {
	switch t {
	case SeniorTier:
		return 30
	case MidLevelTier:
		return 20
	case JuniorTier:
		return 10
	default:
		return 5
	}
}

// TierForScore maps a composite experience score to its tier. The
// boundaries are monotonic: >=80 Senior, >=60 Mid-Level, >=40 Junior.
func TierForScore(score int) Tier {
	switch {
	case score >= 80:
		return SeniorTier
	case score >= 60:
		return MidLevelTier
	case score >= 40:
		return JuniorTier
	default:
		return BeginnerTier
	}
}

// ConfidenceForScore maps an assignment score to its confidence label.
func ConfidenceForScore(score float64) Confidence {
	switch {
	case score >= 70:
		return HighConfidence
	case score >= 50:
		return MediumConfidence
	default:
		return LowConfidence
	}
}
