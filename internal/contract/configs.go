package contract

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// Default values for configuration.
const (
	DefaultMaxCommits     = 100 // per repo in single-repo mode
	DefaultReposPerUser   = 10  // repos scanned in multi-repo mode
	DefaultCommitsPerRepo = 30  // commits per repo in multi-repo mode
	DefaultDetailCap      = 200 // commits fetched with file-level detail
	DefaultRateLimit      = 5   // GitHub requests per second
	DefaultPrecision      = 1
	MaxPrecision          = 2
)

// DefaultWorkers is the default number of concurrent developer fetches.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the validated, final runtime configuration.
type Config struct {
	// Input files
	EpicsFile       string
	DevelopersFile  string
	AssignmentsFile string

	// Commit retrieval
	Owner          string
	Repo           string
	MaxCommits     int
	ReposPerUser   int
	CommitsPerRepo int
	DetailCap      int
	Workers        int
	GitHubToken    string
	RateLimit      int

	// AI fallback classifier
	AIAPIKey  string
	AIModel   string
	AIBaseURL string

	// Output
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int
	UseColors  bool

	// Profile store
	StoreBackend schema.DatabaseBackend
	StoreConnect string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	EpicsFile       string `mapstructure:"epics"`
	DevelopersFile  string `mapstructure:"developers"`
	AssignmentsFile string `mapstructure:"assignments"`

	Owner          string `mapstructure:"owner"`
	Repo           string `mapstructure:"repo"`
	MaxCommits     int    `mapstructure:"max-commits"`
	ReposPerUser   int    `mapstructure:"repos-per-user"`
	CommitsPerRepo int    `mapstructure:"commits-per-repo"`
	DetailCap      int    `mapstructure:"detail-cap"`
	Workers        int    `mapstructure:"workers"`
	GitHubToken    string `mapstructure:"github-token"`
	RateLimit      int    `mapstructure:"rate-limit"`

	AIAPIKey  string `mapstructure:"ai-api-key"`
	AIModel   string `mapstructure:"ai-model"`
	AIBaseURL string `mapstructure:"ai-base-url"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	StoreBackend string `mapstructure:"store-backend"`
	StoreConnect string `mapstructure:"store-connect"`
}

// ProcessAndValidate populates cfg from the raw input, applying defaults
// and rejecting invalid combinations.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.EpicsFile = input.EpicsFile
	cfg.DevelopersFile = input.DevelopersFile
	cfg.AssignmentsFile = input.AssignmentsFile
	cfg.Owner = input.Owner
	cfg.Repo = input.Repo
	cfg.GitHubToken = input.GitHubToken
	cfg.AIAPIKey = input.AIAPIKey
	cfg.AIModel = input.AIModel
	cfg.AIBaseURL = input.AIBaseURL
	cfg.OutputFile = input.OutputFile
	cfg.StoreConnect = input.StoreConnect

	cfg.MaxCommits = positiveOrDefault(input.MaxCommits, DefaultMaxCommits)
	cfg.ReposPerUser = positiveOrDefault(input.ReposPerUser, DefaultReposPerUser)
	cfg.CommitsPerRepo = positiveOrDefault(input.CommitsPerRepo, DefaultCommitsPerRepo)
	cfg.DetailCap = positiveOrDefault(input.DetailCap, DefaultDetailCap)
	cfg.Workers = positiveOrDefault(input.Workers, DefaultWorkers)
	cfg.RateLimit = positiveOrDefault(input.RateLimit, DefaultRateLimit)
	cfg.Width = input.Width

	output := schema.OutputMode(strings.ToLower(input.Output))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json or parquet", input.Output)
	}
	cfg.Output = output

	precision := input.Precision
	if precision < DefaultPrecision {
		precision = DefaultPrecision
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	cfg.Precision = precision

	cfg.UseColors = parseBoolish(input.Color, true)

	backend := schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q: must be sqlite, mysql, postgresql or none", input.StoreBackend)
	}
	if (backend == schema.MySQLBackend || backend == schema.PostgreSQLBackend) && cfg.StoreConnect == "" {
		return fmt.Errorf("store backend %s requires --store-connect", backend)
	}
	cfg.StoreBackend = backend

	return nil
}

// parseBoolish interprets the yes/no/true/false/1/0 flag convention.
func parseBoolish(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}

func positiveOrDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
