// Package cmd defines the command-line interface for epicassign.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abdulahadd002/epic-dev-assignment/internal/aiclient"
	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(reassignCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("epics", "", "Path to a JSON file with the epics to process")
	rootCmd.PersistentFlags().String("developers", "", "Path to a JSON file with analyzed developer profiles")
	rootCmd.PersistentFlags().String("assignments", "", "Path to a JSON assignment result file")
	rootCmd.PersistentFlags().String("owner", "", "Repository owner for single-repo commit analysis")
	rootCmd.PersistentFlags().String("repo", "", "Repository name for single-repo commit analysis")
	rootCmd.PersistentFlags().Int("max-commits", contract.DefaultMaxCommits, "Maximum commits fetched per repository in single-repo mode")
	rootCmd.PersistentFlags().Int("repos-per-user", contract.DefaultReposPerUser, "Number of most recently pushed repositories scanned per user")
	rootCmd.PersistentFlags().Int("commits-per-repo", contract.DefaultCommitsPerRepo, "Commits fetched per repository when scanning a user's repositories")
	rootCmd.PersistentFlags().Int("detail-cap", contract.DefaultDetailCap, "Number of commits fetched with file-level detail")
	rootCmd.PersistentFlags().IntP("workers", "w", contract.DefaultWorkers, "Number of concurrent developer analyses")
	rootCmd.PersistentFlags().String("github-token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	rootCmd.PersistentFlags().Int("rate-limit", contract.DefaultRateLimit, "GitHub API requests per second")
	rootCmd.PersistentFlags().String("ai-api-key", "", "API key for the AI tie-break classifier (defaults to OPENAI_API_KEY)")
	rootCmd.PersistentFlags().String("ai-model", aiclient.DefaultModel, "Chat model used by the AI tie-break classifier")
	rootCmd.PersistentFlags().String("ai-base-url", "", "Override base URL for an OpenAI-compatible endpoint")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.NoneBackend), "Profile store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
