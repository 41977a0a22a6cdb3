package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/internal/gitclient"
	"github.com/abdulahadd002/epic-dev-assignment/internal/outwriter"
)

// analyzeCmd profiles developers from their commit history.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <username> [username...]",
	Short: "Profile developers from their GitHub commit history.",
	Long: `Fetch commit history for one or more GitHub users and derive a full
developer profile from it.

Each profile includes:
- Commit timing stats (on-time vs late work, hourly and weekday activity)
- Commit message quality and consistency scores
- Expertise areas inferred from the files each developer touches
- An overall experience level (Beginner through Senior)

With --owner and --repo the analysis is scoped to a single repository.
Without them, each user's most recently pushed repositories are scanned.

Profiles are written to the selected output and, when a store backend is
configured, persisted for later assignment runs.

Examples:
  # Profile two developers across their recent repositories
  epicassign analyze alice bob

  # Scope the analysis to one repository
  epicassign analyze alice --owner acme --repo payments

  # Save profiles for a later assign run
  epicassign analyze alice bob --output json --output-file developers.json

  # Persist profiles in the local store
  epicassign analyze alice --store-backend sqlite`,
	Args:     cobra.MinimumNArgs(1),
	PreRunE:  sharedSetupWrapper,
	PostRunE: sharedTeardownWrapper,
	Run: func(_ *cobra.Command, args []string) {
		client := gitclient.NewClient(cfg.GitHubToken, cfg.RateLimit)
		profiles, err := gitclient.AnalyzeDevelopers(rootCtx, client, cfg, args)
		if err != nil {
			contract.LogFatal("Cannot analyze developers", err)
		}

		for i := range profiles {
			if err := store.SaveProfile(&profiles[i]); err != nil {
				contract.LogWarn(fmt.Sprintf("Failed to persist profile for %s", profiles[i].Username), err)
			}
		}

		if err := outwriter.NewOutWriter().WriteProfiles(profiles, cfg); err != nil {
			contract.LogFatal("Cannot write profiles", err)
		}
	},
}
