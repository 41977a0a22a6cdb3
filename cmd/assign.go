package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abdulahadd002/epic-dev-assignment/core"
	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/internal/outwriter"
)

// assignCmd distributes epics across developers.
var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign epics to developers with balanced workload.",
	Long: `Assign every epic in a JSON file to the best-suited developer.

Each epic is scored against each developer on three components:
- Expertise match between the epic's category and the developer's profile
- Experience level (Senior through Beginner)
- Workload balance against story points already assigned in this run

Epics are processed in input order, so earlier assignments shift later
ones toward less-loaded developers. Runners-up are recorded as
alternatives, and each assignment carries a confidence label.

Developer profiles come from --developers, or from the profile store
when the flag is omitted. Completed runs are persisted to the store when
a backend is configured.

Examples:
  # Assign from explicit files
  epicassign assign --epics epics.json --developers developers.json

  # Use profiles persisted by a previous analyze run
  epicassign assign --epics epics.json --store-backend sqlite

  # Save the result for later manual reassignment
  epicassign assign --epics epics.json --developers developers.json \
    --output json --output-file assignments.json

  # Columnar export for analytics
  epicassign assign --epics epics.json --developers developers.json \
    --output parquet --output-file assignments.parquet`,
	PreRunE:  sharedSetupWrapper,
	PostRunE: sharedTeardownWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		epics, err := loadEpics()
		if err != nil {
			contract.LogFatal("Cannot load epics", err)
		}
		developers, err := loadDevelopers()
		if err != nil {
			contract.LogFatal("Cannot load developers", err)
		}

		result, err := core.AutoAssignEpics(rootCtx, classifier(), epics, developers)
		if err != nil {
			contract.LogFatal("Cannot assign epics", err)
		}

		if _, err := store.SaveAssignmentRun(result); err != nil {
			contract.LogWarn("Failed to persist assignment run", err)
		}

		if err := outwriter.NewOutWriter().WriteAssignments(result, cfg); err != nil {
			contract.LogFatal("Cannot write assignments", err)
		}
	},
}
