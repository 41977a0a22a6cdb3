package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abdulahadd002/epic-dev-assignment/core"
	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/internal/outwriter"
)

// classifyCmd labels epics with development categories.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify epics into development categories.",
	Long: `Classify each epic in a JSON file into a development category
(Backend, Frontend, Mobile, DevOps, Data Science, Database, Game, Full Stack).

The classifier scores category keywords found in the epic's title and
description. A clear winner is labeled with high confidence. Ties are
broken by the AI classifier when an API key is configured; without one
the first tied category wins with low confidence. Epics with no keyword
signal default to Full Stack.

Examples:
  # Classify epics and print a table
  epicassign classify --epics epics.json

  # Break keyword ties with the AI classifier
  EPICASSIGN_AI_API_KEY=sk-... epicassign classify --epics epics.json

  # Export classifications for downstream tooling
  epicassign classify --epics epics.json --output csv --output-file labels.csv`,
	PreRunE:  sharedSetupWrapper,
	PostRunE: sharedTeardownWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		epics, err := loadEpics()
		if err != nil {
			contract.LogFatal("Cannot load epics", err)
		}

		results := core.ClassifyEpics(rootCtx, classifier(), epics)

		if err := outwriter.NewOutWriter().WriteClassifications(results, cfg); err != nil {
			contract.LogFatal("Cannot write classifications", err)
		}
	},
}
