package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdulahadd002/epic-dev-assignment/core"
	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// reassignCmd manually moves one epic to another developer.
var reassignCmd = &cobra.Command{
	Use:   "reassign <epic-id> <developer>",
	Short: "Manually move one epic to another developer.",
	Long: `Move a single epic in a saved assignment result to a different
developer.

The epic's story points move with it in the workload distribution, the
assignment's confidence is set to "manual", and the updated result is
written back to the same file. An unknown epic id is a hard error.

Examples:
  # Hand the payments epic to bob
  epicassign reassign epic-7 bob --assignments assignments.json`,
	Args:     cobra.ExactArgs(2),
	PreRunE:  sharedSetupWrapper,
	PostRunE: sharedTeardownWrapper,
	Run: func(_ *cobra.Command, args []string) {
		epicID, developer := args[0], args[1]

		result, err := loadAssignments()
		if err != nil {
			contract.LogFatal("Cannot load assignments", err)
		}
		if result.Workload == nil {
			result.Workload = make(schema.WorkloadDistribution)
		}

		if err := core.ReassignEpic(result.Assignments, epicID, developer, result.Workload); err != nil {
			contract.LogFatal("Cannot reassign epic", err)
		}

		if err := writeAssignmentsFile(result); err != nil {
			contract.LogFatal("Cannot save assignments", err)
		}
		fmt.Printf("Reassigned %s to %s in %s\n", epicID, developer, cfg.AssignmentsFile)
	},
}
