// main is the entry point for the epicassign CLI.
package main

import (
	"github.com/abdulahadd002/epic-dev-assignment/cmd"
	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
