package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "speclint",
	Short: "Validate planning documents for quality and traceability",
	Long: `speclint inspects task checklist documents, extracts their declared units
of work, and checks them against a set of independent quality rules:
template compliance, task atomicity, actionability, domain safety,
localization context, and requirement traceability.

Companion requirements and design documents are resolved next to the task
document (requirements.md, design.md) and used for cross-document checks;
their absence downgrades those checks to warnings instead of failing the run.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "speclint: %v\n", err)
		os.Exit(2)
	}
}
