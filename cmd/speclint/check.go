package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/speclint/speclint/internal/document"
	"github.com/speclint/speclint/internal/engine"
	"github.com/speclint/speclint/internal/report"
	"github.com/speclint/speclint/internal/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check <tasks.md>",
	Short: "Validate a task document and print a graded report",
	Long: `Validate a task checklist document and print its findings grouped by
severity, followed by the overall rating.

Exit codes:
  0 - rating is pass or needs_improvement
  1 - rating is major_issues
  2 - the document could not be loaded`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rulesPath, _ := cmd.Flags().GetString("rules")
		parallel, _ := cmd.Flags().GetBool("parallel")
		quiet, _ := cmd.Flags().GetBool("quiet")
		format, _ := cmd.Flags().GetString("format")

		var cfg *rules.RuleSet
		if rulesPath != "" {
			loaded, err := rules.LoadRuleSet(rulesPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "speclint: %v\n", err)
				os.Exit(2)
			}
			cfg = loaded
		}

		runner, err := engine.New(document.DirSource{}, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "speclint: %v\n", err)
			os.Exit(2)
		}
		runner.Parallel = parallel

		rep, err := runner.Run(cmd.Context(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "speclint: %v\n", err)
			os.Exit(2)
		}

		if !quiet {
			printFindings(rep)
			if format == "table" {
				printSummaryTable(rep)
			}
			printRating(rep.Rating)
		}

		os.Exit(exitCode(rep.Rating))
	},
}

func init() {
	checkCmd.Flags().String("rules", "", "Path to a YAML rule vocabulary file (see 'speclint rules init')")
	checkCmd.Flags().Bool("parallel", false, "Evaluate rules concurrently")
	checkCmd.Flags().BoolP("quiet", "q", false, "Suppress output; only the exit code reports the result")
	checkCmd.Flags().String("format", "text", "Output format: text or table")
	rootCmd.AddCommand(checkCmd)
}

// exitCode maps a rating onto the process exit status: only major issues
// are non-zero.
func exitCode(rating report.Rating) int {
	if rating == report.RatingMajorIssues {
		return 1
	}
	return 0
}

func printFindings(rep *report.Report) {
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	marks := map[report.Severity]string{
		report.SeverityError:    red("✗"),
		report.SeverityWarning:  yellow("⚠"),
		report.SeverityStrength: green("✓"),
	}

	fmt.Printf("Validation report for %s\n\n", rep.Document)
	for _, sev := range []report.Severity{report.SeverityError, report.SeverityWarning, report.SeverityStrength} {
		for _, f := range rep.Findings {
			if f.Severity != sev {
				continue
			}
			fmt.Printf("  %s [%s] %s\n", marks[sev], f.RuleID, f.Message)
		}
	}
	fmt.Println()
}

func printSummaryTable(rep *report.Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Severity", "Count"})
	tw.AppendRow(table.Row{report.SeverityError, rep.Summary.Errors})
	tw.AppendRow(table.Row{report.SeverityWarning, rep.Summary.Warnings})
	tw.AppendRow(table.Row{report.SeverityStrength, rep.Summary.Strengths})
	tw.Render()
	fmt.Println()
}

func printRating(rating report.Rating) {
	switch rating {
	case report.RatingMajorIssues:
		color.Red("Rating: %s", rating)
	case report.RatingNeedsImprovement:
		color.Yellow("Rating: %s", rating)
	default:
		color.Green("Rating: %s", rating)
	}
}
