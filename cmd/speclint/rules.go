package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/speclint/speclint/internal/document"
	"github.com/speclint/speclint/internal/engine"
	"github.com/speclint/speclint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and configure the validation rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered rules in evaluation order",
	Run: func(cmd *cobra.Command, args []string) {
		runner, err := engine.New(document.MapSource{}, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "speclint: %v\n", err)
			os.Exit(2)
		}

		for _, rule := range runner.Rules() {
			fmt.Printf("%4d  %s\n", rule.Priority(), rule.ID())
		}
	},
}

var rulesInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default rule vocabulary to a YAML file for editing",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "speclint-rules.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if err := rules.SaveDefaultRuleSet(path); err != nil {
			fmt.Fprintf(os.Stderr, "speclint: %v\n", err)
			os.Exit(2)
		}
		fmt.Printf("Wrote default rule vocabulary to %s\n", path)
	},
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesInitCmd)
	rootCmd.AddCommand(rulesCmd)
}
