package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpar/envschema/core/identifier"
)

var grammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "List the identifier grammar catalog",
	Long: `List every identifier grammar tag usable as a schema type,
with a description of the format each one expects.`,
	Run: runGrammars,
}

func init() {
	rootCmd.AddCommand(grammarsCmd)
}

func runGrammars(cmd *cobra.Command, args []string) {
	for _, g := range identifier.Grammars() {
		fmt.Printf("  %-22s %s\n", g, identifier.Describe(g))
	}
}
