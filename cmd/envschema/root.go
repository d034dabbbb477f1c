package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	schemaFile string
	envFile    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "envschema",
	Short: "Validate environment configuration against a declarative schema",
	Long: `envschema validates and type-coerces environment variables against
a declarative YAML schema, including cloud resource identifier formats
(ARNs, queue URLs, bucket names, instance IDs, endpoints).

Quick start:
  envschema validate --schema schema.yaml            # validate process env
  envschema validate --schema schema.yaml --env-file .env

Reference:
  envschema grammars   # list the identifier grammar catalog`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&schemaFile, "schema", "s", "schema.yaml", "schema file path")
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "", "env file path (default: process environment)")
}
