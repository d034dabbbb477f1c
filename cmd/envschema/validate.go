package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/artpar/envschema/config"
	"github.com/artpar/envschema/core/schema"
	"github.com/artpar/envschema/core/validation"
)

const (
	checkMark = "✓"
	crossMark = "✗"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration before deployment",
	Long: `Validate environment configuration against a schema file.

Checks:
  - Schema YAML is well-formed
  - Every declared variable coerces to its type
  - Enum, constraint and scope rules hold

Examples:
  envschema validate --schema schema.yaml
  envschema validate --schema schema.yaml --env-file .env`,
	RunE: runValidate,
}

var validateShowValues bool

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateShowValues, "show-values", false, "print the validated values (sensitive variables stay masked)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Printf("Validating against %s...\n\n", schemaFile)

	if _, err := os.Stat(schemaFile); os.IsNotExist(err) {
		fmt.Printf("  %s Schema file exists\n", crossMark)
		return fmt.Errorf("schema file not found: %s", schemaFile)
	}
	fmt.Printf("  %s Schema file exists\n", checkMark)

	s, err := schema.ParseFile(schemaFile)
	if err != nil {
		fmt.Printf("  %s Schema is well-formed\n", crossMark)
		return fmt.Errorf("schema error: %w", err)
	}
	fmt.Printf("  %s Schema is well-formed\n", checkMark)

	src := validation.Environ()
	if envFile != "" {
		fileSrc, err := config.LoadEnvFile(envFile)
		if err != nil {
			fmt.Printf("  %s Env file parses\n", crossMark)
			return fmt.Errorf("env file error: %w", err)
		}
		fmt.Printf("  %s Env file parses\n", checkMark)
		src = fileSrc
	}

	values, err := validation.Validate(s, src)
	if err != nil {
		fmt.Printf("  %s Values validate\n\n", crossMark)
		var failure *validation.Failure
		if errors.As(err, &failure) {
			fmt.Println(failure.Error())
			os.Exit(1)
		}
		return err
	}
	fmt.Printf("  %s Values validate\n", checkMark)

	if validateShowValues {
		fmt.Println()
		printValues(s, values)
	}

	fmt.Printf("\n%d variable(s) OK\n", len(s))
	return nil
}

func printValues(s schema.Schema, values map[string]any) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if item, ok := s[name]; ok && item.Sensitive {
			fmt.Printf("  %s = %s\n", name, validation.MaskToken)
			continue
		}
		fmt.Printf("  %s = %v\n", name, values[name])
	}
}
