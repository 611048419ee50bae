// Package main provides the mealparse CLI: parse one workbook to
// JSON without touching a database.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/weirdogene/meal/internal/mealplan"
)

var (
	site       string
	outputPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mealparse [workbook.xlsx]",
		Short: "Parse a weekly meal-plan workbook to JSON",
		Long: `mealparse runs the same parser the upload API uses and prints the
resulting document, which makes new cafeteria templates easy to check
before anyone uploads them.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&site, "site", "main", "Site id (selects the fallback column layout)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	doc, err := mealplan.ParseFile(inputPath, site)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if doc.WeekStart == nil {
		fmt.Fprintln(os.Stderr, "warning: no recognizable dates; the API would reject this workbook")
	}

	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(doc, "", "  ")
	} else {
		jsonData, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Println(string(jsonData))
	return nil
}
