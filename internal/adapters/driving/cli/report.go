package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const defaultReportFile = "EmojiInformation.csv"

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the CSV report",
	Long: `Generate a CSV report with one row per emoji.

Columns are the data properties followed by the annotations and the color.
Use -o - to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", defaultReportFile, "Output file")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if reportGenerator == nil {
		return errors.New("report service not configured")
	}

	csv, err := reportGenerator.GenerateCSV(context.Background())
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	return writeOutput(cmd, reportOutput, csv)
}
