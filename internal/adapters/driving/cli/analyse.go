package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var analyseCmd = &cobra.Command{
	Use:   "analyse",
	Short: "Run bulk analyses that fill the enrichment caches",
}

var analyseColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Classify the dominant color of every emoji",
	Long: `Samples every emoji glyph, maps it to the closest palette color and
replaces the color cache with the results.

The batch runs to completion once started. If any glyph cannot be sampled
the cache is left unchanged.`,
	Args: cobra.NoArgs,
	RunE: runAnalyseColors,
}

func init() {
	analyseCmd.AddCommand(analyseColorsCmd)
	rootCmd.AddCommand(analyseCmd)
}

func runAnalyseColors(cmd *cobra.Command, _ []string) error {
	if colorAnalysis == nil {
		return errors.New("color analysis service not configured")
	}

	ctx := context.Background()
	task, err := colorAnalysis.Start(ctx)
	if err != nil {
		return fmt.Errorf("start color analysis: %w", err)
	}

	out := cmd.OutOrStdout()
	if out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runProgressView(out, "Analysing colors", task.Progress()); err != nil {
			return fmt.Errorf("progress view: %w", err)
		}
	} else {
		printProgress(out, "Analysing colors", task.Progress())
	}

	entries, err := task.Wait()
	if err != nil {
		return fmt.Errorf("color analysis failed: %w", err)
	}
	if err := colorAnalysis.Save(ctx, entries); err != nil {
		return err
	}

	cmd.Printf("Cached colors for %d emoji (run %s)\n", len(entries), task.ID())
	return nil
}
