package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Manage the usage statistics cache",
}

var usageFetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Fetch usage statistics and cache them",
	Long: `Fetches the usage statistics page once and caches the glyph counts.
Without a URL the configured usage.url is used. Nothing is retried.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUsageFetch,
}

var usageImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Cache usage statistics from a saved page",
	Long: `Reads a saved copy of the usage page text. The second line must hold
alternating glyph and count tokens.`,
	Args: cobra.ExactArgs(1),
	RunE: runUsageImport,
}

func init() {
	usageCmd.AddCommand(usageFetchCmd)
	usageCmd.AddCommand(usageImportCmd)
	rootCmd.AddCommand(usageCmd)
}

func runUsageFetch(cmd *cobra.Command, args []string) error {
	if usageService == nil {
		return errors.New("usage service not configured")
	}

	url := defaultUsageURL
	if len(args) > 0 {
		url = args[0]
	}
	if url == "" {
		return errors.New("no usage URL given and usage.url is not set")
	}

	cmd.Printf("Fetching usage from %s...\n", url)
	n, err := usageService.Refresh(context.Background(), url)
	if err != nil {
		return fmt.Errorf("usage fetch failed: %w", err)
	}

	cmd.Printf("Cached usage for %d glyphs.\n", n)
	return nil
}

func runUsageImport(cmd *cobra.Command, args []string) error {
	if usageService == nil {
		return errors.New("usage service not configured")
	}

	n, err := usageService.Import(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("usage import failed: %w", err)
	}

	cmd.Printf("Cached usage for %d glyphs.\n", n)
	return nil
}
