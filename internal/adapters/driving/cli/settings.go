package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change input paths, cache and fetch options.

Settings are stored in config.toml under $EMOJIONT_HOME (default ~/.emojiont).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. Recognised keys:

  inputs.emoji_csv      Emoji catalogue CSV
  inputs.category_csv   Annotation category CSV (optional)
  inputs.sentiment_csv  Sentiment CSV (optional)
  inputs.template       OWL template (empty uses the built-in one)
  cache.backend         file or sqlite
  cache.dir             Directory holding the caches
  usage.url             Usage statistics page
  usage.settle_ms       Wait after the page loads, in milliseconds
  usage.timeout_ms      Request timeout, in milliseconds
  analysis.glyph_dir    Directory of pre-rendered glyph images
  analysis.rate         Glyph samples per second (0 is unlimited)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Inputs]")
	cmd.Printf("  Emoji CSV: %s\n", settings.Inputs.EmojiCSV)
	cmd.Printf("  Category CSV: %s\n", orNone(settings.Inputs.CategoryCSV))
	cmd.Printf("  Sentiment CSV: %s\n", orNone(settings.Inputs.SentimentCSV))
	template := settings.Inputs.Template
	if template == "" {
		template = "(built-in)"
	}
	cmd.Printf("  Template: %s\n", template)
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  Backend: %s\n", settings.Cache.Backend.Description())
	cmd.Printf("  Directory: %s\n", settings.Cache.Dir)
	cmd.Println()

	cmd.Println("[Usage]")
	cmd.Printf("  URL: %s\n", orNone(settings.Usage.URL))
	cmd.Printf("  Settle delay: %s\n", settings.Usage.SettleDelay)
	cmd.Printf("  Timeout: %s\n", settings.Usage.Timeout)
	cmd.Println()

	cmd.Println("[Analysis]")
	cmd.Printf("  Glyph directory: %s\n", settings.Analysis.GlyphDir)
	if settings.Analysis.Rate > 0 {
		cmd.Printf("  Rate: %g/s\n", settings.Analysis.Rate)
	} else {
		cmd.Printf("  Rate: unlimited\n")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}

	cmd.Printf("%s set to %q\n", args[0], args[1])
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
