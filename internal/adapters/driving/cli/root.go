// Package cli provides the emojiont command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driving"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services wired by main. Commands fail with a "not configured" error when
// the service they need is nil.
var (
	ontologyGenerator driving.OntologyGenerator
	reportGenerator   driving.ReportGenerator
	colorAnalysis     driving.ColorAnalysisService
	usageService      driving.UsageService
	settingsService   driving.SettingsService
	templateWriter    func(path string) error
	defaultUsageURL   string
)

// Config holds the services the commands run against.
type Config struct {
	OntologyGenerator driving.OntologyGenerator
	ReportGenerator   driving.ReportGenerator
	ColorAnalysis     driving.ColorAnalysisService
	UsageService      driving.UsageService
	SettingsService   driving.SettingsService

	// TemplateWriter writes the built-in OWL template to a path.
	TemplateWriter func(path string) error

	// UsageURL is fetched when "usage fetch" is given no URL.
	UsageURL string
}

// Configure sets the services used by the commands.
func Configure(cfg *Config) {
	ontologyGenerator = cfg.OntologyGenerator
	reportGenerator = cfg.ReportGenerator
	colorAnalysis = cfg.ColorAnalysis
	usageService = cfg.UsageService
	settingsService = cfg.SettingsService
	templateWriter = cfg.TemplateWriter
	defaultUsageURL = cfg.UsageURL
}

var rootCmd = &cobra.Command{
	Use:   "emojiont",
	Short: "Build an emoji ontology",
	Long: `emojiont turns an emoji catalogue into an OWL/XML ontology and a CSV report.

Each emoji is enriched with its dominant color, a sentiment valence and its
share of observed usage. Colors and usage are cached by "analyse colors" and
"usage fetch"; the ontology and report commands read those caches.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print pipeline progress to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
