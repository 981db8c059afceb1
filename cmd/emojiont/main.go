// Command emojiont builds an enriched OWL/XML emoji ontology and CSV report.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/config/file"
	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/sampler/glyphimage"
	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/source/csvfile"
	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/storage/cachefile"
	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/usage/web"
	"github.com/custodia-labs/emoji-ontology/internal/adapters/driving/cli"
	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/core/services"
)

// homeEnv overrides the configuration directory.
const homeEnv = "EMOJIONT_HOME"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	configDir := os.Getenv(homeEnv)
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: locate config directory: %v\n", err)
			return err
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		return err
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read settings: %v\n", err)
		return err
	}

	colorStore, usageStore, closer, err := openCaches(settings.Cache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open caches: %v\n", err)
		return err
	}
	defer closer.Close() //nolint:errcheck // nothing to report at exit

	reader := csvfile.NewReader()
	catalogue := services.NewCatalogueService(reader, settings.Inputs.EmojiCSV)
	enricher := services.NewEnricher(services.EnricherConfig{
		Reader:        reader,
		SentimentPath: settings.Inputs.SentimentCSV,
		UsageStore:    usageStore,
		ColorStore:    colorStore,
	})

	cli.Configure(&cli.Config{
		OntologyGenerator: services.NewOntologyService(
			catalogue,
			enricher,
			file.NewTemplateStore(settings.Inputs.Template),
			reader,
			settings.Inputs.CategoryCSV,
		),
		ReportGenerator: services.NewReportService(catalogue, enricher),
		ColorAnalysis: services.NewColorAnalyser(
			catalogue,
			glyphimage.NewSampler(settings.Analysis.GlyphDir),
			colorStore,
			settings.Analysis.Rate,
		),
		UsageService: services.NewUsageService(
			web.NewProvider(settings.Usage.Timeout, settings.Usage.SettleDelay),
			reader,
			usageStore,
		),
		SettingsService: settingsService,
		TemplateWriter:  file.WriteDefault,
		UsageURL:        settings.Usage.URL,
	})

	return cli.Execute()
}

// openCaches selects the cache backend. The returned closer releases it.
func openCaches(cfg domain.CacheSettings) (driven.ColorCacheStore, driven.UsageCacheStore, io.Closer, error) {
	switch cfg.Backend {
	case domain.CacheBackendSQLite:
		store, err := sqlite.NewStore(cfg.Dir)
		if err != nil {
			return nil, nil, nil, err
		}
		return store.ColorCacheStore(), store.UsageCacheStore(), store, nil
	default:
		store := cachefile.NewStore(cfg.Dir)
		return store, store, nopCloser{}, nil
	}
}

// nopCloser is the closer of backends that hold no open handles.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }
