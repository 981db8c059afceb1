package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyEmojiCSV         = "inputs.emoji_csv"
	KeyCategoryCSV      = "inputs.category_csv"
	KeySentimentCSV     = "inputs.sentiment_csv"
	KeyTemplate         = "inputs.template"
	KeyCacheBackend     = "cache.backend"
	KeyCacheDir         = "cache.dir"
	KeyUsageURL         = "usage.url"
	KeyUsageSettleMS    = "usage.settle_ms"
	KeyUsageTimeoutMS   = "usage.timeout_ms"
	KeyAnalysisGlyphDir = "analysis.glyph_dir"
	KeyAnalysisRate     = "analysis.rate"
)

// settingKeys lists every recognised key in display order.
var settingKeys = []string{
	KeyEmojiCSV,
	KeyCategoryCSV,
	KeySentimentCSV,
	KeyTemplate,
	KeyCacheBackend,
	KeyCacheDir,
	KeyUsageURL,
	KeyUsageSettleMS,
	KeyUsageTimeoutMS,
	KeyAnalysisGlyphDir,
	KeyAnalysisRate,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Inputs: domain.InputSettings{
			EmojiCSV:     s.getString(KeyEmojiCSV, defaults.Inputs.EmojiCSV),
			CategoryCSV:  s.getString(KeyCategoryCSV, defaults.Inputs.CategoryCSV),
			SentimentCSV: s.getString(KeySentimentCSV, defaults.Inputs.SentimentCSV),
			Template:     s.configStore.GetString(KeyTemplate), // No default - empty uses the embedded template
		},
		Cache: domain.CacheSettings{
			Backend: s.getCacheBackend(defaults.Cache.Backend),
			Dir:     s.getString(KeyCacheDir, defaults.Cache.Dir),
		},
		Usage: domain.UsageSettings{
			URL:         s.getString(KeyUsageURL, defaults.Usage.URL),
			SettleDelay: s.getMillis(KeyUsageSettleMS, defaults.Usage.SettleDelay),
			Timeout:     s.getMillis(KeyUsageTimeoutMS, defaults.Usage.Timeout),
		},
		Analysis: domain.AnalysisSettings{
			GlyphDir: s.getString(KeyAnalysisGlyphDir, defaults.Analysis.GlyphDir),
			Rate:     s.configStore.GetFloat(KeyAnalysisRate),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Cache.Backend.IsValid() {
		return fmt.Errorf("invalid cache backend: %s", settings.Cache.Backend)
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyEmojiCSV, settings.Inputs.EmojiCSV},
		{KeyCategoryCSV, settings.Inputs.CategoryCSV},
		{KeySentimentCSV, settings.Inputs.SentimentCSV},
		{KeyTemplate, settings.Inputs.Template},
		{KeyCacheBackend, settings.Cache.Backend.String()},
		{KeyCacheDir, settings.Cache.Dir},
		{KeyUsageURL, settings.Usage.URL},
		{KeyUsageSettleMS, int(settings.Usage.SettleDelay / time.Millisecond)},
		{KeyUsageTimeoutMS, int(settings.Usage.Timeout / time.Millisecond)},
		{KeyAnalysisGlyphDir, settings.Analysis.GlyphDir},
		{KeyAnalysisRate, settings.Analysis.Rate},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set validates and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	var stored any = value

	switch key {
	case KeyEmojiCSV, KeyCategoryCSV, KeySentimentCSV, KeyTemplate, KeyCacheDir, KeyUsageURL, KeyAnalysisGlyphDir:
	case KeyCacheBackend:
		if !domain.CacheBackend(value).IsValid() {
			return fmt.Errorf("%w: cache backend must be %q or %q",
				domain.ErrInvalidInput, domain.CacheBackendFile, domain.CacheBackendSQLite)
		}
	case KeyUsageSettleMS, KeyUsageTimeoutMS:
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		stored = ms
	case KeyAnalysisRate:
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		stored = rate
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getMillis(key string, defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return time.Duration(s.configStore.GetInt(key)) * time.Millisecond
}

func (s *SettingsService) getCacheBackend(defaultVal domain.CacheBackend) domain.CacheBackend {
	val := s.configStore.GetString(KeyCacheBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.CacheBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
