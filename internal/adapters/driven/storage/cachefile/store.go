// Package cachefile stores the enrichment caches as YAML files in a directory.
// The files are plain enough to be checked in and used to bootstrap a fresh
// checkout without re-running the analyses.
package cachefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
)

// Cache file names within the directory.
const (
	ColorsFile = "colors.yaml"
	UsageFile  = "usage.yaml"
)

// Ensure Store implements the interfaces.
var (
	_ driven.ColorCacheStore = (*Store)(nil)
	_ driven.UsageCacheStore = (*Store)(nil)
)

// colorDocument is the on-disk shape of colors.yaml.
type colorDocument struct {
	RunID  string              `yaml:"run_id,omitempty"`
	Colors []domain.ColorEntry `yaml:"colors"`
}

// usageDocument is the on-disk shape of usage.yaml.
type usageDocument struct {
	Counts map[string]int `yaml:"counts"`
}

// Store reads and writes YAML cache files.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates a store rooted at dir. Nothing is read or created until used.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveColors writes colors.yaml, sorted by glyph for stable diffs.
func (s *Store) SaveColors(_ context.Context, entries []domain.ColorEntry) error {
	doc := colorDocument{Colors: make([]domain.ColorEntry, len(entries))}
	copy(doc.Colors, entries)
	sort.Slice(doc.Colors, func(i, j int) bool {
		return doc.Colors[i].Glyph < doc.Colors[j].Glyph
	})

	// A single batch stamps every entry with the same run ID; hoist it.
	if len(doc.Colors) > 0 {
		doc.RunID = doc.Colors[0].RunID
		for _, e := range doc.Colors {
			if e.RunID != doc.RunID {
				doc.RunID = ""
				break
			}
		}
		if doc.RunID != "" {
			for i := range doc.Colors {
				doc.Colors[i].RunID = ""
			}
		}
	}

	return s.write(ColorsFile, doc)
}

// LoadColors reads colors.yaml.
func (s *Store) LoadColors(_ context.Context) (map[string]domain.ColorEntry, error) {
	var doc colorDocument
	if err := s.read(ColorsFile, &doc); err != nil {
		return nil, err
	}

	colors := make(map[string]domain.ColorEntry, len(doc.Colors))
	for _, e := range doc.Colors {
		if e.RunID == "" {
			e.RunID = doc.RunID
		}
		colors[e.Glyph] = e
	}
	return colors, nil
}

// SaveUsage writes usage.yaml.
func (s *Store) SaveUsage(_ context.Context, counts map[string]int) error {
	if counts == nil {
		counts = map[string]int{}
	}
	return s.write(UsageFile, usageDocument{Counts: counts})
}

// LoadUsage reads usage.yaml.
func (s *Store) LoadUsage(_ context.Context) (map[string]int, error) {
	var doc usageDocument
	if err := s.read(UsageFile, &doc); err != nil {
		return nil, err
	}
	if doc.Counts == nil {
		doc.Counts = map[string]int{}
	}
	return doc.Counts, nil
}

func (s *Store) write(name string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	// Readers never see a partially written cache.
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}

func (s *Store) read(name string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}
