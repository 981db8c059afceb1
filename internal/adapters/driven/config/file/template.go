package file

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
)

// Ensure TemplateStore implements the interface.
var _ driven.TemplateSource = (*TemplateStore)(nil)

// defaultTemplate is the OWL/XML document every ontology is rendered into.
//
//go:embed templates/emoji.owl
var defaultTemplate string

// DefaultTemplate returns the embedded OWL template.
func DefaultTemplate() string {
	return defaultTemplate
}

// TemplateStore loads the OWL template from a user-editable file, falling
// back to the embedded default when no path is configured.
type TemplateStore struct {
	path string
}

// NewTemplateStore creates a template store. An empty path selects the
// embedded template.
func NewTemplateStore(path string) *TemplateStore {
	return &TemplateStore{path: path}
}

// Load returns the template text.
// A configured path that does not exist wraps domain.ErrMissingInput.
func (s *TemplateStore) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.path == "" {
		return defaultTemplate, nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: template %s", domain.ErrMissingInput, s.path)
	}
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// Path returns the configured template path, empty for the embedded template.
func (s *TemplateStore) Path() string {
	return s.path
}

// WriteDefault writes the embedded template to path so it can be customised.
// An existing file is not overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", domain.ErrInvalidInput, path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create template directory: %w", err)
		}
	}
	return os.WriteFile(path, []byte(defaultTemplate), 0600)
}
