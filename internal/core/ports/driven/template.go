package driven

import "context"

// TemplateSource provides the OWL/XML document template.
type TemplateSource interface {
	// Load returns the template text with its placeholder tokens intact.
	Load(ctx context.Context) (string, error)
}
