package driven

import "context"

// UsageProvider fetches the rendered text of a usage statistics page.
// The text's second line holds alternating glyph and count tokens.
type UsageProvider interface {
	// Fetch loads url and returns the page text once it has settled.
	Fetch(ctx context.Context, url string) (string, error)
}
