package driving

import "context"

// UsageService refreshes the usage cache.
type UsageService interface {
	// Refresh fetches the usage page at url, parses it and saves the counts.
	// Returns the number of glyphs cached.
	Refresh(ctx context.Context, url string) (int, error)

	// Import parses a saved usage text file and saves the counts.
	// Returns the number of glyphs cached.
	Import(ctx context.Context, path string) (int, error)
}
