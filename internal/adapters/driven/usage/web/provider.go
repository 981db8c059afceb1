// Package web fetches usage statistics pages over HTTP and reduces them to
// their visible text.
package web

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.UsageProvider = (*Provider)(nil)

// maxBodySize caps the page size read from the server.
const maxBodySize = 16 << 20

// Provider loads a usage page and returns its text.
type Provider struct {
	client *http.Client
	settle time.Duration
}

// NewProvider creates a provider. timeout bounds each request and settle is
// waited after the page is received before its text is returned.
func NewProvider(timeout, settle time.Duration) *Provider {
	return &Provider{
		client: &http.Client{Timeout: timeout},
		settle: settle,
	}
}

// Fetch loads url and returns the page text, one block element per line.
func (p *Provider) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("%w: usage url is empty", domain.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	logger.Debug("fetching usage page %s", url)
	resp, err := p.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: fetch %s: %v", domain.ErrExternalService, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: usage page request failed with status %d",
			domain.ErrExternalService, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: read usage page: %v", domain.ErrExternalService, err)
	}

	if p.settle > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.settle):
		}
	}

	return PageText(string(body)), nil
}

var (
	scriptTag         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag       = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag           = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	svgTag            = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments      = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockElements     = regexp.MustCompile(`(?i)</(p|div|h[1-6]|ul|ol|tr|blockquote|pre|table|section|article|header|footer)>`)
	openBlockElements = regexp.MustCompile(`(?i)<(p|div|h[1-6]|ul|ol|tr|blockquote|pre|table|section|article|header|footer)[^>]*>`)
	brTags            = regexp.MustCompile(`(?i)<br\s*/?>`)
	hrTags            = regexp.MustCompile(`(?i)<hr\s*/?>`)
	allTags           = regexp.MustCompile(`<[^>]+>`)
	multiSpaces       = regexp.MustCompile(`[ \t]+`)
)

// PageText reduces an HTML document to its visible text. Block elements
// start new lines, inline elements such as list items and spans are joined
// by a single space, and blank lines are dropped.
func PageText(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = noscriptTag.ReplaceAllString(content, "")
	content = headTag.ReplaceAllString(content, "")
	content = svgTag.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")

	content = openBlockElements.ReplaceAllString(content, "\n")
	content = blockElements.ReplaceAllString(content, "\n")
	content = brTags.ReplaceAllString(content, "\n")
	content = hrTags.ReplaceAllString(content, "\n")

	// Tags separate tokens even when the markup has no whitespace.
	content = allTags.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
