package content

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// ExtractResult is the readability-style view of an article page
type ExtractResult struct {
	Title       string
	ContentHTML string // sanitized article HTML
	ContentText string
	Excerpt     string
	Image       string // lead image from page metadata
	Banner      string // first inline image, fallback when metadata has none
}

// HTTPExtractor extracts article content from URLs using trafilatura
type HTTPExtractor struct {
	client    *http.Client
	userAgent string
	policy    *bluemonday.Policy
	minText   int
}

// NewHTTPExtractor creates a new content extractor. minText is the minimum
// extracted text length to count as a successful extraction.
func NewHTTPExtractor(timeout time.Duration, userAgent string, minText int) *HTTPExtractor {
	if minText <= 0 {
		minText = 100
	}
	return &HTTPExtractor{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		policy:    bluemonday.UGCPolicy(),
		minText:   minText,
	}
}

// Extract retrieves the page and extracts its main content
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (*ExtractResult, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeImages:   true,
		IncludeLinks:    true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil || strings.TrimSpace(result.ContentText) == "" {
		return nil, fmt.Errorf("no content extracted from %s", urlStr)
	}

	text := strings.TrimSpace(result.ContentText)
	if len(text) < e.minText {
		return nil, fmt.Errorf("extracted content too short (%d chars) from %s", len(text), urlStr)
	}

	res := &ExtractResult{
		Title:       result.Metadata.Title,
		ContentText: text,
		Excerpt:     result.Metadata.Description,
		Image:       result.Metadata.Image,
	}

	if result.ContentNode != nil {
		res.ContentHTML = e.policy.Sanitize(renderNode(result.ContentNode))
		res.Banner = firstImage(result.ContentNode)
	}
	if res.Excerpt == "" {
		res.Excerpt = Snippet(text, 250)
	}

	return res, nil
}

// Sanitize strips unsafe markup from feed-supplied HTML
func (e *HTTPExtractor) Sanitize(rawHTML string) string {
	return e.policy.Sanitize(rawHTML)
}

var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips all markup, leaving whitespace-normalized text
func PlainText(rawHTML string) string {
	return strings.Join(strings.Fields(strictPolicy.Sanitize(rawHTML)), " ")
}

// renderNode serializes an HTML node back to markup
func renderNode(node *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return ""
	}
	return buf.String()
}

// firstImage walks the extracted content for the first img src
func firstImage(node *html.Node) string {
	if node.Type == html.ElementNode && node.Data == "img" {
		for _, attr := range node.Attr {
			if attr.Key == "src" && attr.Val != "" {
				return attr.Val
			}
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if src := firstImage(child); src != "" {
			return src
		}
	}
	return ""
}

// Snippet returns the leading window of text, cut at a rune boundary
func Snippet(text string, limit int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= limit {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:limit]))
}

// AbsoluteURL resolves ref against base, returning empty string when either
// side is unusable. Used to absolutize extracted image URLs against the
// article link.
func AbsoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if refURL.IsAbs() {
		return refURL.String()
	}
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Host == "" {
		return ""
	}
	return baseURL.ResolveReference(refURL).String()
}
