// Package fetch retrieves job descriptions from posting URLs so a custom
// screening profile can be built from a live listing instead of pasted text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ATSScreener/1.0)"

// Result holds the raw and processed content from a posting fetch.
type Result struct {
	URL         string
	HTML        string
	Text        string
	Platform    Platform
	Rendered    bool // true when a headless browser produced the HTML
	StatusCode  int
	ContentType string
}

// Error represents an error while fetching a job posting.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures posting fetches.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	Headers      map[string]string
	AllowBrowser bool // permit the headless-browser fallback for script-rendered pages
	Verbose      bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		AllowBrowser: true,
	}
}

// JobDescription fetches a posting URL and returns its description text. The
// static HTTP result is preferred; when the extracted text is too short to be
// a real description the page is re-rendered in a headless browser.
func JobDescription(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := page(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	result.Platform = platform

	text, err := extractText(result.HTML, platform)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}
	result.Text = text

	if opts.AllowBrowser && looksScriptRendered(text) {
		html, browserErr := renderPage(ctx, urlStr, opts.Timeout, opts.Verbose)
		if browserErr != nil {
			// The static result stands when rendering is unavailable.
			return result, nil
		}
		if rendered, err := extractText(html, platform); err == nil && len(rendered) > len(text) {
			result.HTML = html
			result.Text = rendered
			result.Rendered = true
		}
	}

	return result, nil
}

// page retrieves the raw HTML of a posting URL over plain HTTP.
func page(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// extractText parses posting HTML and returns the description text, using
// platform-aware content and noise selectors.
func extractText(html string, platform Platform) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .sidebar, .cookie-banner, .popup").Remove()

	if noise := strings.Join(platformNoiseSelectors(platform), ", "); noise != "" {
		doc.Find(noise).Remove()
	}

	var content *goquery.Selection
	for _, selector := range platformContentSelectors(platform) {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return collapseBlankLines(content.Text()), nil
}

// collapseBlankLines trims every line and drops empty ones.
func collapseBlankLines(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
