package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// ErrMalformed flags a structurally broken feed document (the "bozo"
// condition): the response arrived but could not be parsed.
var ErrMalformed = errors.New("malformed feed")

// Enclosure is one downloadable link attached to an entry.
type Enclosure struct {
	URL string
}

// Entry is one feed item. Published keeps the raw date string from the feed;
// PublishedAt is the parser's interpretation when it managed one.
type Entry struct {
	Title       string
	Published   string
	PublishedAt *time.Time
	Enclosures  []Enclosure
}

// Feed is the parsed result of one feed fetch.
type Feed struct {
	StatusCode int
	Title      string
	Entries    []Entry
}

// Client fetches and parses a feed document.
type Client interface {
	Fetch(ctx context.Context, url string) (*Feed, error)
}

// HTTPClient fetches feeds over HTTP and parses them with gofeed.
type HTTPClient struct {
	client *http.Client
	parser *gofeed.Parser
}

// NewHTTPClient constructs a feed client with the given request timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
		parser: gofeed.NewParser(),
	}
}

// Fetch retrieves and parses the feed at url. A non-200 response is returned
// as a Feed carrying only the status code; the caller decides whether to
// proceed. A parse failure wraps ErrMalformed.
func (c *HTTPClient) Fetch(ctx context.Context, url string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("User-Agent", "castfetch")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Feed{StatusCode: resp.StatusCode}, nil
	}

	parsed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := &Feed{StatusCode: resp.StatusCode, Title: parsed.Title}
	out.Entries = make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		out.Entries = append(out.Entries, mapItem(item))
	}
	return out, nil
}

// mapItem flattens a gofeed item into an Entry. Entry links come first, then
// enclosure URLs not already listed, preserving feed order the way the
// historical link iteration saw them.
func mapItem(item *gofeed.Item) Entry {
	entry := Entry{
		Title:       item.Title,
		Published:   item.Published,
		PublishedAt: item.PublishedParsed,
	}

	seen := map[string]struct{}{}
	add := func(url string) {
		if url == "" {
			return
		}
		if _, ok := seen[url]; ok {
			return
		}
		seen[url] = struct{}{}
		entry.Enclosures = append(entry.Enclosures, Enclosure{URL: url})
	}

	for _, link := range item.Links {
		add(link)
	}
	add(item.Link)
	for _, enc := range item.Enclosures {
		if enc != nil {
			add(enc.URL)
		}
	}
	return entry
}

var _ Client = (*HTTPClient)(nil)
