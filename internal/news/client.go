// Package news fetches headline lists from RSS, Atom and JSON feeds.
package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Item is one headline. Published is the feed's own date text, unparsed.
type Item struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

// Client fetches and parses feeds through gofeed with a bounded request time.
type Client struct {
	parser   *gofeed.Parser
	timeout  time.Duration
	maxItems int
}

func NewClient(timeout time.Duration, maxItems int) *Client {
	parser := gofeed.NewParser()
	parser.UserAgent = "QueueBoard/1.0"
	parser.Client = &http.Client{Timeout: timeout}
	return &Client{
		parser:   parser,
		timeout:  timeout,
		maxItems: maxItems,
	}
}

// Fetch returns at most maxItems entries of the feed at feedURL in feed order.
// Network failures, non-2xx answers, timeouts and unparsable bodies are errors.
func (c *Client) Fetch(ctx context.Context, feedURL string) ([]Item, error) {
	if strings.TrimSpace(feedURL) == "" {
		return nil, fmt.Errorf("feed URL is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	limit := len(feed.Items)
	if limit > c.maxItems {
		limit = c.maxItems
	}
	items := make([]Item, 0, limit)
	for _, entry := range feed.Items[:limit] {
		if entry == nil {
			continue
		}
		items = append(items, Item{
			Title:     entry.Title,
			Link:      entry.Link,
			Published: entry.Published,
		})
	}
	return items, nil
}
