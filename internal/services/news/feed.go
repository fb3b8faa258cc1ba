package news

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"NewsFuse/internal/domain/models"
	domsvc "NewsFuse/internal/domain/service"
)

// FeedProvider pulls articles for a symbol from one RSS/Atom feed. Items
// are filtered to those mentioning the symbol; an empty match set makes the
// fallback chain move on to the next provider.
type FeedProvider struct {
	name   models.Provider
	url    string
	parser *gofeed.Parser
}

// NewFeedProvider builds a feed provider with the given identity.
func NewFeedProvider(name models.Provider, url string) *FeedProvider {
	return &FeedProvider{
		name:   name,
		url:    url,
		parser: gofeed.NewParser(),
	}
}

// Name returns the provider identity.
func (p *FeedProvider) Name() models.Provider { return p.name }

// Fetch parses the feed and keeps items mentioning the symbol.
func (p *FeedProvider) Fetch(ctx context.Context, symbol string) ([]models.Article, error) {
	feed, err := p.parser.ParseURLWithContext(p.url, ctx)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, &FetchError{Provider: p.name, Code: CodeFeed, Message: "parse feed: " + err.Error(), Err: err}
	}

	needle := strings.ToUpper(symbol)
	out := make([]models.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || item.Link == "" {
			continue
		}
		if !mentions(item, needle) {
			continue
		}
		published := time.Now()
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}
		out = append(out, models.Article{
			Title:       item.Title,
			Summary:     item.Description,
			Source:      feed.Title,
			URL:         item.Link,
			PublishedAt: published,
		})
	}
	return out, nil
}

func mentions(item *gofeed.Item, needle string) bool {
	if strings.Contains(strings.ToUpper(item.Title), needle) {
		return true
	}
	return strings.Contains(strings.ToUpper(item.Description), needle)
}

var _ domsvc.NewsProvider = (*FeedProvider)(nil)
