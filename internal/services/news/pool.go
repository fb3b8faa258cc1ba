package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"NewsFuse/internal/domain/models"
	domsvc "NewsFuse/internal/domain/service"
	xhttp "NewsFuse/pkg/http"
	"NewsFuse/pkg/util"
)

// PoolProvider queries the curated article pool over HTTP. It is the
// highest-priority provider in the fallback chain.
type PoolProvider struct {
	url    string
	apiKey string
	client *xhttp.Client
}

// NewPoolProvider builds the curated pool provider.
func NewPoolProvider(url, apiKey string, timeout time.Duration) *PoolProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PoolProvider{
		url:    url,
		apiKey: apiKey,
		client: xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// Name returns the provider identity.
func (p *PoolProvider) Name() models.Provider { return models.ProviderPrimaryPool }

type poolArticle struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

type poolResponse struct {
	Articles []poolArticle `json:"articles"`
}

// Fetch returns the pool's curated articles for a symbol.
func (p *PoolProvider) Fetch(ctx context.Context, symbol string) ([]models.Article, error) {
	resp, err := p.client.SendRequest(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    p.url + "/articles",
		Headers: map[string]string{
			"X-Api-Key": p.apiKey,
		},
		QueryParams: map[string][]string{
			"symbol": {symbol},
		},
	})
	if err != nil {
		return nil, &FetchError{Provider: p.Name(), Code: CodeProvider, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &FetchError{
			Provider:   p.Name(),
			Code:       CodeStatus,
			Message:    fmt.Sprintf("unexpected status: %s", body),
			HTTPStatus: resp.StatusCode,
		}
	}

	var pr poolResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, &FetchError{Provider: p.Name(), Code: CodeDecode, Message: "decode response: " + err.Error(), Err: err}
	}

	out := make([]models.Article, 0, len(pr.Articles))
	now := time.Now()
	for _, a := range pr.Articles {
		out = append(out, models.Article{
			Title:       a.Title,
			Summary:     a.Summary,
			Source:      a.Source,
			URL:         a.URL,
			PublishedAt: util.ParseTimeDefault(a.PublishedAt, now),
		})
	}
	return out, nil
}

var _ domsvc.NewsProvider = (*PoolProvider)(nil)
