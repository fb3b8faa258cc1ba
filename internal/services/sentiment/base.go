package sentiment

import (
	"context"
	"fmt"
	"time"

	xhttp "NewsFuse/pkg/http"
)

// HTTPServiceBase centralizes client construction and JSON POST handling
// for remote inference services.
type HTTPServiceBase struct {
	baseURL string
	apiKey  string
	client  *xhttp.Client
}

// NewHTTPServiceBase builds an HTTP client with timeout and base URL.
func NewHTTPServiceBase(baseURL, apiKey string, timeout time.Duration) *HTTPServiceBase {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPServiceBase{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// PostJSON posts the payload to `path` under baseURL and decodes JSON into dest.
func (b *HTTPServiceBase) PostJSON(ctx context.Context, path string, payload interface{}, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("inference http client not initialized")
	}
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if b.apiKey != "" {
		headers["Authorization"] = "Bearer " + b.apiKey
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     b.baseURL + path,
		Headers: headers,
		Body:    payload,
	}, dest)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return nil
}
