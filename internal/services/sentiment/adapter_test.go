package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"NewsFuse/internal/domain/models"
)

func testArticles() []models.Article {
	return []models.Article{
		{Title: "ACME surges", Summary: "record quarter", Source: "wire", PublishedAt: time.Now()},
	}
}

func newTestAdapter(url string) *Adapter {
	return NewAdapter(models.ModelA, "test-model", url, "test-key", 2*time.Second, 10, nil)
}

func TestAnalyzeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/sentiment" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Symbol != "ACME" || len(req.Articles) != 1 {
			t.Errorf("unexpected payload %+v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"direction":  "Bullish",
			"confidence": 0.87,
			"reasoning":  "strong quarter",
		})
	}))
	defer srv.Close()

	res := newTestAdapter(srv.URL).Analyze(context.Background(), "ACME", testArticles())
	if !res.Valid() {
		t.Fatalf("expected valid result, got %+v", res)
	}
	if res.Direction != models.DirectionBullish {
		t.Fatalf("direction must be normalized, got %s", res.Direction)
	}
	if *res.Confidence != 0.87 {
		t.Fatalf("unexpected confidence %v", *res.Confidence)
	}
}

func TestAnalyzeClampsConfidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"direction":  "bearish",
			"confidence": 1.7,
		})
	}))
	defer srv.Close()

	res := newTestAdapter(srv.URL).Analyze(context.Background(), "ACME", testArticles())
	if *res.Confidence != 1.0 {
		t.Fatalf("confidence must clamp to 1.0, got %v", *res.Confidence)
	}
}

func TestAnalyzeUnknownDirectionIsNeutral(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"direction":  "sideways",
			"confidence": 0.5,
		})
	}))
	defer srv.Close()

	res := newTestAdapter(srv.URL).Analyze(context.Background(), "ACME", testArticles())
	if res.Direction != models.DirectionNeutral {
		t.Fatalf("unknown direction must map to neutral, got %s", res.Direction)
	}
}

func TestAnalyzeRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "model overloaded",
		})
	}))
	defer srv.Close()

	res := newTestAdapter(srv.URL).Analyze(context.Background(), "ACME", testArticles())
	if res.Valid() {
		t.Fatalf("remote error must invalidate the result")
	}
	if res.Error != "model overloaded" {
		t.Fatalf("unexpected error %q", res.Error)
	}
}

func TestAnalyzeMissingConfidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"direction": "bullish",
		})
	}))
	defer srv.Close()

	res := newTestAdapter(srv.URL).Analyze(context.Background(), "ACME", testArticles())
	if res.Valid() {
		t.Fatalf("missing confidence must invalidate the result, got %+v", res)
	}
}

func TestAnalyzeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	res := newTestAdapter(srv.URL).Analyze(context.Background(), "ACME", testArticles())
	if res.Valid() || res.Error == "" {
		t.Fatalf("transport failure must produce a failed result, got %+v", res)
	}
}

func TestAnalyzeNoArticlesSkipsRemoteCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	res := newTestAdapter(srv.URL).Analyze(context.Background(), "ACME", nil)
	if called {
		t.Fatalf("no remote call expected for zero articles")
	}
	if res.Valid() {
		t.Fatalf("no-data result must be invalid, got %+v", res)
	}
	if res.Confidence == nil || *res.Confidence != 0 {
		t.Fatalf("no-data result should carry zero confidence")
	}
}

func TestAnalyzeCapsArticles(t *testing.T) {
	var got int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req inferenceRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		got = len(req.Articles)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"direction":  "neutral",
			"confidence": 0.4,
		})
	}))
	defer srv.Close()

	adapter := NewAdapter(models.ModelB, "test", srv.URL, "", time.Second, 3, nil)
	many := make([]models.Article, 8)
	for i := range many {
		many[i] = testArticles()[0]
	}
	adapter.Analyze(context.Background(), "ACME", many)
	if got != 3 {
		t.Fatalf("expected payload capped at 3 articles, got %d", got)
	}
}
