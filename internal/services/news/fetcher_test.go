package news

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"NewsFuse/internal/domain/models"
	domsvc "NewsFuse/internal/domain/service"
)

type fakeProvider struct {
	name     models.Provider
	articles []models.Article
	err      error
	calls    int
}

func (p *fakeProvider) Name() models.Provider { return p.name }

func (p *fakeProvider) Fetch(context.Context, string) ([]models.Article, error) {
	p.calls++
	return p.articles, p.err
}

type slowProvider struct {
	name models.Provider
}

func (p *slowProvider) Name() models.Provider { return p.name }

func (p *slowProvider) Fetch(ctx context.Context, _ string) ([]models.Article, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func article(title string) models.Article {
	return models.Article{Title: title, URL: "https://example.com/a", PublishedAt: time.Now()}
}

func TestFetchStopsAtFirstSuccess(t *testing.T) {
	first := &fakeProvider{name: models.ProviderPrimaryPool, articles: []models.Article{article("hit")}}
	second := &fakeProvider{name: models.ProviderFeedA, articles: []models.Article{article("unused")}}

	f := NewFallbackFetcher([]domsvc.NewsProvider{first, second}, time.Second, nil, nil)
	out := f.Fetch(context.Background(), "ACME")

	if len(out.Articles) != 1 || out.Articles[0].Title != "hit" {
		t.Fatalf("unexpected articles %+v", out.Articles)
	}
	if len(out.ProviderErrors) != 0 {
		t.Fatalf("no errors expected, got %+v", out.ProviderErrors)
	}
	if second.calls != 0 {
		t.Fatalf("lower-priority provider must not be called after success")
	}
}

func TestFetchFallsBack(t *testing.T) {
	first := &fakeProvider{name: models.ProviderPrimaryPool, err: &FetchError{Provider: models.ProviderPrimaryPool, Code: CodeStatus, HTTPStatus: 503, Message: "unavailable"}}
	second := &fakeProvider{name: models.ProviderFeedA, articles: []models.Article{article("fallback")}}

	f := NewFallbackFetcher([]domsvc.NewsProvider{first, second}, time.Second, nil, nil)
	out := f.Fetch(context.Background(), "ACME")

	if len(out.Articles) != 1 || out.Articles[0].Title != "fallback" {
		t.Fatalf("fallback provider should serve, got %+v", out.Articles)
	}
	if len(out.ProviderErrors) != 1 {
		t.Fatalf("the failed attempt must be recorded, got %+v", out.ProviderErrors)
	}
	if out.ProviderErrors[0].Severity != models.SeverityTransient {
		t.Fatalf("503 should be transient, got %s", out.ProviderErrors[0].Severity)
	}
}

func TestFetchZeroArticlesIsAFailure(t *testing.T) {
	empty := &fakeProvider{name: models.ProviderPrimaryPool}
	second := &fakeProvider{name: models.ProviderFeedA, articles: []models.Article{article("served")}}

	f := NewFallbackFetcher([]domsvc.NewsProvider{empty, second}, time.Second, nil, nil)
	out := f.Fetch(context.Background(), "ACME")

	if len(out.Articles) != 1 {
		t.Fatalf("chain must continue past an empty provider")
	}
	if len(out.ProviderErrors) != 1 || out.ProviderErrors[0].Code != CodeNoArticles {
		t.Fatalf("empty result must be recorded as %s, got %+v", CodeNoArticles, out.ProviderErrors)
	}
}

func TestFetchExhaustsChain(t *testing.T) {
	a := &fakeProvider{name: models.ProviderPrimaryPool, err: errors.New("down")}
	b := &fakeProvider{name: models.ProviderFeedA, err: errors.New("also down")}

	f := NewFallbackFetcher([]domsvc.NewsProvider{a, b}, time.Second, nil, nil)
	out := f.Fetch(context.Background(), "ACME")

	if len(out.Articles) != 0 {
		t.Fatalf("expected no articles")
	}
	if len(out.ProviderErrors) != 2 {
		t.Fatalf("every attempt must be recorded, got %d", len(out.ProviderErrors))
	}
}

func TestFetchTimesOutSlowProvider(t *testing.T) {
	slow := &slowProvider{name: models.ProviderPrimaryPool}
	fast := &fakeProvider{name: models.ProviderFeedA, articles: []models.Article{article("rescued")}}

	f := NewFallbackFetcher([]domsvc.NewsProvider{slow, fast}, 20*time.Millisecond, nil, nil)
	out := f.Fetch(context.Background(), "ACME")

	if len(out.Articles) != 1 {
		t.Fatalf("slow provider must not block the chain")
	}
	if len(out.ProviderErrors) != 1 || out.ProviderErrors[0].Code != CodeTimeout {
		t.Fatalf("expected timeout record, got %+v", out.ProviderErrors)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		severity  models.Severity
		retryable bool
		code      string
	}{
		{"deadline", context.DeadlineExceeded, models.SeverityTransient, true, CodeTimeout},
		{"429", &FetchError{Code: CodeStatus, HTTPStatus: http.StatusTooManyRequests}, models.SeverityRetryable, true, CodeStatus},
		{"500", &FetchError{Code: CodeStatus, HTTPStatus: 500}, models.SeverityTransient, true, CodeStatus},
		{"404", &FetchError{Code: CodeStatus, HTTPStatus: 404}, models.SeverityPermanent, false, CodeStatus},
		{"empty", &FetchError{Code: CodeNoArticles}, models.SeverityPermanent, false, CodeNoArticles},
		{"feed", &FetchError{Code: CodeFeed}, models.SeverityTransient, true, CodeFeed},
		{"opaque", errors.New("weird"), models.SeverityUnknown, false, CodeProvider},
	}
	for _, c := range cases {
		pe := Classify(models.ProviderFeedB, c.err)
		if pe.Severity != c.severity || pe.Retryable != c.retryable || pe.Code != c.code {
			t.Fatalf("%s: got severity=%s retryable=%v code=%s", c.name, pe.Severity, pe.Retryable, pe.Code)
		}
		if pe.Provider != models.ProviderFeedB {
			t.Fatalf("%s: provider lost", c.name)
		}
	}
}
