package news

import (
	"context"
	"time"

	"NewsFuse/internal/domain/models"
	domrepo "NewsFuse/internal/domain/repository"
	domsvc "NewsFuse/internal/domain/service"
	applogger "NewsFuse/pkg/logger"
)

// FetchOutcome is the result of one fallback fetch: the first non-empty
// article set, plus a record for every provider attempt that failed before
// it. An empty Articles slice means the whole chain was exhausted.
type FetchOutcome struct {
	Articles       []models.Article
	ProviderErrors []models.ProviderError
}

// FallbackFetcher tries providers strictly in priority order and stops at
// the first one returning at least one article. Individual provider
// failures never surface as errors; they are captured as data.
type FallbackFetcher struct {
	providers []domsvc.NewsProvider
	timeout   time.Duration
	metrics   domrepo.Metrics
	logger    *applogger.Logger
}

// NewFallbackFetcher builds a fetcher over an ordered provider list.
func NewFallbackFetcher(providers []domsvc.NewsProvider, timeout time.Duration, metrics domrepo.Metrics, logger *applogger.Logger) *FallbackFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FallbackFetcher{
		providers: providers,
		timeout:   timeout,
		metrics:   metrics,
		logger:    logger,
	}
}

// Fetch walks the fallback chain for a symbol. Each provider call is bounded
// by the per-provider timeout; a provider that succeeds with zero articles
// is recorded as a failed attempt like any other.
func (f *FallbackFetcher) Fetch(ctx context.Context, symbol string) FetchOutcome {
	out := FetchOutcome{}

	for _, p := range f.providers {
		pctx, cancel := context.WithTimeout(ctx, f.timeout)
		articles, err := p.Fetch(pctx, symbol)
		cancel()

		if err == nil && len(articles) == 0 {
			err = &FetchError{Provider: p.Name(), Code: CodeNoArticles, Message: "provider returned no articles"}
		}
		if err != nil {
			pe := Classify(p.Name(), err)
			out.ProviderErrors = append(out.ProviderErrors, pe)
			if f.metrics != nil {
				f.metrics.RecordProviderError(string(pe.Provider), string(pe.Severity))
			}
			if f.logger != nil {
				f.logger.Warn("news provider failed",
					applogger.String("symbol", symbol),
					applogger.String("provider", string(pe.Provider)),
					applogger.String("code", pe.Code),
					applogger.String("severity", string(pe.Severity)),
				)
			}
			continue
		}

		if f.logger != nil {
			f.logger.Debug("news provider ok",
				applogger.String("symbol", symbol),
				applogger.String("provider", string(p.Name())),
				applogger.Int("articles", len(articles)),
			)
		}
		out.Articles = articles
		return out
	}

	if f.logger != nil {
		f.logger.Warn("all news providers exhausted",
			applogger.String("symbol", symbol),
			applogger.Int("attempts", len(out.ProviderErrors)),
		)
	}
	return out
}
