package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"NewsFuse/internal/domain/models"
	domrepo "NewsFuse/internal/domain/repository"
	domsvc "NewsFuse/internal/domain/service"
	"NewsFuse/internal/services/news"
	applogger "NewsFuse/pkg/logger"
)

// ContentFetcher is the minimal fetch surface the analyzer needs.
type ContentFetcher interface {
	Fetch(ctx context.Context, symbol string) news.FetchOutcome
}

// Analyzer runs the full per-symbol pipeline: provider-fallback fetch, two
// concurrent classifier calls, agreement resolution and signal generation.
// It performs no writes; persistence is the caller's concern.
type Analyzer struct {
	fetcher ContentFetcher
	modelA  domsvc.SentimentModel
	modelB  domsvc.SentimentModel
	bands   Bands
	metrics domrepo.Metrics
	logger  *applogger.Logger
}

// NewAnalyzer builds the per-symbol pipeline.
func NewAnalyzer(fetcher ContentFetcher, modelA, modelB domsvc.SentimentModel, bands Bands, metrics domrepo.Metrics, logger *applogger.Logger) *Analyzer {
	return &Analyzer{
		fetcher: fetcher,
		modelA:  modelA,
		modelB:  modelB,
		bands:   bands,
		metrics: metrics,
		logger:  logger,
	}
}

// AnalyzeOne produces the analysis envelope for a single symbol. The error
// summary is attached only when content acquisition fully failed; a fetch
// that succeeded through a fallback provider is a degraded success and is
// not reported as an error.
func (an *Analyzer) AnalyzeOne(ctx context.Context, symbol string) *models.SymbolAnalysisResult {
	start := time.Now()
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	res := &models.SymbolAnalysisResult{
		Symbol:    symbol,
		Timestamp: start,
	}

	out := an.fetcher.Fetch(ctx, symbol)
	res.ArticleCount = len(out.Articles)
	if len(out.Articles) == 0 {
		summary := news.Aggregate(out.ProviderErrors)
		res.ErrorSummary = &summary
	}

	// The two classifiers are independent; run them concurrently. A panic
	// in one classifier is contained to that classifier's result.
	var ra, rb models.ModelResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		ra = an.analyzeContained(ctx, an.modelA, symbol, out.Articles)
	}()
	go func() {
		defer wg.Done()
		rb = an.analyzeContained(ctx, an.modelB, symbol, out.Articles)
	}()
	wg.Wait()

	res.Models = models.ModelPair{A: ra, B: rb}
	res.Comparison = Resolve(ra, rb)
	res.Signal = GenerateSignal(res.Comparison, ra, rb, an.bands)
	res.ExecutionTimeMs = time.Since(start).Milliseconds()

	if an.metrics != nil {
		an.metrics.RecordAgreement(string(res.Comparison.Type))
		an.metrics.RecordSignal(symbol, string(res.Signal.Action))
		an.metrics.RecordLatency("analyze", time.Since(start).Seconds())
	}
	if an.logger != nil {
		an.logger.Info("symbol analyzed",
			applogger.String("symbol", symbol),
			applogger.String("agreement", string(res.Comparison.Type)),
			applogger.String("action", string(res.Signal.Action)),
			applogger.Int("articles", res.ArticleCount),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return res
}

func (an *Analyzer) analyzeContained(ctx context.Context, m domsvc.SentimentModel, symbol string, articles []models.Article) (res models.ModelResult) {
	defer func() {
		if rec := recover(); rec != nil {
			if an.logger != nil {
				an.logger.Error("model panic",
					applogger.String("model", string(m.Role())),
					applogger.String("symbol", symbol),
					applogger.Any("panic", rec),
				)
			}
			res = models.ModelResult{
				Model:     m.Role(),
				Direction: models.DirectionNeutral,
				Error:     fmt.Sprintf("model panic: %v", rec),
			}
		}
	}()
	return m.Analyze(ctx, symbol, articles)
}
