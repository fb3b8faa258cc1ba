package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"NewsFuse/internal/domain/models"
	applogger "NewsFuse/pkg/logger"
)

// BatchOptions controls group size and pacing of a batch run.
type BatchOptions struct {
	BatchSize       int
	InterBatchDelay time.Duration
}

// BatchRunner executes the per-symbol pipeline across a symbol list in
// small fixed-size groups, pausing between groups to respect downstream
// rate limits. One symbol's total failure never aborts the batch: a
// panicking pipeline is converted into a degraded, clearly-marked result.
type BatchRunner struct {
	analyzer  *Analyzer
	processor *ResultProcessor
	logger    *applogger.Logger
}

// NewBatchRunner builds a batch runner. The processor may be nil when
// results are not persisted.
func NewBatchRunner(analyzer *Analyzer, processor *ResultProcessor, logger *applogger.Logger) *BatchRunner {
	return &BatchRunner{analyzer: analyzer, processor: processor, logger: logger}
}

// Run analyzes every symbol and returns one result per requested symbol
// plus running statistics.
func (r *BatchRunner) Run(ctx context.Context, symbols []string, opts BatchOptions) *models.BatchResult {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 2
	}
	started := time.Now()
	out := &models.BatchResult{
		StartedAt: started,
		Results:   make([]*models.SymbolAnalysisResult, 0, len(symbols)),
	}

	for gi := 0; gi < len(symbols); gi += opts.BatchSize {
		end := gi + opts.BatchSize
		if end > len(symbols) {
			end = len(symbols)
		}
		group := symbols[gi:end]

		results := make([]*models.SymbolAnalysisResult, len(group))
		var wg sync.WaitGroup
		for i, sym := range group {
			wg.Add(1)
			go func(i int, sym string) {
				defer wg.Done()
				results[i] = r.analyzeIsolated(ctx, sym)
			}(i, sym)
		}
		wg.Wait()

		for _, res := range results {
			out.Results = append(out.Results, res)
			out.Statistics.Total++
			switch res.Comparison.Type {
			case models.FullAgreement:
				out.Statistics.FullAgreement++
			case models.PartialAgreement:
				out.Statistics.PartialAgreement++
			case models.Disagreement:
				out.Statistics.Disagreement++
			default:
				out.Statistics.Errors++
			}
			if r.processor != nil {
				if err := r.processor.Process(ctx, res); err != nil && r.logger != nil {
					r.logger.Warn("result persistence failed",
						applogger.String("symbol", res.Symbol),
						applogger.Error(err),
					)
				}
			}
		}

		if end < len(symbols) && opts.InterBatchDelay > 0 {
			select {
			case <-time.After(opts.InterBatchDelay):
			case <-ctx.Done():
				// keep going; remaining calls fail fast on their own
			}
		}
	}

	out.DurationMs = time.Since(started).Milliseconds()
	if r.logger != nil {
		r.logger.Info("batch complete",
			applogger.Int("symbols", len(symbols)),
			applogger.Int("full_agreement", out.Statistics.FullAgreement),
			applogger.Int("partial_agreement", out.Statistics.PartialAgreement),
			applogger.Int("disagreement", out.Statistics.Disagreement),
			applogger.Int("errors", out.Statistics.Errors),
			applogger.Duration("duration_ms", time.Since(started)),
		)
	}
	return out
}

// analyzeIsolated converts a panicking pipeline into a degraded result so
// the batch always yields one result per symbol.
func (r *BatchRunner) analyzeIsolated(ctx context.Context, symbol string) (res *models.SymbolAnalysisResult) {
	defer func() {
		if rec := recover(); rec != nil {
			if r.logger != nil {
				r.logger.Error("pipeline panic",
					applogger.String("symbol", symbol),
					applogger.Any("panic", rec),
				)
			}
			res = DegradedResult(symbol, fmt.Sprintf("pipeline failure: %v", rec))
		}
	}()
	return r.analyzer.AnalyzeOne(ctx, symbol)
}

// DegradedResult builds the envelope for a symbol whose pipeline failed
// outright.
func DegradedResult(symbol, reason string) *models.SymbolAnalysisResult {
	return &models.SymbolAnalysisResult{
		Symbol:    symbol,
		Timestamp: time.Now(),
		Comparison: models.Agreement{
			Agree: false,
			Type:  models.AgreementError,
		},
		Signal: models.Signal{
			Type:      models.AgreementError,
			Strength:  models.StrengthFailed,
			Action:    models.ActionSkip,
			Reasoning: reason,
		},
	}
}
