package usecase

import (
	"context"
	"fmt"
	"time"

	"NewsFuse/internal/domain/models"
	drepo "NewsFuse/internal/domain/repository"
)

// ResultProcessor routes completed analysis results to the configured
// persistence backend. The analysis pipeline itself never writes; this is
// the seam the external storage layer plugs into.
type ResultProcessor struct {
	pub     drepo.Publisher
	store   drepo.PredictionStore
	metrics drepo.Metrics
	backend string
}

// NewResultProcessor creates a ResultProcessor instance.
func NewResultProcessor(pub drepo.Publisher, store drepo.PredictionStore, metrics drepo.Metrics, backend string) *ResultProcessor {
	return &ResultProcessor{
		pub:     pub,
		store:   store,
		metrics: metrics,
		backend: backend,
	}
}

// Process routes a single result to the configured backend.
func (p *ResultProcessor) Process(ctx context.Context, r *models.SymbolAnalysisResult) error {
	if r == nil {
		return fmt.Errorf("result is nil")
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.Publish(ctx, r)
	case "clickhouse":
		err = p.store.Store(ctx, r)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("persist")
		return fmt.Errorf("process result: %w", err)
	}

	p.metrics.RecordLatency("persist", time.Since(start).Seconds())
	return nil
}

// ProcessBatch routes multiple results in one backend call.
func (p *ResultProcessor) ProcessBatch(ctx context.Context, rs []*models.SymbolAnalysisResult) error {
	if len(rs) == 0 {
		return nil
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.PublishBatch(ctx, rs)
	case "clickhouse":
		err = p.store.StoreBatch(ctx, rs)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("persist_batch")
		return fmt.Errorf("process batch: %w", err)
	}

	p.metrics.RecordLatency("persist_batch", time.Since(start).Seconds())
	return nil
}

// Close closes underlying resources if available.
func (p *ResultProcessor) Close() {
	if p.pub != nil {
		_ = p.pub.Close()
	}
	if p.store != nil {
		_ = p.store.Close()
	}
}
