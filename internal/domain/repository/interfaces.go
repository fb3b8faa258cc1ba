package repository

import (
	"context"
	"time"

	"NewsFuse/internal/domain/models"
)

// Publisher delivers completed analysis results to a message backend.
type Publisher interface {
	Publish(ctx context.Context, r *models.SymbolAnalysisResult) error
	PublishBatch(ctx context.Context, rs []*models.SymbolAnalysisResult) error
	Close() error
}

// PredictionStore persists analysis results as per-symbol prediction rows.
type PredictionStore interface {
	Init(ctx context.Context) error // ensure tables, health checks
	Store(ctx context.Context, r *models.SymbolAnalysisResult) error
	StoreBatch(ctx context.Context, rs []*models.SymbolAnalysisResult) error
	Query(ctx context.Context, symbol string, from, to time.Time, limit int) ([]*models.StoredPrediction, error)
	Health(ctx context.Context) error // ping
	Close() error
}

// Metrics records pipeline observability signals.
type Metrics interface {
	RecordProviderError(provider, severity string)
	RecordAgreement(kind string)
	RecordSignal(symbol, action string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
