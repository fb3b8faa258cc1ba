package service

import (
	"context"

	"NewsFuse/internal/domain/models"
)

// NewsProvider is one external source of articles for a symbol. Providers
// are tried in a fixed fallback priority order; each call is plain
// request/response bounded by the caller's context.
type NewsProvider interface {
	Name() models.Provider
	Fetch(ctx context.Context, symbol string) ([]models.Article, error)
}

// SentimentModel is an opaque remote classifier. Analyze never returns an
// error: any transport or remote failure is mapped into a ModelResult with
// no usable opinion.
type SentimentModel interface {
	Role() models.ModelRole
	Analyze(ctx context.Context, symbol string, articles []models.Article) models.ModelResult
}
