//go:build wireinject
// +build wireinject

package di

import (
	"NewsFuse/pkg/config"
	"NewsFuse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,

		// Repositories
		ProvidePredictionStore,
		ProvideResultPublisher,

		// Pipeline
		ProvideFetcher,
		ProvideAnalyzer,
		ProvideResultProcessor,
		ProvideBatchRunner,

		// HTTP surface
		ProvideCache,
		ProvideRateLimiter,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
