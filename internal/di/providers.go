package di

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"NewsFuse/internal/domain/models"
	"NewsFuse/internal/domain/repository"
	domsvc "NewsFuse/internal/domain/service"
	"NewsFuse/internal/handler/api"
	internalrepo "NewsFuse/internal/repository"
	"NewsFuse/internal/service/ratelimit"
	"NewsFuse/internal/services/news"
	"NewsFuse/internal/services/sentiment"
	"NewsFuse/internal/usecase"
	"NewsFuse/pkg/cache"
	pkgch "NewsFuse/pkg/clickhouse"
	"NewsFuse/pkg/config"
	xhttp "NewsFuse/pkg/http"
	pkgkafka "NewsFuse/pkg/kafka"
	applogger "NewsFuse/pkg/logger"
	"NewsFuse/pkg/metrics"
	"NewsFuse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "console"
	if cfg.Environment == "production" {
		format = "json"
	}
	return applogger.New(&applogger.Config{
		Level:  "info",
		Format: format,
		Output: "stdout",
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client when results are
// persisted there; otherwise it returns nil.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Backend.Type != "clickhouse" {
		return nil, nil
	}
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer when results are published
// there; otherwise it returns nil.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Backend.Type != "kafka" {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePredictionStore creates the ClickHouse-backed store and ensures
// its schema exists.
func ProvidePredictionStore(chClient *pkgch.Client, cfg *config.Config) (repository.PredictionStore, error) {
	if chClient == nil {
		return nil, nil
	}
	store := internalrepo.NewClickHousePredictionStore(chClient.DB(), cfg.ClickHouse.Database+"."+cfg.Backend.Table)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("prediction store schema: %w", err)
	}
	return store, nil
}

// ProvideResultPublisher creates the Kafka-backed publisher.
func ProvideResultPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaResultPublisher(producer, cfg.Kafka.Topic)
}

// ProvideResultProcessor creates the result persistence router, or nil when
// persistence is disabled.
func ProvideResultProcessor(
	pub repository.Publisher,
	store repository.PredictionStore,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.ResultProcessor {
	if cfg.Backend.Type == "none" {
		return nil
	}
	return usecase.NewResultProcessor(pub, store, m, cfg.Backend.Type)
}

// ProvideFetcher builds the ordered provider chain: curated pool first,
// then the configured feeds in declared order.
func ProvideFetcher(cfg *config.Config, m repository.Metrics, logger *applogger.Logger) usecase.ContentFetcher {
	var providers []domsvc.NewsProvider
	if cfg.Providers.Pool.URL != "" {
		providers = append(providers, news.NewPoolProvider(cfg.Providers.Pool.URL, cfg.Providers.Pool.APIKey, cfg.Providers.Timeout))
	}
	for _, f := range cfg.Providers.Feeds {
		providers = append(providers, news.NewFeedProvider(models.Provider(f.Name), f.URL))
	}
	return news.NewFallbackFetcher(providers, cfg.Providers.Timeout, m, logger)
}

// ProvideAnalyzer assembles the per-symbol pipeline with both classifier
// adapters.
func ProvideAnalyzer(cfg *config.Config, fetcher usecase.ContentFetcher, m repository.Metrics, logger *applogger.Logger) *usecase.Analyzer {
	modelA := sentiment.NewAdapter(models.ModelA, cfg.Models.A.Name, cfg.Models.A.URL, cfg.Models.A.APIKey, cfg.Models.Timeout, cfg.Models.MaxArticles, logger)
	modelB := sentiment.NewAdapter(models.ModelB, cfg.Models.B.Name, cfg.Models.B.URL, cfg.Models.B.APIKey, cfg.Models.Timeout, cfg.Models.MaxArticles, logger)
	bands := usecase.Bands{
		Strong:       cfg.Signal.StrongThreshold,
		Moderate:     cfg.Signal.ModerateThreshold,
		WinnerStrong: cfg.Signal.WinnerThreshold,
	}
	return usecase.NewAnalyzer(fetcher, modelA, modelB, bands, m, logger)
}

// ProvideBatchRunner creates the batch orchestrator.
func ProvideBatchRunner(analyzer *usecase.Analyzer, processor *usecase.ResultProcessor, logger *applogger.Logger) *usecase.BatchRunner {
	return usecase.NewBatchRunner(analyzer, processor, logger)
}

// ProvideCache creates the signal result cache: Redis-backed when
// configured, in-process otherwise, nil when caching is off.
func ProvideCache(cfg *config.Config) cache.Service {
	if !cfg.Cache.Enabled {
		return nil
	}
	if cfg.Cache.Redis.Enabled {
		host, portStr, err := net.SplitHostPort(cfg.Cache.Redis.Addr)
		if err == nil {
			port, _ := strconv.Atoi(portStr)
			rc, rerr := cache.NewRedisCache(
				cache.WithRedisHost(host),
				cache.WithRedisPort(port),
				cache.WithRedisPassword(cfg.Cache.Redis.Password),
				cache.WithRedisDB(cfg.Cache.Redis.DB),
			)
			if rerr == nil {
				return cache.NewLayeredCache(rc)
			}
		}
	}
	return cache.NewMemoryCache()
}

// ProvideRateLimiter creates the per-client token bucket limiter.
func ProvideRateLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideHandler creates the HTTP handler surface.
func ProvideHandler(
	logger *applogger.Logger,
	analyzer *usecase.Analyzer,
	batch *usecase.BatchRunner,
	c cache.Service,
	limiter *ratelimit.Limiter,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewAnalysisHandler(logger, analyzer, batch, c, cfg.Cache.TTL, limiter)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
	processor *usecase.ResultProcessor,
) *server.App {
	return server.New(cfg, logger, handler, chClient, producer, processor)
}
