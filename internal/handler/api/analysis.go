package api

import (
	"net/http"
	"strings"
	"time"

	models "NewsFuse/internal/domain/models"
	"NewsFuse/internal/service/ratelimit"
	"NewsFuse/internal/usecase"
	"NewsFuse/pkg/cache"
	xhttp "NewsFuse/pkg/http"
	xlogger "NewsFuse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler exposes the sentiment pipeline over Echo.
type AnalysisHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.Analyzer
	batch    *usecase.BatchRunner
	cache    cache.Service
	cacheTTL time.Duration
	limiter  *ratelimit.Limiter
}

func NewAnalysisHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer, batch *usecase.BatchRunner, c cache.Service, cacheTTL time.Duration, limiter *ratelimit.Limiter) *AnalysisHandler {
	return &AnalysisHandler{
		logger:   logger,
		analyzer: analyzer,
		batch:    batch,
		cache:    c,
		cacheTTL: cacheTTL,
		limiter:  limiter,
	}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/signal", h.Signal)
	g.POST("/batch", h.Batch)
	e.GET("/health", h.Health)
}

// Signal analyzes one symbol. Results are cached per symbol per UTC day;
// refresh=true bypasses the cache.
func (h *AnalysisHandler) Signal(c echo.Context) error {
	if h.limiter != nil && !h.limiter.Allow(c.RealIP(), 10, 1) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
	}

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))

	key := signalCacheKey(symbol)
	if h.cache != nil && !req.Refresh {
		var cached models.SymbolAnalysisResult
		if err := h.cache.Get(c.Request().Context(), key, &cached); err == nil {
			return xhttp.SuccessResponse(c, &cached)
		}
	}

	res := h.analyzer.AnalyzeOne(c.Request().Context(), symbol)

	if h.cache != nil {
		if err := h.cache.Set(c.Request().Context(), key, res, h.cacheTTL); err != nil {
			h.logger.Warn("signal cache write failed", xlogger.String("symbol", symbol), xlogger.Error(err))
		}
	}
	return xhttp.SuccessResponse(c, res)
}

// Batch runs the pipeline over a symbol list.
func (h *AnalysisHandler) Batch(c echo.Context) error {
	if h.limiter != nil && !h.limiter.Allow(c.RealIP(), 3, 0.2) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
	}

	req := &models.BatchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	symbols := make([]string, 0, len(req.Symbols))
	for _, s := range req.Symbols {
		symbols = append(symbols, strings.ToUpper(strings.TrimSpace(s)))
	}

	res := h.batch.Run(c.Request().Context(), symbols, usecase.BatchOptions{
		BatchSize:       req.BatchSize,
		InterBatchDelay: time.Duration(req.InterBatchDelayMs) * time.Millisecond,
	})
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func signalCacheKey(symbol string) string {
	return cache.GenerateKeyWithParams("signal", symbol, time.Now().UTC().Format("2006-01-02"))
}
