package sentiment

import (
	"context"
	"strings"
	"time"

	"NewsFuse/internal/domain/models"
	domsvc "NewsFuse/internal/domain/service"
	applogger "NewsFuse/pkg/logger"
)

const inferencePath = "/v1/sentiment"

// Adapter wraps one remote sentiment classifier. It is stateless and never
// retries: retry policy, if any, belongs to the caller. Every transport or
// remote failure is mapped into a ModelResult with no usable opinion, so
// one failing model can never take the pipeline down.
type Adapter struct {
	role        models.ModelRole
	name        string
	base        *HTTPServiceBase
	maxArticles int
	logger      *applogger.Logger
}

// NewAdapter builds an adapter for a classifier endpoint.
func NewAdapter(role models.ModelRole, name, url, apiKey string, timeout time.Duration, maxArticles int, logger *applogger.Logger) *Adapter {
	if maxArticles <= 0 {
		maxArticles = 10
	}
	return &Adapter{
		role:        role,
		name:        name,
		base:        NewHTTPServiceBase(url, apiKey, timeout),
		maxArticles: maxArticles,
		logger:      logger,
	}
}

// Role returns the adapter's position in the model pair.
func (a *Adapter) Role() models.ModelRole { return a.role }

type inferenceArticle struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

type inferenceRequest struct {
	Symbol   string             `json:"symbol"`
	Articles []inferenceArticle `json:"articles"`
}

type inferenceResponse struct {
	Direction  string   `json:"direction"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
	Error      string   `json:"error,omitempty"`
}

// Analyze shapes the articles into the model's payload and invokes the
// remote classifier exactly once. Given no articles it answers immediately
// without a remote call.
func (a *Adapter) Analyze(ctx context.Context, symbol string, articles []models.Article) models.ModelResult {
	res := models.ModelResult{
		Model:     a.role,
		Name:      a.name,
		Direction: models.DirectionNeutral,
	}

	if len(articles) == 0 {
		zero := 0.0
		res.Confidence = &zero
		res.Error = "No data"
		return res
	}

	if len(articles) > a.maxArticles {
		articles = articles[:a.maxArticles]
	}
	req := inferenceRequest{
		Symbol:   symbol,
		Articles: make([]inferenceArticle, 0, len(articles)),
	}
	for _, art := range articles {
		req.Articles = append(req.Articles, inferenceArticle{
			Title:       art.Title,
			Summary:     art.Summary,
			Source:      art.Source,
			PublishedAt: art.PublishedAt,
		})
	}

	var resp inferenceResponse
	if err := a.base.PostJSON(ctx, inferencePath, req, &resp); err != nil {
		if a.logger != nil {
			a.logger.Warn("model inference failed",
				applogger.String("model", string(a.role)),
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
		}
		res.Error = err.Error()
		return res
	}

	if resp.Error != "" {
		res.Error = resp.Error
		return res
	}
	if resp.Confidence == nil {
		res.Error = "model returned no confidence"
		return res
	}

	res.Direction = normalizeDirection(resp.Direction)
	res.Confidence = clamp01(resp.Confidence)
	res.Reasoning = resp.Reasoning
	return res
}

func normalizeDirection(s string) models.Direction {
	switch models.Direction(strings.ToLower(strings.TrimSpace(s))) {
	case models.DirectionBullish:
		return models.DirectionBullish
	case models.DirectionBearish:
		return models.DirectionBearish
	default:
		return models.DirectionNeutral
	}
}

func clamp01(v *float64) *float64 {
	c := *v
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return &c
}

var _ domsvc.SentimentModel = (*Adapter)(nil)
