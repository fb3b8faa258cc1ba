package news

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"NewsFuse/internal/domain/models"
)

// Error codes recorded on ProviderError.
const (
	CodeTimeout    = "ERR_TIMEOUT"
	CodeStatus     = "ERR_STATUS"
	CodeFeed       = "ERR_FEED"
	CodeDecode     = "ERR_DECODE"
	CodeNoArticles = "ERR_NO_ARTICLES"
	CodeProvider   = "ERR_PROVIDER"
)

// FetchError is a typed failure from a single provider attempt.
type FetchError struct {
	Provider   models.Provider
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *FetchError) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.HTTPStatus)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Classify maps a provider failure to an immutable ProviderError record.
// Timeouts are transient and retryable; HTTP 429 is retryable; 5xx is
// transient; other 4xx is permanent; everything else stays unknown.
func Classify(p models.Provider, err error) models.ProviderError {
	pe := models.ProviderError{
		Provider:  p,
		Code:      CodeProvider,
		Severity:  models.SeverityUnknown,
		Timestamp: time.Now(),
	}
	if err == nil {
		return pe
	}
	pe.Message = err.Error()

	if errors.Is(err, context.DeadlineExceeded) {
		pe.Code = CodeTimeout
		pe.Severity = models.SeverityTransient
		pe.Retryable = true
		return pe
	}

	var fe *FetchError
	if errors.As(err, &fe) {
		pe.Code = fe.Code
		pe.Message = fe.Message
		pe.HTTPStatus = fe.HTTPStatus
		switch {
		case fe.HTTPStatus == http.StatusTooManyRequests:
			pe.Severity = models.SeverityRetryable
			pe.Retryable = true
		case fe.HTTPStatus >= 500:
			pe.Severity = models.SeverityTransient
			pe.Retryable = true
		case fe.HTTPStatus >= 400:
			pe.Severity = models.SeverityPermanent
		case fe.Code == CodeNoArticles:
			pe.Severity = models.SeverityPermanent
		case fe.Code == CodeFeed || fe.Code == CodeDecode:
			pe.Severity = models.SeverityTransient
			pe.Retryable = true
		}
		return pe
	}

	return pe
}
