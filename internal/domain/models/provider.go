package models

import "time"

// Provider identifies one news content source in the fallback chain.
type Provider string

const (
	ProviderPrimaryPool Provider = "primary_pool"
	ProviderFeedA       Provider = "feed_a"
	ProviderFeedB       Provider = "feed_b"
	ProviderFeedC       Provider = "feed_c"
	ProviderUnknown     Provider = "unknown"
)

// Severity is a coarse classification of a provider failure, used for
// aggregation and alerting rather than control flow.
type Severity string

const (
	SeverityTransient Severity = "transient"
	SeverityRetryable Severity = "retryable"
	SeverityPermanent Severity = "permanent"
	SeverityUnknown   Severity = "unknown"
)

// ProviderError records a single failed provider attempt. Created once per
// attempt and never mutated.
type ProviderError struct {
	Provider   Provider  `json:"provider"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Severity   Severity  `json:"severity"`
	Retryable  bool      `json:"retryable"`
	HTTPStatus int       `json:"http_status,omitempty"`
	RetryCount int       `json:"retry_count,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ErrorSummary aggregates every provider error of one fetch attempt. It is
// recomputed fresh per attempt and only attached to a result when the fetch
// as a whole yielded zero usable articles.
type ErrorSummary struct {
	TotalErrors      int              `json:"total_errors"`
	ErrorsByProvider map[Provider]int `json:"errors_by_provider"`
	ErrorsBySeverity map[Severity]int `json:"errors_by_severity"`
	RetryableErrors  int              `json:"retryable_errors"`
	PermanentErrors  int              `json:"permanent_errors"`
	Errors           []ProviderError  `json:"errors"`
	Timestamp        time.Time        `json:"timestamp"`
}
