package models

import "time"

// ModelPair holds both classifiers' results for one symbol.
type ModelPair struct {
	A ModelResult `json:"a"`
	B ModelResult `json:"b"`
}

// SymbolAnalysisResult is the per-symbol envelope produced by one pipeline
// run. It has no lifecycle beyond the run that produced it; persistence is
// delegated to an external collaborator.
type SymbolAnalysisResult struct {
	Symbol          string        `json:"symbol"`
	Timestamp       time.Time     `json:"timestamp"`
	Models          ModelPair     `json:"models"`
	Comparison      Agreement     `json:"comparison"`
	Signal          Signal        `json:"signal"`
	ErrorSummary    *ErrorSummary `json:"error_summary,omitempty"`
	ArticleCount    int           `json:"article_count"`
	ExecutionTimeMs int64         `json:"execution_time_ms"`
}

// StoredPrediction is the flat row shape a persisted result is read back
// as. Query surfaces return this instead of the full envelope.
type StoredPrediction struct {
	Symbol       string    `json:"symbol"`
	Timestamp    time.Time `json:"timestamp"`
	Direction    string    `json:"direction"`
	Action       string    `json:"action"`
	Strength     string    `json:"strength"`
	Agreement    string    `json:"agreement"`
	ConfidenceA  *float64  `json:"confidence_a,omitempty"`
	ConfidenceB  *float64  `json:"confidence_b,omitempty"`
	ArticleCount uint32    `json:"article_count"`
	ExecutionMs  uint64    `json:"execution_ms"`
}

// BatchStatistics accumulates agreement outcomes across a batch run.
type BatchStatistics struct {
	Total            int `json:"total"`
	FullAgreement    int `json:"full_agreement"`
	PartialAgreement int `json:"partial_agreement"`
	Disagreement     int `json:"disagreement"`
	Errors           int `json:"errors"`
}

// BatchResult is the outcome of one batch run: one result per requested
// symbol plus running statistics.
type BatchResult struct {
	Results    []*SymbolAnalysisResult `json:"results"`
	Statistics BatchStatistics         `json:"statistics"`
	StartedAt  time.Time               `json:"started_at"`
	DurationMs int64                   `json:"duration_ms"`
}
