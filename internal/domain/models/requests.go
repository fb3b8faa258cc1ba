package models

// AnalyzeRequest is the query payload for the single-symbol signal endpoint.
type AnalyzeRequest struct {
	Symbol  string `query:"symbol" validate:"required,min=1,max=12"`
	Refresh bool   `query:"refresh"`
}

// BatchRequest is the body for the batch analysis endpoint.
type BatchRequest struct {
	Symbols           []string `json:"symbols" validate:"required,min=1,max=100,dive,min=1,max=12"`
	BatchSize         int      `json:"batch_size" default:"2" validate:"gte=1,lte=10"`
	InterBatchDelayMs int      `json:"inter_batch_delay_ms" default:"1000" validate:"gte=0,lte=60000"`
}
