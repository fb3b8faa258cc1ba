package models

// ModelRole identifies which of the two classifiers produced a result.
// A closed set so the resolver can branch exhaustively.
type ModelRole string

const (
	ModelA ModelRole = "model_a"
	ModelB ModelRole = "model_b"
)

// Direction is the directional opinion of a classifier.
type Direction string

const (
	DirectionBullish Direction = "bullish"
	DirectionBearish Direction = "bearish"
	DirectionNeutral Direction = "neutral"
)

// ModelResult is one classifier's opinion for a symbol. A nil Confidence or
// a non-empty Error means the model produced no usable opinion.
type ModelResult struct {
	Model      ModelRole `json:"model"`
	Name       string    `json:"name,omitempty"`
	Direction  Direction `json:"direction"`
	Confidence *float64  `json:"confidence"`
	Reasoning  string    `json:"reasoning,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Valid reports whether the result carries a usable opinion.
func (r ModelResult) Valid() bool {
	return r.Confidence != nil && r.Error == ""
}
