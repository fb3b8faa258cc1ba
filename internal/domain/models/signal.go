package models

// Strength bands a signal's conviction.
type Strength string

const (
	StrengthStrong   Strength = "STRONG"
	StrengthModerate Strength = "MODERATE"
	StrengthWeak     Strength = "WEAK"
	StrengthFailed   Strength = "FAILED"
)

// Action is the recommended trade action.
type Action string

const (
	ActionStrongBuy  Action = "STRONG_BUY"
	ActionBuy        Action = "BUY"
	ActionWeakBuy    Action = "WEAK_BUY"
	ActionStrongSell Action = "STRONG_SELL"
	ActionSell       Action = "SELL"
	ActionWeakSell   Action = "WEAK_SELL"
	ActionConsider   Action = "CONSIDER"
	ActionHold       Action = "HOLD"
	ActionAvoid      Action = "AVOID"
	ActionSkip       Action = "SKIP"
)

// Signal is the final actionable output derived from an Agreement and the
// two underlying model confidences.
type Signal struct {
	Type      AgreementType `json:"type"`
	Direction Direction     `json:"direction,omitempty"`
	Strength  Strength      `json:"strength"`
	Reasoning string        `json:"reasoning,omitempty"`
	Action    Action        `json:"action"`
}
