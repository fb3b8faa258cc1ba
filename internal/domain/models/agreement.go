package models

// AgreementType classifies how much two model opinions concur.
type AgreementType string

const (
	FullAgreement    AgreementType = "full_agreement"
	PartialAgreement AgreementType = "partial_agreement"
	Disagreement     AgreementType = "disagreement"
	AgreementError   AgreementType = "error"
)

// AgreementDetails carries the audit trail of the resolver's decision:
// the raw directions, confidence spread and tie flags.
type AgreementDetails struct {
	DirectionA       Direction `json:"direction_a,omitempty"`
	DirectionB       Direction `json:"direction_b,omitempty"`
	ConfidenceSpread float64   `json:"confidence_spread"`
	IsTie            bool      `json:"is_tie,omitempty"`
	IsPerfectTie     bool      `json:"is_perfect_tie,omitempty"`
	ResolvedBy       string    `json:"resolved_by,omitempty"`
	Winner           ModelRole `json:"winner,omitempty"`
}

// Agreement is the resolver's verdict on two model results. Pure function
// output; carries no identity and is recomputed every call.
type Agreement struct {
	Agree     bool             `json:"agree"`
	Type      AgreementType    `json:"type"`
	Direction Direction        `json:"direction,omitempty"`
	Details   AgreementDetails `json:"details"`
}
