package usecase

import (
	"math"

	"NewsFuse/internal/domain/models"
)

// Resolve compares two model results and decides which direction, if any,
// can be trusted. Deterministic, pure, total: any combination of failed or
// missing opinions yields a verdict rather than an error.
//
// In a true disagreement (opposite non-neutral directions, unequal
// confidence) the direction of the strictly higher-confidence model always
// wins. Never the opposite, never an average.
func Resolve(a, b models.ModelResult) models.Agreement {
	details := models.AgreementDetails{
		DirectionA: a.Direction,
		DirectionB: b.Direction,
	}

	aValid, bValid := a.Valid(), b.Valid()

	switch {
	case !aValid && !bValid:
		return models.Agreement{Agree: false, Type: models.AgreementError, Details: details}
	case aValid != bValid:
		// The failed model is ignored entirely; it does not vote neutral.
		winner := a
		if bValid {
			winner = b
		}
		details.Winner = winner.Model
		return models.Agreement{
			Agree:     false,
			Type:      models.PartialAgreement,
			Direction: winner.Direction,
			Details:   details,
		}
	}

	ca, cb := *a.Confidence, *b.Confidence
	details.ConfidenceSpread = math.Abs(ca - cb)

	if a.Direction == b.Direction {
		details.IsPerfectTie = ca == cb
		return models.Agreement{
			Agree:     true,
			Type:      models.FullAgreement,
			Direction: a.Direction,
			Details:   details,
		}
	}

	if a.Direction == models.DirectionNeutral || b.Direction == models.DirectionNeutral {
		winner := a
		if a.Direction == models.DirectionNeutral {
			winner = b
		}
		details.Winner = winner.Model
		return models.Agreement{
			Agree:     false,
			Type:      models.PartialAgreement,
			Direction: winner.Direction,
			Details:   details,
		}
	}

	// Opposite non-neutral directions.
	if ca == cb {
		details.IsTie = true
		// Direction tracked for audit only; a true tie is never actioned.
		return models.Agreement{
			Agree:     false,
			Type:      models.Disagreement,
			Direction: a.Direction,
			Details:   details,
		}
	}

	winner := a
	if cb > ca {
		winner = b
	}
	details.Winner = winner.Model
	details.ResolvedBy = "confidence"
	return models.Agreement{
		Agree:     false,
		Type:      models.Disagreement,
		Direction: winner.Direction,
		Details:   details,
	}
}
