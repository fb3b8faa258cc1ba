package usecase

import (
	"fmt"

	"NewsFuse/internal/domain/models"
)

// Bands holds the confidence cut points for signal strength. The
// full-agreement path bands the average confidence; the decisive-winner
// path bands the winner's own confidence with its own threshold so it can
// be tuned independently.
type Bands struct {
	Strong       float64
	Moderate     float64
	WinnerStrong float64
}

// DefaultBands are the production cut points.
func DefaultBands() Bands {
	return Bands{Strong: 0.75, Moderate: 0.5, WinnerStrong: 0.8}
}

// GenerateSignal maps an Agreement verdict plus the two model results into
// a human-actionable signal. Pure function.
func GenerateSignal(agr models.Agreement, a, b models.ModelResult, bands Bands) models.Signal {
	sig := models.Signal{Type: agr.Type, Direction: agr.Direction}

	switch agr.Type {
	case models.AgreementError:
		sig.Direction = ""
		sig.Strength = models.StrengthFailed
		sig.Action = models.ActionSkip
		sig.Reasoning = "both models failed to produce an opinion"
		return sig

	case models.FullAgreement:
		avg := (*a.Confidence + *b.Confidence) / 2
		sig.Strength = bandOf(avg, bands)
		sig.Action = directionalAction(agr.Direction, sig.Strength)
		sig.Reasoning = fmt.Sprintf("both models %s (avg confidence %.2f)", agr.Direction, avg)
		return sig

	case models.PartialAgreement:
		w := pickByRole(agr.Details.Winner, a, b)
		sig.Strength = models.StrengthWeak
		if w.Confidence != nil && *w.Confidence >= bands.Moderate {
			sig.Strength = models.StrengthModerate
		}
		sig.Action = models.ActionConsider
		sig.Reasoning = w.Reasoning
		if sig.Reasoning == "" {
			sig.Reasoning = fmt.Sprintf("only %s produced a usable opinion", w.Model)
		}
		return sig

	case models.Disagreement:
		if agr.Details.IsTie {
			sig.Direction = ""
			sig.Strength = models.StrengthWeak
			sig.Action = models.ActionHold
			sig.Reasoning = "models disagree with equal confidence"
			return sig
		}
		// Decisive winner: always directional, never HOLD, never STRONG_*.
		w := pickByRole(agr.Details.Winner, a, b)
		sig.Strength = models.StrengthWeak
		if w.Confidence != nil && *w.Confidence >= bands.WinnerStrong {
			sig.Strength = models.StrengthModerate
		}
		sig.Action = directionalAction(agr.Direction, sig.Strength)
		sig.Reasoning = fmt.Sprintf("models disagree; %s wins on confidence", w.Model)
		return sig
	}

	sig.Strength = models.StrengthFailed
	sig.Action = models.ActionSkip
	return sig
}

func bandOf(confidence float64, bands Bands) models.Strength {
	switch {
	case confidence >= bands.Strong:
		return models.StrengthStrong
	case confidence >= bands.Moderate:
		return models.StrengthModerate
	default:
		return models.StrengthWeak
	}
}

func directionalAction(d models.Direction, s models.Strength) models.Action {
	switch d {
	case models.DirectionBullish:
		switch s {
		case models.StrengthStrong:
			return models.ActionStrongBuy
		case models.StrengthModerate:
			return models.ActionBuy
		default:
			return models.ActionWeakBuy
		}
	case models.DirectionBearish:
		switch s {
		case models.StrengthStrong:
			return models.ActionStrongSell
		case models.StrengthModerate:
			return models.ActionSell
		default:
			return models.ActionWeakSell
		}
	default:
		// A confident consensus that nothing is happening is worth flagging.
		if s == models.StrengthStrong {
			return models.ActionAvoid
		}
		return models.ActionHold
	}
}

func pickByRole(role models.ModelRole, a, b models.ModelResult) models.ModelResult {
	if role == models.ModelB {
		return b
	}
	return a
}
