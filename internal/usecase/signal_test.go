package usecase

import (
	"testing"

	"NewsFuse/internal/domain/models"
)

func signalFor(t *testing.T, a, b models.ModelResult) models.Signal {
	t.Helper()
	agr := Resolve(a, b)
	return GenerateSignal(agr, a, b, DefaultBands())
}

func TestSignalStrongAgreement(t *testing.T) {
	sig := signalFor(t,
		result(models.ModelA, models.DirectionBullish, 0.9),
		result(models.ModelB, models.DirectionBullish, 0.8),
	)
	if sig.Strength != models.StrengthStrong || sig.Action != models.ActionStrongBuy {
		t.Fatalf("expected STRONG_BUY, got %+v", sig)
	}
}

func TestSignalModerateAgreement(t *testing.T) {
	sig := signalFor(t,
		result(models.ModelA, models.DirectionBearish, 0.6),
		result(models.ModelB, models.DirectionBearish, 0.6),
	)
	if sig.Strength != models.StrengthModerate || sig.Action != models.ActionSell {
		t.Fatalf("expected SELL, got %+v", sig)
	}
}

func TestSignalWeakAgreement(t *testing.T) {
	sig := signalFor(t,
		result(models.ModelA, models.DirectionBullish, 0.3),
		result(models.ModelB, models.DirectionBullish, 0.4),
	)
	if sig.Strength != models.StrengthWeak || sig.Action != models.ActionWeakBuy {
		t.Fatalf("expected WEAK_BUY, got %+v", sig)
	}
}

func TestSignalNeutralConsensus(t *testing.T) {
	strong := signalFor(t,
		result(models.ModelA, models.DirectionNeutral, 0.9),
		result(models.ModelB, models.DirectionNeutral, 0.9),
	)
	if strong.Action != models.ActionAvoid {
		t.Fatalf("confident neutral consensus should AVOID, got %+v", strong)
	}

	mild := signalFor(t,
		result(models.ModelA, models.DirectionNeutral, 0.5),
		result(models.ModelB, models.DirectionNeutral, 0.6),
	)
	if mild.Action != models.ActionHold {
		t.Fatalf("mild neutral consensus should HOLD, got %+v", mild)
	}
}

func TestSignalPartialAgreement(t *testing.T) {
	sig := signalFor(t,
		failed(models.ModelA, "timeout"),
		result(models.ModelB, models.DirectionBullish, 0.7),
	)
	if sig.Action != models.ActionConsider {
		t.Fatalf("single-model verdict should CONSIDER, got %+v", sig)
	}
	if sig.Strength != models.StrengthModerate {
		t.Fatalf("winner at 0.7 should be MODERATE, got %s", sig.Strength)
	}

	weak := signalFor(t,
		failed(models.ModelA, "timeout"),
		result(models.ModelB, models.DirectionBearish, 0.3),
	)
	if weak.Strength != models.StrengthWeak || weak.Action != models.ActionConsider {
		t.Fatalf("winner at 0.3 should be WEAK CONSIDER, got %+v", weak)
	}
}

func TestSignalDisagreementTieHolds(t *testing.T) {
	sig := signalFor(t,
		result(models.ModelA, models.DirectionBullish, 0.7),
		result(models.ModelB, models.DirectionBearish, 0.7),
	)
	if sig.Action != models.ActionHold {
		t.Fatalf("equal-confidence disagreement must HOLD, got %+v", sig)
	}
	if sig.Direction != "" {
		t.Fatalf("tie signal must carry no direction, got %s", sig.Direction)
	}
}

func TestSignalDecisiveWinnerIsDirectional(t *testing.T) {
	sig := signalFor(t,
		result(models.ModelA, models.DirectionBullish, 0.9),
		result(models.ModelB, models.DirectionBearish, 0.5),
	)
	if sig.Action != models.ActionBuy || sig.Strength != models.StrengthModerate {
		t.Fatalf("decisive winner at 0.9 should be MODERATE BUY, got %+v", sig)
	}

	weak := signalFor(t,
		result(models.ModelA, models.DirectionBearish, 0.4),
		result(models.ModelB, models.DirectionBullish, 0.7),
	)
	if weak.Action != models.ActionWeakBuy || weak.Strength != models.StrengthWeak {
		t.Fatalf("winner below threshold should be WEAK_BUY, got %+v", weak)
	}
}

func TestSignalDecisiveWinnerNeverStrong(t *testing.T) {
	// Even a near-certain winner of a disagreement must not produce a
	// STRONG_* action or HOLD.
	sig := signalFor(t,
		result(models.ModelA, models.DirectionBullish, 0.99),
		result(models.ModelB, models.DirectionBearish, 0.98),
	)
	switch sig.Action {
	case models.ActionStrongBuy, models.ActionStrongSell, models.ActionHold:
		t.Fatalf("forbidden action %s for decisive disagreement", sig.Action)
	}
	if sig.Strength == models.StrengthStrong {
		t.Fatalf("decisive disagreement must cap at MODERATE")
	}
}

func TestSignalBothFailed(t *testing.T) {
	sig := signalFor(t, failed(models.ModelA, "x"), failed(models.ModelB, "y"))
	if sig.Action != models.ActionSkip || sig.Strength != models.StrengthFailed {
		t.Fatalf("expected SKIP/FAILED, got %+v", sig)
	}
}
