package usecase

import (
	"testing"

	"NewsFuse/internal/domain/models"
)

func result(role models.ModelRole, dir models.Direction, conf float64) models.ModelResult {
	return models.ModelResult{Model: role, Direction: dir, Confidence: &conf}
}

func failed(role models.ModelRole, msg string) models.ModelResult {
	return models.ModelResult{Model: role, Direction: models.DirectionNeutral, Error: msg}
}

func TestResolveFullAgreement(t *testing.T) {
	a := result(models.ModelA, models.DirectionBullish, 0.9)
	b := result(models.ModelB, models.DirectionBullish, 0.7)

	got := Resolve(a, b)
	if !got.Agree || got.Type != models.FullAgreement {
		t.Fatalf("expected full agreement, got %+v", got)
	}
	if got.Direction != models.DirectionBullish {
		t.Fatalf("unexpected direction %s", got.Direction)
	}
	if got.Details.IsPerfectTie {
		t.Fatalf("unequal confidences must not be a perfect tie")
	}
	if got.Details.ConfidenceSpread < 0.199 || got.Details.ConfidenceSpread > 0.201 {
		t.Fatalf("unexpected spread %v", got.Details.ConfidenceSpread)
	}
}

func TestResolvePerfectTie(t *testing.T) {
	a := result(models.ModelA, models.DirectionBearish, 0.8)
	b := result(models.ModelB, models.DirectionBearish, 0.8)

	got := Resolve(a, b)
	if got.Type != models.FullAgreement || !got.Details.IsPerfectTie {
		t.Fatalf("expected perfect tie, got %+v", got)
	}
}

func TestResolveDisagreementHigherConfidenceWins(t *testing.T) {
	a := result(models.ModelA, models.DirectionBullish, 0.9)
	b := result(models.ModelB, models.DirectionBearish, 0.6)

	got := Resolve(a, b)
	if got.Agree {
		t.Fatalf("opposite directions must not agree")
	}
	if got.Type != models.Disagreement {
		t.Fatalf("expected disagreement, got %s", got.Type)
	}
	if got.Direction != models.DirectionBullish {
		t.Fatalf("higher confidence model must win, got %s", got.Direction)
	}
	if got.Details.Winner != models.ModelA || got.Details.ResolvedBy != "confidence" {
		t.Fatalf("unexpected details %+v", got.Details)
	}
}

func TestResolveDisagreementWinnerCanBeB(t *testing.T) {
	a := result(models.ModelA, models.DirectionBullish, 0.55)
	b := result(models.ModelB, models.DirectionBearish, 0.56)

	got := Resolve(a, b)
	if got.Direction != models.DirectionBearish || got.Details.Winner != models.ModelB {
		t.Fatalf("expected model B to win, got %+v", got)
	}
}

func TestResolveEqualConfidenceTie(t *testing.T) {
	a := result(models.ModelA, models.DirectionBullish, 0.7)
	b := result(models.ModelB, models.DirectionBearish, 0.7)

	got := Resolve(a, b)
	if got.Type != models.Disagreement || !got.Details.IsTie {
		t.Fatalf("expected tie, got %+v", got)
	}
	if got.Details.Winner != "" {
		t.Fatalf("tie must not name a winner")
	}
}

func TestResolveNeutralVersusDirectional(t *testing.T) {
	a := result(models.ModelA, models.DirectionNeutral, 0.9)
	b := result(models.ModelB, models.DirectionBearish, 0.5)

	got := Resolve(a, b)
	if got.Type != models.PartialAgreement {
		t.Fatalf("expected partial agreement, got %s", got.Type)
	}
	// The directional opinion wins even at lower confidence.
	if got.Direction != models.DirectionBearish || got.Details.Winner != models.ModelB {
		t.Fatalf("unexpected verdict %+v", got)
	}
}

func TestResolveOneInvalid(t *testing.T) {
	a := failed(models.ModelA, "timeout")
	b := result(models.ModelB, models.DirectionBullish, 0.4)

	got := Resolve(a, b)
	if got.Type != models.PartialAgreement {
		t.Fatalf("expected partial agreement, got %s", got.Type)
	}
	if got.Direction != models.DirectionBullish || got.Details.Winner != models.ModelB {
		t.Fatalf("valid model must carry the verdict, got %+v", got)
	}
}

func TestResolveInvalidNeverVotesNeutral(t *testing.T) {
	// A failed model reports neutral direction as a placeholder; that
	// placeholder must not turn the comparison into an agreement.
	a := failed(models.ModelA, "boom")
	b := result(models.ModelB, models.DirectionNeutral, 0.9)

	got := Resolve(a, b)
	if got.Type != models.PartialAgreement || got.Agree {
		t.Fatalf("failed model must not count as a neutral vote, got %+v", got)
	}
}

func TestResolveBothInvalid(t *testing.T) {
	got := Resolve(failed(models.ModelA, "x"), failed(models.ModelB, "y"))
	if got.Type != models.AgreementError || got.Agree {
		t.Fatalf("expected error verdict, got %+v", got)
	}
	if got.Direction != "" {
		t.Fatalf("error verdict must carry no direction")
	}
}

func TestResolveSymmetry(t *testing.T) {
	// Swapping argument order must never change the winning direction.
	cases := []struct {
		da, db models.Direction
		ca, cb float64
	}{
		{models.DirectionBullish, models.DirectionBearish, 0.9, 0.3},
		{models.DirectionBearish, models.DirectionBullish, 0.2, 0.95},
		{models.DirectionBullish, models.DirectionNeutral, 0.6, 0.8},
		{models.DirectionBullish, models.DirectionBullish, 0.5, 0.5},
	}
	for _, c := range cases {
		fwd := Resolve(result(models.ModelA, c.da, c.ca), result(models.ModelB, c.db, c.cb))
		rev := Resolve(result(models.ModelA, c.db, c.cb), result(models.ModelB, c.da, c.ca))
		if fwd.Direction != rev.Direction {
			t.Fatalf("asymmetric verdict for %+v: %s vs %s", c, fwd.Direction, rev.Direction)
		}
		if fwd.Type != rev.Type {
			t.Fatalf("asymmetric type for %+v: %s vs %s", c, fwd.Type, rev.Type)
		}
	}
}
