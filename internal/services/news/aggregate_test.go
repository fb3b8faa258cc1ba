package news

import (
	"testing"

	"NewsFuse/internal/domain/models"
)

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	if s.TotalErrors != 0 || len(s.Errors) != 0 {
		t.Fatalf("unexpected summary for no errors: %+v", s)
	}
	if s.ErrorsByProvider == nil || s.ErrorsBySeverity == nil {
		t.Fatalf("maps must be initialized")
	}
}

func TestAggregateCounts(t *testing.T) {
	errs := []models.ProviderError{
		{Provider: models.ProviderPrimaryPool, Severity: models.SeverityTransient, Retryable: true},
		{Provider: models.ProviderPrimaryPool, Severity: models.SeverityRetryable, Retryable: true},
		{Provider: models.ProviderFeedA, Severity: models.SeverityPermanent},
		{Provider: models.ProviderFeedB, Severity: models.SeverityUnknown},
	}

	s := Aggregate(errs)
	if s.TotalErrors != 4 {
		t.Fatalf("expected 4 total, got %d", s.TotalErrors)
	}
	if s.ErrorsByProvider[models.ProviderPrimaryPool] != 2 {
		t.Fatalf("expected 2 pool errors, got %d", s.ErrorsByProvider[models.ProviderPrimaryPool])
	}
	if s.ErrorsBySeverity[models.SeverityPermanent] != 1 {
		t.Fatalf("expected 1 permanent, got %d", s.ErrorsBySeverity[models.SeverityPermanent])
	}
	if s.RetryableErrors != 2 || s.PermanentErrors != 1 {
		t.Fatalf("unexpected counts %+v", s)
	}
}

func TestAggregateCopiesInput(t *testing.T) {
	errs := []models.ProviderError{{Provider: models.ProviderFeedA, Code: CodeFeed}}
	s := Aggregate(errs)

	errs[0].Code = "mutated"
	if s.Errors[0].Code != CodeFeed {
		t.Fatalf("summary must hold its own copy of the errors")
	}
}
