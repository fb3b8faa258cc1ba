package news

import (
	"time"

	"NewsFuse/internal/domain/models"
)

// Aggregate builds an ErrorSummary from the ordered provider errors of one
// fetch attempt. Pure, total function. Callers attach the summary to a
// result only when the fetch produced zero usable articles; a fetch that
// eventually succeeded via a lower-priority provider is a successful (if
// degraded) outcome and is not summarized.
func Aggregate(errs []models.ProviderError) models.ErrorSummary {
	s := models.ErrorSummary{
		TotalErrors:      len(errs),
		ErrorsByProvider: make(map[models.Provider]int),
		ErrorsBySeverity: make(map[models.Severity]int),
		Errors:           append([]models.ProviderError(nil), errs...),
		Timestamp:        time.Now(),
	}
	for _, e := range errs {
		s.ErrorsByProvider[e.Provider]++
		s.ErrorsBySeverity[e.Severity]++
		if e.Retryable {
			s.RetryableErrors++
		}
		if e.Severity == models.SeverityPermanent {
			s.PermanentErrors++
		}
	}
	return s
}
