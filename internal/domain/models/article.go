package models

import "time"

// Article is a normalized news item, independent of the provider that
// produced it. Immutable once fetched.
type Article struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}
