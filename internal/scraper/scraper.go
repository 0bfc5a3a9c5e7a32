// Package scraper contains the source adapters for lead acquisition. Each
// adapter queries one external business directory and fails closed: any
// failure (missing credential, network error, malformed response) yields an
// empty result and a log entry, never an error. Callers cannot distinguish
// "no businesses" from "adapter failed"; that ambiguity is accepted.
package scraper

import (
	"context"
	"strings"
	"unicode"
)

// Candidate is a transient business record produced by a source adapter.
// It exists only during one acquisition run and is never persisted directly.
type Candidate struct {
	Name       string
	Phone      string
	Address    string
	City       string
	Type       string
	HasWebsite bool
	Source     string
}

// Adapter fetches candidate businesses for a city and business type.
// Implementations bound their own external-call latency and return at most
// limit candidates.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, city, businessType string, limit int) []Candidate
}

// stripNonDigits removes every non-numeric character from a phone string.
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// slugify lowercases and hyphenates a path segment for directory URLs.
func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
