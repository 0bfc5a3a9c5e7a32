// Package scoring rates freshly acquired leads so the sales team can
// prioritise outreach. Scores are computed once at save time from intake
// signals only; they are a heuristic, not a guarantee of lead quality.
package scoring

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

const (
	categoryContact = "contact_quality"
	categoryAddress = "address_completeness"
	categoryProfile = "profile_fit"
)

const defaultPhoneRegion = "IN"

// LeadSignals captures the intake signals used for scoring.
type LeadSignals struct {
	Phone          string
	Address        string
	HasWhatsapp    bool
	CategoryMapped bool
	StateKnown     bool
}

// ScoreResult reports the aggregate score and the per-category breakdown.
type ScoreResult struct {
	Total     int
	Breakdown map[string]int
}

// ComputeScore evaluates the provided signals and returns the score breakdown.
func ComputeScore(input LeadSignals) ScoreResult {
	breakdown := map[string]int{
		categoryContact: scoreContactQuality(input),
		categoryAddress: scoreAddressCompleteness(input.Address),
		categoryProfile: scoreProfileFit(input),
	}

	total := 0
	for _, value := range breakdown {
		total += value
	}

	return ScoreResult{
		Total:     total,
		Breakdown: breakdown,
	}
}

func scoreContactQuality(input LeadSignals) int {
	score := 0
	possible, valid := phoneQuality(input.Phone)
	if possible {
		score += 15
	}
	if valid {
		score += 15
	}
	if input.HasWhatsapp {
		score += 10
	}
	if score > 40 {
		return 40
	}
	return score
}

func scoreAddressCompleteness(raw string) int {
	addr := strings.TrimSpace(raw)
	if len([]rune(addr)) < 10 {
		return 0
	}

	score := 10
	var hasLetter, hasDigit bool
	separators := 0
	for _, r := range addr {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case r == ',':
			separators++
		}
	}
	if hasLetter && hasDigit {
		score += 10
	}
	if separators >= 1 {
		score += 10
	}
	if score > 30 {
		return 30
	}
	return score
}

func scoreProfileFit(input LeadSignals) int {
	score := 0
	if input.CategoryMapped {
		score += 20
	}
	if input.StateKnown {
		score += 10
	}
	if score > 30 {
		return 30
	}
	return score
}

func phoneQuality(raw string) (possible, valid bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	number, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return false, false
	}
	return phonenumbers.IsPossibleNumber(number), phonenumbers.IsValidNumber(number)
}
