package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bharatwebpro/platform-api/internal/dto"
)

// queryPattern matches free-form scrape queries of the form
// "<business type> in <city>", e.g. "kirana stores in Pune".
var queryPattern = regexp.MustCompile(`(?i)^\s*(.+?)\s+(?:in|near)\s+(.+?)\s*$`)

// ParsePrompt extracts scrape parameters from a free-form query.
func ParsePrompt(query string) (dto.PromptResult, error) {
	matches := queryPattern.FindStringSubmatch(query)
	if matches == nil {
		return dto.PromptResult{}, fmt.Errorf(`could not parse query %q, expected "<business type> in <city>"`, strings.TrimSpace(query))
	}
	return dto.PromptResult{
		BusinessType: strings.TrimSpace(matches[1]),
		City:         strings.TrimSpace(matches[2]),
	}, nil
}
