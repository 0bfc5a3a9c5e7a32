package dto

// PromptResult contains structured scrape parameters derived from a
// free-form query.
type PromptResult struct {
	City         string `json:"city"`
	BusinessType string `json:"businessType"`
}
