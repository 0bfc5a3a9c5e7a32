package dto

// ScrapeRequest is the payload used by the acquisition endpoint. Either the
// structured city/businessType pair or a free-form query ("kirana in Mumbai")
// must be supplied.
type ScrapeRequest struct {
	City         string `json:"city,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
	Query        string `json:"query,omitempty"`
}
