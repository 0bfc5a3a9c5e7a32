package dto

// CreateWebsiteRequest triggers provisioning for a business.
type CreateWebsiteRequest struct {
	BusinessID string `json:"businessId"`
	Language   string `json:"language,omitempty"`
}

// UpdateWebsiteRequest captures a partial website update. Pages are never
// regenerated by an update.
type UpdateWebsiteRequest struct {
	WebsiteID   string    `json:"websiteId"`
	Title       *string   `json:"title,omitempty"`
	Tagline     *string   `json:"tagline,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Languages   *[]string `json:"languages,omitempty"`
}
