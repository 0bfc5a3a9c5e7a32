package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WebsiteStatus is the website lifecycle state.
type WebsiteStatus string

const (
	WebsiteStatusDraft     WebsiteStatus = "DRAFT"
	WebsiteStatusPublished WebsiteStatus = "PUBLISHED"
	WebsiteStatusArchived  WebsiteStatus = "ARCHIVED"
)

// Website is the generated site for a business. Exactly one website may
// exist per business; the storage layer enforces this with a unique
// constraint on business_id.
type Website struct {
	ID          uuid.UUID     `json:"id"`
	BusinessID  uuid.UUID     `json:"business_id"`
	Domain      string        `json:"domain"`
	Subdomain   string        `json:"subdomain"`
	Template    string        `json:"template"`
	Title       string        `json:"title"`
	Tagline     string        `json:"tagline"`
	Description string        `json:"description"`
	Status      WebsiteStatus `json:"status"`
	Languages   []string      `json:"languages"`
	HasWhatsApp bool          `json:"has_whatsapp"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Pages       []Page        `json:"pages,omitempty"`
}

// Page is a single page of a website. Slug is one of the fixed set
// home/about/services/gallery/contact; Order controls display position.
type Page struct {
	ID          uuid.UUID       `json:"id"`
	WebsiteID   uuid.UUID       `json:"website_id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Content     json.RawMessage `json:"content"`
	IsPublished bool            `json:"is_published"`
	Order       int             `json:"order"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
