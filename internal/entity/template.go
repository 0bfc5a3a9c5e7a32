package entity

import (
	"time"

	"github.com/google/uuid"
)

// TemplateStructure describes the structural zones of a site template.
type TemplateStructure struct {
	Header   []string `json:"header"`
	Sections []string `json:"sections"`
	Footer   []string `json:"footer"`
}

// Template is a category-scoped content skeleton. When no active template
// exists for a category, an in-memory default structure is used instead;
// that default is never persisted.
type Template struct {
	ID        uuid.UUID         `json:"id"`
	Category  BusinessType      `json:"category"`
	Structure TemplateStructure `json:"structure"`
	IsActive  bool              `json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
