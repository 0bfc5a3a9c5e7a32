package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bharatwebpro/platform-api/internal/entity"
)

type templateStore interface {
	FindActiveByCategory(ctx context.Context, category entity.BusinessType) (*entity.Template, error)
}

// defaultTemplate is the built-in structure used when no active template is
// stored for a category. It is never persisted.
var defaultTemplate = entity.Template{
	Category: entity.BusinessTypeOther,
	Structure: entity.TemplateStructure{
		Header:   []string{"logo", "navigation", "cta"},
		Sections: []string{"hero", "about", "services", "gallery", "testimonials", "contact"},
		Footer:   []string{"info", "links", "social", "copyright"},
	},
	IsActive: true,
}

// TemplateResolver picks the content template for a business category.
type TemplateResolver struct {
	store  templateStore
	logger zerolog.Logger
}

func NewTemplateResolver(store templateStore, logger zerolog.Logger) *TemplateResolver {
	return &TemplateResolver{
		store:  store,
		logger: logger.With().Str("component", "templates").Logger(),
	}
}

// Resolve returns the newest active template for the category, or the
// built-in default when none is stored. It never fails; a store error is
// logged and degrades to the default.
func (r *TemplateResolver) Resolve(ctx context.Context, category entity.BusinessType) entity.Template {
	tmpl, err := r.store.FindActiveByCategory(ctx, category)
	if err != nil {
		r.logger.Debug().Err(err).Str("category", string(category)).Msg("falling back to default template")
		fallback := defaultTemplate
		fallback.Category = category
		return fallback
	}
	return *tmpl
}
