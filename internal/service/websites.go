package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/repository"
	"github.com/bharatwebpro/platform-api/internal/service/content"
)

// Service-level errors surfaced to the HTTP layer.
var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrWebsiteNotFound  = errors.New("website not found")
	ErrWebsiteExists    = errors.New("business already has a website")
)

const maxSubdomainLength = 50

// pageOrder is the authoritative display position per slug. Slugs outside
// the fixed set sort last.
var pageOrder = map[string]int{
	"home":     1,
	"about":    2,
	"services": 3,
	"gallery":  4,
	"contact":  5,
}

type websiteStore interface {
	CreateWithPages(ctx context.Context, website *entity.Website, pages []entity.Page) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Website, error)
	FindByBusinessID(ctx context.Context, businessID uuid.UUID) (*entity.Website, error)
	Update(ctx context.Context, id uuid.UUID, fields repository.UpdateWebsiteFields) (*entity.Website, error)
}

type businessFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
}

// WebsiteService provisions and manages generated websites.
type WebsiteService struct {
	websites   websiteStore
	businesses businessFinder
	templates  *TemplateResolver
	rootDomain string
	logger     zerolog.Logger
}

func NewWebsiteService(websites websiteStore, businesses businessFinder, templates *TemplateResolver, rootDomain string, logger zerolog.Logger) *WebsiteService {
	return &WebsiteService{
		websites:   websites,
		businesses: businesses,
		templates:  templates,
		rootDomain: rootDomain,
		logger:     logger.With().Str("component", "websites").Logger(),
	}
}

// Create provisions a DRAFT website with its five pages for a business.
// It fails with ErrBusinessNotFound when the business does not exist and
// ErrWebsiteExists when one is already provisioned. The website and its
// pages are created atomically; the storage layer's unique constraint on
// business_id backstops concurrent provisioning of the same business.
func (s *WebsiteService) Create(ctx context.Context, businessID uuid.UUID, language string) (*entity.Website, error) {
	if language == "" {
		language = content.LanguageEnglish
	}

	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("load business: %w", err)
	}

	synthesized := content.Synthesize(business, language)

	// The resolved structure does not drive page composition yet; the page
	// set is fixed. It is logged so template coverage can be audited.
	template := s.templates.Resolve(ctx, business.Type)
	s.logger.Debug().
		Str("category", string(business.Type)).
		Strs("sections", template.Structure.Sections).
		Msg("template resolved")

	subdomain := DeriveDomain(business.Name)
	website := &entity.Website{
		BusinessID:  business.ID,
		Domain:      subdomain + "." + s.rootDomain,
		Subdomain:   subdomain,
		Template:    strings.ToLower(string(business.Type)),
		Title:       synthesized.Title,
		Tagline:     synthesized.Tagline,
		Description: synthesized.Description,
		Status:      entity.WebsiteStatusDraft,
		Languages:   []string{language},
		HasWhatsApp: business.Whatsapp != nil && *business.Whatsapp != "",
	}

	pages := make([]entity.Page, 0, len(synthesized.Pages))
	for _, draft := range synthesized.Pages {
		payload, err := json.Marshal(draft.Content)
		if err != nil {
			return nil, fmt.Errorf("encode %s page: %w", draft.Slug, err)
		}
		pages = append(pages, entity.Page{
			Slug:        draft.Slug,
			Title:       draft.Title,
			Content:     payload,
			IsPublished: false,
			Order:       orderForSlug(draft.Slug),
		})
	}

	if err := s.websites.CreateWithPages(ctx, website, pages); err != nil {
		if errors.Is(err, repository.ErrWebsiteExists) {
			return nil, ErrWebsiteExists
		}
		return nil, fmt.Errorf("provision website: %w", err)
	}

	s.logger.Info().
		Stringer("businessId", business.ID).
		Str("subdomain", website.Subdomain).
		Str("language", language).
		Msg("website provisioned")

	return website, nil
}

// Get fetches a website with its pages.
func (s *WebsiteService) Get(ctx context.Context, id uuid.UUID) (*entity.Website, error) {
	website, err := s.websites.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWebsiteNotFound) {
			return nil, ErrWebsiteNotFound
		}
		return nil, err
	}
	return website, nil
}

// GetByBusiness fetches the website provisioned for a business.
func (s *WebsiteService) GetByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.Website, error) {
	website, err := s.websites.FindByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrWebsiteNotFound) {
			return nil, ErrWebsiteNotFound
		}
		return nil, err
	}
	return website, nil
}

// Update applies a partial update to a website.
func (s *WebsiteService) Update(ctx context.Context, id uuid.UUID, fields repository.UpdateWebsiteFields) (*entity.Website, error) {
	website, err := s.websites.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrWebsiteNotFound) {
			return nil, ErrWebsiteNotFound
		}
		return nil, err
	}
	return website, nil
}

// BusinessOwner resolves the owning user of a business, for authorization
// checks in the HTTP layer.
func (s *WebsiteService) BusinessOwner(ctx context.Context, businessID uuid.UUID) (uuid.UUID, error) {
	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return uuid.Nil, ErrBusinessNotFound
		}
		return uuid.Nil, err
	}
	return business.OwnerID, nil
}

// DeriveDomain turns a business name into a subdomain label: lower-cased,
// non-alphanumeric runs collapsed to single hyphens, trimmed and capped at
// 50 characters. Collisions between similarly named businesses are not
// resolved here.
func DeriveDomain(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	domain := strings.Trim(b.String(), "-")
	if len(domain) > maxSubdomainLength {
		domain = domain[:maxSubdomainLength]
	}
	return domain
}

func orderForSlug(slug string) int {
	if order, ok := pageOrder[slug]; ok {
		return order
	}
	return 99
}
