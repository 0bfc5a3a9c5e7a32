package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bharatwebpro/platform-api/internal/entity"
)

var (
	// ErrWebsiteNotFound is returned when no website matches the lookup.
	ErrWebsiteNotFound = errors.New("website not found")
	// ErrWebsiteExists signals the business already has a website.
	ErrWebsiteExists = errors.New("website already exists for business")
)

// UpdateWebsiteFields captures a partial website update; nil fields are left
// untouched.
type UpdateWebsiteFields struct {
	Title       *string
	Tagline     *string
	Description *string
	Status      *entity.WebsiteStatus
	Languages   *[]string
}

// WebsitesRepository describes persistence operations for websites and pages.
type WebsitesRepository interface {
	CreateWithPages(ctx context.Context, website *entity.Website, pages []entity.Page) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Website, error)
	FindByBusinessID(ctx context.Context, businessID uuid.UUID) (*entity.Website, error)
	ExistsForBusiness(ctx context.Context, businessID uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateWebsiteFields) (*entity.Website, error)
}

const websiteColumns = `id, business_id, domain, subdomain, template, title, tagline, description, status, languages, has_whatsapp, created_at, updated_at`

// PGXWebsitesRepository implements WebsitesRepository using pgx.
type PGXWebsitesRepository struct {
	pool pgxPool
}

// NewPGXWebsitesRepository wires a pgx backed repository.
func NewPGXWebsitesRepository(pool *pgxpool.Pool) *PGXWebsitesRepository {
	return &PGXWebsitesRepository{pool: pool}
}

// CreateWithPages inserts the website and all of its pages in one
// transaction. A unique violation on business_id maps to ErrWebsiteExists;
// any other failure aborts the whole creation so a website is never left
// without its pages.
func (r *PGXWebsitesRepository) CreateWithPages(ctx context.Context, website *entity.Website, pages []entity.Page) error {
	if website == nil {
		return fmt.Errorf("website payload is nil")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start website tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO websites (business_id, domain, subdomain, template, title, tagline, description, status, languages, has_whatsapp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		website.BusinessID, website.Domain, website.Subdomain, website.Template,
		website.Title, website.Tagline, website.Description, website.Status,
		website.Languages, website.HasWhatsApp,
	).Scan(&website.ID, &website.CreatedAt, &website.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrWebsiteExists
		}
		return fmt.Errorf("create website: %w", err)
	}

	for i := range pages {
		page := &pages[i]
		page.WebsiteID = website.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO pages (website_id, slug, title, content, is_published, display_order)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at`,
			page.WebsiteID, page.Slug, page.Title, page.Content, page.IsPublished, page.Order,
		).Scan(&page.ID, &page.CreatedAt, &page.UpdatedAt)
		if err != nil {
			return fmt.Errorf("create page %q: %w", page.Slug, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit website tx: %w", err)
	}

	website.Pages = pages
	return nil
}

// FindByID retrieves a website with its pages.
func (r *PGXWebsitesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Website, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// FindByBusinessID retrieves the website belonging to a business.
func (r *PGXWebsitesRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID) (*entity.Website, error) {
	return r.findOne(ctx, `WHERE business_id = $1`, businessID)
}

// ExistsForBusiness reports whether the business already has a website.
func (r *PGXWebsitesRepository) ExistsForBusiness(ctx context.Context, businessID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM websites WHERE business_id = $1)`, businessID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check website existence: %w", err)
	}
	return exists, nil
}

// Update applies a partial update and returns the refreshed record with pages.
func (r *PGXWebsitesRepository) Update(ctx context.Context, id uuid.UUID, fields UpdateWebsiteFields) (*entity.Website, error) {
	var (
		sets []string
		args []any
		idx  = 1
	)

	appendSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if fields.Title != nil {
		appendSet("title", *fields.Title)
	}
	if fields.Tagline != nil {
		appendSet("tagline", *fields.Tagline)
	}
	if fields.Description != nil {
		appendSet("description", *fields.Description)
	}
	if fields.Status != nil {
		appendSet("status", *fields.Status)
	}
	if fields.Languages != nil {
		appendSet("languages", *fields.Languages)
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	query := fmt.Sprintf(`UPDATE websites SET %s WHERE id = $%d`, strings.Join(sets, ", "), idx)
	args = append(args, id)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update website: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrWebsiteNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *PGXWebsitesRepository) findOne(ctx context.Context, where string, arg any) (*entity.Website, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+websiteColumns+` FROM websites `+where, arg)

	var website entity.Website
	err := row.Scan(
		&website.ID,
		&website.BusinessID,
		&website.Domain,
		&website.Subdomain,
		&website.Template,
		&website.Title,
		&website.Tagline,
		&website.Description,
		&website.Status,
		&website.Languages,
		&website.HasWhatsApp,
		&website.CreatedAt,
		&website.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWebsiteNotFound
		}
		return nil, fmt.Errorf("query website: %w", err)
	}

	pages, err := r.loadPages(ctx, website.ID)
	if err != nil {
		return nil, err
	}
	website.Pages = pages

	return &website, nil
}

func (r *PGXWebsitesRepository) loadPages(ctx context.Context, websiteID uuid.UUID) ([]entity.Page, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, website_id, slug, title, content, is_published, display_order, created_at, updated_at
		FROM pages
		WHERE website_id = $1
		ORDER BY display_order ASC`,
		websiteID,
	)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []entity.Page
	for rows.Next() {
		var page entity.Page
		err := rows.Scan(
			&page.ID,
			&page.WebsiteID,
			&page.Slug,
			&page.Title,
			&page.Content,
			&page.IsPublished,
			&page.Order,
			&page.CreatedAt,
			&page.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}
	return pages, nil
}
