package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bharatwebpro/platform-api/internal/entity"
)

// ErrTemplateNotFound indicates no active template exists for a category.
// The resolver degrades to a built-in default instead of surfacing this.
var ErrTemplateNotFound = errors.New("template not found")

// TemplatesRepository describes lookups against stored site templates.
type TemplatesRepository interface {
	FindActiveByCategory(ctx context.Context, category entity.BusinessType) (*entity.Template, error)
}

// PGXTemplatesRepository implements TemplatesRepository using pgx.
type PGXTemplatesRepository struct {
	pool pgxPool
}

// NewPGXTemplatesRepository wires a pgx backed repository.
func NewPGXTemplatesRepository(pool *pgxpool.Pool) *PGXTemplatesRepository {
	return &PGXTemplatesRepository{pool: pool}
}

// FindActiveByCategory returns the newest active template for a category.
func (r *PGXTemplatesRepository) FindActiveByCategory(ctx context.Context, category entity.BusinessType) (*entity.Template, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, category, structure, is_active, created_at, updated_at
		FROM templates
		WHERE category = $1 AND is_active = TRUE
		ORDER BY updated_at DESC
		LIMIT 1`,
		category,
	)

	var (
		template      entity.Template
		structureJSON []byte
	)
	err := row.Scan(
		&template.ID,
		&template.Category,
		&structureJSON,
		&template.IsActive,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("query template: %w", err)
	}

	if len(structureJSON) > 0 {
		if err := json.Unmarshal(structureJSON, &template.Structure); err != nil {
			return nil, fmt.Errorf("unmarshal template structure: %w", err)
		}
	}

	return &template, nil
}
