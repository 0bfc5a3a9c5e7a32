package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/entity"
)

var (
	// ErrBusinessNotFound is returned when no business matches the lookup.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrPhoneExists signals the phone natural key is already taken. Callers
	// treat it as "lead already handled", not as a failure.
	ErrPhoneExists = errors.New("business phone already exists")
)

// NewLead carries everything needed to persist one scraped lead: a minimal
// owner account plus the business record bound to it.
type NewLead struct {
	Name     string
	Phone    string
	Whatsapp *string
	Address  *string
	City     string
	State    string
	Type     entity.BusinessType
	Source   string
	Score    int
}

// BusinessesRepository describes persistence operations for businesses.
type BusinessesRepository interface {
	CreateLead(ctx context.Context, lead NewLead) (*entity.Business, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	List(ctx context.Context, filter dto.LeadListFilter) ([]entity.Business, error)
}

const businessColumns = `id, name, phone, whatsapp, address, city, state, type, status, source, score, owner_id, created_at, updated_at`

// PGXBusinessesRepository implements BusinessesRepository using pgx.
type PGXBusinessesRepository struct {
	pool pgxPool
}

// NewPGXBusinessesRepository wires a pgx backed repository.
func NewPGXBusinessesRepository(pool *pgxpool.Pool) *PGXBusinessesRepository {
	return &PGXBusinessesRepository{pool: pool}
}

// CreateLead inserts the owner account and the business in one transaction.
// A unique violation on either phone column maps to ErrPhoneExists so that a
// concurrent run's winner makes the loser skip instead of fail.
func (r *PGXBusinessesRepository) CreateLead(ctx context.Context, lead NewLead) (*entity.Business, error) {
	if lead.Name == "" || lead.Phone == "" {
		return nil, fmt.Errorf("lead name and phone are required")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("start lead tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var ownerID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO users (name, phone, role)
		VALUES ($1, $2, $3)
		RETURNING id`,
		lead.Name, lead.Phone, entity.RoleClient,
	).Scan(&ownerID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("create lead owner: %w", err)
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO businesses (name, phone, whatsapp, address, city, state, type, status, source, score, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+businessColumns,
		lead.Name, lead.Phone, lead.Whatsapp, lead.Address, lead.City, lead.State,
		lead.Type, entity.BusinessStatusLead, lead.Source, lead.Score, ownerID,
	)

	business, err := scanBusinessRow(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("create lead business: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit lead tx: %w", err)
	}

	return business, nil
}

// ExistsByPhone reports whether a business with the given phone is stored.
func (r *PGXBusinessesRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM businesses WHERE phone = $1)`, phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check business phone: %w", err)
	}
	return exists, nil
}

// FindByID retrieves a business by identifier.
func (r *PGXBusinessesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)

	business, err := scanBusinessRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("query business by id: %w", err)
	}
	return business, nil
}

// List retrieves businesses matching the provided filter, highest score first.
func (r *PGXBusinessesRepository) List(ctx context.Context, filter dto.LeadListFilter) ([]entity.Business, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + businessColumns + ` FROM businesses`)

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.Q != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Q)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR address ILIKE $%d)", idx, idx+1))
		args = append(args, pattern, pattern)
		idx += 2
	}
	if filter.City != "" {
		clauses = append(clauses, fmt.Sprintf("LOWER(city) = LOWER($%d)", idx))
		args = append(args, filter.City)
		idx++
	}
	if filter.Type != "" {
		clauses = append(clauses, fmt.Sprintf("type = $%d", idx))
		args = append(args, strings.ToUpper(filter.Type))
		idx++
	}
	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = $%d", idx))
		args = append(args, strings.ToUpper(filter.Status))
		idx++
	}

	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}

	query.WriteString(" ORDER BY score DESC, created_at DESC")

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	query.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, perPage, (page-1)*perPage)

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []entity.Business
	for rows.Next() {
		business, err := scanBusinessRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		businesses = append(businesses, *business)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate businesses: %w", err)
	}
	return businesses, nil
}

func scanBusinessRow(row pgx.Row) (*entity.Business, error) {
	var business entity.Business
	err := row.Scan(
		&business.ID,
		&business.Name,
		&business.Phone,
		&business.Whatsapp,
		&business.Address,
		&business.City,
		&business.State,
		&business.Type,
		&business.Status,
		&business.Source,
		&business.Score,
		&business.OwnerID,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &business, nil
}
