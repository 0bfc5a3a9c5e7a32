package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/repository"
	"github.com/bharatwebpro/platform-api/internal/scraper"
	"github.com/bharatwebpro/platform-api/internal/service/scoring"
)

// Per-source result caps. Google Maps details calls are billed per place,
// JustDial listing pages rarely carry more than twenty useful entries.
const (
	googleMapsLimit = 30
	justDialLimit   = 20
)

type leadStore interface {
	CreateLead(ctx context.Context, lead repository.NewLead) (*entity.Business, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	List(ctx context.Context, filter dto.LeadListFilter) ([]entity.Business, error)
}

// ScrapeResult summarises one acquisition run.
type ScrapeResult struct {
	City         string            `json:"city"`
	BusinessType string            `json:"businessType"`
	TotalFound   int               `json:"totalFound"`
	SavedCount   int               `json:"savedCount"`
	Leads        []entity.Business `json:"leads"`
}

// ImportResult summarises a CSV lead import.
type ImportResult struct {
	TotalRows  int      `json:"totalRows"`
	SavedCount int      `json:"savedCount"`
	Skipped    int      `json:"skipped"`
	Errors     []string `json:"errors,omitempty"`
}

// LeadService drives lead acquisition: fanning out to source adapters,
// filtering candidates and persisting the survivors as LEAD businesses.
type LeadService struct {
	store    leadStore
	adapters []scraper.Adapter
	logger   zerolog.Logger
}

func NewLeadService(store leadStore, adapters []scraper.Adapter, logger zerolog.Logger) *LeadService {
	return &LeadService{
		store:    store,
		adapters: adapters,
		logger:   logger.With().Str("component", "leads").Logger(),
	}
}

// RunScraping fetches candidates from every configured adapter concurrently,
// then persists the ones that pass filtering. Adapter failures surface as
// empty slices, so a dead source never aborts the run.
func (s *LeadService) RunScraping(ctx context.Context, city, businessType string) (*ScrapeResult, error) {
	city = strings.TrimSpace(city)
	businessType = strings.TrimSpace(businessType)
	if city == "" {
		return nil, errors.New("city is required")
	}
	if businessType == "" {
		return nil, errors.New("business type is required")
	}

	candidateSets := make([][]scraper.Candidate, len(s.adapters))

	g, gctx := errgroup.WithContext(ctx)
	for i, adapter := range s.adapters {
		g.Go(func() error {
			candidateSets[i] = adapter.Fetch(gctx, city, businessType, s.limitFor(adapter))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Join in adapter registration order so runs are reproducible.
	var candidates []scraper.Candidate
	for i, set := range candidateSets {
		s.logger.Info().
			Str("source", s.adapters[i].Name()).
			Str("city", city).
			Int("candidates", len(set)).
			Msg("source fetch complete")
		candidates = append(candidates, set...)
	}

	saved := s.saveLeads(ctx, candidates, city, businessType)

	result := &ScrapeResult{
		City:         city,
		BusinessType: businessType,
		TotalFound:   len(candidates),
		SavedCount:   len(saved),
		Leads:        saved,
	}

	s.logger.Info().
		Str("city", city).
		Str("businessType", businessType).
		Int("totalFound", result.TotalFound).
		Int("savedCount", result.SavedCount).
		Msg("scrape run complete")

	return result, nil
}

func (s *LeadService) limitFor(adapter scraper.Adapter) int {
	switch adapter.Name() {
	case scraper.SourceGoogleMaps:
		return googleMapsLimit
	case scraper.SourceJustDial:
		return justDialLimit
	default:
		return justDialLimit
	}
}

// saveLeads persists each qualifying candidate. Candidates with an existing
// web presence are not prospects for us. The store's phone uniqueness check
// is a point-in-time read, so the insert may still hit the unique constraint;
// that is treated the same as the pre-check, skip and move on.
func (s *LeadService) saveLeads(ctx context.Context, candidates []scraper.Candidate, city, businessType string) []entity.Business {
	saved := make([]entity.Business, 0, len(candidates))

	for _, c := range candidates {
		if c.HasWebsite {
			continue
		}
		if c.Phone == "" {
			continue
		}

		exists, err := s.store.ExistsByPhone(ctx, c.Phone)
		if err != nil {
			s.logger.Error().Err(err).Str("phone", c.Phone).Msg("phone lookup failed, skipping candidate")
			continue
		}
		if exists {
			continue
		}

		mappedType := MapBusinessType(businessType)
		state := CityState(city)

		score := scoring.ComputeScore(scoring.LeadSignals{
			Phone:          c.Phone,
			Address:        c.Address,
			HasWhatsapp:    true,
			CategoryMapped: mappedType != entity.BusinessTypeOther,
			StateKnown:     state != "Unknown",
		})

		lead := repository.NewLead{
			Name:     c.Name,
			Phone:    c.Phone,
			Whatsapp: &c.Phone,
			City:     city,
			State:    state,
			Type:     mappedType,
			Source:   c.Source,
			Score:    score.Total,
		}
		if c.Address != "" {
			addr := c.Address
			lead.Address = &addr
		}

		business, err := s.store.CreateLead(ctx, lead)
		if err != nil {
			if errors.Is(err, repository.ErrPhoneExists) {
				s.logger.Debug().Str("phone", c.Phone).Msg("phone already registered, skipping")
				continue
			}
			s.logger.Error().Err(err).Str("name", c.Name).Msg("failed to save lead, skipping")
			continue
		}
		saved = append(saved, *business)
	}

	return saved
}

// ListLeads returns a filtered, paginated page of businesses.
func (s *LeadService) ListLeads(ctx context.Context, filter dto.LeadListFilter) ([]entity.Business, error) {
	return s.store.List(ctx, filter)
}

// ImportLeadsCSV ingests leads from a CSV stream with a
// name,phone,city,type,address header. Rows failing validation are reported
// but do not abort the import.
func (s *LeadService) ImportLeadsCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols, err := mapCSVHeader(header)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			result.Skipped++
			continue
		}
		result.TotalRows++

		name := strings.TrimSpace(record[cols["name"]])
		phone := digitsOnly(record[cols["phone"]])
		city := strings.TrimSpace(record[cols["city"]])
		if name == "" || phone == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: name and phone are required", line))
			result.Skipped++
			continue
		}

		mappedType := MapBusinessType(record[cols["type"]])
		state := CityState(city)
		address := strings.TrimSpace(record[cols["address"]])

		score := scoring.ComputeScore(scoring.LeadSignals{
			Phone:          phone,
			Address:        address,
			HasWhatsapp:    false,
			CategoryMapped: mappedType != entity.BusinessTypeOther,
			StateKnown:     state != "Unknown",
		})

		lead := repository.NewLead{
			Name:   name,
			Phone:  phone,
			City:   city,
			State:  state,
			Type:   mappedType,
			Source: "csv_import",
			Score:  score.Total,
		}
		if address != "" {
			lead.Address = &address
		}

		if _, err := s.store.CreateLead(ctx, lead); err != nil {
			if errors.Is(err, repository.ErrPhoneExists) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			result.Skipped++
			continue
		}
		result.SavedCount++
	}

	return result, nil
}

func mapCSVHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"name", "phone", "city", "type", "address"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv header missing %q column", required)
		}
	}
	return cols, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
