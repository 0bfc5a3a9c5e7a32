package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// SourceGoogleMaps identifies candidates produced by the Places adapter.
const SourceGoogleMaps = "google_maps"

// GoogleMapsAdapter discovers businesses through the Places text-search API.
// Every search hit costs a second details lookup to obtain phone, address
// and website presence; results without a phone number are dropped.
type GoogleMapsAdapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewGoogleMapsAdapter builds the adapter. An empty apiKey is allowed; the
// adapter then fails closed at fetch time.
func NewGoogleMapsAdapter(apiKey, baseURL string, logger zerolog.Logger) *GoogleMapsAdapter {
	return &GoogleMapsAdapter{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		// The Places API tolerates ~10 QPS per key; stay well under it.
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
		logger:  logger.With().Str("adapter", SourceGoogleMaps).Logger(),
	}
}

// Name implements Adapter.
func (a *GoogleMapsAdapter) Name() string { return SourceGoogleMaps }

type placesSearchResponse struct {
	Results []struct {
		PlaceID string `json:"place_id"`
	} `json:"results"`
	Status string `json:"status"`
}

type placesDetailsResponse struct {
	Result struct {
		Name                 string `json:"name"`
		FormattedPhoneNumber string `json:"formatted_phone_number"`
		FormattedAddress     string `json:"formatted_address"`
		Website              string `json:"website"`
	} `json:"result"`
	Status string `json:"status"`
}

// Fetch implements Adapter. Any failure returns an empty slice.
func (a *GoogleMapsAdapter) Fetch(ctx context.Context, city, businessType string, limit int) []Candidate {
	if a.apiKey == "" {
		a.logger.Warn().Msg("places api key not configured")
		return nil
	}

	query := fmt.Sprintf("%s in %s", businessType, city)
	var search placesSearchResponse
	params := url.Values{"query": {query}, "key": {a.apiKey}}
	if err := a.getJSON(ctx, "/textsearch/json", params, &search); err != nil {
		a.logger.Warn().Err(err).Str("query", query).Msg("text search failed")
		return nil
	}

	results := search.Results
	if len(results) > limit {
		results = results[:limit]
	}

	var candidates []Candidate
	for _, place := range results {
		var details placesDetailsResponse
		params := url.Values{
			"place_id": {place.PlaceID},
			"fields":   {"name,formatted_phone_number,formatted_address,website"},
			"key":      {a.apiKey},
		}
		if err := a.getJSON(ctx, "/details/json", params, &details); err != nil {
			a.logger.Warn().Err(err).Str("place_id", place.PlaceID).Msg("details lookup failed")
			return nil
		}

		result := details.Result
		if result.FormattedPhoneNumber == "" {
			continue
		}

		candidates = append(candidates, Candidate{
			Name:       result.Name,
			Phone:      strings.ReplaceAll(result.FormattedPhoneNumber, " ", ""),
			Address:    result.FormattedAddress,
			City:       city,
			Type:       businessType,
			HasWebsite: result.Website != "",
			Source:     SourceGoogleMaps,
		})
	}

	return candidates
}

func (a *GoogleMapsAdapter) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
