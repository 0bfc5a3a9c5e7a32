package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bharatwebpro/platform-api/internal/service"
)

type stubLeadRunner struct {
	gotCity string
	gotType string
	result  *service.ScrapeResult
	err     error
}

func (s *stubLeadRunner) RunScraping(_ context.Context, city, businessType string) (*service.ScrapeResult, error) {
	s.gotCity = city
	s.gotType = businessType
	return s.result, s.err
}

func performJSON(t *testing.T, handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestScrapeRun(t *testing.T) {
	runner := &stubLeadRunner{result: &service.ScrapeResult{City: "Pune", BusinessType: "kirana", TotalFound: 3, SavedCount: 2}}
	h := NewScrapeHandler(runner)

	rec := performJSON(t, h.Run, http.MethodPost, "/scrape", `{"city":"Pune","businessType":"kirana"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TotalFound int `json:"totalFound"`
			SavedCount int `json:"savedCount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success should be true")
	}
	if resp.Data.TotalFound != 3 || resp.Data.SavedCount != 2 {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestScrapeRunParsesQuery(t *testing.T) {
	runner := &stubLeadRunner{result: &service.ScrapeResult{}}
	h := NewScrapeHandler(runner)

	rec := performJSON(t, h.Run, http.MethodPost, "/scrape", `{"query":"salons in Jaipur"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if runner.gotCity != "Jaipur" || runner.gotType != "salons" {
		t.Errorf("parsed city=%q type=%q", runner.gotCity, runner.gotType)
	}
}

func TestScrapeRunValidation(t *testing.T) {
	h := NewScrapeHandler(&stubLeadRunner{})

	tests := []struct {
		name string
		body string
	}{
		{"empty", `{}`},
		{"missing type", `{"city":"Pune"}`},
		{"unparsable query", `{"query":"gibberish"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performJSON(t, h.Run, http.MethodPost, "/scrape", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestScrapeRunServiceError(t *testing.T) {
	h := NewScrapeHandler(&stubLeadRunner{err: errors.New("boom")})
	rec := performJSON(t, h.Run, http.MethodPost, "/scrape", `{"city":"Pune","businessType":"kirana"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("body = %s, want error envelope", rec.Body.String())
	}
}

func TestScrapeHistory(t *testing.T) {
	h := NewScrapeHandler(&stubLeadRunner{})
	rec := performJSON(t, h.History, http.MethodGet, "/scrape", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("body = %s, want empty data list", rec.Body.String())
	}
}
