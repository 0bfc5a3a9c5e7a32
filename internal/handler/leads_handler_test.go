package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/service"
)

type stubLeadLister struct {
	gotFilter dto.LeadListFilter
	leads     []entity.Business
	importRes *service.ImportResult
}

func (s *stubLeadLister) ListLeads(_ context.Context, filter dto.LeadListFilter) ([]entity.Business, error) {
	s.gotFilter = filter
	return s.leads, nil
}

func (s *stubLeadLister) ImportLeadsCSV(_ context.Context, _ io.Reader) (*service.ImportResult, error) {
	return s.importRes, nil
}

func TestLeadsList(t *testing.T) {
	lister := &stubLeadLister{leads: []entity.Business{{Name: "Sharma Kirana"}}}
	h := NewLeadsHandler(lister)

	rec := performJSON(t, h.List, http.MethodGet, "/admin/leads?city=Pune&type=KIRANA&page=2&perPage=10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if lister.gotFilter.City != "Pune" || lister.gotFilter.Type != "KIRANA" {
		t.Errorf("filter = %+v", lister.gotFilter)
	}
	if lister.gotFilter.Page != 2 || lister.gotFilter.PerPage != 10 {
		t.Errorf("pagination = %d/%d, want 2/10", lister.gotFilter.Page, lister.gotFilter.PerPage)
	}
	if !strings.Contains(rec.Body.String(), "Sharma Kirana") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestLeadsListEmptyIsArray(t *testing.T) {
	h := NewLeadsHandler(&stubLeadLister{})
	rec := performJSON(t, h.List, http.MethodGet, "/admin/leads", "")
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("body = %s, want empty array data", rec.Body.String())
	}
}

func TestLeadsListBadPagination(t *testing.T) {
	h := NewLeadsHandler(&stubLeadLister{})
	rec := performJSON(t, h.List, http.MethodGet, "/admin/leads?page=zero", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLeadsImport(t *testing.T) {
	lister := &stubLeadLister{importRes: &service.ImportResult{TotalRows: 2, SavedCount: 2}}
	h := NewLeadsHandler(lister)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "leads.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("name,phone,city,type,address\nA,9990001111,Pune,kirana,addr\n")); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	writer.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/leads/import", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	if err := h.Import(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"savedCount":2`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestLeadsImportMissingFile(t *testing.T) {
	h := NewLeadsHandler(&stubLeadLister{})
	rec := performJSON(t, h.Import, http.MethodPost, "/admin/leads/import", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
