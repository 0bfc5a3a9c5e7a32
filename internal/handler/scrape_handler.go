package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/service"
)

type leadRunner interface {
	RunScraping(ctx context.Context, city, businessType string) (*service.ScrapeResult, error)
}

// ScrapeHandler exposes the lead acquisition endpoints.
type ScrapeHandler struct {
	leads leadRunner
}

func NewScrapeHandler(leads leadRunner) *ScrapeHandler {
	return &ScrapeHandler{leads: leads}
}

// Run handles POST /scrape. The request carries either a structured
// city/businessType pair or a free-form query that is parsed into one.
func (h *ScrapeHandler) Run(c echo.Context) error {
	var req dto.ScrapeRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.City = strings.TrimSpace(req.City)
	req.BusinessType = strings.TrimSpace(req.BusinessType)

	if (req.City == "" || req.BusinessType == "") && req.Query != "" {
		parsed, err := service.ParsePrompt(req.Query)
		if err != nil {
			return Error(c, http.StatusBadRequest, err.Error())
		}
		req.City = parsed.City
		req.BusinessType = parsed.BusinessType
	}

	if req.City == "" || req.BusinessType == "" {
		return Error(c, http.StatusBadRequest, "city and business type are required")
	}

	result, err := h.leads.RunScraping(c.Request().Context(), req.City, req.BusinessType)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to scrape leads")
	}
	return Success(c, http.StatusOK, result)
}

// History handles GET /scrape.
// TODO: return stored run summaries once scrape history is persisted.
func (h *ScrapeHandler) History(c echo.Context) error {
	return Success(c, http.StatusOK, []any{})
}
