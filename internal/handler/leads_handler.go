package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/service"
)

type leadLister interface {
	ListLeads(ctx context.Context, filter dto.LeadListFilter) ([]entity.Business, error)
	ImportLeadsCSV(ctx context.Context, r io.Reader) (*service.ImportResult, error)
}

// LeadsHandler exposes the admin lead listing and CSV import endpoints.
type LeadsHandler struct {
	leads leadLister
}

func NewLeadsHandler(leads leadLister) *LeadsHandler {
	return &LeadsHandler{leads: leads}
}

// List handles GET /admin/leads.
func (h *LeadsHandler) List(c echo.Context) error {
	filter := dto.LeadListFilter{
		Q:      c.QueryParam("q"),
		City:   c.QueryParam("city"),
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
	}
	if page := c.QueryParam("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return Error(c, http.StatusBadRequest, "invalid page")
		}
		filter.Page = n
	}
	if perPage := c.QueryParam("perPage"); perPage != "" {
		n, err := strconv.Atoi(perPage)
		if err != nil || n < 1 {
			return Error(c, http.StatusBadRequest, "invalid perPage")
		}
		filter.PerPage = n
	}

	leads, err := h.leads.ListLeads(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list leads")
	}
	if leads == nil {
		leads = []entity.Business{}
	}
	return Success(c, http.StatusOK, leads)
}

// Import handles POST /admin/leads/import with a multipart "file" field
// containing CSV rows.
func (h *LeadsHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "csv file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	result, err := h.leads.ImportLeadsCSV(c.Request().Context(), file)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	return Success(c, http.StatusOK, result)
}
