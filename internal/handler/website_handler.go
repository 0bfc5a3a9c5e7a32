package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bharatwebpro/platform-api/internal/dto"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/middleware"
	"github.com/bharatwebpro/platform-api/internal/repository"
	"github.com/bharatwebpro/platform-api/internal/service"
)

type websiteProvisioner interface {
	Create(ctx context.Context, businessID uuid.UUID, language string) (*entity.Website, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Website, error)
	GetByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.Website, error)
	Update(ctx context.Context, id uuid.UUID, fields repository.UpdateWebsiteFields) (*entity.Website, error)
	BusinessOwner(ctx context.Context, businessID uuid.UUID) (uuid.UUID, error)
}

// WebsiteHandler exposes website provisioning and management endpoints.
// Every operation is restricted to the owning user or an administrator.
type WebsiteHandler struct {
	websites websiteProvisioner
}

func NewWebsiteHandler(websites websiteProvisioner) *WebsiteHandler {
	return &WebsiteHandler{websites: websites}
}

// Create handles POST /website.
func (h *WebsiteHandler) Create(c echo.Context) error {
	var req dto.CreateWebsiteRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return Error(c, http.StatusBadRequest, "business ID is required")
	}
	if req.Language != "" && req.Language != "en" && req.Language != "hi" {
		return Error(c, http.StatusBadRequest, "language must be en or hi")
	}

	ctx := c.Request().Context()
	ownerID, err := h.websites.BusinessOwner(ctx, businessID)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			return Error(c, http.StatusNotFound, "business not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to generate website")
	}
	if !callerMayManage(c, ownerID) {
		return Error(c, http.StatusForbidden, "not allowed to manage this business")
	}

	website, err := h.websites.Create(ctx, businessID, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBusinessNotFound):
			return Error(c, http.StatusNotFound, "business not found")
		case errors.Is(err, service.ErrWebsiteExists):
			return Error(c, http.StatusConflict, "website already exists for this business")
		default:
			return Error(c, http.StatusInternalServerError, "failed to generate website")
		}
	}
	return Success(c, http.StatusCreated, website)
}

// Get handles GET /website?id= or GET /website?businessId=.
func (h *WebsiteHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		website *entity.Website
		err     error
	)
	switch {
	case c.QueryParam("id") != "":
		var id uuid.UUID
		if id, err = uuid.Parse(c.QueryParam("id")); err != nil {
			return Error(c, http.StatusBadRequest, "invalid website ID")
		}
		website, err = h.websites.Get(ctx, id)
	case c.QueryParam("businessId") != "":
		var businessID uuid.UUID
		if businessID, err = uuid.Parse(c.QueryParam("businessId")); err != nil {
			return Error(c, http.StatusBadRequest, "invalid business ID")
		}
		website, err = h.websites.GetByBusiness(ctx, businessID)
	default:
		return Error(c, http.StatusBadRequest, "website ID or business ID is required")
	}
	if err != nil {
		if errors.Is(err, service.ErrWebsiteNotFound) {
			return Error(c, http.StatusNotFound, "website not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to fetch website")
	}

	if err := h.authorize(c, website); err != nil {
		return err
	}
	return Success(c, http.StatusOK, website)
}

// Update handles PATCH /website.
func (h *WebsiteHandler) Update(c echo.Context) error {
	var req dto.UpdateWebsiteRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	websiteID, err := uuid.Parse(req.WebsiteID)
	if err != nil {
		return Error(c, http.StatusBadRequest, "website ID is required")
	}

	ctx := c.Request().Context()
	website, err := h.websites.Get(ctx, websiteID)
	if err != nil {
		if errors.Is(err, service.ErrWebsiteNotFound) {
			return Error(c, http.StatusNotFound, "website not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to update website")
	}
	if err := h.authorize(c, website); err != nil {
		return err
	}

	fields := repository.UpdateWebsiteFields{
		Title:       req.Title,
		Tagline:     req.Tagline,
		Description: req.Description,
		Languages:   req.Languages,
	}
	if req.Status != nil {
		status := entity.WebsiteStatus(*req.Status)
		switch status {
		case entity.WebsiteStatusDraft, entity.WebsiteStatusPublished, entity.WebsiteStatusArchived:
			fields.Status = &status
		default:
			return Error(c, http.StatusBadRequest, "invalid status")
		}
	}

	updated, err := h.websites.Update(ctx, websiteID, fields)
	if err != nil {
		if errors.Is(err, service.ErrWebsiteNotFound) {
			return Error(c, http.StatusNotFound, "website not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to update website")
	}
	return Success(c, http.StatusOK, updated)
}

// authorize rejects callers who neither own the website's business nor hold
// an admin role. It writes the error response itself.
func (h *WebsiteHandler) authorize(c echo.Context, website *entity.Website) error {
	ownerID, err := h.websites.BusinessOwner(c.Request().Context(), website.BusinessID)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to verify ownership")
	}
	if !callerMayManage(c, ownerID) {
		return Error(c, http.StatusForbidden, "not allowed to manage this website")
	}
	return nil
}

func callerMayManage(c echo.Context, ownerID uuid.UUID) bool {
	if role, ok := c.Get(middleware.ContextKeyUserRole).(string); ok {
		if role == entity.RoleAdmin || role == entity.RoleSuperAdmin {
			return true
		}
	}
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	return ok && userID == ownerID.String()
}
