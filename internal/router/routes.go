package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bharatwebpro/platform-api/internal/auth"
	"github.com/bharatwebpro/platform-api/internal/config"
	"github.com/bharatwebpro/platform-api/internal/entity"
	"github.com/bharatwebpro/platform-api/internal/handler"
	middlewarepkg "github.com/bharatwebpro/platform-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Scrape  *handler.ScrapeHandler
	Website *handler.WebsiteHandler
	Leads   *handler.LeadsHandler
	Users   *handler.UserAdminHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, map[string]any{"status": "ok"})
	})

	e.POST("/auth/login", handlers.Auth.Login)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	// Acquisition is restricted to staff; the rate limiter guards the
	// external directory quotas.
	scrapeGuard := middlewarepkg.RequireRoles(entity.RoleAdmin, entity.RoleSuperAdmin)
	secured.POST("/scrape", handlers.Scrape.Run, scrapeGuard, middlewarepkg.ScrapeRateLimiter(cfg.RateLimitScrape))
	secured.GET("/scrape", handlers.Scrape.History, scrapeGuard)

	// Website ops authorize per record: owner or staff.
	secured.POST("/website", handlers.Website.Create)
	secured.GET("/website", handlers.Website.Get)
	secured.PATCH("/website", handlers.Website.Update)

	admin := secured.Group("/admin", middlewarepkg.RequireRoles(entity.RoleAdmin, entity.RoleSuperAdmin))
	admin.GET("/leads", handlers.Leads.List)
	admin.POST("/leads/import", handlers.Leads.Import)
	admin.GET("/users", handlers.Users.List)
	admin.POST("/users", handlers.Users.Create)
}
