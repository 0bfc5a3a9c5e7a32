package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/bharatwebpro/platform-api/internal/auth"
	"github.com/bharatwebpro/platform-api/internal/config"
	"github.com/bharatwebpro/platform-api/internal/database"
	"github.com/bharatwebpro/platform-api/internal/handler"
	"github.com/bharatwebpro/platform-api/internal/logging"
	middlewarepkg "github.com/bharatwebpro/platform-api/internal/middleware"
	"github.com/bharatwebpro/platform-api/internal/repository"
	"github.com/bharatwebpro/platform-api/internal/router"
	"github.com/bharatwebpro/platform-api/internal/scraper"
	"github.com/bharatwebpro/platform-api/internal/service"
	"github.com/bharatwebpro/platform-api/internal/service/content"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(cfg.AppEnv, cfg.LogLevel)

	if err := content.ValidateTables(); err != nil {
		log.Fatal().Err(err).Msg("content tables are incomplete")
	}

	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	usersRepo := repository.NewPGXUsersRepository(pool)
	businessesRepo := repository.NewPGXBusinessesRepository(pool)
	websitesRepo := repository.NewPGXWebsitesRepository(pool)
	templatesRepo := repository.NewPGXTemplatesRepository(pool)

	adapters := []scraper.Adapter{
		scraper.NewGoogleMapsAdapter(cfg.GooglePlacesAPIKey, cfg.GooglePlacesBaseURL, logger),
		scraper.NewJustDialAdapter(cfg.JustDialBaseURL, logger),
	}

	authService := service.NewAuthService(usersRepo, jwtManager, logger)
	userService := service.NewUserService(usersRepo, logger)
	leadService := service.NewLeadService(businessesRepo, adapters, logger)
	templateResolver := service.NewTemplateResolver(templatesRepo, logger)
	websiteService := service.NewWebsiteService(websitesRepo, businessesRepo, templateResolver, cfg.RootDomain, logger)

	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Scrape:  handler.NewScrapeHandler(leadService),
		Website: handler.NewWebsiteHandler(websiteService),
		Leads:   handler.NewLeadsHandler(leadService),
		Users:   handler.NewUserAdminHandler(userService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	logger.Info().Str("port", cfg.Port).Msg("api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info().Stringer("signal", sig).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
