package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/galacticos-fc/clubsite/config"
	"github.com/galacticos-fc/clubsite/db"
	"github.com/galacticos-fc/clubsite/handlers"
	"github.com/galacticos-fc/clubsite/repositories"
	api "github.com/galacticos-fc/clubsite/routes"
	"github.com/galacticos-fc/clubsite/services"
	"github.com/galacticos-fc/clubsite/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	lineupRepo := repositories.NewPostgresLineupRepository(dbConn)
	ratingRepo := repositories.NewPostgresRatingRepository(dbConn)
	newsRepo := repositories.NewPostgresNewsRepository(dbConn)
	galleryRepo := repositories.NewPostgresGalleryRepository(dbConn)
	settingsRepo := repositories.NewPostgresSettingsRepository(dbConn)
	statsRepo := repositories.NewPostgresStatsRepository(dbConn)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(userRepo)
	accessService := services.NewAccessService(userRepo)
	userService := services.NewUserService(userRepo)
	playerService := services.NewPlayerService(playerRepo, uploader)
	teamService := services.NewTeamService(teamRepo)
	matchService := services.NewMatchService(matchRepo, lineupRepo)
	ratingService := services.NewRatingService(matchRepo, lineupRepo, ratingRepo)
	newsService := services.NewNewsService(newsRepo, uploader)
	galleryService := services.NewGalleryService(galleryRepo, uploader)
	settingsService := services.NewSettingsService(settingsRepo, uploader)
	statsService := services.NewStatsService(statsRepo, ratingRepo)
	overviewService := services.NewOverviewService(matchRepo, newsService, galleryService, playerRepo, newsRepo, galleryRepo, userRepo)
	emailService := services.NewEmailService(cfg)
	logger.Info("services initialized")

	h := api.Handlers{
		Auth:     handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		User:     handlers.NewUserHandler(userService),
		Player:   handlers.NewPlayerHandler(playerService),
		Team:     handlers.NewTeamHandler(teamService),
		Match:    handlers.NewMatchHandler(matchService),
		Rating:   handlers.NewRatingHandler(accessService, ratingService),
		News:     handlers.NewNewsHandler(newsService),
		Gallery:  handlers.NewGalleryHandler(galleryService),
		Settings: handlers.NewSettingsHandler(settingsService),
		Stats:    handlers.NewStatsHandler(statsService),
		Overview: handlers.NewOverviewHandler(overviewService),
		Contact:  handlers.NewContactHandler(emailService),
		Docs:     handlers.NewDocsHandler(),
	}

	router := chi.NewRouter()
	api.SetupRoutes(router, h, accessService, cfg.JWTSecretKey, cfg.CORSAllowedOrigins)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
