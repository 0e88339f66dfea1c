package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yalisommer/creature-creator/internal/config"
	"github.com/yalisommer/creature-creator/internal/handlers"
	"github.com/yalisommer/creature-creator/internal/middleware"
	"github.com/yalisommer/creature-creator/internal/routes"
	"github.com/yalisommer/creature-creator/internal/services"
	"github.com/yalisommer/creature-creator/internal/store"
	"github.com/yalisommer/creature-creator/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Creature Creator Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Stores
	catalogStore := store.New(config.AppConfig.DataDir)
	imageStore := store.NewImageStore(config.AppConfig.ImagesDir)

	// 2. Name generator. Generation is total either way: without a key
	// every combination falls back to the mechanical "{name1}-{name2}".
	var namegen services.NameGenerator
	if gemini, err := services.NewGeminiNameGenerator(context.Background(),
		config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel); err != nil {
		logger.Warn().Err(err).Msg("Name generation unavailable, using fallback names")
		namegen = services.StaticNameGenerator{}
	} else {
		namegen = gemini
	}

	combinationService := services.NewCombinationService(catalogStore, imageStore, namegen)

	creatureHandler := handlers.NewCreatureHandler(catalogStore)
	combinationHandler := handlers.NewCombinationHandler(catalogStore, combinationService)

	// 3. Setup Router
	r := gin.Default()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// 4. Register Routes
	api := r.Group("/api")
	routes.RegisterAPIRoutes(api, creatureHandler, combinationHandler)

	// Stored drawings are served straight from disk
	r.Static("/images", config.AppConfig.ImagesDir)

	// Health check with catalog status
	r.GET("/health", func(c *gin.Context) {
		status := "ok"
		catalogStatus := "ok"
		if _, err := catalogStore.Creatures(); err != nil {
			status = "degraded"
			catalogStatus = "error"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"message": "Creature Creator Backend is running",
			"checks": gin.H{
				"creatures": catalogStatus,
			},
		})
	})

	// 5. Start Server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // combine waits on upstream name generation
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
