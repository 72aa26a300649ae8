package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/namegenius/api/internal/config"
	"github.com/namegenius/api/internal/logger"
	"github.com/namegenius/api/internal/middleware"
	"github.com/namegenius/api/internal/namegen"
)

func main() {
	config.LoadConfig()

	log := logger.New(logger.FromConfig(config.AppConfig.LogLevel, config.AppConfig.LogFormat))

	log.Info("setting gin mode", "mode", config.AppConfig.GinMode)
	gin.SetMode(config.AppConfig.GinMode)

	// Initialize the generation pipeline
	rng := namegen.NewRandSource(time.Now().UnixNano())
	gateway := namegen.NewOpenAIGateway(config.AppConfig, log)
	normalizer := namegen.NewNormalizer(config.AppConfig.Generation.DomainAvailability, rng)
	service := namegen.NewService(gateway, normalizer, config.AppConfig.Generation, log)
	handler := namegen.NewHandler(service, log)

	// Initialize gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(config.AppConfig.CORSAllowedOrigins))

	// Health check and metrics (no auth, same as the generation endpoint)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "instance": logger.GetInstanceID()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Generation API routes
	api := router.Group("/api")
	{
		api.POST("/generate-names", handler.GenerateNames)
		api.POST("/check-domains", handler.CheckDomains)
	}

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: router,
	}

	go func() {
		log.Info("starting server", "port", config.AppConfig.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.AppConfig.ServerShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server exited")
}
