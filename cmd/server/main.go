// Package main provides the entry point for the employee API server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/festy23/employee_api/internal/config"
	"github.com/festy23/employee_api/internal/employee/client"
	"github.com/festy23/employee_api/internal/employee/router"
	"github.com/festy23/employee_api/internal/health"
	"github.com/festy23/employee_api/internal/middleware"
	"github.com/festy23/employee_api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))

	// One shared outbound client; safe for concurrent use across requests.
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}

	router.RegisterRoutes(r, httpClient, cfg.Upstream.BaseURL, zapLogger)

	upstreamClient := client.New(httpClient, cfg.Upstream.BaseURL, zapLogger)
	r.GET("/health", health.New(upstreamClient, zapLogger).Check)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zapLogger.Infow("starting employee API server",
		"address", srv.Addr,
		"upstream", cfg.Upstream.BaseURL,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zapLogger.Fatalw("server stopped", "error", err)
	}
}
