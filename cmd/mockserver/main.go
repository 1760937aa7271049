// Package main runs the mock upstream employee API for local development.
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/festy23/employee_api/internal/config"
	"github.com/festy23/employee_api/internal/mockapi"
	"github.com/festy23/employee_api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gin.SetMode(config.GetEnv("GIN_MODE", "release"))

	store := mockapi.NewStore()
	seed := config.GetEnvInt("MOCK_EMPLOYEE_COUNT", 50)
	store.Seed(seed)

	r := gin.New()
	r.Use(gin.Recovery())
	mockapi.New(store, zapLogger).RegisterRoutes(r)

	addr := config.GetEnv("MOCK_SERVER_PORT", ":8112")
	zapLogger.Infow("starting mock employee API", "address", addr, "seeded", seed)
	if err := r.Run(addr); err != nil {
		zapLogger.Fatalw("mock server stopped", "error", err)
	}
}
