// Package main initializes and starts the pledgevault HTTP server,
// setting up configuration, logging, database connections, repositories,
// services and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/atinyakov/pledgevault/internal/config"
	"github.com/atinyakov/pledgevault/internal/db"
	"github.com/atinyakov/pledgevault/internal/logger"
	"github.com/atinyakov/pledgevault/internal/repository"
	"github.com/atinyakov/pledgevault/internal/server/handler/http"
	"github.com/atinyakov/pledgevault/internal/service"
	"github.com/atinyakov/pledgevault/internal/token"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Stateless token service: signature + expiry, no server-side sessions.
	tokens := token.New(options.JWTSecret, options.TokenTTL)

	// Initialize repositories for users and items.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	itemRepo := repository.NewPostgresItemRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, tokens)
	itemService := service.NewItemService(itemRepo)

	// Create HTTP handlers for auth, item and health endpoints.
	authHandler := &http.AuthHandler{AuthService: authService, Log: zapLogger}
	itemHandler := &http.ItemHandler{ItemService: itemService, Log: zapLogger}
	healthHandler := &http.HealthHandler{DB: postgresDB}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, itemHandler, healthHandler, tokens, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
