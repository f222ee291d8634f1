// Package main is the entry point of the profit calculator API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fbaprofit/internal/config"
	"fbaprofit/internal/fees"
	"fbaprofit/internal/logger"
	"fbaprofit/internal/repositories"
	"fbaprofit/internal/routes"
	"fbaprofit/internal/services/auth"
	"fbaprofit/internal/services/profit"
	"fbaprofit/internal/services/session"
	"fbaprofit/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadEnv()

	log, err := logger.New(logger.Config{
		Level:  config.GetEnv("LOG_LEVEL", "info"),
		Format: config.GetEnv("LOG_FORMAT", "text"),
		Output: config.GetEnv("LOG_FILE", "stdout"),
	})
	if err != nil {
		logger.Get().WithError(err).Fatal("invalid logger configuration")
	}
	logger.SetGlobal(log)
	boot := log.WithComponent("server")

	catalog, err := config.LoadCatalog(config.GetEnv("MARKETS_FILE", ""))
	if err != nil {
		boot.WithError(err).Fatal("failed to load market catalog")
	}
	boot.WithField("markets", len(catalog.Markets)).Info("market catalog loaded")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := repositories.InitStore(ctx)
	cancel()
	if err != nil {
		boot.WithError(err).Fatal("failed to connect to redis")
	}
	defer func() {
		if err := store.Close(); err != nil {
			boot.WithError(err).Warn("failed to close redis connection")
		}
	}()

	jwtSecret := config.GetEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		if config.IsProduction() {
			boot.Fatal("JWT_SECRET must be set in production")
		}
		jwtSecret = utils.MustGenerateSecureCode()
		boot.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	engine := profit.NewEngine(catalog, fees.NewFulfillmentCalculator(catalog.LowPriceThresholds()))
	sessions := session.NewService(repositories.NewSessionStore(store), catalog, engine)
	authService, err := auth.NewService(sessions, auth.Config{
		Passphrase: config.GetEnv("ACCESS_PASSPHRASE", ""),
		Secret:     jwtSecret,
		TokenTTL:   store.TTL(),
	})
	if err != nil {
		boot.WithError(err).Fatal("failed to initialise auth")
	}
	if config.GetEnv("ACCESS_PASSPHRASE", "") == "" {
		boot.Warn("ACCESS_PASSPHRASE not set, logins are disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      "fbaprofit",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		Output: log.Writer(),
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Catalog:    catalog,
		Sessions:   sessions,
		Auth:       authService,
		Health:     store,
		LoginLimit: config.GetIntEnv("LOGIN_RATE_LIMIT", 5),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		boot.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			boot.WithError(err).Error("shutdown failed")
		}
	}()

	addr := ":" + config.GetEnv("PORT", "3000")
	boot.WithField("addr", addr).Info("listening")
	if err := app.Listen(addr); err != nil {
		boot.WithError(err).Error("server stopped")
	}
}
