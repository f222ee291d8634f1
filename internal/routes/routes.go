// Package routes defines the API routing configuration.
package routes

import (
	"time"

	"fbaprofit/internal/config"
	"fbaprofit/internal/handlers"
	"fbaprofit/internal/middleware"
	"fbaprofit/internal/services/auth"
	"fbaprofit/internal/services/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Dependencies are the services the routes are wired to.
type Dependencies struct {
	Catalog  *config.Catalog
	Sessions session.Service
	Auth     auth.Service
	Health   handlers.Pinger

	// LoginLimit is the number of login attempts allowed per IP per minute.
	LoginLimit int
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler(deps.Health)
	marketHandler := handlers.NewMarketHandler(deps.Catalog)
	authHandler := handlers.NewAuthHandler(deps.Auth)
	sessionHandler := handlers.NewSessionHandler(deps.Sessions)
	resultsHandler := handlers.NewResultsHandler(deps.Sessions)
	authMiddleware := middleware.NewAuthMiddleware(deps.Auth)

	app.Get("/health", healthHandler.HealthCheck)

	// Public routes
	api := app.Group("/api")
	api.Get("/markets", marketHandler.ListMarkets)
	api.Post("/login", loginLimiter(deps.LoginLimit), authHandler.Login)

	// Session routes
	authenticated := api.Group("", authMiddleware.Handler)
	authenticated.Post("/logout", authHandler.Logout)

	authenticated.Get("/products", sessionHandler.GetProducts)
	authenticated.Put("/products", sessionHandler.ReplaceProducts)

	authenticated.Get("/settings", sessionHandler.GetSettings)
	authenticated.Put("/settings", sessionHandler.UpdateSettings)

	authenticated.Put("/prices", sessionHandler.UpdatePrices)

	authenticated.Get("/results", resultsHandler.GetResults)
	authenticated.Get("/results/export", resultsHandler.ExportResults)
}

func loginLimiter(limit int) fiber.Handler {
	if limit <= 0 {
		limit = 5
	}
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
