package handlers

import (
	"fbaprofit/internal/config"
	"fbaprofit/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type MarketHandler struct {
	catalog *config.Catalog
}

func NewMarketHandler(catalog *config.Catalog) *MarketHandler {
	return &MarketHandler{catalog: catalog}
}

// ListMarkets returns the supported marketplaces and session defaults.
func (h *MarketHandler) ListMarkets(c *fiber.Ctx) error {
	return response.Success(c, "Markets retrieved", fiber.Map{
		"markets":           h.catalog.Markets,
		"default_countries": h.catalog.DefaultCountries,
		"default_rates":     h.catalog.DefaultRates,
		"default_price":     h.catalog.DefaultPrice,
		"freight_modes":     h.catalog.FreightModes,
	})
}
