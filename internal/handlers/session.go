package handlers

import (
	"fmt"

	"fbaprofit/internal/models"
	"fbaprofit/internal/services/session"
	"fbaprofit/internal/utils/response"
	"fbaprofit/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	sessions session.Service
}

func NewSessionHandler(sessions session.Service) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) load(c *fiber.Ctx) (*models.Session, error) {
	id, err := sessionID(c)
	if err != nil {
		return nil, session.ErrSessionNotFound
	}
	return h.sessions.Get(c.UserContext(), id)
}

func (h *SessionHandler) GetProducts(c *fiber.Ctx) error {
	sess, err := h.load(c)
	if err != nil {
		return serviceError(c, err, "load products")
	}
	return response.Success(c, "Products retrieved", sess.Products)
}

// ReplaceProducts replaces the whole product table. Numeric cells that are
// blank or malformed are stored as 0.
func (h *SessionHandler) ReplaceProducts(c *fiber.Ctx) error {
	var input struct {
		Products []models.ProductInput `json:"products"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	seen := make(map[string]bool, len(input.Products))
	products := make([]models.Product, 0, len(input.Products))
	for i, in := range input.Products {
		p := in.Product()
		field := fmt.Sprintf("products[%d].sku", i)
		v.Required(p.SKU, field)
		if p.SKU != "" {
			v.Unique(seen, p.SKU, field)
		}
		products = append(products, p)
	}
	if !v.Valid() {
		return response.ValidationErrors(c, v.Errors)
	}

	id, err := sessionID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	sess, err := h.sessions.ReplaceProducts(c.UserContext(), id, products)
	if err != nil {
		return serviceError(c, err, "save products")
	}
	return response.Success(c, "Products updated", sess.Products)
}

type settingsView struct {
	Countries   []models.Country         `json:"countries"`
	Rates       models.CurrencyRateTable `json:"rates"`
	FreightMode models.FreightMode       `json:"freight_mode"`
	FreightRate float64                  `json:"freight_rate"`
}

func newSettingsView(s *models.Session) settingsView {
	countries := s.Countries
	if countries == nil {
		countries = []models.Country{}
	}
	return settingsView{
		Countries:   countries,
		Rates:       s.Rates,
		FreightMode: s.FreightMode,
		FreightRate: s.FreightRate,
	}
}

func (h *SessionHandler) GetSettings(c *fiber.Ctx) error {
	sess, err := h.load(c)
	if err != nil {
		return serviceError(c, err, "load settings")
	}
	return response.Success(c, "Settings retrieved", newSettingsView(sess))
}

func (h *SessionHandler) UpdateSettings(c *fiber.Ctx) error {
	var input session.SettingsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	id, err := sessionID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	sess, err := h.sessions.UpdateSettings(c.UserContext(), id, input)
	if err != nil {
		return serviceError(c, err, "save settings")
	}
	return response.Success(c, "Settings updated", newSettingsView(sess))
}

// UpdatePrices applies a batch of sale price edits.
func (h *SessionHandler) UpdatePrices(c *fiber.Ctx) error {
	var input struct {
		Prices []models.PriceQuote `json:"prices"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	for i, q := range input.Prices {
		v.Required(q.SKU, fmt.Sprintf("prices[%d].sku", i))
		v.Required(string(q.Country), fmt.Sprintf("prices[%d].country", i))
		v.NonNegative(q.Price, fmt.Sprintf("prices[%d].price", i))
	}
	if !v.Valid() {
		return response.ValidationErrors(c, v.Errors)
	}

	id, err := sessionID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	if err := h.sessions.SetPrices(c.UserContext(), id, input.Prices); err != nil {
		return serviceError(c, err, "save prices")
	}
	return response.Success(c, "Prices updated", fiber.Map{"updated": len(input.Prices)})
}
