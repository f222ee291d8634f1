package session

import (
	"context"

	"fbaprofit/internal/models"
	"fbaprofit/internal/services/profit"
)

// Store persists session state for the lifetime of a session only.
type Store interface {
	SaveSession(ctx context.Context, s *models.Session) error
	// LoadSession returns ErrSessionNotFound for unknown or expired ids.
	LoadSession(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error

	Prices(ctx context.Context, id string) (models.PriceBook, error)
	SetPrices(ctx context.Context, id string, quotes []models.PriceQuote) error
	// SeedPrices stores quotes whose key has no price yet.
	SeedPrices(ctx context.Context, id string, quotes []models.PriceQuote) error
}

// SettingsInput is a partial update; nil fields are left unchanged.
type SettingsInput struct {
	Countries   []models.Country    `json:"countries"`
	Rates       map[string]float64  `json:"rates"`
	FreightMode *models.FreightMode `json:"freight_mode"`
	FreightRate *float64            `json:"freight_rate"`
}

// Notice levels of Results.
const (
	NoticeInfo    = "info"
	NoticeWarning = "warning"
)

// Results is the evaluated matrix of a session. Notice carries the message
// shown instead of rows, if any.
type Results struct {
	Matrix      *profit.Matrix `json:"matrix"`
	Notice      string         `json:"notice,omitempty"`
	NoticeLevel string         `json:"notice_level,omitempty"`
}
