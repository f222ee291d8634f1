package models

import "time"

// FreightMode is the first-leg shipping method from China.
type FreightMode string

const (
	FreightSea  FreightMode = "sea"
	FreightRail FreightMode = "rail"
	FreightAir  FreightMode = "air"
)

// Session is the caller-owned state of one calculator session.
// Prices are stored separately so they can be edited one key at a time.
type Session struct {
	ID          string            `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	Countries   []Country         `json:"countries"`
	Rates       CurrencyRateTable `json:"rates"`
	FreightMode FreightMode       `json:"freight_mode"`
	FreightRate float64           `json:"freight_rate"`
	Products    []Product         `json:"products"`
}
