package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"fbaprofit/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed markets.yaml
var defaultMarkets []byte

var (
	ErrNoMarkets       = errors.New("catalog has no markets")
	ErrInvalidMarket   = errors.New("invalid market configuration")
	ErrInvalidDefaults = errors.New("invalid catalog defaults")
)

// Catalog is the static market configuration, loaded once at startup.
type Catalog struct {
	DefaultPrice     float64                        `yaml:"default_price"`
	DefaultCountries []models.Country               `yaml:"default_countries"`
	DefaultRates     models.CurrencyRateTable       `yaml:"default_rates"`
	FreightModes     map[models.FreightMode]float64 `yaml:"freight_modes"`
	Markets          []models.MarketConfig          `yaml:"markets"`

	byCode map[models.Country]models.MarketConfig
}

// DefaultCatalog parses the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultMarkets)
}

// LoadCatalog reads the catalog from path, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read market catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cannot parse market catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.byCode = make(map[models.Country]models.MarketConfig, len(c.Markets))
	for _, m := range c.Markets {
		c.byCode[m.Code] = m
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Markets) == 0 {
		return ErrNoMarkets
	}
	seen := make(map[models.Country]bool, len(c.Markets))
	for _, m := range c.Markets {
		if m.Code == "" || m.Currency == "" {
			return fmt.Errorf("%w: market %q needs a code and a currency", ErrInvalidMarket, m.Code)
		}
		if m.VAT < 0 || m.VAT >= 1 {
			return fmt.Errorf("%w: market %s vat %.2f out of range", ErrInvalidMarket, m.Code, m.VAT)
		}
		if !m.Code.IsSupported() {
			return fmt.Errorf("%w: market %s has no fee schedule", ErrInvalidMarket, m.Code)
		}
		if seen[m.Code] {
			return fmt.Errorf("%w: duplicate market %s", ErrInvalidMarket, m.Code)
		}
		seen[m.Code] = true
	}
	if c.DefaultPrice < 0 {
		return fmt.Errorf("%w: negative default price", ErrInvalidDefaults)
	}
	for _, code := range c.DefaultCountries {
		if !seen[code] {
			return fmt.Errorf("%w: default country %s is not a market", ErrInvalidDefaults, code)
		}
	}
	for mode, rate := range c.FreightModes {
		if rate < 0 {
			return fmt.Errorf("%w: freight mode %s has a negative rate", ErrInvalidDefaults, mode)
		}
	}
	return nil
}

// Market returns the configuration of a market.
func (c *Catalog) Market(code models.Country) (models.MarketConfig, bool) {
	m, ok := c.byCode[code]
	return m, ok
}

// Has reports whether code is a configured market.
func (c *Catalog) Has(code models.Country) bool {
	_, ok := c.byCode[code]
	return ok
}

// LowPriceThresholds returns the markets that run a low-price FBA programme.
func (c *Catalog) LowPriceThresholds() map[models.Country]float64 {
	out := make(map[models.Country]float64)
	for _, m := range c.Markets {
		if m.LowPriceThreshold != nil {
			out[m.Code] = *m.LowPriceThreshold
		}
	}
	return out
}

// FreightRate returns the default per-kg rate of a freight mode.
func (c *Catalog) FreightRate(mode models.FreightMode) (float64, bool) {
	r, ok := c.FreightModes[mode]
	return r, ok
}
