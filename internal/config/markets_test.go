package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fbaprofit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Len(t, c.Markets, len(models.SupportedCountries))
	for _, code := range models.SupportedCountries {
		assert.True(t, c.Has(code), "missing market %s", code)
	}

	assert.Equal(t, 19.99, c.DefaultPrice)
	assert.Equal(t, []models.Country{models.CountryUS, models.CountryDE, models.CountryUK}, c.DefaultCountries)
	assert.Equal(t, models.CurrencyRateTable{
		"USD": 7.20, "CAD": 5.30, "GBP": 9.10, "EUR": 7.80, "SEK": 0.70, "PLN": 1.80,
	}, c.DefaultRates)

	sea, ok := c.FreightRate(models.FreightSea)
	assert.True(t, ok)
	assert.Equal(t, 9.0, sea)
	air, _ := c.FreightRate(models.FreightAir)
	assert.Equal(t, 45.0, air)

	ca, ok := c.Market(models.CountryCA)
	require.True(t, ok)
	assert.Equal(t, "CAD", ca.Currency)
	assert.Equal(t, 0.05, ca.VAT)
	assert.Nil(t, ca.LowPriceThreshold)
}

func TestLowPriceThresholds(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, map[models.Country]float64{
		models.CountryUK: 10, models.CountryDE: 11, models.CountryFR: 12,
		models.CountryIT: 12, models.CountryES: 12, models.CountryNL: 12,
		models.CountryBE: 12, models.CountrySE: 140, models.CountryPL: 55,
	}, c.LowPriceThresholds())
}

func TestParseCatalogRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"no markets", "default_price: 19.99\n", ErrNoMarkets},
		{"missing currency", "markets:\n  - {code: US, vat: 0}\n", ErrInvalidMarket},
		{"vat out of range", "markets:\n  - {code: US, currency: USD, vat: 1.5}\n", ErrInvalidMarket},
		{"market without fee schedule", "markets:\n  - {code: JP, currency: JPY}\n", ErrInvalidMarket},
		{"duplicate market", "markets:\n  - {code: US, currency: USD}\n  - {code: US, currency: USD}\n", ErrInvalidMarket},
		{"unknown default country", "default_countries: [JP]\nmarkets:\n  - {code: US, currency: USD}\n", ErrInvalidDefaults},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markets.yaml")
	body := "default_price: 9.99\nmarkets:\n  - {code: US, currency: USD, vat: 0, label: US}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 9.99, c.DefaultPrice)
	assert.True(t, c.Has(models.CountryUS))
	assert.False(t, c.Has(models.CountryDE))

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("FBA_TEST_INT", "42")
	t.Setenv("FBA_TEST_FLOAT", "nope")
	t.Setenv("FBA_TEST_DURATION", "90m")

	assert.Equal(t, 42, GetIntEnv("FBA_TEST_INT", 1))
	assert.Equal(t, 1.5, GetFloatEnv("FBA_TEST_FLOAT", 1.5))
	assert.Equal(t, "fallback", GetEnv("FBA_TEST_UNSET", "fallback"))
	assert.Equal(t, 90*time.Minute, GetDurationEnv("FBA_TEST_DURATION", 0))
}
