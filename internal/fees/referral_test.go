package fees

import (
	"testing"

	"fbaprofit/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestReferralFee(t *testing.T) {
	tests := []struct {
		name    string
		country models.Country
		price   float64
		want    float64
	}{
		{"US low tier upper bound", models.CountryUS, 15.00, 0.75},
		{"US second tier", models.CountryUS, 15.01, 1.501},
		{"US second tier upper bound", models.CountryUS, 20.00, 2.00},
		{"US flat above 20", models.CountryUS, 20.01, 3.4017},
		{"CA first tier", models.CountryCA, 20.00, 2.00},
		{"CA flat above 20", models.CountryCA, 25.00, 4.25},
		{"UK third tier", models.CountryUK, 40.00, 6.00},
		{"UK overflow", models.CountryUK, 50.00, 6.70},
		{"DE overflow", models.CountryDE, 100.00, 10.60},
		{"FR third tier", models.CountryFR, 45.00, 6.75},
		{"BE low tier", models.CountryBE, 10.00, 0.50},
		{"SE low tier", models.CountrySE, 175.00, 8.75},
		{"SE overflow", models.CountrySE, 500.00, 72.60},
		{"PL second tier", models.CountryPL, 180.00, 18.00},
		{"PL overflow", models.CountryPL, 200.00, 19.40},
		{"unknown market uses fallback", models.Country("JP"), 100.00, 15.00},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ReferralFee(tc.country, tc.price), 1e-9)
		})
	}
}

func TestReferralFeeZeroPrice(t *testing.T) {
	for _, c := range append(models.SupportedCountries, models.Country("JP")) {
		assert.Equal(t, 0.0, ReferralFee(c, 0), "country %s", c)
	}
}

func TestReferralFeeMonotonic(t *testing.T) {
	for _, c := range append(models.SupportedCountries, models.Country("JP")) {
		prev := ReferralFee(c, 0)
		for i := 1; i <= 12000; i++ {
			price := float64(i) * 0.05
			fee := ReferralFee(c, price)
			if fee < prev {
				t.Fatalf("%s: fee decreased at %.2f: %.6f < %.6f", c, price, fee, prev)
			}
			prev = fee
		}
	}
}
