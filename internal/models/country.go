package models

import "strings"

// Country is a marketplace code as used by the seller UI (UK, not GB).
type Country string

const (
	CountryUS Country = "US"
	CountryCA Country = "CA"
	CountryUK Country = "UK"
	CountryDE Country = "DE"
	CountryFR Country = "FR"
	CountryIT Country = "IT"
	CountryES Country = "ES"
	CountryNL Country = "NL"
	CountrySE Country = "SE"
	CountryPL Country = "PL"
	CountryBE Country = "BE"
)

// SupportedCountries lists every marketplace in display order.
var SupportedCountries = []Country{
	CountryUS, CountryCA, CountryUK, CountryDE, CountryFR, CountryIT,
	CountryES, CountryNL, CountrySE, CountryPL, CountryBE,
}

// ParseCountry normalizes user input such as " de " to a Country.
func ParseCountry(s string) Country {
	return Country(strings.ToUpper(strings.TrimSpace(s)))
}

// IsSupported reports whether c is one of SupportedCountries.
func (c Country) IsSupported() bool {
	for _, s := range SupportedCountries {
		if s == c {
			return true
		}
	}
	return false
}
