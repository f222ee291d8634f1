package models

// MarketConfig is the static per-country configuration.
type MarketConfig struct {
	Code     Country `json:"code" yaml:"code"`
	Currency string  `json:"currency" yaml:"currency"`
	VAT      float64 `json:"vat" yaml:"vat"`
	Label    string  `json:"label" yaml:"label"`
	// LowPriceThreshold is set only for markets with a low-price FBA programme.
	LowPriceThreshold *float64 `json:"low_price_threshold,omitempty" yaml:"low_price_threshold,omitempty"`
}

// CurrencyRateTable maps a currency code to its CNY rate.
type CurrencyRateTable map[string]float64

// DefaultCurrencyRate is used when a currency has no entry in the table.
const DefaultCurrencyRate = 1.0

// Rate returns the CNY rate for currency, or DefaultCurrencyRate.
func (t CurrencyRateTable) Rate(currency string) float64 {
	if r, ok := t[currency]; ok {
		return r
	}
	return DefaultCurrencyRate
}

// Clone returns a copy that can be mutated without affecting t.
func (t CurrencyRateTable) Clone() CurrencyRateTable {
	out := make(CurrencyRateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
