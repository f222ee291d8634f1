// Package profit composes the fee calculators into per-(SKU, country)
// profitability rows.
package profit

import (
	"fbaprofit/internal/fees"
	"fbaprofit/internal/models"
)

// ReturnsRate is the share of the sale price provisioned for returns.
const ReturnsRate = 0.05

// MarketLookup resolves a market's static configuration.
type MarketLookup interface {
	Market(code models.Country) (models.MarketConfig, bool)
}

// Engine evaluates result rows. It holds no mutable state.
type Engine struct {
	markets     MarketLookup
	fulfillment *fees.FulfillmentCalculator
}

func NewEngine(markets MarketLookup, fulfillment *fees.FulfillmentCalculator) *Engine {
	return &Engine{markets: markets, fulfillment: fulfillment}
}

// FreightCost returns the first-leg freight in CNY: the larger of actual and
// volumetric kilograms times the per-kg rate.
func FreightCost(p models.Product, ratePerKG float64) float64 {
	kg := p.WeightKG()
	if vol := p.VolumetricWeightKG(); vol > kg {
		kg = vol
	}
	return kg * ratePerKG
}

// VATIncluded backs the VAT out of a VAT-inclusive price.
func VATIncluded(price, rate float64) float64 {
	return (price / (1 + rate)) * rate
}

func (e *Engine) market(country models.Country) models.MarketConfig {
	if m, ok := e.markets.Market(country); ok {
		return m
	}
	return models.MarketConfig{Code: country, Label: string(country)}
}

// Evaluate computes the result row of product sold at price in country.
// Markets without configuration are treated as VAT-free with a missing
// currency, which resolves to models.DefaultCurrencyRate.
func (e *Engine) Evaluate(p models.Product, country models.Country, price float64, rates models.CurrencyRateTable, freightRate float64) models.ResultRow {
	m := e.market(country)
	rate := rates.Rate(m.Currency)

	freight := FreightCost(p, freightRate)
	referral := fees.ReferralFee(country, price)
	fba := e.fulfillment.Fee(country, fees.ParcelOf(p), price)
	vat := VATIncluded(price, m.VAT)
	returns := price * ReturnsRate

	platform := (referral + fba.Amount + vat + returns) * rate
	revenue := price * rate
	profit := revenue - p.Cost - freight - platform
	var margin float64
	if revenue > 0 {
		margin = (profit / revenue) * 100
	}

	return models.ResultRow{
		SKU:             p.SKU,
		Country:         country,
		CountryLabel:    m.Label,
		Currency:        m.Currency,
		Price:           price,
		ReferralFee:     referral,
		FulfillmentFee:  fba.Amount,
		FulfillmentTier: fba.Tier,
		FreightCost:     freight,
		VAT:             vat,
		Returns:         returns,
		Revenue:         revenue,
		PlatformCost:    platform,
		Profit:          profit,
		Margin:          margin,
		PriceKey:        models.PriceKey(p.SKU, country),
	}
}
