package models

import "fmt"

// DefaultSalePrice is assigned to a (SKU, country) pair the first time it is referenced.
const DefaultSalePrice = 19.99

// PriceQuote is the editable sale price for one SKU in one market.
type PriceQuote struct {
	SKU     string  `json:"sku"`
	Country Country `json:"country"`
	Price   float64 `json:"price"`
}

// Key returns the session key of the quote.
func (q PriceQuote) Key() string {
	return PriceKey(q.SKU, q.Country)
}

// PriceKey builds the session key for a (SKU, country) price.
func PriceKey(sku string, country Country) string {
	return fmt.Sprintf("price_%s_%s", sku, country)
}

// PriceBook holds session prices keyed by PriceKey.
type PriceBook map[string]float64

// Price returns the stored price, falling back to DefaultSalePrice.
func (b PriceBook) Price(sku string, country Country) float64 {
	if p, ok := b[PriceKey(sku, country)]; ok {
		return p
	}
	return DefaultSalePrice
}
