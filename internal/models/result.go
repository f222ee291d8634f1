package models

// ResultRow is the derived profitability of one SKU in one market.
// Fee, VAT and returns amounts are in the market currency; freight,
// revenue, platform cost and profit are in CNY.
type ResultRow struct {
	SKU             string  `json:"sku"`
	Country         Country `json:"country"`
	CountryLabel    string  `json:"country_label"`
	Currency        string  `json:"currency"`
	Price           float64 `json:"price"`
	ReferralFee     float64 `json:"referral_fee"`
	FulfillmentFee  float64 `json:"fulfillment_fee"`
	FulfillmentTier string  `json:"fulfillment_tier"`
	FreightCost     float64 `json:"freight_cost"`
	VAT             float64 `json:"vat"`
	Returns         float64 `json:"returns"`
	Revenue         float64 `json:"revenue"`
	PlatformCost    float64 `json:"platform_cost"`
	Profit          float64 `json:"profit"`
	Margin          float64 `json:"margin"`
	PriceKey        string  `json:"key_id"`
}
