package fees

import (
	"sort"

	"fbaprofit/internal/models"
)

// UnsupportedFee is returned when no rate card tier fits the parcel. It is a
// signal for "size not supported" and is deliberately large so the row shows
// as unprofitable.
const UnsupportedFee = 999.0

// Parcel is the packed product as measured by the seller.
type Parcel struct {
	LengthCM    float64
	WidthCM     float64
	HeightCM    float64
	WeightGrams float64
}

// ParcelOf returns the parcel of a product.
func ParcelOf(p models.Product) Parcel {
	return Parcel{LengthCM: p.LengthCM, WidthCM: p.WidthCM, HeightCM: p.HeightCM, WeightGrams: p.WeightGrams}
}

// sortedDims returns the dimensions longest first, each divided by unit.
func (p Parcel) sortedDims(unit float64) (long, medium, short float64) {
	d := []float64{p.LengthCM / unit, p.WidthCM / unit, p.HeightCM / unit}
	sort.Sort(sort.Reverse(sort.Float64Slice(d)))
	return d[0], d[1], d[2]
}

func (p Parcel) weightKG() float64 {
	return p.WeightGrams / 1000.0
}

// FulfillmentFee is the FBA fee of a parcel and the tier it was billed under.
type FulfillmentFee struct {
	Amount float64 `json:"amount"`
	Tier   string  `json:"tier"`
}

func unsupported(tier string) FulfillmentFee {
	return FulfillmentFee{Amount: UnsupportedFee, Tier: tier}
}

// FulfillmentCalculator selects the FBA rate card for a market.
type FulfillmentCalculator struct {
	lowPriceThresholds map[models.Country]float64
}

// NewFulfillmentCalculator builds a calculator. Markets present in
// lowPriceThresholds try the EU low-price rate card first when the sale
// price does not exceed the threshold.
func NewFulfillmentCalculator(lowPriceThresholds map[models.Country]float64) *FulfillmentCalculator {
	t := make(map[models.Country]float64, len(lowPriceThresholds))
	for k, v := range lowPriceThresholds {
		t[k] = v
	}
	return &FulfillmentCalculator{lowPriceThresholds: t}
}

// Fee returns the FBA fulfillment fee for the parcel sold at price in the
// given market, in that market's currency.
func (c *FulfillmentCalculator) Fee(country models.Country, parcel Parcel, price float64) FulfillmentFee {
	switch country {
	case models.CountryUS:
		return usFee(parcel, price)
	case models.CountryCA:
		return caFee(parcel)
	default:
		return c.euFee(country, parcel, price)
	}
}

func (c *FulfillmentCalculator) lowPriceEligible(country models.Country, price float64) bool {
	threshold, ok := c.lowPriceThresholds[country]
	return ok && threshold > 0 && price <= threshold
}
