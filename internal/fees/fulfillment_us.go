package fees

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	cmPerInch      = 2.54
	gramsPerPound  = 453.59237
	ouncesPerPound = 16.0
	usDimDivisor   = 139.0
)

// usBreak is one weight break of a US rate card with a fee per price column.
type usBreak struct {
	max  float64
	fees [3]float64
}

var usSmallStandardOz = []usBreak{
	{2, [3]float64{2.43, 3.32, 3.58}},
	{4, [3]float64{2.49, 3.42, 3.68}},
	{6, [3]float64{2.56, 3.45, 3.71}},
	{8, [3]float64{2.66, 3.54, 3.80}},
	{10, [3]float64{2.77, 3.68, 3.94}},
	{12, [3]float64{2.82, 3.78, 4.04}},
	{14, [3]float64{2.92, 3.91, 4.17}},
	{16, [3]float64{2.95, 3.96, 4.22}},
}

var usLargeStandardOz = []usBreak{
	{4, [3]float64{2.91, 3.73, 3.99}},
	{8, [3]float64{3.13, 3.95, 4.21}},
	{12, [3]float64{3.38, 4.20, 4.46}},
	{16, [3]float64{3.78, 4.60, 4.86}},
}

var usLargeStandardLb = []usBreak{
	{1.25, [3]float64{4.22, 5.04, 5.30}},
	{1.50, [3]float64{4.60, 5.42, 5.68}},
	{1.75, [3]float64{4.75, 5.57, 5.83}},
	{2.00, [3]float64{5.00, 5.82, 6.08}},
	{2.25, [3]float64{5.10, 5.92, 6.18}},
	{2.50, [3]float64{5.28, 6.10, 6.36}},
	{2.75, [3]float64{5.44, 6.26, 6.52}},
	{3.00, [3]float64{5.85, 6.67, 6.93}},
}

const usLargeStandardMaxLb = 3.0

// poundLabel renders a pound break with at least one decimal: 2.0, 1.5, 1.25.
func poundLabel(lb float64) string {
	s := strconv.FormatFloat(lb, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// usPriceColumn picks the rate card column: under $10, $10 to $50, over $50.
func usPriceColumn(price float64) int {
	switch {
	case price < 10:
		return 0
	case price <= 50:
		return 1
	default:
		return 2
	}
}

func lookupUS(table []usBreak, weight float64) (usBreak, bool) {
	for _, b := range table {
		if weight <= b.max {
			return b, true
		}
	}
	return usBreak{}, false
}

func usFee(p Parcel, price float64) FulfillmentFee {
	long, medium, short := p.sortedDims(cmPerInch)
	actualLb := p.WeightGrams / gramsPerPound
	dimLb := (long * medium * short) / usDimDivisor
	shipLb := actualLb
	if dimLb > shipLb {
		shipLb = dimLb
	}
	shipOz := shipLb * ouncesPerPound
	col := usPriceColumn(price)

	isSmall := actualLb*ouncesPerPound <= 16 && long <= 15 && medium <= 12 && short <= 0.75
	isLarge := actualLb <= 20 && long <= 18 && medium <= 14 && short <= 8

	switch {
	case isSmall:
		if b, ok := lookupUS(usSmallStandardOz, shipOz); ok {
			return FulfillmentFee{Amount: b.fees[col], Tier: fmt.Sprintf("Small Standard (%voz)", b.max)}
		}
	case isLarge:
		if shipOz <= 16 {
			if b, ok := lookupUS(usLargeStandardOz, shipOz); ok {
				return FulfillmentFee{Amount: b.fees[col], Tier: fmt.Sprintf("Large Standard (%voz)", b.max)}
			}
		} else if shipLb <= usLargeStandardMaxLb {
			if b, ok := lookupUS(usLargeStandardLb, shipLb); ok {
				return FulfillmentFee{Amount: b.fees[col], Tier: "Large Standard (" + poundLabel(b.max) + "lb)"}
			}
		} else {
			return unsupported("Large Standard (>3lb)")
		}
	}
	return unsupported("Oversize/Irregular")
}
