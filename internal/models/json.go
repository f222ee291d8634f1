package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LooseFloat accepts a JSON number, a numeric string, null or garbage.
// Anything that is not a finite number decodes to zero.
type LooseFloat float64

// UnmarshalJSON implements json.Unmarshaler and never fails.
func (f *LooseFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		if !math.IsNaN(n) && !math.IsInf(n, 0) {
			*f = LooseFloat(n)
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*f = LooseFloat(v)
	return nil
}

func (f LooseFloat) Float64() float64 {
	return float64(f)
}

// ProductInput is a product row as posted by the data-entry grid.
type ProductInput struct {
	SKU         string     `json:"sku"`
	Cost        LooseFloat `json:"cost"`
	WeightGrams LooseFloat `json:"weight_g"`
	LengthCM    LooseFloat `json:"length"`
	WidthCM     LooseFloat `json:"width"`
	HeightCM    LooseFloat `json:"height"`
}

// Product converts the input, clamping negative numbers to zero.
func (in ProductInput) Product() Product {
	return Product{
		SKU:         strings.TrimSpace(in.SKU),
		Cost:        nonNegative(in.Cost.Float64()),
		WeightGrams: nonNegative(in.WeightGrams.Float64()),
		LengthCM:    nonNegative(in.LengthCM.Float64()),
		WidthCM:     nonNegative(in.WidthCM.Float64()),
		HeightCM:    nonNegative(in.HeightCM.Float64()),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
