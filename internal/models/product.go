package models

// VolumetricDivisor converts cm³ to volumetric kilograms.
const VolumetricDivisor = 5000.0

// Product is a seller SKU as entered in the product grid.
type Product struct {
	SKU         string  `json:"sku"`
	Cost        float64 `json:"cost"`
	WeightGrams float64 `json:"weight_g"`
	LengthCM    float64 `json:"length"`
	WidthCM     float64 `json:"width"`
	HeightCM    float64 `json:"height"`
}

// Qualifies reports whether the product has the weight and dimensions
// needed to be priced.
func (p Product) Qualifies() bool {
	return p.WeightGrams > 0 && p.LengthCM > 0 && p.WidthCM > 0 && p.HeightCM > 0
}

func (p Product) WeightKG() float64 {
	return p.WeightGrams / 1000.0
}

func (p Product) VolumetricWeightKG() float64 {
	return (p.LengthCM * p.WidthCM * p.HeightCM) / VolumetricDivisor
}

// SeedProduct is the sample row every new session starts with.
func SeedProduct() Product {
	return Product{SKU: "A001", Cost: 20.0, WeightGrams: 300, LengthCM: 20.0, WidthCM: 15.0, HeightCM: 5.0}
}
