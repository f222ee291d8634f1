package fees

import "fbaprofit/internal/models"

// euTier is one row of an EU rate card. A row matches when the gating
// weight and the sorted dimensions are all within its bounds.
type euTier struct {
	maxKG     float64
	maxLong   float64
	maxMedium float64
	maxShort  float64
	fees      map[models.Country]float64
	name      string
}

// euFees lists fees in UK, DE, FR, IT, ES, NL, SE, PL, BE order.
func euFees(uk, de, fr, it, es, nl, se, pl, be float64) map[models.Country]float64 {
	return map[models.Country]float64{
		models.CountryUK: uk,
		models.CountryDE: de,
		models.CountryFR: fr,
		models.CountryIT: it,
		models.CountryES: es,
		models.CountryNL: nl,
		models.CountrySE: se,
		models.CountryPL: pl,
		models.CountryBE: be,
	}
}

const (
	tierLightEnvelope    = "Light Envelope"
	tierStandardEnvelope = "Standard Envelope"
	tierLargeEnvelope    = "Large Envelope"
	tierXLEnvelope       = "Extra-Large Envelope"
	tierSmallParcel      = "Small Parcel"
	tierStandardParcel   = "Standard Parcel"
)

// euLowPrice is gated on actual weight.
var euLowPrice = []euTier{
	{0.02, 33, 23, 2.5, euFees(1.46, 1.61, 2.24, 2.64, 2.15, 1.96, 28.71, 1.68, 1.74), tierLightEnvelope},
	{0.04, 33, 23, 2.5, euFees(1.50, 1.64, 2.26, 2.65, 2.21, 2.00, 28.91, 1.70, 1.77), tierLightEnvelope},
	{0.06, 33, 23, 2.5, euFees(1.52, 1.66, 2.27, 2.67, 2.23, 2.00, 29.07, 1.70, 1.78), tierLightEnvelope},
	{0.08, 33, 23, 2.5, euFees(1.67, 1.80, 2.79, 2.79, 2.55, 2.08, 30.56, 1.72, 1.83), tierLightEnvelope},
	{0.10, 33, 23, 2.5, euFees(1.70, 1.83, 2.81, 2.81, 2.59, 2.11, 30.74, 1.73, 1.86), tierLightEnvelope},
	{0.21, 33, 23, 2.5, euFees(1.73, 1.86, 2.81, 2.81, 2.61, 2.16, 31.56, 1.74, 1.98), tierStandardEnvelope},
	{0.46, 33, 23, 2.5, euFees(1.87, 2.02, 3.31, 3.04, 2.85, 2.25, 36.61, 1.83, 2.12), tierStandardEnvelope},
	{0.96, 33, 23, 4.0, euFees(2.42, 2.39, 3.96, 3.35, 3.00, 2.91, 37.79, 1.89, 2.66), tierLargeEnvelope},
	{0.96, 33, 23, 6.0, euFees(2.65, 2.78, 4.31, 3.59, 3.23, 3.26, 40.84, 1.91, 2.96), tierXLEnvelope},
	{0.15, 35, 25, 12.0, euFees(2.67, 2.78, 4.31, 3.59, 3.23, 3.13, 41.23, 1.81, 2.64), tierSmallParcel},
	{0.40, 35, 25, 12.0, euFees(2.70, 2.99, 4.71, 3.91, 3.46, 3.17, 43.31, 1.86, 2.96), tierSmallParcel},
}

// euEnvelopes is gated on actual weight.
var euEnvelopes = []euTier{
	{0.08, 33, 23, 2.5, euFees(2.07, 2.26, 3.30, 3.39, 3.21, 2.43, 35.08, 3.13, 2.41), tierLightEnvelope},
	{0.21, 33, 23, 2.5, euFees(2.10, 2.31, 3.33, 3.45, 3.26, 2.49, 35.47, 3.16, 2.47), tierStandardEnvelope},
	{0.46, 33, 23, 2.5, euFees(2.16, 2.42, 3.77, 3.64, 3.45, 2.58, 41.09, 3.36, 2.56), tierStandardEnvelope},
	{0.96, 33, 23, 4.0, euFees(2.72, 2.78, 4.39, 3.94, 3.60, 3.24, 42.35, 3.49, 3.21), tierLargeEnvelope},
	{0.96, 33, 23, 6.0, euFees(2.94, 3.16, 4.72, 4.17, 3.85, 3.59, 45.62, 3.58, 3.53), tierXLEnvelope},
}

// euParcels is gated on billable weight.
var euParcels = []euTier{
	{0.15, 35, 25, 12.0, euFees(2.91, 3.12, 4.56, 4.13, 3.52, 3.47, 45.41, 3.61, 3.39), tierSmallParcel},
	{0.40, 35, 25, 12.0, euFees(3.00, 3.13, 5.07, 4.54, 3.74, 3.51, 47.29, 3.67, 3.67), tierSmallParcel},
	{0.90, 35, 25, 12.0, euFees(3.04, 3.14, 5.79, 4.95, 3.95, 4.03, 48.19, 3.71, 4.15), tierSmallParcel},
	{1.40, 35, 25, 12.0, euFees(3.05, 3.15, 5.87, 5.11, 4.21, 4.50, 52.68, 3.76, 4.63), tierSmallParcel},
	{1.90, 35, 25, 12.0, euFees(3.25, 3.17, 6.10, 5.14, 4.27, 4.82, 54.49, 3.81, 4.95), tierSmallParcel},
	{3.90, 35, 25, 12.0, euFees(3.27, 4.28, 7.80, 5.16, 5.50, 5.90, 64.10, 3.93, 6.38), tierSmallParcel},
	{0.15, 45, 34, 26.0, euFees(2.94, 3.13, 4.58, 4.29, 3.55, 3.62, 48.58, 3.67, 3.46), tierStandardParcel},
	{0.40, 45, 34, 26.0, euFees(3.01, 3.16, 5.22, 4.70, 3.77, 3.97, 51.70, 3.73, 3.85), tierStandardParcel},
	{0.90, 45, 34, 26.0, euFees(3.06, 3.18, 6.01, 5.15, 3.99, 4.32, 52.04, 3.80, 4.39), tierStandardParcel},
	{1.40, 45, 34, 26.0, euFees(3.26, 3.67, 6.41, 5.26, 4.85, 4.65, 58.46, 3.89, 4.99), tierStandardParcel},
	{1.90, 45, 34, 26.0, euFees(3.48, 3.69, 6.44, 5.29, 4.94, 4.69, 61.53, 3.97, 5.41), tierStandardParcel},
	{2.90, 45, 34, 26.0, euFees(3.49, 4.29, 7.08, 5.30, 4.98, 4.75, 65.36, 4.10, 6.27), tierStandardParcel},
	{3.90, 45, 34, 26.0, euFees(3.54, 4.83, 7.81, 5.35, 5.53, 5.08, 65.71, 4.15, 6.30), tierStandardParcel},
	{5.90, 45, 34, 26.0, euFees(3.56, 4.96, 8.22, 5.38, 5.96, 5.23, 70.20, 4.19, 6.54), tierStandardParcel},
	{8.90, 45, 34, 26.0, euFees(3.57, 5.77, 8.84, 5.41, 7.24, 5.67, 72.20, 4.24, 6.90), tierStandardParcel},
	{11.9, 45, 34, 26.0, euFees(3.58, 6.39, 9.38, 6.25, 7.85, 6.24, 87.92, 4.37, 7.36), tierStandardParcel},
}

// matchEU scans table in order and returns the first tier that fits and
// carries a positive fee for country. Tiers that fit but have no fee for
// the country are skipped, not treated as a miss.
func matchEU(table []euTier, country models.Country, kg, long, medium, short float64) (float64, string, bool) {
	for _, t := range table {
		if kg <= t.maxKG && long <= t.maxLong && medium <= t.maxMedium && short <= t.maxShort {
			if fee := t.fees[country]; fee > 0 {
				return fee, t.name, true
			}
		}
	}
	return 0, "", false
}

func (c *FulfillmentCalculator) euFee(country models.Country, p Parcel, price float64) FulfillmentFee {
	long, medium, short := p.sortedDims(1)
	actualKG := p.weightKG()
	volumetricKG := (p.LengthCM * p.WidthCM * p.HeightCM) / models.VolumetricDivisor
	billableKG := actualKG
	if volumetricKG > billableKG {
		billableKG = volumetricKG
	}

	if c.lowPriceEligible(country, price) {
		if fee, name, ok := matchEU(euLowPrice, country, actualKG, long, medium, short); ok {
			return FulfillmentFee{Amount: fee, Tier: "Low-Price " + name}
		}
	}

	if fee, name, ok := matchEU(euEnvelopes, country, actualKG, long, medium, short); ok {
		return FulfillmentFee{Amount: fee, Tier: "Standard " + name}
	}
	if fee, name, ok := matchEU(euParcels, country, billableKG, long, medium, short); ok {
		return FulfillmentFee{Amount: fee, Tier: "Standard " + name}
	}
	return unsupported("Oversize")
}
