// Package fees implements the Amazon referral and FBA fulfillment rate cards.
//
// Every function in this package is pure: results depend only on the
// arguments, so calculators are safe for concurrent use.
package fees

import "fbaprofit/internal/models"

type referralTier struct {
	upTo float64 // inclusive
	rate float64
}

// referralSchedule applies the first tier whose bound covers the price to
// the whole price. Above the last tier either flatRate is applied to the
// whole price, or, when overflowRate is set, the last tier rate covers the
// amount up to its bound and overflowRate covers the remainder.
type referralSchedule struct {
	tiers        []referralTier
	flatRate     float64
	overflowRate float64
}

var euReferral = referralSchedule{
	tiers:        []referralTier{{15, 0.05}, {20, 0.10}, {45, 0.15}},
	overflowRate: 0.07,
}

var referralSchedules = map[models.Country]referralSchedule{
	models.CountryUS: {
		tiers:    []referralTier{{15, 0.05}, {20, 0.10}},
		flatRate: 0.17,
	},
	models.CountryCA: {
		tiers:    []referralTier{{20, 0.10}},
		flatRate: 0.17,
	},
	models.CountryUK: {
		tiers:        []referralTier{{15, 0.05}, {20, 0.10}, {40, 0.15}},
		overflowRate: 0.07,
	},
	models.CountryDE: euReferral,
	models.CountryFR: euReferral,
	models.CountryIT: euReferral,
	models.CountryES: euReferral,
	models.CountryNL: euReferral,
	models.CountryBE: euReferral,
	models.CountrySE: {
		tiers:        []referralTier{{175, 0.05}, {230, 0.10}, {470, 0.15}},
		overflowRate: 0.07,
	},
	models.CountryPL: {
		tiers:        []referralTier{{65, 0.05}, {180, 0.10}},
		overflowRate: 0.07,
	},
}

// FallbackReferralRate applies to markets without a schedule.
const FallbackReferralRate = 0.15

func (s referralSchedule) fee(price float64) float64 {
	for _, t := range s.tiers {
		if price <= t.upTo {
			return price * t.rate
		}
	}
	if s.overflowRate > 0 && len(s.tiers) > 0 {
		last := s.tiers[len(s.tiers)-1]
		return (last.upTo * last.rate) + ((price - last.upTo) * s.overflowRate)
	}
	return price * s.flatRate
}

// ReferralFee returns the marketplace commission for a sale at price, in
// the market's currency.
func ReferralFee(country models.Country, price float64) float64 {
	s, ok := referralSchedules[country]
	if !ok {
		return price * FallbackReferralRate
	}
	return s.fee(price)
}
