package fees

type weightBreak struct {
	maxKG float64
	fee   float64
}

var caEnvelope = []weightBreak{
	{0.1, 4.73}, {0.2, 4.99}, {0.3, 5.31}, {0.4, 5.60}, {0.5, 5.95},
}

var caStandard = []weightBreak{
	{0.1, 6.28}, {0.2, 6.49}, {0.3, 6.74}, {0.4, 7.13}, {0.5, 7.65},
	{0.6, 7.84}, {0.7, 8.17}, {0.8, 8.43}, {0.9, 8.74}, {1.0, 8.99},
	{1.1, 9.10}, {1.2, 9.37}, {1.3, 9.58}, {1.4, 9.85}, {1.5, 10.17},
}

func lookupWeight(table []weightBreak, kg float64) (float64, bool) {
	for _, b := range table {
		if kg <= b.maxKG {
			return b.fee, true
		}
	}
	return 0, false
}

// caFee bills Canadian parcels on actual weight only.
func caFee(p Parcel) FulfillmentFee {
	long, medium, short := p.sortedDims(1)
	kg := p.weightKG()

	isEnvelope := kg <= 0.5 && long <= 38 && medium <= 27 && short <= 2
	isStandard := kg <= 9.0 && long <= 45 && medium <= 35 && short <= 20

	switch {
	case isEnvelope:
		if fee, ok := lookupWeight(caEnvelope, kg); ok {
			return FulfillmentFee{Amount: fee, Tier: "CA Envelope"}
		}
	case isStandard:
		if fee, ok := lookupWeight(caStandard, kg); ok {
			return FulfillmentFee{Amount: fee, Tier: "CA Standard"}
		}
		return unsupported("CA Standard (>1.5kg)")
	}
	return unsupported("CA Large Item")
}
