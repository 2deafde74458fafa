package service

import "fund-selector/domain"

// ClassifyHorizon maps an age to its investment horizon. Ages under 20
// default to a long horizon.
func ClassifyHorizon(age int) domain.HorizonBucket {
	switch {
	case age >= LongHorizonMinAge && age <= LongHorizonMaxAge:
		return domain.HorizonLong
	case age > LongHorizonMaxAge && age <= MediumHorizonMaxAge:
		return domain.HorizonMedium
	case age > MediumHorizonMaxAge:
		return domain.HorizonShort
	default:
		return domain.HorizonLong
	}
}
