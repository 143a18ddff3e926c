package utils

import (
	"math"

	"qibla.arahkiblat.org/internal/models"
)

// DecimalToDMS converts a signed decimal angle to degrees, minutes and seconds.
// Seconds are rounded to two decimal places. A rounding result of exactly 60.00 seconds is
// left as is and not carried into minutes; use DecimalToDMSCarried for the carried form.
func DecimalToDMS(decimal float64) models.DMSAngle {
	absolute := math.Abs(decimal)
	degrees := math.Floor(absolute)
	minutesFloat := (absolute - degrees) * 60
	minutes := math.Floor(minutesFloat)
	seconds := math.Round((minutesFloat-minutes)*60*100) / 100

	return models.DMSAngle{
		Degrees:    int(degrees),
		Minutes:    int(minutes),
		Seconds:    seconds,
		IsNegative: decimal < 0,
	}
}

// DecimalToDMSCarried is DecimalToDMS with 60 seconds carried into minutes and 60 minutes
// carried into degrees.
func DecimalToDMSCarried(decimal float64) models.DMSAngle {
	dms := DecimalToDMS(decimal)
	if dms.Seconds >= 60 {
		dms.Seconds -= 60
		dms.Minutes++
	}
	if dms.Minutes >= 60 {
		dms.Minutes -= 60
		dms.Degrees++
	}
	return dms
}

// DMSToDecimal converts degrees, minutes and seconds to a signed decimal angle.
// Fields are not validated; negative fields combined with isNegative negate twice.
func DMSToDecimal(degrees, minutes int, seconds float64, isNegative bool) float64 {
	decimal := float64(degrees) + float64(minutes)/60 + seconds/3600
	if isNegative {
		return -decimal
	}
	return decimal
}

// DMSAngleToDecimal converts a DMSAngle back to a signed decimal angle.
func DMSAngleToDecimal(angle models.DMSAngle) float64 {
	return DMSToDecimal(angle.Degrees, angle.Minutes, angle.Seconds, angle.IsNegative)
}

// LatitudeHemisphere returns "N" for non-negative latitudes and "S" otherwise.
func LatitudeHemisphere(lat float64) string {
	if lat < 0 {
		return "S"
	}
	return "N"
}

// LongitudeHemisphere returns "E" for non-negative longitudes and "W" otherwise.
func LongitudeHemisphere(lon float64) string {
	if lon < 0 {
		return "W"
	}
	return "E"
}
