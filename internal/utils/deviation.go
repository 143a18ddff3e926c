package utils

import (
	"math"

	"qibla.arahkiblat.org/internal/models"
)

// Deviation returns target - measured without normalization.
func Deviation(target, measured float64) float64 {
	return target - measured
}

// LateralOffsetPerUnitDistance returns |tan(deviation)| for a deviation in degrees.
// The result diverges as the deviation approaches ±90° and is not clamped.
func LateralOffsetPerUnitDistance(deviationDegrees float64) float64 {
	return math.Abs(math.Tan(deviationDegrees * math.Pi / 180))
}

// LateralOffsetCentimetersPerMeter scales the unit offset to centimeters per meter.
func LateralOffsetCentimetersPerMeter(deviationDegrees float64) float64 {
	return LateralOffsetPerUnitDistance(deviationDegrees) * 100
}

// NormalizeDeviation folds a raw deviation into [-180, 180) using ((d + 180) mod 360) - 180.
func NormalizeDeviation(deviation float64) float64 {
	folded := math.Mod(deviation+180, 360)
	if folded < 0 {
		folded += 360
	}
	return folded - 180
}

// DeviationDMS converts |deviation| to DMS and restores the sign in IsNegative.
func DeviationDMS(deviation float64) models.DMSAngle {
	dms := DecimalToDMS(math.Abs(deviation))
	dms.IsNegative = deviation < 0
	return dms
}

// NewDeviationEntry builds the display projection of a raw deviation.
func NewDeviationEntry(deviation float64) models.DeviationEntry {
	return models.DeviationEntry{
		Degrees:               deviation,
		DMS:                   DeviationDMS(deviation),
		Normalized:            NormalizeDeviation(deviation),
		OffsetCmPerMeter:      LateralOffsetCentimetersPerMeter(deviation),
		OffsetPerUnitDistance: LateralOffsetPerUnitDistance(deviation),
	}
}
