// Package qibla assembles the full qibla report for one observer location and one
// measured building bearing.
package qibla

import (
	"qibla.arahkiblat.org/internal/models"
	"qibla.arahkiblat.org/internal/utils"
)

// Input is the observer location plus the bearing the building actually faces.
type Input struct {
	Location        models.GeoPoint
	BuildingBearing float64
}

// Calculate derives the qibla bearing for in.Location and compares it with the
// measured building bearing. It never fails; inputs are validated by callers.
func Calculate(in Input) models.QiblaReport {
	target := utils.QiblaBearing(in.Location)
	deviation := utils.Deviation(target, in.BuildingBearing)

	return models.QiblaReport{
		Location:        NewLocationEntry(in.Location),
		Reference:       models.KaabaPoint,
		QiblaBearing:    utils.NewBearingEntry(target),
		BuildingBearing: utils.NewBearingEntry(in.BuildingBearing),
		Deviation:       utils.NewDeviationEntry(deviation),
	}
}

// NewLocationEntry projects a location into decimal and DMS form.
func NewLocationEntry(p models.GeoPoint) models.LocationEntry {
	return models.LocationEntry{
		Lat:           p.Lat,
		Lon:           p.Lon,
		LatDMS:        utils.DecimalToDMS(p.Lat),
		LonDMS:        utils.DecimalToDMS(p.Lon),
		LatHemisphere: utils.LatitudeHemisphere(p.Lat),
		LonHemisphere: utils.LongitudeHemisphere(p.Lon),
	}
}

// LocationFromDMS converts a manually entered DMS latitude/longitude to a GeoPoint.
func LocationFromDMS(lat, lon models.DMSAngle) models.GeoPoint {
	return models.NewGeoPoint(utils.DMSAngleToDecimal(lat), utils.DMSAngleToDecimal(lon))
}
