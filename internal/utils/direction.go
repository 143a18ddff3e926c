package utils

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"qibla.arahkiblat.org/internal/models"
)

// compassPoints is indexed by round(bearing / 45) reduced modulo 8.
var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var compassLabels = map[string]string{
	"N":  "North (N)",
	"NE": "Northeast (NE)",
	"E":  "East (E)",
	"SE": "Southeast (SE)",
	"S":  "South (S)",
	"SW": "Southwest (SW)",
	"W":  "West (W)",
	"NW": "Northwest (NW)",
}

// BearingBetweenPoints calculates the initial great-circle bearing in degrees from one point to
// another, measured clockwise from true north and normalized to [0, 360).
// Identical points give atan2(0, 0), which is 0.
func BearingBetweenPoints(from, to models.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(from.Lat, from.Lon)
	p2 := s2.LatLngFromDegrees(to.Lat, to.Lon)

	phi1 := p1.Lat.Radians()
	phi2 := p2.Lat.Radians()
	deltaLon := (p2.Lng - p1.Lng).Radians()

	x := math.Sin(deltaLon) * math.Cos(phi2)
	y := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLon)

	theta := s1.Angle(math.Atan2(x, y)).Degrees()
	return math.Mod(theta+360, 360)
}

// QiblaBearing returns the bearing from location toward the Kaaba.
func QiblaBearing(location models.GeoPoint) float64 {
	return BearingBetweenPoints(location, models.KaabaPoint)
}

// BearingToCompass converts a bearing to an 8-point compass direction.
// Halfway values round away from zero, so 22.5 is NE and 337.5 wraps to N.
func BearingToCompass(bearing float64) string {
	index := int(math.Round(bearing/45.0)) % len(compassPoints)
	if index < 0 {
		index += len(compassPoints)
	}
	return compassPoints[index]
}

// CompassDirection calculates compass direction from one point to another
func CompassDirection(from, to models.GeoPoint) string {
	return BearingToCompass(BearingBetweenPoints(from, to))
}

// CardinalLabel returns the long display label for a compass code, or models.UnknownValue.
func CardinalLabel(code string) string {
	if label, ok := compassLabels[code]; ok {
		return label
	}
	return models.UnknownValue
}

// NewBearingEntry builds the display projection of a bearing.
func NewBearingEntry(bearing float64) models.BearingEntry {
	code := BearingToCompass(bearing)
	return models.BearingEntry{
		Degrees:       bearing,
		DMS:           DecimalToDMS(bearing),
		Cardinal:      code,
		CardinalLabel: CardinalLabel(code),
	}
}
