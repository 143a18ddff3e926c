package models

// GeoPoint is a latitude/longitude pair in decimal degrees on a spherical Earth.
// Values are never mutated; a new point replaces an old one wholesale.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewGeoPoint builds a GeoPoint. No range validation is performed.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Lat: lat, Lon: lon}
}

// KaabaPoint is the fixed reference point used for every qibla bearing.
var KaabaPoint = GeoPoint{Lat: KaabaLatitude, Lon: KaabaLongitude}

// Equal reports whether both coordinates are bit-identical.
func (p GeoPoint) Equal(other GeoPoint) bool {
	return p.Lat == other.Lat && p.Lon == other.Lon
}
