package models

// LocationEntry is the observer location in decimal and DMS form.
type LocationEntry struct {
	Lat           float64  `json:"lat"`
	Lon           float64  `json:"lon"`
	LatDMS        DMSAngle `json:"latDms"`
	LonDMS        DMSAngle `json:"lonDms"`
	LatHemisphere string   `json:"latHemisphere"`
	LonHemisphere string   `json:"lonHemisphere"`
}

// BearingEntry is a bearing in [0, 360) with its display projections.
type BearingEntry struct {
	Degrees       float64  `json:"degrees"`
	DMS           DMSAngle `json:"dms"`
	Cardinal      string   `json:"cardinal"`
	CardinalLabel string   `json:"cardinalLabel"`
}

// DeviationEntry holds the signed difference between the qibla and the measured bearing.
// Degrees is the raw subtraction; Normalized is folded into [-180, 180) for display.
type DeviationEntry struct {
	Degrees               float64  `json:"degrees"`
	DMS                   DMSAngle `json:"dms"`
	Normalized            float64  `json:"normalized"`
	OffsetCmPerMeter      float64  `json:"offsetCmPerMeter"`
	OffsetPerUnitDistance float64  `json:"offsetPerUnitDistance"`
}

// QiblaReport is everything the presentation layer renders for one calculation.
type QiblaReport struct {
	Location        LocationEntry  `json:"location"`
	Reference       GeoPoint       `json:"reference"`
	QiblaBearing    BearingEntry   `json:"qiblaBearing"`
	BuildingBearing BearingEntry   `json:"buildingBearing"`
	Deviation       DeviationEntry `json:"deviation"`
}
