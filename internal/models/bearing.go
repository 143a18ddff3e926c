package models

// BearingBetweenEntry describes the great-circle bearing between two arbitrary points.
type BearingBetweenEntry struct {
	From    GeoPoint     `json:"from"`
	To      GeoPoint     `json:"to"`
	Bearing BearingEntry `json:"bearing"`
}

// DecimalEntry is a signed decimal angle next to its DMS form.
type DecimalEntry struct {
	Decimal float64  `json:"decimal"`
	DMS     DMSAngle `json:"dms"`
	Text    string   `json:"text"`
}
