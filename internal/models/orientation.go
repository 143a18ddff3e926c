package models

// OrientationEntry is the JSON view of a point-selection session.
// Bearing is nil until two points have been picked.
type OrientationEntry struct {
	ID       string        `json:"id"`
	State    string        `json:"state"`
	Points   []GeoPoint    `json:"points"`
	Bearing  *BearingEntry `json:"bearing"`
	Polyline string        `json:"polyline,omitempty"`
}
