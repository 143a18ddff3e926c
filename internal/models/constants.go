package models

// Reference point coordinates (the Kaaba), decimal degrees.
const (
	KaabaLatitude  = 21.4225
	KaabaLongitude = 39.8262
)

// ResponseVersion is the envelope version sent with every successful response.
const ResponseVersion = 2

// InsufficientPointsText is returned while an orientation session holds fewer than two points.
const InsufficientPointsText = "insufficient points"

// UnknownValue is the fallback value when a label cannot be resolved
const UnknownValue = "UNKNOWN"
