package models

import "fmt"

// DMSAngle is the degrees/minutes/seconds projection of a signed decimal angle.
// The sign lives only in IsNegative; the numeric fields hold the magnitude.
type DMSAngle struct {
	Degrees    int     `json:"degrees"`
	Minutes    int     `json:"minutes"`
	Seconds    float64 `json:"seconds"`
	IsNegative bool    `json:"isNegative"`
}

// String renders the angle as 7° 52' 10.92", prefixed with "-" when negative.
func (a DMSAngle) String() string {
	sign := ""
	if a.IsNegative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d° %d' %.2f\"", sign, a.Degrees, a.Minutes, a.Seconds)
}
