package utils

import (
	"errors"
	"math"
	"regexp"
)

// Session IDs are canonical lowercase UUIDs
var validIDPattern = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`)

// ValidateID validates that a session ID is non-empty and well formed
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateFinite rejects NaN and infinities, which strconv.ParseFloat accepts
func ValidateFinite(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.New("value must be a finite number")
	}
	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if err := ValidateFinite(lat); err != nil {
		return err
	}
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if err := ValidateFinite(lon); err != nil {
		return err
	}
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateBearing validates a bearing entered by a user. 360 is accepted as an alias of 0.
func ValidateBearing(bearing float64) error {
	if err := ValidateFinite(bearing); err != nil {
		return err
	}
	if bearing < 0 || bearing > 360 {
		return errors.New("bearing must be between 0 and 360")
	}
	return nil
}

// ValidateDMS validates the magnitude fields of a degrees/minutes/seconds angle.
// The sign is carried separately, so negative fields are rejected.
func ValidateDMS(degrees, minutes int, seconds float64) error {
	if degrees < 0 {
		return errors.New("degrees must be non-negative")
	}
	if minutes < 0 || minutes >= 60 {
		return errors.New("minutes must be between 0 and 59")
	}
	if err := ValidateFinite(seconds); err != nil {
		return err
	}
	if seconds < 0 || seconds >= 60 {
		return errors.New("seconds must be in [0, 60)")
	}
	return nil
}

// ValidateLocationParams validates a latitude/longitude pair, keying errors by the given field names
func ValidateLocationParams(lat, lon float64, latKey, lonKey string, fieldErrors map[string][]string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	if err := ValidateLatitude(lat); err != nil {
		fieldErrors[latKey] = append(fieldErrors[latKey], err.Error())
	}

	if err := ValidateLongitude(lon); err != nil {
		fieldErrors[lonKey] = append(fieldErrors[lonKey], err.Error())
	}

	return fieldErrors
}
