// Package orientation turns two map clicks into a building facade bearing.
//
// A Selection buffers at most two points. The first click is the start of the facade,
// the second its end, and the bearing between them is derived with the same great-circle
// formula used for the qibla. A third click silently starts a new pair.
package orientation

import (
	"errors"

	"qibla.arahkiblat.org/internal/models"
	"qibla.arahkiblat.org/internal/utils"
)

// ErrInsufficientPoints is returned when a bearing is requested before two points are picked.
var ErrInsufficientPoints = errors.New(models.InsufficientPointsText)

// State is the number of buffered points.
type State int

const (
	StateEmpty State = iota
	StateOnePoint
	StateTwoPoints
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "EMPTY"
	case StateOnePoint:
		return "ONE_POINT"
	case StateTwoPoints:
		return "TWO_POINTS"
	default:
		return models.UnknownValue
	}
}

// Selection is the click buffer of one orientation-picking session.
// It is not safe for concurrent use.
type Selection struct {
	points []models.GeoPoint
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{points: make([]models.GeoPoint, 0, 2)}
}

// State reports how many points are buffered.
func (s *Selection) State() State {
	return State(len(s.points))
}

// Click records a picked point. From TwoPoints the previous pair is discarded and
// p becomes the new first point.
func (s *Selection) Click(p models.GeoPoint) State {
	if len(s.points) >= 2 {
		s.points = s.points[:0]
	}
	s.points = append(s.points, p)
	return s.State()
}

// Reset discards all buffered points.
func (s *Selection) Reset() {
	s.points = s.points[:0]
}

// Points returns a copy of the buffered points in click order.
func (s *Selection) Points() []models.GeoPoint {
	out := make([]models.GeoPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Bearing returns the bearing from the first to the second point.
// It is recomputed on every call and exists only in StateTwoPoints.
func (s *Selection) Bearing() (float64, error) {
	if s.State() != StateTwoPoints {
		return 0, ErrInsufficientPoints
	}
	return utils.BearingBetweenPoints(s.points[0], s.points[1]), nil
}
