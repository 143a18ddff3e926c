package orientation

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/twpayne/go-polyline"
	"qibla.arahkiblat.org/internal/models"
	"qibla.arahkiblat.org/internal/utils"
)

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("orientation session not found")

// Snapshot is a value copy of a session taken under the store lock.
type Snapshot struct {
	ID      string
	State   State
	Points  []models.GeoPoint
	Bearing *float64
}

// Entry converts the snapshot into its JSON view. The polyline is present only
// when the facade segment is complete.
func (s Snapshot) Entry() models.OrientationEntry {
	entry := models.OrientationEntry{
		ID:     s.ID,
		State:  s.State.String(),
		Points: s.Points,
	}
	if s.Bearing != nil {
		bearing := utils.NewBearingEntry(*s.Bearing)
		entry.Bearing = &bearing
		entry.Polyline = encodeSegment(s.Points)
	}
	return entry
}

func encodeSegment(points []models.GeoPoint) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

type session struct {
	selection *Selection
	lastSeen  time.Time
}

// Store keeps one Selection per session so concurrent users never share a click buffer.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	clock    clockwork.Clock
}

// NewStore creates a session store. Sessions idle for longer than ttl are dropped;
// a ttl of zero keeps sessions until they are deleted.
func NewStore(ttl time.Duration, clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		clock:    clock,
	}
}

// Create starts a new empty session.
func (st *Store) Create() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()

	id := uuid.NewString()
	sess := &session{selection: NewSelection(), lastSeen: st.clock.Now()}
	st.sessions[id] = sess
	return snapshot(id, sess.selection)
}

// Get returns the current snapshot of a session.
func (st *Store) Get(id string) (Snapshot, error) {
	return st.with(id, func(*Selection) {})
}

// Click records a point in the session's selection.
func (st *Store) Click(id string, p models.GeoPoint) (Snapshot, error) {
	return st.with(id, func(sel *Selection) { sel.Click(p) })
}

// Reset empties the session's selection.
func (st *Store) Reset(id string) (Snapshot, error) {
	return st.with(id, func(sel *Selection) { sel.Reset() })
}

// Delete discards a session.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.lookup(id); !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Snapshots returns every live session ordered by ID.
func (st *Store) Snapshots() []Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()

	out := make([]Snapshot, 0, len(st.sessions))
	for id, sess := range st.sessions {
		if st.expired(sess) {
			continue
		}
		out = append(out, snapshot(id, sess.selection))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Sweep removes expired sessions and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, sess := range st.sessions {
		if st.expired(sess) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := st.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			st.Sweep()
		}
	}
}

func (st *Store) with(id string, fn func(*Selection)) (Snapshot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.lookup(id)
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	fn(sess.selection)
	sess.lastSeen = st.clock.Now()
	return snapshot(id, sess.selection), nil
}

// lookup finds a live session, dropping it if it has expired. Caller holds st.mu.
func (st *Store) lookup(id string) (*session, bool) {
	sess, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if st.expired(sess) {
		delete(st.sessions, id)
		return nil, false
	}
	return sess, true
}

func (st *Store) expired(sess *session) bool {
	return st.ttl > 0 && st.clock.Since(sess.lastSeen) > st.ttl
}

func snapshot(id string, sel *Selection) Snapshot {
	snap := Snapshot{
		ID:     id,
		State:  sel.State(),
		Points: sel.Points(),
	}
	if bearing, err := sel.Bearing(); err == nil {
		snap.Bearing = &bearing
	}
	return snap
}
