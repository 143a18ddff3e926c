package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
	"qibla.arahkiblat.org/internal/models"
)

// limiterIdleTimeout is how long a per-key limiter may go unused before cleanup drops it.
const limiterIdleTimeout = 5 * time.Minute

const noKey = "__no_key__"

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware provides per-API-key rate limiting
type RateLimitMiddleware struct {
	limiters   map[string]*keyLimiter
	mu         sync.Mutex
	rateLimit  rate.Limit
	burstSize  int
	exemptKeys map[string]bool
	clock      clockwork.Clock
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewRateLimitMiddleware creates a new rate limiting middleware allowing ratePerInterval
// requests per interval for each API key, with a burst of ratePerInterval.
// Zero blocks every request; a negative value disables limiting.
func NewRateLimitMiddleware(ratePerInterval int, interval time.Duration, clock clockwork.Clock, exemptKeys ...string) *RateLimitMiddleware {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	var rateLimit rate.Limit
	switch {
	case ratePerInterval < 0:
		rateLimit = rate.Inf
	case ratePerInterval == 0:
		rateLimit = 0
	default:
		rateLimit = rate.Every(interval / time.Duration(ratePerInterval))
	}

	rl := &RateLimitMiddleware{
		limiters:   make(map[string]*keyLimiter),
		rateLimit:  rateLimit,
		burstSize:  ratePerInterval,
		exemptKeys: make(map[string]bool, len(exemptKeys)),
		clock:      clock,
		stop:       make(chan struct{}),
	}
	for _, k := range exemptKeys {
		rl.exemptKeys[k] = true
	}

	go rl.cleanupLoop()

	return rl
}

// getLimiter gets or creates a rate limiter for the given API key
func (rl *RateLimitMiddleware) getLimiter(apiKey string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[apiKey]
	if !exists {
		entry = &keyLimiter{limiter: rate.NewLimiter(rl.rateLimit, rl.burstSize)}
		rl.limiters[apiKey] = entry
	}
	entry.lastSeen = rl.clock.Now()
	return entry.limiter
}

// Handler is the HTTP middleware function
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.URL.Query().Get("key")
		if apiKey == "" {
			apiKey = noKey
		}

		if rl.exemptKeys[apiKey] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(apiKey).AllowN(rl.clock.Now(), 1) {
			rl.sendRateLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	var retryAfter time.Duration
	switch rl.rateLimit {
	case 0:
		retryAfter = time.Hour
	case rate.Inf:
		retryAfter = time.Second
	default:
		retryAfter = time.Duration(float64(time.Second) / float64(rl.rateLimit))
	}
	seconds := int(retryAfter.Round(time.Second).Seconds())
	if seconds < 1 {
		seconds = 1
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	response := models.NewResponse(http.StatusTooManyRequests, nil, "Rate limit exceeded. Please try again later.")
	_ = json.NewEncoder(w).Encode(response)
}

func (rl *RateLimitMiddleware) cleanupLoop() {
	ticker := rl.clock.NewTicker(limiterIdleTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.Chan():
			rl.evictIdle()
		}
	}
}

// evictIdle drops limiters that have not been used for limiterIdleTimeout.
func (rl *RateLimitMiddleware) evictIdle() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for key, entry := range rl.limiters {
		if rl.clock.Since(entry.lastSeen) >= limiterIdleTimeout {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

// Stop stops the cleanup goroutine
func (rl *RateLimitMiddleware) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}
