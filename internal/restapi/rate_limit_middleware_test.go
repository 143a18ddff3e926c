package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"qibla.arahkiblat.org/internal/models"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func newTestRateLimiter(t *testing.T, ratePerSecond int, clock clockwork.Clock, exempt ...string) *RateLimitMiddleware {
	t.Helper()
	rl := NewRateLimitMiddleware(ratePerSecond, time.Second, clock, exempt...)
	t.Cleanup(rl.Stop)
	return rl
}

func doRequest(handler http.Handler, key string) *httptest.ResponseRecorder {
	target := "/api/where/qibla.json"
	if key != "" {
		target += "?key=" + key
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	return rec
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	handler := newTestRateLimiter(t, 5, clockwork.NewFakeClock()).Handler(okHandler)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(handler, "test-api-key").Code, "Request %d should be allowed", i+1)
	}
}

func TestRateLimitMiddleware_BlocksRequestsOverLimit(t *testing.T) {
	handler := newTestRateLimiter(t, 3, clockwork.NewFakeClock()).Handler(okHandler)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, doRequest(handler, "test-api-key").Code)
	}

	rec := doRequest(handler, "test-api-key")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	var model models.ResponseModel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&model))
	assert.Equal(t, http.StatusTooManyRequests, model.Code)
	assert.Equal(t, models.ResponseVersion, model.Version)
}

func TestRateLimitMiddleware_RefillsOverTime(t *testing.T) {
	clock := clockwork.NewFakeClock()
	handler := newTestRateLimiter(t, 2, clock).Handler(okHandler)

	require.Equal(t, http.StatusOK, doRequest(handler, "k").Code)
	require.Equal(t, http.StatusOK, doRequest(handler, "k").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(handler, "k").Code)

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, http.StatusOK, doRequest(handler, "k").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "k").Code)
}

func TestRateLimitMiddleware_PerAPIKeyLimiting(t *testing.T) {
	handler := newTestRateLimiter(t, 2, clockwork.NewFakeClock()).Handler(okHandler)

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, doRequest(handler, "api-key-1").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "api-key-1").Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "api-key-2").Code, "API key 2 should not be affected")
}

func TestRateLimitMiddleware_RequestsWithoutKeyShareALimiter(t *testing.T) {
	handler := newTestRateLimiter(t, 1, clockwork.NewFakeClock()).Handler(okHandler)

	assert.Equal(t, http.StatusOK, doRequest(handler, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "").Code)
}

func TestRateLimitMiddleware_ExemptKeys(t *testing.T) {
	handler := newTestRateLimiter(t, 1, clockwork.NewFakeClock(), "kiosk").Handler(okHandler)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, doRequest(handler, "kiosk").Code)
	}
}

func TestRateLimitMiddleware_ZeroAndNegativeLimits(t *testing.T) {
	blocked := newTestRateLimiter(t, 0, clockwork.NewFakeClock()).Handler(okHandler)
	rec := doRequest(blocked, "k")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3600", rec.Header().Get("Retry-After"))

	unlimited := newTestRateLimiter(t, -1, clockwork.NewFakeClock()).Handler(okHandler)
	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, doRequest(unlimited, "k").Code)
	}
}

func TestRateLimitMiddleware_EvictsIdleLimiters(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := newTestRateLimiter(t, 1, clock)
	handler := rl.Handler(okHandler)

	doRequest(handler, "a")
	clock.Advance(time.Minute)
	doRequest(handler, "b")

	clock.Advance(limiterIdleTimeout - 30*time.Second)
	rl.evictIdle()

	rl.mu.Lock()
	_, hasA := rl.limiters["a"]
	_, hasB := rl.limiters["b"]
	rl.mu.Unlock()
	assert.False(t, hasA)
	assert.True(t, hasB)
}

func TestRateLimitMiddleware_ConcurrentKeys(t *testing.T) {
	handler := newTestRateLimiter(t, 5, clockwork.NewFakeClock()).Handler(okHandler)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 10; j++ {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				if doRequest(handler, key).Code == http.StatusOK {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}(fmt.Sprintf("key-%d", i))
		}
	}
	wg.Wait()

	assert.Equal(t, 20, allowed)
}

func TestRateLimitMiddleware_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimitMiddleware(1, time.Second, nil)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
