package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearingHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/bearing.json?key=TEST&fromLat=51.5074&fromLon=-0.1278&toLat=21.4225&toLon=39.8262")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	bearing := entry["bearing"].(map[string]interface{})
	assert.InDelta(t, 118.9872, bearing["degrees"].(float64), 1e-4)
	assert.Equal(t, "SE", bearing["cardinal"])

	from := entry["from"].(map[string]interface{})
	assert.Equal(t, 51.5074, from["lat"])
}

func TestBearingHandlerIdenticalPoints(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/bearing.json?key=TEST&fromLat=10&fromLon=20&toLat=10&toLon=20")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	bearing := entryOf(t, model)["bearing"].(map[string]interface{})
	assert.Equal(t, 0.0, bearing["degrees"])
	assert.Equal(t, "N", bearing["cardinal"])
}

func TestBearingHandlerValidation(t *testing.T) {
	api := createTestApi(t)

	resp, fieldErrors := serveAndRetrieveFieldErrors(t, api, http.MethodGet, "/api/where/bearing.json?key=TEST&fromLat=-91&fromLon=0&toLat=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fieldErrors, "toLon")
	assert.NotContains(t, fieldErrors, "fromLon")
}

func TestCardinalHandler(t *testing.T) {
	tests := []struct {
		bearing  string
		expected string
	}{
		{"22.4", "N"},
		{"22.5", "NE"},
		{"67.5", "E"},
		{"337.5", "N"},
		{"360", "N"},
		{"-45", "NW"},
		{"294.72", "NW"},
	}

	for _, tt := range tests {
		t.Run(tt.bearing, func(t *testing.T) {
			_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/cardinal.json?key=TEST&bearing="+tt.bearing)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.expected, entryOf(t, model)["cardinal"])
		})
	}
}

func TestCardinalHandlerRequiresBearing(t *testing.T) {
	resp, fieldErrors := serveAndRetrieveFieldErrors(t, createTestApi(t), http.MethodGet, "/api/where/cardinal.json?key=TEST")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{`Missing required field "bearing".`}, fieldErrors["bearing"])
}

func TestDMSHandler(t *testing.T) {
	t.Run("keeps sixty seconds by default", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/dms.json?key=TEST&value=283.9")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		entry := entryOf(t, model)
		dms := entry["dms"].(map[string]interface{})
		assert.Equal(t, 283.0, dms["degrees"])
		assert.Equal(t, 53.0, dms["minutes"])
		assert.Equal(t, 60.0, dms["seconds"])
		assert.Equal(t, `283° 53' 60.00"`, entry["text"])
	})

	t.Run("carries on request", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/dms.json?key=TEST&value=283.9&carry=true")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		dms := entryOf(t, model)["dms"].(map[string]interface{})
		assert.Equal(t, 54.0, dms["minutes"])
		assert.Equal(t, 0.0, dms["seconds"])
	})

	t.Run("negative values", func(t *testing.T) {
		_, _, model := serveAndRetrieveEndpoint(t, "/api/where/dms.json?key=TEST&value=-7.8697")

		entry := entryOf(t, model)
		dms := entry["dms"].(map[string]interface{})
		assert.Equal(t, true, dms["isNegative"])
		assert.Equal(t, `-7° 52' 10.92"`, entry["text"])
	})
}

func TestDecimalHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/decimal.json?key=TEST&deg=7&min=52&sec=10.92&negative=true")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.InDelta(t, -7.8697, entry["decimal"].(float64), 1e-9)
}

func TestDecimalHandlerValidation(t *testing.T) {
	api := createTestApi(t)

	resp, fieldErrors := serveAndRetrieveFieldErrors(t, api, http.MethodGet, "/api/where/decimal.json?key=TEST&min=5")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fieldErrors, "deg")

	resp, fieldErrors = serveAndRetrieveFieldErrors(t, api, http.MethodGet, "/api/where/decimal.json?key=TEST&deg=7&sec=60")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fieldErrors, "deg")
}

func TestDeviationHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/deviation.json?key=TEST&target=10&measured=350")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, -340.0, entry["degrees"])
	assert.InDelta(t, 20.0, entry["normalized"].(float64), 1e-9)

	dms := entry["dms"].(map[string]interface{})
	assert.Equal(t, true, dms["isNegative"])
	assert.Equal(t, 340.0, dms["degrees"])
}

func TestDeviationHandlerZero(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/where/deviation.json?key=TEST&target=294.72&measured=294.72")

	entry := entryOf(t, model)
	assert.Equal(t, 0.0, entry["degrees"])
	assert.Equal(t, 0.0, entry["offsetCmPerMeter"])
}

func TestDeviationHandlerValidation(t *testing.T) {
	resp, fieldErrors := serveAndRetrieveFieldErrors(t, createTestApi(t), http.MethodGet, "/api/where/deviation.json?key=TEST&target=400")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fieldErrors, "measured")
}
