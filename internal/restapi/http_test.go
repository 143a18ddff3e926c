package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"qibla.arahkiblat.org/internal/app"
	"qibla.arahkiblat.org/internal/appconf"
	"qibla.arahkiblat.org/internal/logging"
	"qibla.arahkiblat.org/internal/models"
)

// createTestApi creates a RestAPI backed by a fake clock and a discarded logger.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	return createTestApiWithClock(t, clockwork.NewFakeClock())
}

func createTestApiWithClock(t *testing.T, clock clockwork.Clock) *RestAPI {
	t.Helper()

	cfg := appconf.Config{
		Env:        appconf.EnvFlagToEnvironment("test"),
		ApiKeys:    []string{"TEST"},
		RateLimit:  1000,
		SessionTTL: time.Hour,
	}
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelInfo)
	application := app.New(cfg, logger, clock)

	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a GET request to the specified endpoint,
// and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, http.MethodGet, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, method, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Handler())
	defer server.Close()

	req, err := http.NewRequest(method, server.URL+endpoint, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveAndRetrieveFieldErrors requests endpoint and decodes a validation error body.
func serveAndRetrieveFieldErrors(t *testing.T, api *RestAPI, method, endpoint string) (*http.Response, map[string][]string) {
	t.Helper()

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(method, endpoint, nil))

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Result(), body.FieldErrors
}

// entryOf returns data.entry of a decoded response as a generic map.
func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "data.entry should be an object")
	return entry
}
