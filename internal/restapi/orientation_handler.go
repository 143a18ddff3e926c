package restapi

import (
	"errors"
	"log/slog"
	"net/http"

	"qibla.arahkiblat.org/internal/logging"
	"qibla.arahkiblat.org/internal/models"
	"qibla.arahkiblat.org/internal/orientation"
	"qibla.arahkiblat.org/internal/utils"
)

func (api *RestAPI) createOrientationHandler(w http.ResponseWriter, r *http.Request) {
	snap := api.Sessions.Create()
	api.Metrics.SetSessions(api.Sessions.Len())

	logging.LogOperation(logging.FromContext(r.Context()), "orientation_session_created",
		slog.String("session_id", snap.ID))

	api.sendResponseWithStatus(w, r, http.StatusCreated, orientationResponse(snap))
}

func (api *RestAPI) orientationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := api.Sessions.Get(id)
	api.sendSnapshot(w, r, snap, err)
}

func (api *RestAPI) orientationClickHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.sessionID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	lat, fieldErrors := utils.ParseRequiredFloatParam(query, "lat", nil)
	lon, fieldErrors := utils.ParseRequiredFloatParam(query, "lon", fieldErrors)
	if len(fieldErrors) == 0 {
		fieldErrors = utils.ValidateLocationParams(lat, lon, "lat", "lon", fieldErrors)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snap, err := api.Sessions.Click(id, models.NewGeoPoint(lat, lon))
	if err == nil {
		api.Metrics.CountClick()
		if snap.Bearing != nil {
			api.Calculator.FacadeBearing(r.Context(), *snap.Bearing)
		}
	}
	api.sendSnapshot(w, r, snap, err)
}

func (api *RestAPI) orientationResetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := api.Sessions.Reset(id)
	api.sendSnapshot(w, r, snap, err)
}

func (api *RestAPI) deleteOrientationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.sessionID(w, r)
	if !ok {
		return
	}

	if err := api.Sessions.Delete(id); err != nil {
		api.sendSnapshot(w, r, orientation.Snapshot{}, err)
		return
	}
	api.Metrics.SetSessions(api.Sessions.Len())
	api.sendResponse(w, r, models.NewOKResponse(nil))
}

// sessionID extracts and validates the :id route parameter, writing a 400 on failure.
func (api *RestAPI) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return "", false
	}
	return id, true
}

func (api *RestAPI) sendSnapshot(w http.ResponseWriter, r *http.Request, snap orientation.Snapshot, err error) {
	switch {
	case errors.Is(err, orientation.ErrSessionNotFound):
		api.Metrics.SetSessions(api.Sessions.Len())
		api.sendNotFound(w, r)
	case err != nil:
		api.serverErrorResponse(w, r, err)
	default:
		api.sendResponse(w, r, orientationResponse(snap))
	}
}

// orientationResponse wraps a snapshot. Until two points exist the text says so.
func orientationResponse(snap orientation.Snapshot) models.ResponseModel {
	response := models.NewEntryResponse(snap.Entry())
	if snap.Bearing == nil {
		response.Text = models.InsufficientPointsText
	}
	return response
}
