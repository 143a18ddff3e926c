package restapi

import (
	"net/http"

	"qibla.arahkiblat.org/internal/models"
)

type healthEntry struct {
	Status   string `json:"status"`
	Env      string `json:"env"`
	Sessions int    `json:"sessions"`
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	entry := healthEntry{
		Status:   "ok",
		Env:      api.Config.Env.String(),
		Sessions: api.Sessions.Len(),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
