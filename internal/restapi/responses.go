package restapi

import (
	"encoding/json"
	"net/http"

	"qibla.arahkiblat.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	api.sendResponseWithStatus(w, r, http.StatusOK, response)
}

func (api *RestAPI) sendResponseWithStatus(w http.ResponseWriter, r *http.Request, status int, response models.ResponseModel) {
	body, err := json.Marshal(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(w)
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	response := models.NewResponse(http.StatusNotFound, nil, "resource not found")
	api.sendResponseWithStatus(w, r, http.StatusNotFound, response)
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
