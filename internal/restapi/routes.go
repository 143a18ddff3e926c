package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"qibla.arahkiblat.org/internal/appconf"
	"qibla.arahkiblat.org/internal/webui"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// Routes builds the router without middleware.
func (api *RestAPI) Routes() *httprouter.Router {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
	api.SetRoutes(router)
	return router
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/qibla.json", validateAPIKey(api, api.qiblaHandler))
	router.Handler(http.MethodGet, "/api/where/qibla-dms.json", validateAPIKey(api, api.qiblaDMSHandler))
	router.Handler(http.MethodGet, "/api/where/bearing.json", validateAPIKey(api, api.bearingHandler))
	router.Handler(http.MethodGet, "/api/where/cardinal.json", validateAPIKey(api, api.cardinalHandler))
	router.Handler(http.MethodGet, "/api/where/dms.json", validateAPIKey(api, api.dmsHandler))
	router.Handler(http.MethodGet, "/api/where/decimal.json", validateAPIKey(api, api.decimalHandler))
	router.Handler(http.MethodGet, "/api/where/deviation.json", validateAPIKey(api, api.deviationHandler))

	router.Handler(http.MethodPost, "/api/where/orientation.json", validateAPIKey(api, api.createOrientationHandler))
	router.Handler(http.MethodGet, "/api/where/orientation/:id", validateAPIKey(api, api.orientationHandler))
	router.Handler(http.MethodDelete, "/api/where/orientation/:id", validateAPIKey(api, api.deleteOrientationHandler))
	router.Handler(http.MethodPost, "/api/where/orientation/:id/points", validateAPIKey(api, api.orientationClickHandler))
	router.Handler(http.MethodDelete, "/api/where/orientation/:id/points", validateAPIKey(api, api.orientationResetHandler))

	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	if api.Registry != nil {
		router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(api.Registry, promhttp.HandlerOpts{}))
	}
	if api.Config.Env != appconf.Production {
		webui.New(api.Application).SetWebUIRoutes(router)
	}
}
