package restapi

import (
	"net/http"

	"qibla.arahkiblat.org/internal/models"
	"qibla.arahkiblat.org/internal/qibla"
	"qibla.arahkiblat.org/internal/utils"
)

func (api *RestAPI) qiblaHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, fieldErrors := utils.ParseRequiredFloatParam(query, "lat", nil)
	lon, fieldErrors := utils.ParseRequiredFloatParam(query, "lon", fieldErrors)
	buildingBearing, fieldErrors := utils.ParseFloatParam(query, "buildingBearing", fieldErrors)

	if len(fieldErrors) == 0 {
		fieldErrors = utils.ValidateLocationParams(lat, lon, "lat", "lon", fieldErrors)
		if err := utils.ValidateBearing(buildingBearing); err != nil {
			fieldErrors["buildingBearing"] = append(fieldErrors["buildingBearing"], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	report := api.Calculator.Report(r.Context(), qibla.Input{
		Location:        models.NewGeoPoint(lat, lon),
		BuildingBearing: buildingBearing,
	})
	api.sendResponse(w, r, models.NewEntryResponse(report))
}

func (api *RestAPI) qiblaDMSHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fieldErrors := utils.RequireParams(query, nil, "latDeg", "lonDeg")
	latDMS, fieldErrors := parseDMSParams(query, "lat", "latSouth", fieldErrors)
	lonDMS, fieldErrors := parseDMSParams(query, "lon", "lonWest", fieldErrors)
	buildingBearing, fieldErrors := utils.ParseFloatParam(query, "buildingBearing", fieldErrors)

	var location models.GeoPoint
	if len(fieldErrors) == 0 {
		fieldErrors = validateDMSParams(latDMS, "lat", fieldErrors)
		fieldErrors = validateDMSParams(lonDMS, "lon", fieldErrors)
		if err := utils.ValidateBearing(buildingBearing); err != nil {
			fieldErrors["buildingBearing"] = append(fieldErrors["buildingBearing"], err.Error())
		}
	}
	if len(fieldErrors) == 0 {
		location = qibla.LocationFromDMS(latDMS, lonDMS)
		fieldErrors = utils.ValidateLocationParams(location.Lat, location.Lon, "latDeg", "lonDeg", fieldErrors)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	report := api.Calculator.Report(r.Context(), qibla.Input{
		Location:        location,
		BuildingBearing: buildingBearing,
	})
	api.sendResponse(w, r, models.NewEntryResponse(report))
}
