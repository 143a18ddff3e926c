package restapi

import (
	"net/http"
	"net/url"

	"qibla.arahkiblat.org/internal/models"
	"qibla.arahkiblat.org/internal/utils"
)

func (api *RestAPI) bearingHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromLat, fieldErrors := utils.ParseRequiredFloatParam(query, "fromLat", nil)
	fromLon, fieldErrors := utils.ParseRequiredFloatParam(query, "fromLon", fieldErrors)
	toLat, fieldErrors := utils.ParseRequiredFloatParam(query, "toLat", fieldErrors)
	toLon, fieldErrors := utils.ParseRequiredFloatParam(query, "toLon", fieldErrors)

	if len(fieldErrors) == 0 {
		fieldErrors = utils.ValidateLocationParams(fromLat, fromLon, "fromLat", "fromLon", fieldErrors)
		fieldErrors = utils.ValidateLocationParams(toLat, toLon, "toLat", "toLon", fieldErrors)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	entry := api.Calculator.Bearing(r.Context(),
		models.NewGeoPoint(fromLat, fromLon),
		models.NewGeoPoint(toLat, toLon))
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}

// cardinalHandler classifies any finite bearing; values outside [0, 360) wrap.
func (api *RestAPI) cardinalHandler(w http.ResponseWriter, r *http.Request) {
	bearing, fieldErrors := utils.ParseRequiredFloatParam(r.URL.Query(), "bearing", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	entry := api.Calculator.Cardinal(r.Context(), bearing)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}

func (api *RestAPI) dmsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	value, fieldErrors := utils.ParseRequiredFloatParam(query, "value", nil)
	carry, fieldErrors := utils.ParseBoolParam(query, "carry", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	entry := api.Calculator.ToDMS(r.Context(), value, carry)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}

func (api *RestAPI) decimalHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fieldErrors := utils.RequireParams(query, nil, "deg")
	dms, fieldErrors := parseDMSParams(query, "", "negative", fieldErrors)
	if len(fieldErrors) == 0 {
		fieldErrors = validateDMSParams(dms, "", fieldErrors)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	entry := api.Calculator.ToDecimal(r.Context(), dms)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}

func (api *RestAPI) deviationHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	target, fieldErrors := utils.ParseRequiredFloatParam(query, "target", nil)
	measured, fieldErrors := utils.ParseRequiredFloatParam(query, "measured", fieldErrors)

	if len(fieldErrors) == 0 {
		if err := utils.ValidateBearing(target); err != nil {
			fieldErrors["target"] = append(fieldErrors["target"], err.Error())
		}
		if err := utils.ValidateBearing(measured); err != nil {
			fieldErrors["measured"] = append(fieldErrors["measured"], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	entry := api.Calculator.Deviation(r.Context(), target, measured)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}

// parseDMSParams reads <prefix>Deg, <prefix>Min and <prefix>Sec (or deg, min and sec when
// prefix is empty) plus a boolean sign flag. Missing minutes and seconds are zero.
func parseDMSParams(query url.Values, prefix, signKey string, fieldErrors map[string][]string) (models.DMSAngle, map[string][]string) {
	degKey, minKey, secKey := dmsKeys(prefix)

	var dms models.DMSAngle
	dms.Degrees, fieldErrors = utils.ParseIntParam(query, degKey, fieldErrors)
	dms.Minutes, fieldErrors = utils.ParseIntParam(query, minKey, fieldErrors)
	dms.Seconds, fieldErrors = utils.ParseFloatParam(query, secKey, fieldErrors)
	dms.IsNegative, fieldErrors = utils.ParseBoolParam(query, signKey, fieldErrors)
	return dms, fieldErrors
}

func validateDMSParams(dms models.DMSAngle, prefix string, fieldErrors map[string][]string) map[string][]string {
	if err := utils.ValidateDMS(dms.Degrees, dms.Minutes, dms.Seconds); err != nil {
		degKey, _, _ := dmsKeys(prefix)
		fieldErrors[degKey] = append(fieldErrors[degKey], err.Error())
	}
	return fieldErrors
}

func dmsKeys(prefix string) (degKey, minKey, secKey string) {
	if prefix == "" {
		return "deg", "min", "sec"
	}
	return prefix + "Deg", prefix + "Min", prefix + "Sec"
}
