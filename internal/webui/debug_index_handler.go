package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"qibla.arahkiblat.org/internal/app"
	"qibla.arahkiblat.org/internal/models"
	"qibla.arahkiblat.org/internal/qibla"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

// Sample input for the report dump: Yogyakarta and a typical measured mosque wall.
var sampleInput = qibla.Input{
	Location:        models.NewGeoPoint(-7.8697, 110.3989),
	BuildingBearing: 283.9,
}

type WebUI struct {
	*app.Application
}

func New(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	dataStruct := debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	var data interface{}
	var title string

	switch r.URL.Query().Get("dataType") {
	case "config":
		cfg := webUI.Config
		cfg.ApiKeys = redact(cfg.ApiKeys)
		data = cfg
		title = "Configuration"
	case "sessions":
		data = webUI.Sessions.Snapshots()
		title = "Orientation Sessions"
	case "report":
		data = qibla.Calculate(sampleInput)
		title = "Sample Qibla Report"
	default:
		data = map[string]string{
			"error": "Please use one of the following: config, sessions, report.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}

func redact(keys []string) []string {
	out := make([]string, len(keys))
	for i := range keys {
		out[i] = "********"
	}
	return out
}
