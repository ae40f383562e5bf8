// Package mapview renders search results as maps: a standalone Leaflet HTML
// document for embedding, and a GeoJSON feature collection.
package mapview

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"travelmap-api/internal/models"

	"github.com/google/uuid"
)

const defaultZoom = 15

//go:embed map.html.tmpl
var mapTemplate string

var mapPage = template.Must(template.New("map").Parse(mapTemplate))

type marker struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Color   string  `json:"color"`
	Popup   string  `json:"popup"`
	Tooltip string  `json:"tooltip"`
}

type page struct {
	MapID  string
	Zoom   int
	Origin marker
	Places []marker
}

// Renderer produces self-contained Leaflet map documents.
type Renderer struct {
	zoom int
}

func NewRenderer() *Renderer {
	return &Renderer{zoom: defaultZoom}
}

// Render draws the origin and one marker per place. The returned HTML needs no
// call back to this service to be displayed.
func (r *Renderer) Render(origin models.Coordinate, originLabel string, places []models.PlaceRecord) (string, error) {
	p := page{
		MapID: "map_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Zoom:  r.zoom,
		Origin: marker{
			Lat:     origin.Latitude,
			Lon:     origin.Longitude,
			Color:   originColor,
			Popup:   "📍 " + template.HTMLEscapeString(originLabel),
			Tooltip: "📍 Your searched location",
		},
		Places: make([]marker, 0, len(places)),
	}

	for i, place := range places {
		p.Places = append(p.Places, marker{
			Lat:     place.Latitude,
			Lon:     place.Longitude,
			Color:   ColorFor(i),
			Popup:   PopupHTML(place),
			Tooltip: fmt.Sprintf("%s (%dm)", template.HTMLEscapeString(place.Name), place.DistanceMeters),
		})
	}

	var buf bytes.Buffer
	if err := mapPage.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("mapview: failed to render map: %w", err)
	}
	return buf.String(), nil
}

// PopupHTML is the popup body of a place marker.
func PopupHTML(place models.PlaceRecord) string {
	return fmt.Sprintf(
		`<div style="width:200px"><h4>%s</h4><p><b>Type:</b> %s</p><p><b>Distance:</b> %dm</p><p><b>Address:</b> %s</p></div>`,
		template.HTMLEscapeString(place.Name),
		template.HTMLEscapeString(place.CategoryLabel),
		place.DistanceMeters,
		template.HTMLEscapeString(place.AddressHint),
	)
}
