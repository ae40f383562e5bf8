package mapview

import (
	"travelmap-api/internal/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection converts a search origin and its places to GeoJSON.
// The origin is the first feature and is flagged with "origin": true.
func FeatureCollection(origin models.GeocodeResult, places []models.PlaceRecord) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	start := geojson.NewFeature(orb.Point{origin.Longitude, origin.Latitude})
	start.Properties["origin"] = true
	start.Properties["address"] = origin.CanonicalAddress
	start.Properties["color"] = originColor
	fc.Append(start)

	for i, place := range places {
		f := geojson.NewFeature(orb.Point{place.Longitude, place.Latitude})
		f.Properties["origin"] = false
		f.Properties["name"] = place.Name
		f.Properties["type"] = place.CategoryLabel
		f.Properties["address"] = place.AddressHint
		f.Properties["distance"] = place.DistanceMeters
		f.Properties["description"] = place.Description
		f.Properties["color"] = ColorFor(i)
		fc.Append(f)
	}

	return fc
}
