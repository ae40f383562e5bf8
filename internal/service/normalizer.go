package service

import (
	"math"

	"travelmap-api/internal/models"

	"github.com/tidwall/geodesic"
)

// unknownAddress is shown when a place carries no address tag.
const unknownAddress = "Unknown"

// Normalizer converts raw Overpass elements into place records.
type Normalizer struct {
	catalog *Catalog
}

func NewNormalizer(catalog *Catalog) *Normalizer {
	return &Normalizer{catalog: catalog}
}

// Normalize keeps named elements that have a position and measures their distance from origin.
// The input order is preserved.
func (n *Normalizer) Normalize(origin models.Coordinate, records []models.RawPOIRecord) []models.PlaceRecord {
	places := make([]models.PlaceRecord, 0, len(records))
	for _, record := range records {
		name := record.Tags.Get("name")
		if name == "" {
			continue
		}

		position, ok := record.Position()
		if !ok {
			continue
		}

		places = append(places, models.PlaceRecord{
			Name:           name,
			CategoryLabel:  n.catalog.Label(n.catalog.RawCategory(record.Tags)),
			Coordinate:     position,
			AddressHint:    addressHint(record.Tags),
			DistanceMeters: DistanceMeters(origin, position),
			Description:    record.Tags.Get("description"),
		})
	}
	return places
}

// DistanceMeters is the WGS-84 geodesic distance between a and b, rounded to whole meters.
func DistanceMeters(a, b models.Coordinate) int {
	var d float64
	geodesic.WGS84.Inverse(a.Latitude, a.Longitude, b.Latitude, b.Longitude, &d, nil, nil)
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	return int(math.Round(d))
}

func addressHint(tags models.Tags) string {
	if street := tags.Get("addr:street"); street != "" {
		return street
	}
	if full := tags.Get("addr:full"); full != "" {
		return full
	}
	return unknownAddress
}
