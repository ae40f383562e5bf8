package service

import (
	"sort"

	"travelmap-api/internal/models"
)

// MaxPlaces caps the number of places returned by one search.
const MaxPlaces = 20

// RankPlaces returns the places sorted by distance, nearest first, keeping the input
// order between equal distances, truncated to MaxPlaces. The input is not modified.
func RankPlaces(places []models.PlaceRecord) []models.PlaceRecord {
	ranked := make([]models.PlaceRecord, len(places))
	copy(ranked, places)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})

	if len(ranked) > MaxPlaces {
		ranked = ranked[:MaxPlaces]
	}
	return ranked
}
