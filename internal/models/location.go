package models

// Coordinate is a WGS84 point. Values are never mutated after geocoding produced them.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// GeocodeResult is the outcome of resolving free text to a coordinate.
// When Succeeded is false the coordinate is meaningless and Error says why.
type GeocodeResult struct {
	Coordinate
	CanonicalAddress string `json:"address"`
	Succeeded        bool   `json:"success"`
	Error            string `json:"error,omitempty"`
}

// FailedGeocode builds a soft geocoding failure.
func FailedGeocode(reason string) GeocodeResult {
	return GeocodeResult{Succeeded: false, Error: reason}
}
