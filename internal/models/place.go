package models

// GeneralCategory selects the curated multi-namespace category set instead of a single amenity.
const GeneralCategory = "general"

// QuerySpec is an Overpass QL query together with the parameters it was built from.
type QuerySpec struct {
	Query        string
	Origin       Coordinate
	RadiusMeters int
	Selector     string
}

// RawPOIRecord is one Overpass element as returned by the API.
// Point is set for nodes, Center for ways queried with "out center".
type RawPOIRecord struct {
	ID     int64
	Type   string
	Point  *Coordinate
	Center *Coordinate
	Tags   Tags
}

// Position returns the element's own point, falling back to its centroid.
func (r RawPOIRecord) Position() (Coordinate, bool) {
	if r.Point != nil {
		return *r.Point, true
	}
	if r.Center != nil {
		return *r.Center, true
	}
	return Coordinate{}, false
}

// PlaceRecord is a normalized point of interest ready to be returned to the client.
type PlaceRecord struct {
	Name          string `json:"name"`
	CategoryLabel string `json:"type"`
	Coordinate
	AddressHint    string `json:"address"`
	DistanceMeters int    `json:"distance"`
	Description    string `json:"description"`
}

// SearchResponse is the combined result of one place search.
type SearchResponse struct {
	Success  bool          `json:"success"`
	Location GeocodeResult `json:"location"`
	Places   []PlaceRecord `json:"places"`
	MapHTML  string        `json:"map_html,omitempty"`
	Message  string        `json:"message,omitempty"`
	Error    string        `json:"error,omitempty"`
}
