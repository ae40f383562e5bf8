package service

import (
	"fmt"
	"strconv"
	"strings"

	"travelmap-api/internal/models"
)

const (
	// DefaultRadiusMeters is used when the caller gives no radius.
	DefaultRadiusMeters = 1000
	// upstreamTimeoutSeconds is the server-side timeout requested from Overpass.
	upstreamTimeoutSeconds = 15
)

// QueryBuilder turns a search origin and category selector into Overpass QL.
type QueryBuilder struct {
	catalog *Catalog
}

func NewQueryBuilder(catalog *Catalog) *QueryBuilder {
	return &QueryBuilder{catalog: catalog}
}

// Build returns a query matching nodes and ways around origin. Ways are returned
// with their center so every element has a coordinate.
func (b *QueryBuilder) Build(origin models.Coordinate, radiusMeters int, selector string) models.QuerySpec {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}

	around := fmt.Sprintf("(around:%d,%s,%s)",
		radiusMeters,
		strconv.FormatFloat(origin.Latitude, 'f', -1, 64),
		strconv.FormatFloat(origin.Longitude, 'f', -1, 64),
	)

	var filters []string
	if selector == models.GeneralCategory {
		for _, group := range b.catalog.Curated {
			filters = append(filters, fmt.Sprintf(`["%s"~"%s"]`, group.Key, strings.Join(group.Values, "|")))
		}
	} else {
		filters = append(filters, fmt.Sprintf(`["amenity"="%s"]`, selector))
	}

	var q strings.Builder
	fmt.Fprintf(&q, "[out:json][timeout:%d];\n(\n", upstreamTimeoutSeconds)
	for _, filter := range filters {
		fmt.Fprintf(&q, "  node%s%s;\n", filter, around)
		fmt.Fprintf(&q, "  way%s%s;\n", filter, around)
	}
	q.WriteString(");\nout center;\n")

	return models.QuerySpec{
		Query:        q.String(),
		Origin:       origin,
		RadiusMeters: radiusMeters,
		Selector:     selector,
	}
}
