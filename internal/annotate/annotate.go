// Package annotate appends airport Point features to a corridor
// GeoJSON feature collection.
package annotate

import (
	"encoding/json"
	"sort"

	"github.com/avgeo/icaobox/internal/airports"
	"github.com/avgeo/icaobox/internal/geo"
)

// Summary reports what one annotation run did.
type Summary struct {
	RowsUsed    int
	PointsAdded int
}

type airportPoint struct {
	lat   float64
	lon   float64
	boxes map[string]bool
}

// Run aggregates filtered rows to one Point feature per unique ICAO
// and appends them after the existing features, which are untouched.
// When the same ICAO appears for several boxes, the first coordinates
// win and the box names are collected into a sorted list property.
func Run(fc *geo.FeatureCollection, rows []airports.Row) (Summary, error) {
	points := make(map[string]*airportPoint)
	for _, row := range rows {
		p, ok := points[row.ICAO]
		if !ok {
			p = &airportPoint{lat: row.Lat, lon: row.Lon, boxes: make(map[string]bool)}
			points[row.ICAO] = p
		}
		p.boxes[row.BoxName] = true
	}

	icaos := make([]string, 0, len(points))
	for icao := range points {
		icaos = append(icaos, icao)
	}
	sort.Strings(icaos)

	for _, icao := range icaos {
		p := points[icao]

		boxNames := make([]string, 0, len(p.boxes))
		for name := range p.boxes {
			boxNames = append(boxNames, name)
		}
		sort.Strings(boxNames)

		feature := geo.NewPointFeature("ICAO_"+icao, p.lon, p.lat, map[string]interface{}{
			"type":      "airport",
			"icao":      icao,
			"boxes":     boxNames,
			"box_count": len(boxNames),
		})

		raw, err := json.Marshal(feature)
		if err != nil {
			return Summary{}, err
		}
		fc.Features = append(fc.Features, raw)
	}

	return Summary{RowsUsed: len(rows), PointsAdded: len(icaos)}, nil
}
