// Package filter joins airport records against named bounding boxes
// using an R-Tree spatial index.
package filter

import (
	"sort"

	"github.com/avgeo/icaobox/internal/airports"
	"github.com/avgeo/icaobox/internal/geo"

	"github.com/dhconnelly/rtreego"
)

const (
	tolerance   = 0.01
	minChildren = 25
	maxChildren = 50
	dimensions  = 2
)

// spatialAirport wraps an airport to implement rtreego.Spatial.
type spatialAirport struct {
	airport airports.Airport
	rect    *rtreego.Rect
}

func (s *spatialAirport) Bounds() *rtreego.Rect {
	return s.rect
}

// Index is an R-Tree over airport locations, queried once per box.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds the index. Airports with out-of-range coordinates
// are not inserted; they can never match a valid box.
func NewIndex(list []airports.Airport) *Index {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)

	for _, a := range list {
		if !a.Location.Valid() {
			continue
		}
		p := rtreego.Point{a.Location.Lat, a.Location.Lon}
		tree.Insert(&spatialAirport{airport: a, rect: p.ToRect(tolerance)})
	}

	return &Index{tree: tree}
}

// Search returns all indexed airports inside the box. Candidates come
// from the R-Tree; a strict inclusive containment check filters out
// near-misses introduced by the index tolerance. A box that wraps the
// antimeridian is queried as two rectangles.
func (ix *Index) Search(box geo.Box) []airports.Airport {
	var found []airports.Airport

	for _, rect := range queryRects(box) {
		for _, result := range ix.tree.SearchIntersect(rect) {
			item, ok := result.(*spatialAirport)
			if !ok {
				continue
			}
			loc := item.airport.Location
			if box.Contains(loc.Lat, loc.Lon) {
				found = append(found, item.airport)
			}
		}
	}

	return found
}

// queryRects converts a box into R-Tree query rectangles, splitting
// wrapping boxes at the antimeridian. Rectangles are padded by the
// index tolerance so edge points are never missed.
func queryRects(box geo.Box) []*rtreego.Rect {
	if box.Wraps() {
		west := geo.Box{Name: box.Name, MinLat: box.MinLat, MaxLat: box.MaxLat, MinLon: box.MinLon, MaxLon: 180}
		east := geo.Box{Name: box.Name, MinLat: box.MinLat, MaxLat: box.MaxLat, MinLon: -180, MaxLon: box.MaxLon}
		return append(queryRects(west), queryRects(east)...)
	}

	origin := rtreego.Point{box.MinLat - tolerance, box.MinLon - tolerance}
	lengths := []float64{
		box.MaxLat - box.MinLat + 2*tolerance,
		box.MaxLon - box.MinLon + 2*tolerance,
	}

	rect, err := rtreego.NewRect(origin, lengths)
	if err != nil {
		return nil
	}
	return []*rtreego.Rect{rect}
}

// Result is the full output of one filter run.
type Result struct {
	Rows   []airports.Row
	PerBox map[string]int
}

// Run matches every airport against every box. Each (box, airport)
// pair produces one row, deduplicated per box by ICAO with the first
// occurrence winning. Rows are sorted by box name, then ICAO.
func Run(list []airports.Airport, boxes []geo.Box) Result {
	ix := NewIndex(list)

	result := Result{PerBox: make(map[string]int, len(boxes))}
	for _, box := range boxes {
		result.PerBox[box.Name] = 0

		seen := make(map[string]bool)
		for _, a := range ix.Search(box) {
			if seen[a.ICAO] {
				continue
			}
			seen[a.ICAO] = true
			result.PerBox[box.Name]++

			result.Rows = append(result.Rows, airports.Row{
				BoxName: box.Name,
				ICAO:    a.ICAO,
				Lat:     a.Location.Lat,
				Lon:     a.Location.Lon,
				Ident:   a.Ident,
				Name:    a.Name,
			})
		}
	}

	sort.Slice(result.Rows, func(i, j int) bool {
		if result.Rows[i].BoxName != result.Rows[j].BoxName {
			return result.Rows[i].BoxName < result.Rows[j].BoxName
		}
		return result.Rows[i].ICAO < result.Rows[j].ICAO
	})

	return result
}

// Total returns the number of matched rows across all boxes.
func (r Result) Total() int {
	return len(r.Rows)
}
