package filter

import (
	"testing"

	"github.com/avgeo/icaobox/internal/airports"
	"github.com/avgeo/icaobox/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airport(icao string, lat, lon float64) airports.Airport {
	return airports.Airport{ICAO: icao, Location: geo.Location{Lat: lat, Lon: lon}}
}

func TestRunSingleMatch(t *testing.T) {
	list := []airports.Airport{airport("KJFK", 40.64, -73.78)}
	boxes := []geo.Box{{Name: "NE", MinLat: 40, MaxLat: 41, MinLon: -74, MaxLon: -73}}

	result := Run(list, boxes)
	require.Len(t, result.Rows, 1)

	assert.Equal(t, "NE", result.Rows[0].BoxName)
	assert.Equal(t, "KJFK", result.Rows[0].ICAO)
	assert.Equal(t, 40.64, result.Rows[0].Lat)
	assert.Equal(t, -73.78, result.Rows[0].Lon)
	assert.Equal(t, 1, result.PerBox["NE"])
	assert.Equal(t, 1, result.Total())
}

func TestRunContainmentBiconditional(t *testing.T) {
	list := []airports.Airport{
		airport("KSFO", 37.62, -122.37), // inside Bay Area
		airport("KOAK", 37.72, -122.22), // inside Bay Area
		airport("KLAX", 33.94, -118.41), // outside
		airport("KJFK", 40.64, -73.78),  // outside
	}
	boxes := []geo.Box{{Name: "Bay Area", MinLat: 36.9, MaxLat: 38.0, MinLon: -123.0, MaxLon: -121.5}}

	result := Run(list, boxes)
	require.Len(t, result.Rows, 2)

	matched := map[string]bool{}
	for _, row := range result.Rows {
		matched[row.ICAO] = true
	}
	assert.True(t, matched["KSFO"])
	assert.True(t, matched["KOAK"])
	assert.False(t, matched["KLAX"])
	assert.False(t, matched["KJFK"])
}

func TestRunInclusiveBoundary(t *testing.T) {
	list := []airports.Airport{airport("KEDG", 40.0, -73.5)}
	boxes := []geo.Box{{Name: "NE", MinLat: 40, MaxLat: 41, MinLon: -74, MaxLon: -73}}

	result := Run(list, boxes)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "KEDG", result.Rows[0].ICAO)
}

func TestRunMultipleBoxes(t *testing.T) {
	list := []airports.Airport{airport("KJFK", 40.64, -73.78)}
	boxes := []geo.Box{
		{Name: "NE", MinLat: 40, MaxLat: 41, MinLon: -74, MaxLon: -73},
		{Name: "East Coast", MinLat: 25, MaxLat: 45, MinLon: -82, MaxLon: -66},
		{Name: "West", MinLat: 32, MaxLat: 42, MinLon: -125, MaxLon: -114},
	}

	result := Run(list, boxes)
	require.Len(t, result.Rows, 2) // one row per matching box

	assert.Equal(t, "East Coast", result.Rows[0].BoxName) // sorted by box name
	assert.Equal(t, "NE", result.Rows[1].BoxName)
	assert.Equal(t, 0, result.PerBox["West"])
}

func TestRunDedupesPerBox(t *testing.T) {
	// Same ICAO twice in the input, as a dirty source file would have
	list := []airports.Airport{
		airport("KJFK", 40.64, -73.78),
		airport("KJFK", 40.64, -73.78),
	}
	boxes := []geo.Box{{Name: "NE", MinLat: 40, MaxLat: 41, MinLon: -74, MaxLon: -73}}

	result := Run(list, boxes)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, 1, result.PerBox["NE"])
}

func TestRunSortedOutput(t *testing.T) {
	list := []airports.Airport{
		airport("KLGA", 40.78, -73.87),
		airport("KJFK", 40.64, -73.78),
		airport("KEWR", 40.69, -74.17),
	}
	boxes := []geo.Box{{Name: "NYC", MinLat: 40, MaxLat: 41, MinLon: -74.5, MaxLon: -73}}

	result := Run(list, boxes)
	require.Len(t, result.Rows, 3)
	assert.Equal(t, "KEWR", result.Rows[0].ICAO)
	assert.Equal(t, "KJFK", result.Rows[1].ICAO)
	assert.Equal(t, "KLGA", result.Rows[2].ICAO)
}

func TestRunNoBoxes(t *testing.T) {
	list := []airports.Airport{airport("KJFK", 40.64, -73.78)}

	result := Run(list, nil)
	assert.Empty(t, result.Rows)
	assert.Equal(t, 0, result.Total())
}

func TestRunAntimeridianBox(t *testing.T) {
	list := []airports.Airport{
		airport("NFFN", -17.75, 177.44),  // Nadi, west of the line
		airport("PLCH", 1.99, -157.35),   // Kiritimati, far outside
		airport("NSTU", -14.33, -170.71), // Pago Pago, outside the wrap
		airport("NGFU", -8.52, 179.20),   // Funafuti, wrong latitude
	}
	boxes := []geo.Box{{Name: "Fiji", MinLat: -20, MaxLat: -15, MinLon: 176, MaxLon: -179}}

	result := Run(list, boxes)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "NFFN", result.Rows[0].ICAO)
}

func TestIndexSearch(t *testing.T) {
	ix := NewIndex([]airports.Airport{
		airport("KSFO", 37.62, -122.37),
		airport("KLAX", 33.94, -118.41),
		airport("KSAN", 32.73, -117.19),
		airport("KJFK", 40.64, -73.78),
	})

	// Box covering California
	found := ix.Search(geo.Box{Name: "CA", MinLat: 32.0, MaxLat: 42.0, MinLon: -125.0, MaxLon: -114.0})
	require.Len(t, found, 3)

	icaos := map[string]bool{}
	for _, a := range found {
		icaos[a.ICAO] = true
	}
	assert.True(t, icaos["KSFO"])
	assert.True(t, icaos["KLAX"])
	assert.True(t, icaos["KSAN"])
	assert.False(t, icaos["KJFK"])
}

func TestIndexSkipsInvalidLocations(t *testing.T) {
	ix := NewIndex([]airports.Airport{
		airport("KJFK", 40.64, -73.78),
		airport("XBAD", 95.0, 0),
	})

	found := ix.Search(geo.Box{Name: "all", MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: 180})
	require.Len(t, found, 1)
	assert.Equal(t, "KJFK", found[0].ICAO)
}
