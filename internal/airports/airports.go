// Package airports reads airport records and reads/writes the filtered
// box-match report CSV that links the two tools.
package airports

import (
	"github.com/avgeo/icaobox/internal/geo"
)

// Airport is one input record from the airports CSV.
type Airport struct {
	ICAO     string
	Location geo.Location
	Ident    string
	Name     string
}

// Row is one filtered (box, airport) pair in the report CSV.
type Row struct {
	BoxName string
	ICAO    string
	Lat     float64
	Lon     float64
	Ident   string
	Name    string
}
