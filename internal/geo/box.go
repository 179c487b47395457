package geo

import "fmt"

// Location is a geographic position in degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the location is within geographic bounds,
// inclusive of the poles and the antimeridian.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

// Box is a named axis-aligned rectangle in latitude/longitude space.
// A box with MinLon > MaxLon wraps across the antimeridian.
type Box struct {
	Name   string  `json:"name" yaml:"name"`
	MinLat float64 `json:"min_lat" yaml:"min_lat"`
	MaxLat float64 `json:"max_lat" yaml:"max_lat"`
	MinLon float64 `json:"min_lon" yaml:"min_lon"`
	MaxLon float64 `json:"max_lon" yaml:"max_lon"`
}

// Contains reports whether the point lies inside the box. All four
// edges are inclusive.
func (b Box) Contains(lat, lon float64) bool {
	if lat < b.MinLat || lat > b.MaxLat {
		return false
	}

	if b.Wraps() {
		return lon >= b.MinLon || lon <= b.MaxLon
	}
	return lon >= b.MinLon && lon <= b.MaxLon
}

// Wraps reports whether the box crosses the antimeridian.
func (b Box) Wraps() bool {
	return b.MinLon > b.MaxLon
}

// Validate checks the box definition and returns ErrMalformedInput
// describing the first problem found.
func (b Box) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: box has an empty name", ErrMalformedInput)
	}
	if b.MinLat > b.MaxLat {
		return fmt.Errorf("%w: box %q has min_lat > max_lat", ErrMalformedInput, b.Name)
	}
	if b.MinLat < -90 || b.MinLat > 90 || b.MaxLat < -90 || b.MaxLat > 90 {
		return fmt.Errorf("%w: box %q has latitude outside [-90, 90]", ErrMalformedInput, b.Name)
	}
	if b.MinLon < -180 || b.MinLon > 180 || b.MaxLon < -180 || b.MaxLon > 180 {
		return fmt.Errorf("%w: box %q has longitude outside [-180, 180]", ErrMalformedInput, b.Name)
	}
	return nil
}
