// Package geo holds the geographic value types shared by both tools:
// GeoJSON containers, locations and axis-aligned bounding boxes.
package geo

import "encoding/json"

// FeatureCollection represents a GeoJSON feature collection. Existing
// features are kept as raw JSON so corridor geometries of any type
// (LineString, Polygon, ...) pass through untouched.
type FeatureCollection struct {
	Type     string            `json:"type"`
	Name     string            `json:"name,omitempty"`
	CRS      json.RawMessage   `json:"crs,omitempty"`
	BBox     json.RawMessage   `json:"bbox,omitempty"`
	Features []json.RawMessage `json:"features"`
}

// Valid reports whether the collection has the required GeoJSON shape.
func (fc *FeatureCollection) Valid() bool {
	return fc.Type == "FeatureCollection" && fc.Features != nil
}

// PointFeature is a newly constructed GeoJSON Point feature.
type PointFeature struct {
	Type       string                 `json:"type"`
	ID         string                 `json:"id,omitempty"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   PointGeometry          `json:"geometry"`
}

// PointGeometry holds Point coordinates in GeoJSON [Lon, Lat] order.
type PointGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewPointFeature builds a Point feature at the given coordinates.
func NewPointFeature(id string, lon, lat float64, props map[string]interface{}) PointFeature {
	return PointFeature{
		Type: "Feature",
		ID:   id,
		Geometry: PointGeometry{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
		Properties: props,
	}
}
