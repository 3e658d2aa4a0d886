// Package geojson holds the GeoJSON output types used by the map endpoint and the
// validation of route geometries stored as text.
package geojson

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ContentType is the media type registered for GeoJSON
const ContentType = "application/geo+json"

// Geometry is a GeoJSON Point. Coordinates are ordered [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Feature is a single GeoJSON feature
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection is the top level GeoJSON document
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewPoint builds a Point geometry from a latitude/longitude pair
func NewPoint(lat, lon float64) Geometry {
	return Geometry{Type: "Point", Coordinates: []float64{lon, lat}}
}

// NewFeature builds a Feature around geometry
func NewFeature(geometry Geometry, properties map[string]interface{}) Feature {
	if properties == nil {
		properties = map[string]interface{}{}
	}
	return Feature{Type: "Feature", Geometry: geometry, Properties: properties}
}

// NewFeatureCollection never returns a nil feature slice so an empty result encodes as []
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// Marshal encodes a collection
func (fc FeatureCollection) Marshal() ([]byte, error) {
	return json.Marshal(fc)
}

var (
	ErrNotLineString   = errors.New("geometry type must be LineString")
	ErrTooFewPositions = errors.New("a LineString needs at least two positions")
)

type lineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// ValidateLineString checks that raw is a GeoJSON LineString with in-range positions
func ValidateLineString(raw string) error {
	var ls lineString
	if err := json.Unmarshal([]byte(raw), &ls); err != nil {
		return fmt.Errorf("invalid GeoJSON: %w", err)
	}
	if ls.Type != "LineString" {
		return ErrNotLineString
	}
	if len(ls.Coordinates) < 2 {
		return ErrTooFewPositions
	}
	for i, pos := range ls.Coordinates {
		if len(pos) < 2 {
			return fmt.Errorf("position %d: expected [longitude, latitude]", i)
		}
		if pos[0] < -180 || pos[0] > 180 || pos[1] < -90 || pos[1] > 90 {
			return fmt.Errorf("position %d: coordinates out of range", i)
		}
	}
	return nil
}

// ValidDocument reports whether raw is any well-formed JSON value
func ValidDocument(raw string) bool {
	return json.Valid([]byte(raw))
}
