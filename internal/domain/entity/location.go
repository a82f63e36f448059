// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

// GeoFix is a single latitude/longitude reading from the device at a point
// in time. It is transient and never persisted directly.
type GeoFix struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the fix to an orb.Point (longitude/latitude order).
func (f GeoFix) Point() orb.Point {
	return orb.Point{f.Longitude, f.Latitude}
}

// Location is the geocoded city detail for the most recently resolved fix.
// At most one Location is cached at a time; it is overwritten wholesale on
// each successful city refresh and its validity is purely distance-gated.
type Location struct {
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	City             string          `json:"city"`
	Province         string          `json:"province,omitempty"`
	District         string          `json:"district,omitempty"`
	Township         string          `json:"township,omitempty"`
	Street           string          `json:"street,omitempty"`
	StreetNumber     string          `json:"streetNumber,omitempty"`
	Adcode           string          `json:"adcode,omitempty"`
	CityCode         string          `json:"cityCode,omitempty"`
	FormattedAddress string          `json:"formattedAddress,omitempty"`
	Detail           json.RawMessage `json:"detail,omitempty"` // raw geocoder payload, kept opaque
}

// Point returns the location's coordinates as an orb.Point.
func (l *Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// Fix returns the coordinates the location was resolved for.
func (l *Location) Fix() GeoFix {
	return GeoFix{Latitude: l.Latitude, Longitude: l.Longitude}
}
