package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// TrackPoint is a timestamped fix recorded while a track is in progress.
type TrackPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"` // epoch millis
}

// Point returns the track point's coordinates as an orb.Point.
func (p TrackPoint) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// Track is a recorded travel track with its derived statistics.
type Track struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	City            string       `json:"city,omitempty"`
	Points          []TrackPoint `json:"points"`
	DistanceMeters  float64      `json:"distanceMeters"`
	DurationSeconds int64        `json:"durationSeconds"`
	AverageSpeedKmh float64      `json:"averageSpeedKmh"`
	StartedAt       time.Time    `json:"startedAt"`
	EndedAt         time.Time    `json:"endedAt,omitzero"`
}
