package entity

import "github.com/paulmach/orb"

// Attraction is a nearby point of interest, normalized to a uniform shape
// regardless of which field names the backend happened to use.
type Attraction struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Tags     string `json:"tags"`
	Distance string `json:"distance"`
}

// Destination is a hot travel destination. Unlike attractions, destinations
// are not scoped to the user's location.
type Destination struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Tags     string `json:"tags"`
	Distance string `json:"distance"`
}

// AttractionCache is the single cached nearby-attraction snapshot. It is
// valid only on the calendar day it was written and while the device stays
// within the freshness radius of the coordinates it was fetched for.
type AttractionCache struct {
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Attractions []Attraction `json:"attractions"`
	Timestamp   int64        `json:"timestamp"` // epoch millis, stamped on write
}

// Point returns the coordinates the snapshot was fetched for.
func (c *AttractionCache) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// DestinationCache is the single cached hot-destination snapshot. Validity
// is same-calendar-day only; there is no distance dimension.
type DestinationCache struct {
	Destinations []Destination `json:"destinations"`
	Timestamp    int64         `json:"timestamp"`
}
