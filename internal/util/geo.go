package util

import (
	"fmt"
	"math"

	"footprint/internal/domain/entity"

	"github.com/paulmach/orb"
)

// earthRadiusMeters is the fixed sphere radius used for all distance math.
const earthRadiusMeters = 6371000.0

// Distance calculates the great circle distance between two points in meters.
func Distance(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lng1 := a.Lon() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	lng2 := b.Lon() * math.Pi / 180

	deltaLat := lat2 - lat1
	deltaLng := lng2 - lng1

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// FormatDistance renders meters as "999m" below one kilometer and "1.2km"
// above it.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0fm", meters)
	}

	return fmt.Sprintf("%.1fkm", meters/1000)
}

// TrackDistance sums the consecutive-pair distances of a recorded track in
// meters. Fewer than two points yield 0.
func TrackDistance(points []entity.TrackPoint) float64 {
	var total float64
	for i := 0; i < len(points)-1; i++ {
		total += Distance(points[i].Point(), points[i+1].Point())
	}

	return total
}

// TrackDuration returns last minus first timestamp in whole seconds. Points
// are assumed time-ordered; fewer than two points yield 0.
func TrackDuration(points []entity.TrackPoint) int64 {
	if len(points) < 2 {
		return 0
	}

	return (points[len(points)-1].Timestamp - points[0].Timestamp) / 1000
}

// AverageSpeedKmh derives km/h from meters and seconds, returning 0 for a
// zero duration.
func AverageSpeedKmh(distanceMeters float64, durationSeconds int64) float64 {
	if durationSeconds == 0 {
		return 0
	}

	return (distanceMeters / 1000) / (float64(durationSeconds) / 3600)
}
