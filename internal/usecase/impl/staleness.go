// Package impl provides the use case implementations.
package impl

import (
	"footprint/internal/domain/entity"
	"footprint/internal/usecase"
	"footprint/internal/util"
)

// decideRefresh applies the freshness policy for the home surface caches.
//
// The city entry is stale when absent or when the current fix sits at or
// beyond radiusMeters from the coordinate it was geocoded for. The attraction
// snapshot is judged the same way against its own stored coordinate, never
// the city's, and its distance check applies even when no city entry exists;
// each slot answers only for its own coordinate. The two verdicts are
// independent; a fix can invalidate one cache and not the other. A distance
// of exactly radiusMeters counts as stale.
func decideRefresh(fix entity.GeoFix, loc *entity.Location, attractions *entity.AttractionCache, radiusMeters float64) usecase.RefreshDecision {
	var decision usecase.RefreshDecision

	if loc == nil || util.Distance(fix.Point(), loc.Point()) >= radiusMeters {
		decision.RefreshCity = true
	}
	if attractions == nil || util.Distance(fix.Point(), attractions.Point()) >= radiusMeters {
		decision.RefreshAttractions = true
	}

	return decision
}
