// Package usecase defines the application's use case interfaces and their
// request/response models.
package usecase

import (
	"context"

	"footprint/internal/domain/entity"
)

// RefreshDecision reports, per cached slot, whether a fresh backend fetch is
// required for the current fix. The two decisions are independent.
type RefreshDecision struct {
	RefreshCity        bool
	RefreshAttractions bool
}

// ExploreView is what the home surface renders: a city label, the coordinate
// it was resolved for and the nearby attraction list, plus flags telling the
// caller which parts came from a live fetch rather than cache.
type ExploreView struct {
	City                 string              `json:"city"`
	Latitude             float64             `json:"latitude"`
	Longitude            float64             `json:"longitude"`
	Attractions          []entity.Attraction `json:"attractions"`
	CityRefreshed        bool                `json:"cityRefreshed"`
	AttractionsRefreshed bool                `json:"attractionsRefreshed"`
}

// ExploreUsecase drives the location-aware home surface.
type ExploreUsecase interface {
	// RefreshSilent runs the automatic refresh: it never surfaces permission
	// or network problems, degrading to cached or default content instead.
	RefreshSilent(ctx context.Context) (*ExploreView, error)

	// RefreshExplicit runs a user-initiated refresh: it prompts for
	// permission if needed, reports location errors, and always re-fetches
	// attractions.
	RefreshExplicit(ctx context.Context) (*ExploreView, error)

	// HotDestinations returns the trending destination list, cached per
	// calendar day.
	HotDestinations(ctx context.Context) ([]entity.Destination, error)
}
