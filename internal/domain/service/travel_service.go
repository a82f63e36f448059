package service

import (
	"context"
	"io"

	"footprint/internal/domain/entity"
)

// GeneratePlanRequest is the payload for itinerary generation.
type GeneratePlanRequest struct {
	City       string `json:"city"`
	Days       int    `json:"days"`
	Preference string `json:"preference,omitempty"`
}

// GeneratePostcardRequest is the payload for postcard generation. Data
// carries the source track or plan verbatim.
type GeneratePostcardRequest struct {
	Type string `json:"type"` // "track" or "plan"
	Data any    `json:"data"`
}

// TravelService is the remote travel backend. Every request carries the
// cached bearer token when one exists; implementations translate transport
// failures, non-success inner codes and 401 responses into the domain error
// taxonomy.
type TravelService interface {
	// Login exchanges a client login code for user info and a token.
	Login(ctx context.Context, code string) (*entity.UserInfo, error)

	// CityByLocation geocodes a fix into city detail.
	CityByLocation(ctx context.Context, fix entity.GeoFix) (*entity.Location, error)

	// NearbyAttractions lists attractions around a fix within radiusKm.
	NearbyAttractions(ctx context.Context, fix entity.GeoFix, radiusKm float64) ([]entity.Attraction, error)

	// HotDestinations lists the current hot destinations.
	HotDestinations(ctx context.Context) ([]entity.Destination, error)

	GeneratePlan(ctx context.Context, req *GeneratePlanRequest) (*entity.Plan, error)
	SavePlan(ctx context.Context, plan *entity.Plan) error
	PlanList(ctx context.Context) ([]entity.Plan, error)
	PlanDetail(ctx context.Context, id string) (*entity.Plan, error)

	SaveTrack(ctx context.Context, track *entity.Track) error
	TrackList(ctx context.Context) ([]entity.Track, error)
	TrackDetail(ctx context.Context, id string) (*entity.Track, error)

	GeneratePostcard(ctx context.Context, req *GeneratePostcardRequest) (*entity.Postcard, error)
	PostcardList(ctx context.Context) ([]entity.Postcard, error)
	PostcardDetail(ctx context.Context, id string) (*entity.Postcard, error)

	// UploadImage uploads an image and returns its URL.
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
}
