// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"footprint/internal/domain/entity"
)

// Slot names for the persisted cache entries. Values written by one release
// must stay readable by the next, so these are part of the storage contract.
const (
	SlotUserInfo        = "userInfo"
	SlotLocation        = "location"
	SlotPlanList        = "planList"
	SlotTrackList       = "trackList"
	SlotPostcardList    = "postcardList"
	SlotCurrentPlan     = "currentPlan"
	SlotCurrentTrack    = "currentTrack"
	SlotHomeAttractions = "homeAttractions"
	SlotHotDestinations = "hotDestinations"
)

// CacheRepository is the typed slot store over the key-value persistence
// capability. Each slot holds at most one entry and is overwritten wholesale.
//
// Reads return nil (not an error) when a slot is empty. Dated slots
// (homeAttractions, hotDestinations) also return nil when the stored
// timestamp falls on a different local calendar day than today; the expired
// value stays in the backing store until the next successful write (lazy
// invalidation).
type CacheRepository interface {
	// Location is the undated geocoded-city slot.
	Location(ctx context.Context) (*entity.Location, error)
	SaveLocation(ctx context.Context, loc *entity.Location) error

	// HomeAttractions is the dated nearby-attraction snapshot.
	HomeAttractions(ctx context.Context) (*entity.AttractionCache, error)
	SaveHomeAttractions(ctx context.Context, cache *entity.AttractionCache) error

	// HotDestinations is the dated hot-destination snapshot.
	HotDestinations(ctx context.Context) ([]entity.Destination, error)
	SaveHotDestinations(ctx context.Context, destinations []entity.Destination) error

	// UserInfo holds the login state; Token is a convenience returning the
	// cached bearer token or "" when logged out.
	UserInfo(ctx context.Context) (*entity.UserInfo, error)
	SaveUserInfo(ctx context.Context, info *entity.UserInfo) error
	RemoveUserInfo(ctx context.Context) error
	Token(ctx context.Context) (string, error)

	// Plan slots.
	PlanList(ctx context.Context) ([]entity.Plan, error)
	SavePlanList(ctx context.Context, plans []entity.Plan) error
	AddPlan(ctx context.Context, plan entity.Plan) error
	CurrentPlan(ctx context.Context) (*entity.Plan, error)
	SetCurrentPlan(ctx context.Context, plan *entity.Plan) error

	// Track slots.
	TrackList(ctx context.Context) ([]entity.Track, error)
	SaveTrackList(ctx context.Context, tracks []entity.Track) error
	AddTrack(ctx context.Context, track entity.Track) error
	CurrentTrack(ctx context.Context) (*entity.Track, error)
	SetCurrentTrack(ctx context.Context, track *entity.Track) error
	RemoveCurrentTrack(ctx context.Context) error

	// Postcard slots.
	PostcardList(ctx context.Context) ([]entity.Postcard, error)
	SavePostcardList(ctx context.Context, postcards []entity.Postcard) error
	AddPostcard(ctx context.Context, postcard entity.Postcard) error

	// ClearAll erases every known slot, including the login state, in one
	// operation. Irrecoverable; callers must confirm with the user first.
	ClearAll(ctx context.Context) error
}
