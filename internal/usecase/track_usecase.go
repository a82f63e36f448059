package usecase

import (
	"context"

	"footprint/internal/domain/entity"
)

// TrackStatus is a live snapshot of an in-progress recording.
type TrackStatus struct {
	Recording       bool    `json:"recording"`
	Points          int     `json:"points"`
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds int64   `json:"durationSeconds"`
}

// TrackUsecase records movement tracks from the device location stream.
type TrackUsecase interface {
	// Start begins recording. It fails when a recording is already running
	// or location access is unavailable.
	Start(ctx context.Context, name string) error

	// Status reports the in-progress recording.
	Status(ctx context.Context) (*TrackStatus, error)

	// Stop ends the recording, computes the track statistics, persists the
	// track locally and best-effort mirrors it server-side.
	Stop(ctx context.Context) (*entity.Track, error)

	// List returns recorded tracks, newest first, preferring the backend
	// and falling back to the local cache.
	List(ctx context.Context) ([]entity.Track, error)

	// Detail returns one track by id.
	Detail(ctx context.Context, id string) (*entity.Track, error)
}
