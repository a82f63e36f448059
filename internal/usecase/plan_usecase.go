package usecase

import (
	"context"

	"footprint/internal/domain/entity"
)

// GeneratePlanInput carries the itinerary generation parameters.
type GeneratePlanInput struct {
	City       string `json:"city" validate:"required"`
	Days       int    `json:"days" validate:"required,min=1,max=30"`
	Preference string `json:"preference"`
}

// PlanUsecase manages trip itineraries.
type PlanUsecase interface {
	// Generate drafts an itinerary via the backend and returns it without
	// persisting anything.
	Generate(ctx context.Context, input GeneratePlanInput) (*entity.Plan, error)

	// Save persists a plan locally and best-effort mirrors it server-side.
	Save(ctx context.Context, plan *entity.Plan) error

	// List returns the saved plans, newest first, preferring the backend and
	// falling back to the local cache.
	List(ctx context.Context) ([]entity.Plan, error)

	// Detail returns one plan by id.
	Detail(ctx context.Context, id string) (*entity.Plan, error)

	// SetCurrent marks a plan as the one being followed.
	SetCurrent(ctx context.Context, plan *entity.Plan) error

	// Current returns the plan being followed, or nil when none is set.
	Current(ctx context.Context) (*entity.Plan, error)
}
