package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"footprint/internal/domain/entity"
	apperrors "footprint/internal/domain/errors"
	"footprint/internal/domain/repository"
	"footprint/internal/domain/service"
	"footprint/internal/errors"
	"footprint/internal/usecase"
	"footprint/internal/util"
)

// PlanParams defines the dependencies for the plan use case.
type PlanParams struct {
	fx.In

	Logger *slog.Logger
	Cache  repository.CacheRepository
	Travel service.TravelService
}

type planService struct {
	logger *slog.Logger
	cache  repository.CacheRepository
	travel service.TravelService
	now    func() time.Time
}

// NewPlanService creates the plan use case.
func NewPlanService(params PlanParams) usecase.PlanUsecase {
	return &planService{
		logger: params.Logger,
		cache:  params.Cache,
		travel: params.Travel,
		now:    time.Now,
	}
}

func (s *planService) Generate(ctx context.Context, input usecase.GeneratePlanInput) (*entity.Plan, error) {
	plan, err := s.travel.GeneratePlan(ctx, &service.GeneratePlanRequest{
		City:       input.City,
		Days:       input.Days,
		Preference: input.Preference,
	})
	if err != nil {
		return nil, err
	}

	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = s.now()
	}

	return plan, nil
}

// Save persists locally first so the plan survives a dead network, then
// mirrors it to the backend best-effort.
func (s *planService) Save(ctx context.Context, plan *entity.Plan) error {
	if plan == nil {
		return errors.WithStack(apperrors.ErrValidationFailed.WithDetails("plan is nil"))
	}

	if plan.ID == "" {
		plan.ID = util.GenerateID()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = s.now()
	}

	if err := s.cache.AddPlan(ctx, *plan); err != nil {
		return errors.Wrap(err, "persist plan")
	}

	if err := s.travel.SavePlan(ctx, plan); err != nil {
		s.logger.WarnContext(ctx, "mirroring plan to backend failed",
			slog.String("plan_id", plan.ID), slog.Any("error", err))
	}

	return nil
}

func (s *planService) List(ctx context.Context) ([]entity.Plan, error) {
	plans, err := s.travel.PlanList(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthRequired) {
			return nil, err
		}
		s.logger.WarnContext(ctx, "plan list fetch failed, serving cache", slog.Any("error", err))

		return s.cache.PlanList(ctx)
	}

	if saveErr := s.cache.SavePlanList(ctx, plans); saveErr != nil {
		s.logger.WarnContext(ctx, "persisting plan list failed", slog.Any("error", saveErr))
	}

	return plans, nil
}

func (s *planService) Detail(ctx context.Context, id string) (*entity.Plan, error) {
	if id == "" {
		return nil, errors.WithStack(apperrors.ErrValidationFailed.WithDetails("plan id is empty"))
	}

	plan, err := s.travel.PlanDetail(ctx, id)
	if err == nil {
		return plan, nil
	}
	if errors.Is(err, apperrors.ErrAuthRequired) {
		return nil, err
	}

	cached, cacheErr := s.cache.PlanList(ctx)
	if cacheErr != nil {
		return nil, err
	}
	for i := range cached {
		if cached[i].ID == id {
			return &cached[i], nil
		}
	}

	return nil, errors.WithStack(apperrors.ErrNotFound)
}

func (s *planService) SetCurrent(ctx context.Context, plan *entity.Plan) error {
	return s.cache.SetCurrentPlan(ctx, plan)
}

func (s *planService) Current(ctx context.Context) (*entity.Plan, error) {
	return s.cache.CurrentPlan(ctx)
}
