package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"footprint/internal/domain/entity"
	apperrors "footprint/internal/domain/errors"
	"footprint/internal/domain/service"
	"footprint/internal/errors"
	"footprint/internal/usecase"
)

func newPlanTest() (*mockCache, *mockTravel, *planService) {
	cache := new(mockCache)
	travel := new(mockTravel)

	svc := NewPlanService(PlanParams{
		Logger: testLogger(),
		Cache:  cache,
		Travel: travel,
	}).(*planService)

	return cache, travel, svc
}

func TestPlanGenerate_PassesRequestThrough(t *testing.T) {
	t.Parallel()

	_, travel, svc := newPlanTest()
	ctx := context.Background()

	travel.On("GeneratePlan", ctx, &service.GeneratePlanRequest{
		City: "杭州", Days: 2, Preference: "美食",
	}).Return(&entity.Plan{ID: "p1", City: "杭州"}, nil)

	plan, err := svc.Generate(ctx, usecase.GeneratePlanInput{City: "杭州", Days: 2, Preference: "美食"})
	require.NoError(t, err)
	assert.Equal(t, "p1", plan.ID)
	assert.False(t, plan.CreatedAt.IsZero())
}

func TestPlanSave_PersistsLocallyEvenWhenBackendFails(t *testing.T) {
	t.Parallel()

	cache, travel, svc := newPlanTest()
	ctx := context.Background()

	cache.On("AddPlan", ctx, mock.MatchedBy(func(p entity.Plan) bool {
		return p.ID != "" && !p.CreatedAt.IsZero()
	})).Return(nil)
	travel.On("SavePlan", ctx, mock.Anything).Return(apperrors.ErrNetwork)

	err := svc.Save(ctx, &entity.Plan{Title: "周末游"})
	require.NoError(t, err)

	cache.AssertExpectations(t)
}

func TestPlanSave_RejectsNil(t *testing.T) {
	t.Parallel()

	_, _, svc := newPlanTest()

	err := svc.Save(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestPlanList_FallsBackToCache(t *testing.T) {
	t.Parallel()

	cache, travel, svc := newPlanTest()
	ctx := context.Background()

	cached := []entity.Plan{{ID: "p1"}}
	travel.On("PlanList", ctx).Return(nil, apperrors.ErrNetwork)
	cache.On("PlanList", ctx).Return(cached, nil)

	plans, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, plans)
}

func TestPlanList_AuthErrorSurfaces(t *testing.T) {
	t.Parallel()

	cache, travel, svc := newPlanTest()
	ctx := context.Background()

	travel.On("PlanList", ctx).Return(nil, errors.WithStack(apperrors.ErrAuthRequired))

	_, err := svc.List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAuthRequired))

	cache.AssertNotCalled(t, "PlanList", mock.Anything)
}

func TestPlanDetail_CacheFallbackFindsPlan(t *testing.T) {
	t.Parallel()

	cache, travel, svc := newPlanTest()
	ctx := context.Background()

	travel.On("PlanDetail", ctx, "p2").Return(nil, apperrors.ErrNetwork)
	cache.On("PlanList", ctx).Return([]entity.Plan{{ID: "p1"}, {ID: "p2", Title: "三日游"}}, nil)

	plan, err := svc.Detail(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "三日游", plan.Title)
}

func TestPlanDetail_NotFoundAnywhere(t *testing.T) {
	t.Parallel()

	cache, travel, svc := newPlanTest()
	ctx := context.Background()

	travel.On("PlanDetail", ctx, "missing").Return(nil, apperrors.ErrNetwork)
	cache.On("PlanList", ctx).Return([]entity.Plan{{ID: "p1"}}, nil)

	_, err := svc.Detail(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestPlanCurrent_RoundTrip(t *testing.T) {
	t.Parallel()

	cache, _, svc := newPlanTest()
	ctx := context.Background()

	current := &entity.Plan{ID: "p1", CreatedAt: time.Now()}
	cache.On("SetCurrentPlan", ctx, current).Return(nil)
	cache.On("CurrentPlan", ctx).Return(current, nil)

	require.NoError(t, svc.SetCurrent(ctx, current))

	got, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}
