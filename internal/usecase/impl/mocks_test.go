package impl

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"footprint/internal/domain/entity"
	"footprint/internal/domain/service"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Location(ctx context.Context) (*entity.Location, error) {
	args := m.Called(ctx)
	loc, _ := args.Get(0).(*entity.Location)

	return loc, args.Error(1)
}

func (m *mockCache) SaveLocation(ctx context.Context, loc *entity.Location) error {
	return m.Called(ctx, loc).Error(0)
}

func (m *mockCache) HomeAttractions(ctx context.Context) (*entity.AttractionCache, error) {
	args := m.Called(ctx)
	cache, _ := args.Get(0).(*entity.AttractionCache)

	return cache, args.Error(1)
}

func (m *mockCache) SaveHomeAttractions(ctx context.Context, cache *entity.AttractionCache) error {
	return m.Called(ctx, cache).Error(0)
}

func (m *mockCache) HotDestinations(ctx context.Context) ([]entity.Destination, error) {
	args := m.Called(ctx)
	destinations, _ := args.Get(0).([]entity.Destination)

	return destinations, args.Error(1)
}

func (m *mockCache) SaveHotDestinations(ctx context.Context, destinations []entity.Destination) error {
	return m.Called(ctx, destinations).Error(0)
}

func (m *mockCache) UserInfo(ctx context.Context) (*entity.UserInfo, error) {
	args := m.Called(ctx)
	info, _ := args.Get(0).(*entity.UserInfo)

	return info, args.Error(1)
}

func (m *mockCache) SaveUserInfo(ctx context.Context, info *entity.UserInfo) error {
	return m.Called(ctx, info).Error(0)
}

func (m *mockCache) RemoveUserInfo(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCache) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

func (m *mockCache) PlanList(ctx context.Context) ([]entity.Plan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]entity.Plan)

	return plans, args.Error(1)
}

func (m *mockCache) SavePlanList(ctx context.Context, plans []entity.Plan) error {
	return m.Called(ctx, plans).Error(0)
}

func (m *mockCache) AddPlan(ctx context.Context, plan entity.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockCache) CurrentPlan(ctx context.Context) (*entity.Plan, error) {
	args := m.Called(ctx)
	plan, _ := args.Get(0).(*entity.Plan)

	return plan, args.Error(1)
}

func (m *mockCache) SetCurrentPlan(ctx context.Context, plan *entity.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockCache) TrackList(ctx context.Context) ([]entity.Track, error) {
	args := m.Called(ctx)
	tracks, _ := args.Get(0).([]entity.Track)

	return tracks, args.Error(1)
}

func (m *mockCache) SaveTrackList(ctx context.Context, tracks []entity.Track) error {
	return m.Called(ctx, tracks).Error(0)
}

func (m *mockCache) AddTrack(ctx context.Context, track entity.Track) error {
	return m.Called(ctx, track).Error(0)
}

func (m *mockCache) CurrentTrack(ctx context.Context) (*entity.Track, error) {
	args := m.Called(ctx)
	track, _ := args.Get(0).(*entity.Track)

	return track, args.Error(1)
}

func (m *mockCache) SetCurrentTrack(ctx context.Context, track *entity.Track) error {
	return m.Called(ctx, track).Error(0)
}

func (m *mockCache) RemoveCurrentTrack(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCache) PostcardList(ctx context.Context) ([]entity.Postcard, error) {
	args := m.Called(ctx)
	postcards, _ := args.Get(0).([]entity.Postcard)

	return postcards, args.Error(1)
}

func (m *mockCache) SavePostcardList(ctx context.Context, postcards []entity.Postcard) error {
	return m.Called(ctx, postcards).Error(0)
}

func (m *mockCache) AddPostcard(ctx context.Context, postcard entity.Postcard) error {
	return m.Called(ctx, postcard).Error(0)
}

func (m *mockCache) ClearAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockTravel struct {
	mock.Mock
}

func (m *mockTravel) Login(ctx context.Context, code string) (*entity.UserInfo, error) {
	args := m.Called(ctx, code)
	info, _ := args.Get(0).(*entity.UserInfo)

	return info, args.Error(1)
}

func (m *mockTravel) CityByLocation(ctx context.Context, fix entity.GeoFix) (*entity.Location, error) {
	args := m.Called(ctx, fix)
	loc, _ := args.Get(0).(*entity.Location)

	return loc, args.Error(1)
}

func (m *mockTravel) NearbyAttractions(ctx context.Context, fix entity.GeoFix, radiusKm float64) ([]entity.Attraction, error) {
	args := m.Called(ctx, fix, radiusKm)
	attractions, _ := args.Get(0).([]entity.Attraction)

	return attractions, args.Error(1)
}

func (m *mockTravel) HotDestinations(ctx context.Context) ([]entity.Destination, error) {
	args := m.Called(ctx)
	destinations, _ := args.Get(0).([]entity.Destination)

	return destinations, args.Error(1)
}

func (m *mockTravel) GeneratePlan(ctx context.Context, req *service.GeneratePlanRequest) (*entity.Plan, error) {
	args := m.Called(ctx, req)
	plan, _ := args.Get(0).(*entity.Plan)

	return plan, args.Error(1)
}

func (m *mockTravel) SavePlan(ctx context.Context, plan *entity.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockTravel) PlanList(ctx context.Context) ([]entity.Plan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]entity.Plan)

	return plans, args.Error(1)
}

func (m *mockTravel) PlanDetail(ctx context.Context, id string) (*entity.Plan, error) {
	args := m.Called(ctx, id)
	plan, _ := args.Get(0).(*entity.Plan)

	return plan, args.Error(1)
}

func (m *mockTravel) SaveTrack(ctx context.Context, track *entity.Track) error {
	return m.Called(ctx, track).Error(0)
}

func (m *mockTravel) TrackList(ctx context.Context) ([]entity.Track, error) {
	args := m.Called(ctx)
	tracks, _ := args.Get(0).([]entity.Track)

	return tracks, args.Error(1)
}

func (m *mockTravel) TrackDetail(ctx context.Context, id string) (*entity.Track, error) {
	args := m.Called(ctx, id)
	track, _ := args.Get(0).(*entity.Track)

	return track, args.Error(1)
}

func (m *mockTravel) GeneratePostcard(ctx context.Context, req *service.GeneratePostcardRequest) (*entity.Postcard, error) {
	args := m.Called(ctx, req)
	postcard, _ := args.Get(0).(*entity.Postcard)

	return postcard, args.Error(1)
}

func (m *mockTravel) PostcardList(ctx context.Context) ([]entity.Postcard, error) {
	args := m.Called(ctx)
	postcards, _ := args.Get(0).([]entity.Postcard)

	return postcards, args.Error(1)
}

func (m *mockTravel) PostcardDetail(ctx context.Context, id string) (*entity.Postcard, error) {
	args := m.Called(ctx, id)
	postcard, _ := args.Get(0).(*entity.Postcard)

	return postcard, args.Error(1)
}

func (m *mockTravel) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, r)

	return args.String(0), args.Error(1)
}

type mockDevice struct {
	mock.Mock
}

func (m *mockDevice) Permission(ctx context.Context) (service.PermissionState, error) {
	args := m.Called(ctx)

	return args.Get(0).(service.PermissionState), args.Error(1)
}

func (m *mockDevice) RequestPermission(ctx context.Context) (bool, error) {
	args := m.Called(ctx)

	return args.Bool(0), args.Error(1)
}

func (m *mockDevice) CurrentFix(ctx context.Context) (entity.GeoFix, error) {
	args := m.Called(ctx)

	return args.Get(0).(entity.GeoFix), args.Error(1)
}

func (m *mockDevice) Updates(ctx context.Context) (<-chan entity.GeoFix, func(), error) {
	args := m.Called(ctx)
	ch, _ := args.Get(0).(chan entity.GeoFix)
	stop, _ := args.Get(1).(func())

	return ch, stop, args.Error(2)
}

type mockQR struct {
	mock.Mock
}

func (m *mockQR) GenerateShareQR(postcardID string) ([]byte, error) {
	args := m.Called(postcardID)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

func (m *mockQR) ParseShareQR(qrData string) (string, error) {
	args := m.Called(qrData)

	return args.String(0), args.Error(1)
}
