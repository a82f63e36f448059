package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"footprint/config"
	"footprint/internal/domain/entity"
	apperrors "footprint/internal/domain/errors"
	"footprint/internal/domain/repository"
	"footprint/internal/domain/service"
	"footprint/internal/errors"
	"footprint/internal/usecase"
)

// ExploreParams defines the dependencies for the explore use case.
type ExploreParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Cache  repository.CacheRepository
	Travel service.TravelService
	Device service.LocationProvider
}

type exploreService struct {
	logger       *slog.Logger
	cache        repository.CacheRepository
	travel       service.TravelService
	device       service.LocationProvider
	radiusMeters float64
	nearbyKm     float64
	defaultCity  string
	defaultFix   entity.GeoFix
}

// NewExploreService creates the explore use case.
func NewExploreService(params ExploreParams) usecase.ExploreUsecase {
	loc := params.Config.Location

	return &exploreService{
		logger:       params.Logger,
		cache:        params.Cache,
		travel:       params.Travel,
		device:       params.Device,
		radiusMeters: loc.FreshnessRadiusMeters,
		nearbyKm:     loc.NearbyRadiusKm,
		defaultCity:  loc.DefaultCity,
		defaultFix:   entity.GeoFix{Latitude: loc.DefaultLatitude, Longitude: loc.DefaultLongitude},
	}
}

// RefreshSilent refreshes the home surface without user interaction. When
// permission is undetermined it is requested once, without any further
// prompting. A refused permission or failed fix serves the cached view as is,
// falling back to the default city when the cache is empty, and issues no
// network calls. Only an expired session is surfaced.
func (s *exploreService) RefreshSilent(ctx context.Context) (*usecase.ExploreView, error) {
	fix, located := s.silentFix(ctx)
	if !located {
		return s.cachedView(ctx), nil
	}

	return s.refresh(ctx, fix, false)
}

// RefreshExplicit refreshes on the user's request. It prompts for permission
// when undetermined, reports refusal and fix failures, and re-fetches the
// city and attraction list regardless of cache freshness.
func (s *exploreService) RefreshExplicit(ctx context.Context) (*usecase.ExploreView, error) {
	state, err := s.device.Permission(ctx)
	if err != nil {
		return nil, apperrors.ErrLocationUnavailable.WrapMessage(err.Error())
	}

	if state != service.PermissionGranted {
		granted, err := s.device.RequestPermission(ctx)
		if err != nil {
			return nil, apperrors.ErrLocationUnavailable.WrapMessage(err.Error())
		}
		if !granted {
			return nil, errors.WithStack(apperrors.ErrPermissionDenied)
		}
	}

	fix, err := s.device.CurrentFix(ctx)
	if err != nil {
		var appErr apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, apperrors.ErrLocationUnavailable.WrapMessage(err.Error())
	}

	return s.refresh(ctx, fix, true)
}

// refresh runs the shared refresh flow. force bypasses the staleness gates
// entirely and makes attraction fetch failures fatal, which is the
// explicit-path behavior; the city lookup still degrades to the cached value
// on failure.
func (s *exploreService) refresh(ctx context.Context, fix entity.GeoFix, force bool) (*usecase.ExploreView, error) {
	loc, err := s.cache.Location(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "reading cached location failed", slog.Any("error", err))
	}
	attractions, err := s.cache.HomeAttractions(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "reading cached attractions failed", slog.Any("error", err))
	}

	decision := decideRefresh(fix, loc, attractions, s.radiusMeters)
	if force {
		decision.RefreshCity = true
		decision.RefreshAttractions = true
	}

	view := &usecase.ExploreView{
		City:      s.defaultCity,
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
	}

	if decision.RefreshCity {
		fresh, err := s.travel.CityByLocation(ctx, fix)
		switch {
		case err == nil:
			if saveErr := s.cache.SaveLocation(ctx, fresh); saveErr != nil {
				s.logger.WarnContext(ctx, "persisting location failed", slog.Any("error", saveErr))
			}
			loc = fresh
			view.CityRefreshed = true
		case errors.Is(err, apperrors.ErrAuthRequired):
			return nil, err
		default:
			s.logger.WarnContext(ctx, "city lookup failed, keeping cached value", slog.Any("error", err))
		}
	}
	if loc != nil {
		view.City = loc.City
	}

	if decision.RefreshAttractions {
		items, err := s.travel.NearbyAttractions(ctx, fix, s.nearbyKm)
		switch {
		case err == nil:
			snapshot := &entity.AttractionCache{
				Latitude:    fix.Latitude,
				Longitude:   fix.Longitude,
				Attractions: items,
			}
			if saveErr := s.cache.SaveHomeAttractions(ctx, snapshot); saveErr != nil {
				s.logger.WarnContext(ctx, "persisting attractions failed", slog.Any("error", saveErr))
			}
			attractions = snapshot
			view.AttractionsRefreshed = true
		case errors.Is(err, apperrors.ErrAuthRequired):
			return nil, err
		case force:
			return nil, err
		default:
			s.logger.WarnContext(ctx, "attraction fetch failed, keeping cached value", slog.Any("error", err))
		}
	}
	if attractions != nil {
		view.Attractions = attractions.Attractions
	}

	return view, nil
}

// silentFix obtains a device fix for the silent path. An undetermined
// permission is requested once; a refusal is accepted without further
// prompting. The second result reports whether a real fix was obtained.
func (s *exploreService) silentFix(ctx context.Context) (entity.GeoFix, bool) {
	state, err := s.device.Permission(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "permission state unavailable", slog.Any("error", err))

		return entity.GeoFix{}, false
	}

	switch state {
	case service.PermissionGranted:
	case service.PermissionUndetermined:
		granted, err := s.device.RequestPermission(ctx)
		if err != nil || !granted {
			return entity.GeoFix{}, false
		}
	default:
		return entity.GeoFix{}, false
	}

	fix, err := s.device.CurrentFix(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "device fix unavailable", slog.Any("error", err))

		return entity.GeoFix{}, false
	}

	return fix, true
}

// cachedView assembles the home surface from the cache alone. Without a real
// fix nothing is fetched or persisted; an empty cache degrades to the default
// city center.
func (s *exploreService) cachedView(ctx context.Context) *usecase.ExploreView {
	loc, err := s.cache.Location(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "reading cached location failed", slog.Any("error", err))
	}
	attractions, err := s.cache.HomeAttractions(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "reading cached attractions failed", slog.Any("error", err))
	}

	view := &usecase.ExploreView{
		City:      s.defaultCity,
		Latitude:  s.defaultFix.Latitude,
		Longitude: s.defaultFix.Longitude,
	}
	if loc != nil {
		view.City = loc.City
		view.Latitude = loc.Latitude
		view.Longitude = loc.Longitude
	}
	if attractions != nil {
		view.Attractions = attractions.Attractions
	}

	return view
}

// HotDestinations serves the dated destination cache, fetching and stamping
// a fresh snapshot when today's is missing or expired.
func (s *exploreService) HotDestinations(ctx context.Context) ([]entity.Destination, error) {
	cached, err := s.cache.HotDestinations(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "reading cached destinations failed", slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	destinations, err := s.travel.HotDestinations(ctx)
	if err != nil {
		return nil, err
	}

	if saveErr := s.cache.SaveHotDestinations(ctx, destinations); saveErr != nil {
		s.logger.WarnContext(ctx, "persisting destinations failed", slog.Any("error", saveErr))
	}

	return destinations, nil
}
