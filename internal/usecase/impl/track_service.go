package impl

import (
	"context"
	"log/slog"
	"sync"
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

// TrackParams defines the dependencies for the track use case.
type TrackParams struct {
	fx.In

	Logger *slog.Logger
	Cache  repository.CacheRepository
	Travel service.TravelService
	Device service.LocationProvider
}

// recording is the in-memory state of one in-progress track. Points are
// appended by the consume goroutine until the location stream closes.
type recording struct {
	name      string
	startedAt time.Time
	points    []entity.TrackPoint
	stop      func()
	done      chan struct{}
}

type trackService struct {
	logger *slog.Logger
	cache  repository.CacheRepository
	travel service.TravelService
	device service.LocationProvider
	now    func() time.Time

	mu      sync.Mutex
	current *recording
}

// NewTrackService creates the track use case.
func NewTrackService(params TrackParams) usecase.TrackUsecase {
	return &trackService{
		logger: params.Logger,
		cache:  params.Cache,
		travel: params.Travel,
		device: params.Device,
		now:    time.Now,
	}
}

// Start begins recording from the device location stream. The stream is
// detached from the request context so it outlives the call that started it.
func (s *trackService) Start(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return errors.WithStack(apperrors.ErrTrackInProgress)
	}

	updates, stop, err := s.device.Updates(context.WithoutCancel(ctx))
	if err != nil {
		var appErr apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return apperrors.ErrLocationUnavailable.WrapMessage(err.Error())
	}

	rec := &recording{
		name:      name,
		startedAt: s.now(),
		stop:      stop,
		done:      make(chan struct{}),
	}
	s.current = rec

	skeleton := &entity.Track{Name: name, StartedAt: rec.startedAt}
	if err := s.cache.SetCurrentTrack(ctx, skeleton); err != nil {
		s.logger.WarnContext(ctx, "persisting recording marker failed", slog.Any("error", err))
	}

	go s.consume(rec, updates)

	s.logger.InfoContext(ctx, "track recording started", slog.String("name", name))

	return nil
}

func (s *trackService) consume(rec *recording, updates <-chan entity.GeoFix) {
	for fix := range updates {
		s.mu.Lock()
		rec.points = append(rec.points, entity.TrackPoint{
			Latitude:  fix.Latitude,
			Longitude: fix.Longitude,
			Timestamp: s.now().UnixMilli(),
		})
		s.mu.Unlock()
	}
	close(rec.done)
}

// Status reports the live recording without stopping it.
func (s *trackService) Status(_ context.Context) (*usecase.TrackStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return &usecase.TrackStatus{}, nil
	}

	return &usecase.TrackStatus{
		Recording:       true,
		Points:          len(s.current.points),
		DistanceMeters:  util.TrackDistance(s.current.points),
		DurationSeconds: int64(s.now().Sub(s.current.startedAt).Seconds()),
	}, nil
}

// Stop ends the recording and turns it into a persisted track with computed
// distance, duration and average speed.
func (s *trackService) Stop(ctx context.Context) (*entity.Track, error) {
	s.mu.Lock()
	rec := s.current
	s.current = nil
	s.mu.Unlock()

	if rec == nil {
		return nil, errors.WithStack(apperrors.ErrNoActiveTrack)
	}

	rec.stop()
	<-rec.done

	endedAt := s.now()
	distance := util.TrackDistance(rec.points)
	duration := int64(endedAt.Sub(rec.startedAt).Seconds())

	track := &entity.Track{
		ID:              util.GenerateID(),
		Name:            rec.name,
		Points:          rec.points,
		DistanceMeters:  distance,
		DurationSeconds: duration,
		AverageSpeedKmh: util.AverageSpeedKmh(distance, duration),
		StartedAt:       rec.startedAt,
		EndedAt:         endedAt,
	}
	if track.Name == "" {
		track.Name = rec.startedAt.Format("2006-01-02") + " 足迹"
	}
	if loc, err := s.cache.Location(ctx); err == nil && loc != nil {
		track.City = loc.City
	}

	if err := s.cache.AddTrack(ctx, *track); err != nil {
		return nil, errors.Wrap(err, "persist track")
	}
	if err := s.cache.RemoveCurrentTrack(ctx); err != nil {
		s.logger.WarnContext(ctx, "clearing recording marker failed", slog.Any("error", err))
	}

	if err := s.travel.SaveTrack(ctx, track); err != nil {
		s.logger.WarnContext(ctx, "mirroring track to backend failed",
			slog.String("track_id", track.ID), slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "track recording stopped",
		slog.String("track_id", track.ID),
		slog.Int("points", len(track.Points)),
		slog.Float64("distance_m", track.DistanceMeters))

	return track, nil
}

func (s *trackService) List(ctx context.Context) ([]entity.Track, error) {
	tracks, err := s.travel.TrackList(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthRequired) {
			return nil, err
		}
		s.logger.WarnContext(ctx, "track list fetch failed, serving cache", slog.Any("error", err))

		return s.cache.TrackList(ctx)
	}

	if saveErr := s.cache.SaveTrackList(ctx, tracks); saveErr != nil {
		s.logger.WarnContext(ctx, "persisting track list failed", slog.Any("error", saveErr))
	}

	return tracks, nil
}

func (s *trackService) Detail(ctx context.Context, id string) (*entity.Track, error) {
	if id == "" {
		return nil, errors.WithStack(apperrors.ErrValidationFailed.WithDetails("track id is empty"))
	}

	track, err := s.travel.TrackDetail(ctx, id)
	if err == nil {
		return track, nil
	}
	if errors.Is(err, apperrors.ErrAuthRequired) {
		return nil, err
	}

	cached, cacheErr := s.cache.TrackList(ctx)
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
