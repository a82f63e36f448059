// Package device provides location providers backed by configuration or a
// simulated runtime. The static provider serves a fixed coordinate and is the
// default wiring when no real positioning runtime is attached.
package device

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/fx"

	"footprint/config"
	"footprint/internal/domain/entity"
	apperrors "footprint/internal/domain/errors"
	"footprint/internal/domain/service"
	"footprint/internal/errors"
)

// Params defines the dependencies for the static location provider.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Static serves a configurable fix and permission state. SetFix pushes a new
// coordinate to every active Updates subscriber, which keeps track recording
// drivable from tests and simulators.
type Static struct {
	logger *slog.Logger

	mu          sync.Mutex
	permission  service.PermissionState
	fix         entity.GeoFix
	hasFix      bool
	subscribers map[int]chan entity.GeoFix
	nextSub     int
}

// New creates the location provider seeded from configuration.
func New(params Params) service.LocationProvider {
	provider := NewStatic(params.Logger)

	if cfg := params.Config.Device; cfg != nil {
		switch cfg.Permission {
		case "granted":
			provider.permission = service.PermissionGranted
		case "denied":
			provider.permission = service.PermissionDenied
		}
		if cfg.Latitude != 0 || cfg.Longitude != 0 {
			provider.fix = entity.GeoFix{Latitude: cfg.Latitude, Longitude: cfg.Longitude}
			provider.hasFix = true
		}
	}

	return provider
}

// NewStatic creates an empty provider with undetermined permission.
func NewStatic(logger *slog.Logger) *Static {
	return &Static{
		logger:      logger,
		subscribers: make(map[int]chan entity.GeoFix),
	}
}

// Permission reports the current permission state.
func (s *Static) Permission(_ context.Context) (service.PermissionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.permission, nil
}

// RequestPermission grants access unless the user already refused. A refusal
// is reported as false with a nil error.
func (s *Static) RequestPermission(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.permission == service.PermissionDenied {
		return false, nil
	}
	s.permission = service.PermissionGranted

	return true, nil
}

// CurrentFix returns the configured fix.
func (s *Static) CurrentFix(_ context.Context) (entity.GeoFix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.permission != service.PermissionGranted {
		return entity.GeoFix{}, errors.WithStack(apperrors.ErrPermissionDenied)
	}
	if !s.hasFix {
		return entity.GeoFix{}, errors.WithStack(apperrors.ErrLocationUnavailable)
	}

	return s.fix, nil
}

// Updates subscribes to fix changes pushed via SetFix. The channel closes
// when the stop function runs or the context ends.
func (s *Static) Updates(ctx context.Context) (<-chan entity.GeoFix, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.permission != service.PermissionGranted {
		return nil, nil, errors.WithStack(apperrors.ErrPermissionDenied)
	}

	ch := make(chan entity.GeoFix, 16)
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = ch

	if s.hasFix {
		ch <- s.fix
	}

	var once sync.Once
	stop := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if sub, ok := s.subscribers[id]; ok {
				delete(s.subscribers, id)
				close(sub)
			}
		})
	}

	// A context that can never end, such as one detached for a long
	// recording, gets no watcher; teardown is then the caller's stop.
	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			stop()
		}()
	}

	return ch, stop, nil
}

// SetPermission overrides the permission state.
func (s *Static) SetPermission(state service.PermissionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.permission = state
}

// SetFix records a new fix and fans it out to active subscribers. Slow
// subscribers drop updates rather than block the producer.
func (s *Static) SetFix(fix entity.GeoFix) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fix = fix
	s.hasFix = true

	for _, sub := range s.subscribers {
		select {
		case sub <- fix:
		default:
			s.logger.Debug("dropping location update for slow subscriber")
		}
	}
}
