package device

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"footprint/internal/domain/entity"
	apperrors "footprint/internal/domain/errors"
	"footprint/internal/domain/service"
	"footprint/internal/errors"
)

func newTestProvider() *Static {
	return NewStatic(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStatic_PermissionFlow(t *testing.T) {
	t.Parallel()

	provider := newTestProvider()
	ctx := context.Background()

	state, err := provider.Permission(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.PermissionUndetermined, state)

	granted, err := provider.RequestPermission(ctx)
	require.NoError(t, err)
	assert.True(t, granted)

	provider.SetPermission(service.PermissionDenied)

	granted, err = provider.RequestPermission(ctx)
	require.NoError(t, err)
	assert.False(t, granted)
}

func TestStatic_CurrentFix(t *testing.T) {
	t.Parallel()

	provider := newTestProvider()
	ctx := context.Background()

	_, err := provider.CurrentFix(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	provider.SetPermission(service.PermissionGranted)

	_, err = provider.CurrentFix(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrLocationUnavailable))

	provider.SetFix(entity.GeoFix{Latitude: 31.23, Longitude: 121.47})

	fix, err := provider.CurrentFix(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 31.23, fix.Latitude, 1e-9)
}

func TestStatic_UpdatesDeliversAndStops(t *testing.T) {
	t.Parallel()

	provider := newTestProvider()
	provider.SetPermission(service.PermissionGranted)

	updates, stop, err := provider.Updates(context.Background())
	require.NoError(t, err)

	provider.SetFix(entity.GeoFix{Latitude: 1, Longitude: 2})

	select {
	case fix := <-updates:
		assert.InDelta(t, 1.0, fix.Latitude, 1e-9)
	case <-time.After(time.Second):
		t.Fatal("no update delivered")
	}

	stop()
	stop()

	_, open := <-updates
	assert.False(t, open)
}

func TestStatic_UpdatesContextCancelStops(t *testing.T) {
	t.Parallel()

	provider := newTestProvider()
	provider.SetPermission(service.PermissionGranted)

	ctx, cancel := context.WithCancel(context.Background())

	updates, _, err := provider.Updates(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-updates:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

// Not parallel: the goroutine count comparison needs a quiet runtime.
func TestStatic_UpdatesDetachedContext(t *testing.T) {
	provider := newTestProvider()
	provider.SetPermission(service.PermissionGranted)

	before := runtime.NumGoroutine()

	// A detached context never ends, so no watcher goroutine may be
	// parked on it; stop alone tears the subscription down.
	updates, stop, err := provider.Updates(context.WithoutCancel(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, before, runtime.NumGoroutine())

	stop()

	_, open := <-updates
	assert.False(t, open)
}

func TestStatic_UpdatesRequiresPermission(t *testing.T) {
	t.Parallel()

	provider := newTestProvider()

	_, _, err := provider.Updates(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}
