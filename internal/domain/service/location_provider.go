// Package service defines interfaces for external capabilities consumed by
// the use cases: the device location runtime, the remote travel backend and
// QR code generation.
package service

import (
	"context"

	"footprint/internal/domain/entity"
)

// PermissionState is the device's location-permission state.
type PermissionState int

const (
	// PermissionUndetermined means the user has not been asked yet.
	PermissionUndetermined PermissionState = iota
	// PermissionGranted means location access is allowed.
	PermissionGranted
	// PermissionDenied means the user refused location access.
	PermissionDenied
)

// LocationProvider is the device location capability. Implementations wrap
// whatever runtime actually produces fixes (the hosting client, a simulator,
// a test double).
type LocationProvider interface {
	// Permission reports the current permission state without prompting.
	Permission(ctx context.Context) (PermissionState, error)

	// RequestPermission asks the user for location access once. It returns
	// false without error when the user refuses.
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentFix obtains a one-shot location fix.
	CurrentFix(ctx context.Context) (entity.GeoFix, error)

	// Updates starts continuous location updates. The returned stop function
	// ends the subscription and closes the channel; it is safe to call more
	// than once.
	Updates(ctx context.Context) (<-chan entity.GeoFix, func(), error)
}
