package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"footprint/internal/domain/entity"
	apperrors "footprint/internal/domain/errors"
	"footprint/internal/errors"
)

func newSessionTest() (*mockCache, *mockTravel, *sessionService) {
	cache := new(mockCache)
	travel := new(mockTravel)

	svc := NewSessionService(SessionParams{
		Logger: testLogger(),
		Cache:  cache,
		Travel: travel,
	}).(*sessionService)

	return cache, travel, svc
}

func TestSessionLogin_StoresSession(t *testing.T) {
	t.Parallel()

	cache, travel, svc := newSessionTest()
	ctx := context.Background()

	info := &entity.UserInfo{Token: "tok", OpenID: "oid", Nickname: "旅人"}
	travel.On("Login", ctx, "wx-code").Return(info, nil)
	cache.On("SaveUserInfo", ctx, info).Return(nil)

	got, err := svc.Login(ctx, "wx-code")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)

	cache.AssertExpectations(t)
}

func TestSessionLogin_EmptyCode(t *testing.T) {
	t.Parallel()

	_, _, svc := newSessionTest()

	_, err := svc.Login(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestSessionLogin_BackendFailureDoesNotPersist(t *testing.T) {
	t.Parallel()

	cache, travel, svc := newSessionTest()
	ctx := context.Background()

	travel.On("Login", ctx, "bad").Return(nil, apperrors.ErrNetwork)

	_, err := svc.Login(ctx, "bad")
	require.Error(t, err)

	cache.AssertNotCalled(t, "SaveUserInfo", mock.Anything, mock.Anything)
}

func TestSessionLogoutAndProfile(t *testing.T) {
	t.Parallel()

	cache, _, svc := newSessionTest()
	ctx := context.Background()

	cache.On("RemoveUserInfo", ctx).Return(nil)
	cache.On("UserInfo", ctx).Return(nil, nil)

	require.NoError(t, svc.Logout(ctx))

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}
