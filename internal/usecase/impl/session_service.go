package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"footprint/internal/domain/entity"
	apperrors "footprint/internal/domain/errors"
	"footprint/internal/domain/repository"
	"footprint/internal/domain/service"
	"footprint/internal/errors"
	"footprint/internal/usecase"
)

// SessionParams defines the dependencies for the session use case.
type SessionParams struct {
	fx.In

	Logger *slog.Logger
	Cache  repository.CacheRepository
	Travel service.TravelService
}

type sessionService struct {
	logger *slog.Logger
	cache  repository.CacheRepository
	travel service.TravelService
}

// NewSessionService creates the session use case.
func NewSessionService(params SessionParams) usecase.SessionUsecase {
	return &sessionService{
		logger: params.Logger,
		cache:  params.Cache,
		travel: params.Travel,
	}
}

func (s *sessionService) Login(ctx context.Context, code string) (*entity.UserInfo, error) {
	if code == "" {
		return nil, errors.WithStack(apperrors.ErrValidationFailed.WithDetails("login code is empty"))
	}

	info, err := s.travel.Login(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SaveUserInfo(ctx, info); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("openid", info.OpenID))

	return info, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.cache.RemoveUserInfo(ctx)
}

func (s *sessionService) Profile(ctx context.Context) (*entity.UserInfo, error) {
	return s.cache.UserInfo(ctx)
}

func (s *sessionService) ClearCache(ctx context.Context) error {
	s.logger.InfoContext(ctx, "clearing local cache")

	return s.cache.ClearAll(ctx)
}
