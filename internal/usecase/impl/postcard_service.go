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
)

// PostcardParams defines the dependencies for the postcard use case.
type PostcardParams struct {
	fx.In

	Logger *slog.Logger
	Cache  repository.CacheRepository
	Travel service.TravelService
	Plans  usecase.PlanUsecase
	Tracks usecase.TrackUsecase
	QR     service.QRCodeService
}

type postcardService struct {
	logger *slog.Logger
	cache  repository.CacheRepository
	travel service.TravelService
	plans  usecase.PlanUsecase
	tracks usecase.TrackUsecase
	qr     service.QRCodeService
	now    func() time.Time
}

// NewPostcardService creates the postcard use case.
func NewPostcardService(params PostcardParams) usecase.PostcardUsecase {
	return &postcardService{
		logger: params.Logger,
		cache:  params.Cache,
		travel: params.Travel,
		plans:  params.Plans,
		tracks: params.Tracks,
		qr:     params.QR,
		now:    time.Now,
	}
}

// Generate resolves the source artifact, asks the backend to render it and
// stores the resulting postcard locally.
func (s *postcardService) Generate(ctx context.Context, input usecase.GeneratePostcardInput) (*entity.Postcard, error) {
	var data any
	switch input.Source {
	case entity.PostcardSourceTrack:
		track, err := s.tracks.Detail(ctx, input.SourceID)
		if err != nil {
			return nil, err
		}
		data = track
	case entity.PostcardSourcePlan:
		plan, err := s.plans.Detail(ctx, input.SourceID)
		if err != nil {
			return nil, err
		}
		data = plan
	default:
		return nil, errors.WithStack(apperrors.ErrValidationFailed.WithDetails("unknown postcard source: " + input.Source))
	}

	postcard, err := s.travel.GeneratePostcard(ctx, &service.GeneratePostcardRequest{
		Type: input.Source,
		Data: data,
	})
	if err != nil {
		return nil, err
	}

	postcard.Source = input.Source
	if postcard.CreatedAt.IsZero() {
		postcard.CreatedAt = s.now()
	}

	if err := s.cache.AddPostcard(ctx, *postcard); err != nil {
		s.logger.WarnContext(ctx, "persisting postcard failed",
			slog.String("postcard_id", postcard.ID), slog.Any("error", err))
	}

	return postcard, nil
}

func (s *postcardService) List(ctx context.Context) ([]entity.Postcard, error) {
	postcards, err := s.travel.PostcardList(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthRequired) {
			return nil, err
		}
		s.logger.WarnContext(ctx, "postcard list fetch failed, serving cache", slog.Any("error", err))

		return s.cache.PostcardList(ctx)
	}

	if saveErr := s.cache.SavePostcardList(ctx, postcards); saveErr != nil {
		s.logger.WarnContext(ctx, "persisting postcard list failed", slog.Any("error", saveErr))
	}

	return postcards, nil
}

func (s *postcardService) Detail(ctx context.Context, id string) (*entity.Postcard, error) {
	if id == "" {
		return nil, errors.WithStack(apperrors.ErrValidationFailed.WithDetails("postcard id is empty"))
	}

	postcard, err := s.travel.PostcardDetail(ctx, id)
	if err == nil {
		return postcard, nil
	}
	if errors.Is(err, apperrors.ErrAuthRequired) {
		return nil, err
	}

	cached, cacheErr := s.cache.PostcardList(ctx)
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

// ShareQR renders the share QR code for an existing postcard.
func (s *postcardService) ShareQR(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.Detail(ctx, id); err != nil {
		return nil, err
	}

	png, err := s.qr.GenerateShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "generate share QR")
	}

	return png, nil
}

// ResolveShareQR decodes a scanned share code and looks the postcard up.
func (s *postcardService) ResolveShareQR(ctx context.Context, qrData string) (*entity.Postcard, error) {
	id, err := s.qr.ParseShareQR(qrData)
	if err != nil {
		return nil, errors.WithStack(apperrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return s.Detail(ctx, id)
}
