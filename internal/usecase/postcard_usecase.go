package usecase

import (
	"context"

	"footprint/internal/domain/entity"
)

// GeneratePostcardInput names the source artifact a postcard is rendered from.
type GeneratePostcardInput struct {
	Source   string `json:"source" validate:"required,oneof=track plan"`
	SourceID string `json:"sourceId" validate:"required"`
}

// PostcardUsecase renders and shares trip postcards.
type PostcardUsecase interface {
	// Generate renders a postcard from a saved plan or track and stores it.
	Generate(ctx context.Context, input GeneratePostcardInput) (*entity.Postcard, error)

	// List returns generated postcards, newest first, preferring the backend
	// and falling back to the local cache.
	List(ctx context.Context) ([]entity.Postcard, error)

	// Detail returns one postcard by id.
	Detail(ctx context.Context, id string) (*entity.Postcard, error)

	// ShareQR renders a QR code image for sharing a postcard.
	ShareQR(ctx context.Context, id string) ([]byte, error)

	// ResolveShareQR decodes scanned share QR payload and returns the
	// postcard it points at.
	ResolveShareQR(ctx context.Context, qrData string) (*entity.Postcard, error)
}
