package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"footprint/config"
	"footprint/internal/delivery"
	"footprint/internal/delivery/http"
	"footprint/internal/delivery/http/router/handler"
	"footprint/internal/domain/service"
	"footprint/internal/infra/backend"
	"footprint/internal/infra/device"
	logs "footprint/internal/infra/log"
	"footprint/internal/infra/qrcode"
	"footprint/internal/infra/storage"
	"footprint/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.New,
			device.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewExploreService,
			impl.NewSessionService,
			impl.NewPlanService,
			impl.NewTrackService,
			impl.NewPostcardService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewExploreHandler,
			handler.NewPlanHandler,
			handler.NewTrackHandler,
			handler.NewPostcardHandler,
			handler.NewSessionHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
