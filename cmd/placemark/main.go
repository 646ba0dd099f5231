package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"placemark/config"
	"placemark/internal/delivery"
	"placemark/internal/delivery/http"
	"placemark/internal/delivery/http/middleware"
	"placemark/internal/delivery/http/router/handler"
	"placemark/internal/domain/service"
	"placemark/internal/infra/auth"
	"placemark/internal/infra/firebase"
	"placemark/internal/infra/firestore"
	logs "placemark/internal/infra/log"
	"placemark/internal/infra/pubsub"
	"placemark/internal/infra/qrcode"
	"placemark/internal/infra/storage"
	"placemark/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
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
		firebase.NewApp,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewAddressRepository,
			firestore.NewCommentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityProvider,
			auth.NewTokenVerifier,
			storage.New,
			pubsub.NewEventPublisher,
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
			impl.NewAuthService,
			impl.NewAddressService,
			impl.NewCommentService,
			impl.NewProfileService,
			impl.NewFeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAddressHandler,
			handler.NewCommentHandler,
			handler.NewFeedHandler,
			handler.NewProfileHandler,
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
