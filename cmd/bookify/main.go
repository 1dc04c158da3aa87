package main

import (
	"context"
	"log/slog"
	"os"

	"bookify/config"
	"bookify/internal/delivery"
	"bookify/internal/delivery/http"
	"bookify/internal/delivery/http/middleware"
	"bookify/internal/delivery/http/router/handler"
	"bookify/internal/domain/service"
	"bookify/internal/infra/auth"
	logs "bookify/internal/infra/log"
	"bookify/internal/infra/persistence/postgres"
	"bookify/internal/infra/pubsub"
	"bookify/internal/infra/qrcode"
	"bookify/internal/usecase/impl"

	"go.uber.org/fx"
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewTicketRepository,
			postgres.NewProductRepository,
			postgres.NewRedemptionRepository,
			postgres.NewRewardRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			newTicketPassService,
		),
	)
}

// newTicketPassService creates a ticket pass service with dependency injection
func newTicketPassService(cfg *config.Config) service.TicketPassService {
	if cfg.TicketPass == nil {
		// Use default values if not configured
		return qrcode.NewTicketPassService(256, "M")
	}

	return qrcode.NewTicketPassService(cfg.TicketPass.Size, cfg.TicketPass.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewRewardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewRewardHandler,
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
