package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/adiritzhakii/food-by-me/config"
	"github.com/adiritzhakii/food-by-me/internal/delivery"
	"github.com/adiritzhakii/food-by-me/internal/delivery/http"
	"github.com/adiritzhakii/food-by-me/internal/delivery/http/middleware"
	"github.com/adiritzhakii/food-by-me/internal/delivery/http/router/handler"
	"github.com/adiritzhakii/food-by-me/internal/infra/ai"
	"github.com/adiritzhakii/food-by-me/internal/infra/auth"
	"github.com/adiritzhakii/food-by-me/internal/infra/auth/google"
	logs "github.com/adiritzhakii/food-by-me/internal/infra/log"
	"github.com/adiritzhakii/food-by-me/internal/infra/persistence/postgres"
	"github.com/adiritzhakii/food-by-me/internal/infra/storage"
	"github.com/adiritzhakii/food-by-me/internal/usecase/impl"

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
			postgres.NewTransactionManager,
			postgres.NewPostRepository,
			postgres.NewCommentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewVerifier,
			ai.NewGenerator,
			storage.NewImageStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewPostService,
			impl.NewCommentService,
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
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewPostHandler,
			handler.NewCommentHandler,
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
