package main

import (
	"context"
	_ "time/tzdata"

	"gymtrack/config"
	"gymtrack/internal/delivery"
	"gymtrack/internal/delivery/api"
	"gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/router/handler"
	"gymtrack/internal/domain/service"
	"gymtrack/internal/infra/auth"
	logs "gymtrack/internal/infra/log"
	"gymtrack/internal/infra/mealplan"
	"gymtrack/internal/infra/persistence/postgres"
	"gymtrack/internal/infra/pubsub"
	"gymtrack/internal/infra/qrcode"
	"gymtrack/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(delivery.Run),
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
			postgres.NewFoodRepository,
			postgres.NewMealRepository,
			postgres.NewPreferenceRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			mealplan.NewStore,
			newQRCodeService,
		),
	)
}

// newQRCodeService falls back to 256px with medium error correction.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBasketStore,
			impl.NewUserService,
			impl.NewFoodService,
			impl.NewBasketService,
			impl.NewMealService,
			impl.NewNutritionService,
			impl.NewMealPlanService,
			impl.NewDeviceService,
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
			handler.NewUserHandler,
			handler.NewFoodHandler,
			handler.NewBasketHandler,
			handler.NewMealHandler,
			handler.NewNutritionHandler,
			handler.NewMealPlanHandler,
			handler.NewDeviceHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(delivery.GroupTag),
			),
		),
	)
}
