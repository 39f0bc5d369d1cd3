package main

import (
	"context"
	_ "time/tzdata"

	"gymtrack/config"
	"gymtrack/internal/delivery"
	"gymtrack/internal/delivery/worker"
	"gymtrack/internal/delivery/worker/handler"
	logs "gymtrack/internal/infra/log"
	"gymtrack/internal/infra/notification"
	"gymtrack/internal/infra/persistence/postgres"
	"gymtrack/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewNotificationService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNutritionService,
			impl.NewGoalAlertService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(delivery.GroupTag),
			),
		),
	)
}
