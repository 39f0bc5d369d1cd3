// Package worker is the push endpoint that turns meal_logged events into goal alerts.
package worker

import (
	"log/slog"
	"net/http"

	"gymtrack/config"
	"gymtrack/internal/delivery"
	"gymtrack/internal/delivery/middleware"
	"gymtrack/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push/meal-logged", params.PushHandler.HandlePush)

	return delivery.NewEchoServer(params.Lc, "nutriworker", params.Cfg.HTTP.Port, e, nil, params.Logger), nil
}
