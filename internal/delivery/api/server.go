// Package api is the public JSON API.
package api

import (
	"log/slog"

	"gymtrack/config"
	"gymtrack/internal/delivery"
	apimiddleware "gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/router"
	"gymtrack/internal/delivery/api/validator"
	"gymtrack/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout

	// Recover first so panics in later middleware still produce a response.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize),
	)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	h2c := &http2.Server{IdleTimeout: httpCfg.Timeouts.IdleTimeout}

	return delivery.NewEchoServer(params.Lc, "gymtrack-api", httpCfg.Port, e, h2c, params.Logger), nil
}
