package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"gymtrack/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer serves an echo instance until the fx app stops.
type EchoServer struct {
	name   string
	addr   string
	echo   *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

// NewEchoServer registers graceful shutdown on lc. A non-nil h2c enables cleartext HTTP/2.
func NewEchoServer(lc fx.Lifecycle, name string, port int, e *echo.Echo, h2c *http2.Server, logger *slog.Logger) *EchoServer {
	s := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		h2c:    h2c,
		logger: logger.With(slog.String("server", name)),
	}
	lc.Append(fx.Hook{OnStop: s.shutdown})

	return s
}

func (s *EchoServer) Serve(context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.addr))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s stopped", s.name)
	}

	return nil
}

func (s *EchoServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
