package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gymtrack/config"
	deliverycontext "gymtrack/internal/delivery/context"
	"gymtrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs every request in debug mode and server errors always.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// echo has not run the error handler yet, so a returned error means 5xx unless it says otherwise
		status := c.Response().Status
		if err != nil {
			status = statusOf(err)
		}
		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func statusOf(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) {
		return coded.HTTPCode()
	}

	return http.StatusInternalServerError
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), level, "HTTP request", fields...)
}
