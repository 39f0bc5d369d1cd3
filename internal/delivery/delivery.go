// Package delivery holds the inbound adapters of the service.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Delivery is a long running inbound server started by a cmd entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}

// GroupTag collects Delivery providers for Run.
const GroupTag = `group:"deliveries"`

type RunParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Run serves every delivery in its own goroutine. The first failure stops the whole app.
func Run(ctx context.Context, params RunParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			params.Logger.Error("Delivery failed", slog.Any("error", err))

			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
