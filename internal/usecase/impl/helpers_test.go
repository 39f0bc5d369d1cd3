package impl

import (
	"io"
	"log/slog"

	"gymtrack/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Nutrition: &config.NutritionConfig{
			DefaultQuantity: 100,
			HistoryLimit:    50,
			Timezone:        "UTC",
		},
	}
}
