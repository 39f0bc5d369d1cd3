package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "gymtrack/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing"},
		{name: "reused from header", incoming: "req-123", keep: true},
		{name: "oversized header replaced", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			var seenCtxID string
			var hasLogger bool
			e.GET("/", func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusOK)
			}, m.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenCtxID)
			assert.True(t, hasLogger)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}
