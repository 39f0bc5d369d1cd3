package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Check(t *testing.T) {
	tests := []struct {
		name      string
		next      sql.DBStats
		wantLog   bool
		wantLevel string
	}{
		{
			name:    "no new waits",
			next:    sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			wantLog: false,
		},
		{
			name:      "short waits are debug",
			next:      sql.DBStats{WaitCount: 5, WaitDuration: time.Second + 10*time.Millisecond},
			wantLog:   true,
			wantLevel: "level=DEBUG",
		},
		{
			name:      "long waits warn",
			next:      sql.DBStats{WaitCount: 4, WaitDuration: 2 * time.Second},
			wantLog:   true,
			wantLevel: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			m := &poolMonitor{
				logger: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
				stats:  func() sql.DBStats { return tt.next },
				prev:   sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			}

			m.check(context.Background())

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), "Postgres pool wait")
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Equal(t, tt.next, m.prev)
		})
	}
}
