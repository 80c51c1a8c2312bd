package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayzor/contacts-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enabled  slog.Level
		disabled slog.Level
	}{
		{name: "debug", level: "debug", enabled: slog.LevelDebug, disabled: slog.LevelDebug - 4},
		{name: "info", level: "info", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
		{name: "warn", level: "warn", enabled: slog.LevelWarn, disabled: slog.LevelInfo},
		{name: "error", level: "error", enabled: slog.LevelError, disabled: slog.LevelWarn},
		{name: "unknown falls back to info", level: "loud", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.level})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.enabled))
			assert.False(t, log.Enabled(ctx, tt.disabled))
		})
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
	assert.Same(t, log, FromContextOrDefault(ctx, nil))
}

func TestLoggerContextFallbacks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	def := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, def, FromContextOrDefault(ctx, def))
	assert.Same(t, slog.Default(), FromContext(ctx))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))
}
