package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		levelName string
		want      slog.Level
	}{
		{levelName: "debug", want: slog.LevelDebug},
		{levelName: "info", want: slog.LevelInfo},
		{levelName: "WARN", want: slog.LevelWarn},
		{levelName: "error", want: slog.LevelError},
		{levelName: "verbose", want: slog.LevelInfo},
		{levelName: "", want: slog.LevelInfo},
	}

	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.levelName, func(t *testing.T) {
			logger := newLogger(tt.levelName)

			assert.True(t, logger.Enabled(ctx, tt.want))
			assert.False(t, logger.Enabled(ctx, tt.want-1))
		})
	}
}
