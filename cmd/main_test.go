package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/compass/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DatabaseUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	cfg := &config.Config{
		Env:  envLocal,
		Port: 0,
		Provider: config.ProviderConfig{
			Type: "osrm",
		},
		Database: config.PostgresConfig{
			Host: "127.0.0.1",
			Port: "1",
			User: "compass",
			Name: "compass",
		},
	}

	err := run(ctx, cancel, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to connect to DB")
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env   string
		level slog.Level
	}{
		{envLocal, slog.LevelDebug},
		{envDev, slog.LevelInfo},
		{envProd, slog.LevelWarn},
		{"unknown", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			logger := setupLogger(tt.env)

			assert.True(t, logger.Enabled(t.Context(), tt.level))
			assert.False(t, logger.Enabled(t.Context(), tt.level-1))
		})
	}
}
