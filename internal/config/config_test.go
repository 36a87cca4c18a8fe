package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/compass/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "osrm", cfg.Provider.Type)
	assert.Empty(t, cfg.Provider.BaseURL)
	assert.Equal(t, 1, cfg.Provider.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 64, cfg.FallbackResolution)
	assert.Equal(t, 3*time.Second, cfg.Occupancy.Interval)
	assert.Zero(t, cfg.Occupancy.Seed)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestMustLoad_FromEnv(t *testing.T) {
	t.Setenv("COMPASS_ENV", "local")
	t.Setenv("COMPASS_PORT", "9090")
	t.Setenv("COMPASS_PROVIDER_TYPE", "google")
	t.Setenv("COMPASS_PROVIDER_KEY", "testAPIKey")
	t.Setenv("COMPASS_PROVIDER_BASE_URL", "http://osrm.internal:5000")
	t.Setenv("COMPASS_PROVIDER_RATE_LIMIT", "5")
	t.Setenv("COMPASS_PROVIDER_TIMEOUT", "4s")
	t.Setenv("COMPASS_FALLBACK_RESOLUTION", "32")
	t.Setenv("COMPASS_OCCUPANCY_INTERVAL", "500ms")
	t.Setenv("COMPASS_OCCUPANCY_SEED", "42")
	t.Setenv("COMPASS_DATABASE_HOST", "testHost")
	t.Setenv("COMPASS_DATABASE_PORT", "12345")
	t.Setenv("COMPASS_DATABASE_USER", "admin")
	t.Setenv("COMPASS_DATABASE_PASSWORD", "adminpass")
	t.Setenv("COMPASS_DATABASE_NAME", "testName")
	t.Setenv("COMPASS_DATABASE_SEED", "false")
	t.Setenv("COMPASS_CORS_ORIGINS", "http://localhost:3000, https://campus.example.edu")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, config.ProviderConfig{
		Type:      "google",
		APIKey:    "testAPIKey",
		BaseURL:   "http://osrm.internal:5000",
		RateLimit: 5,
		Timeout:   4 * time.Second,
	}, cfg.Provider)
	assert.Equal(t, 32, cfg.FallbackResolution)
	assert.Equal(t, 500*time.Millisecond, cfg.Occupancy.Interval)
	assert.Equal(t, uint64(42), cfg.Occupancy.Seed)
	assert.Equal(t, config.PostgresConfig{
		Host:     "testHost",
		Port:     "12345",
		User:     "admin",
		Password: "adminpass",
		Name:     "testName",
		Seed:     false,
	}, cfg.Database)
	assert.Equal(t, []string{"http://localhost:3000", "https://campus.example.edu"}, cfg.CORSOrigins)
}

func TestMustLoad_FromFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `
env: development
port: 8181
provider:
  type: osrm
  base_url: http://localhost:5000
  timeout: 2s
occupancy:
  interval: 5s
database:
  host: filehost
  name: filedb
`)
	t.Setenv("COMPASS_CONFIG", file.Name())
	t.Setenv("COMPASS_DATABASE_HOST", "envhost")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8181, cfg.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Provider.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Occupancy.Interval)
	assert.Equal(t, "filedb", cfg.Database.Name)
	require.Equal(t, "envhost", cfg.Database.Host, "environment overrides the file")
}

func TestMustLoad_CORSOriginsListFromFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `
cors_origins:
  - http://localhost:5173
  - https://campus.example.edu
`)
	t.Setenv("COMPASS_CONFIG", file.Name())

	cfg := config.MustLoad()

	assert.Equal(t, []string{"http://localhost:5173", "https://campus.example.edu"}, cfg.CORSOrigins)
}

func TestMustLoad_MissingFile(t *testing.T) {
	t.Setenv("COMPASS_CONFIG", "/nonexistent/compass.yaml")

	assert.PanicsWithValue(t, "failed to read configuration file", func() {
		config.MustLoad()
	})
}

func TestMustLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"port", "COMPASS_PORT", "error_value", "failed to parse port from configuration"},
		{"rate limit", "COMPASS_PROVIDER_RATE_LIMIT", "fast", "failed to parse provider rate limit from configuration"},
		{"timeout", "COMPASS_PROVIDER_TIMEOUT", "soon", "failed to parse provider timeout from configuration"},
		{
			"resolution not a number", "COMPASS_FALLBACK_RESOLUTION", "many",
			"failed to parse fallback resolution from configuration, must be an integer of at least 2",
		},
		{
			"resolution too small", "COMPASS_FALLBACK_RESOLUTION", "1",
			"failed to parse fallback resolution from configuration, must be an integer of at least 2",
		},
		{"interval", "COMPASS_OCCUPANCY_INTERVAL", "error_value", "failed to parse occupancy interval from configuration"},
		{"zero interval", "COMPASS_OCCUPANCY_INTERVAL", "0s", "failed to parse occupancy interval from configuration"},
		{"seed", "COMPASS_OCCUPANCY_SEED", "-1", "failed to parse occupancy seed from configuration"},
		{"db seed flag", "COMPASS_DATABASE_SEED", "maybe", "failed to parse database seed flag from configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			assert.PanicsWithValue(t, tt.want, func() {
				config.MustLoad()
			})
		})
	}
}
