package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the compass service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port serving the API, health and metrics endpoints.
// - Provider: The external routing provider settings.
// - FallbackResolution: Number of points sampled on the fallback curve.
// - Occupancy: Refresh cadence and feed settings for the occupancy board.
// - Database: Configuration settings for the PostgreSQL database.
// - CORSOrigins: Origins allowed to call the API from a browser.
type Config struct {
	Env                string          `mapstructure:"env"`
	Port               int             `mapstructure:"port"`
	Provider           ProviderConfig  `mapstructure:"provider"`
	FallbackResolution int             `mapstructure:"fallback_resolution"`
	Occupancy          OccupancyConfig `mapstructure:"occupancy"`
	Database           PostgresConfig  `mapstructure:"database"`
	CORSOrigins        []string        `mapstructure:"cors_origins"`
}

// ProviderConfig selects and tunes the routing provider.
type ProviderConfig struct {
	Type      string        `mapstructure:"type"`       // osrm or google
	APIKey    string        `mapstructure:"key"`        // required for google
	BaseURL   string        `mapstructure:"base_url"`   // OSRM server, public demo server when empty
	RateLimit int           `mapstructure:"rate_limit"` // requests per second
	Timeout   time.Duration `mapstructure:"timeout"`
}

type OccupancyConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Seed     uint64        `mapstructure:"seed"` // 0 picks a time-based seed
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"name"`     // Name is the name of the database.
	Seed     bool   `mapstructure:"seed"`     // Seed inserts the default facilities on startup.
}

// MustLoad reads .env, an optional YAML file named by COMPASS_CONFIG and
// COMPASS_* environment variables, in increasing order of precedence.
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path := os.Getenv("COMPASS_CONFIG"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	// COMPASS_PROVIDER_BASE_URL -> provider.base_url
	v.SetEnvPrefix("COMPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	port, err := strconv.Atoi(v.GetString("port"))
	if err != nil {
		panic("failed to parse port from configuration")
	}

	rateLimit, err := strconv.Atoi(v.GetString("provider.rate_limit"))
	if err != nil {
		panic("failed to parse provider rate limit from configuration")
	}

	timeout, err := time.ParseDuration(v.GetString("provider.timeout"))
	if err != nil {
		panic("failed to parse provider timeout from configuration")
	}

	resolution, err := strconv.Atoi(v.GetString("fallback_resolution"))
	if err != nil || resolution < 2 {
		panic("failed to parse fallback resolution from configuration, must be an integer of at least 2")
	}

	interval, err := time.ParseDuration(v.GetString("occupancy.interval"))
	if err != nil || interval <= 0 {
		panic("failed to parse occupancy interval from configuration")
	}

	seed, err := strconv.ParseUint(v.GetString("occupancy.seed"), 10, 64)
	if err != nil {
		panic("failed to parse occupancy seed from configuration")
	}

	dbSeed, err := strconv.ParseBool(v.GetString("database.seed"))
	if err != nil {
		panic("failed to parse database seed flag from configuration")
	}

	return &Config{
		Env:  v.GetString("env"),
		Port: port,
		Provider: ProviderConfig{
			Type:      v.GetString("provider.type"),
			APIKey:    v.GetString("provider.key"),
			BaseURL:   v.GetString("provider.base_url"),
			RateLimit: rateLimit,
			Timeout:   timeout,
		},
		FallbackResolution: resolution,
		Occupancy: OccupancyConfig{
			Interval: interval,
			Seed:     seed,
		},
		Database: PostgresConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetString("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			Name:     v.GetString("database.name"),
			Seed:     dbSeed,
		},
		CORSOrigins: splitList(strings.Join(v.GetStringSlice("cors_origins"), ",")),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("port", "8080")
	v.SetDefault("provider.type", "osrm")
	v.SetDefault("provider.key", "")
	v.SetDefault("provider.base_url", "")
	v.SetDefault("provider.rate_limit", "1")
	v.SetDefault("provider.timeout", "10s")
	v.SetDefault("fallback_resolution", "64")
	v.SetDefault("occupancy.interval", "3s")
	v.SetDefault("occupancy.seed", "0")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "compass")
	v.SetDefault("database.seed", "true")
	v.SetDefault("cors_origins", "*")
}

// splitList accepts both a YAML list and a comma separated env value,
// which viper hands over as whitespace-split fields.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
