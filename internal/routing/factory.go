package routing

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of routing provider.
type ProviderType string

const (
	// ProviderTypeOSRM represents an OSRM route service (public demo server or self-hosted).
	ProviderTypeOSRM ProviderType = "osrm"
	// ProviderTypeGoogle represents Google Maps Directions API.
	ProviderTypeGoogle ProviderType = "google"
)

// ProviderConfig holds configuration for creating a routing provider.
type ProviderConfig struct {
	Type      ProviderType  // Type of provider to create
	APIKey    string        // API key (used by Google provider)
	BaseURL   string        // Server base URL (used by OSRM provider)
	RateLimit int           // Rate limit for requests per second
	Timeout   time.Duration // Per-request timeout (used by OSRM provider)
	Logger    *slog.Logger  // Logger for the provider
}

// NewProvider creates a routing provider based on the provided configuration.
//
// Supported provider types:
// - "osrm": OSRM route service (free, no API key required)
// - "google": Google Maps Directions API (requires API key)
//
// Returns an error if the provider type is unsupported or if provider creation fails.
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeOSRM:
		return newOSRMProvider(config)
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

// newGoogleProvider creates a Google Maps routing provider.
func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}

	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Logger), nil
}

// newOSRMProvider creates an OSRM routing provider.
func newOSRMProvider(config ProviderConfig) (Provider, error) {
	const defaultTimeout = 10 * time.Second

	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}

	if config.RateLimit == 0 && config.BaseURL == "" {
		// Public demo server usage policy.
		config.RateLimit = 1
		config.Logger.Warn("Rate limit for public OSRM server not set, set a default value", "value", config.RateLimit)
	}

	return NewOSRMProvider(config.BaseURL, config.RateLimit, config.Timeout, config.Logger), nil
}
