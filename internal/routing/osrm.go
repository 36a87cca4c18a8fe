package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/UnknownOlympus/compass/internal/models"
	"golang.org/x/time/rate"
)

// OSRMBaseURL is the public OSRM demo server.
const OSRMBaseURL = "https://router.project-osrm.org"

const (
	osrmCodeOk      = "Ok"
	osrmProfileFoot = "foot"
	osrmUserAgent   = "Compass-Campus-Routing/1.0 (https://github.com/UnknownOlympus/compass)"
)

// OSRMProvider implements the Provider interface using the OSRM HTTP route service.
// The public demo server allows roughly one request per second, so calls go through a rate limiter.
type OSRMProvider struct {
	client    HTTPClient    // HTTP client for making requests
	baseURL   string        // Base URL of the OSRM server, without the /route path
	log       *slog.Logger  // Logger for logging operations
	limiter   *rate.Limiter // Rate limiter
	userAgent string
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// osrmResponse represents the subset of the OSRM route response we rely on.
type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry struct {
			Type        string      `json:"type"`
			Coordinates [][]float64 `json:"coordinates"` // [lon, lat] pairs
		} `json:"geometry"`
	} `json:"routes"`
}

// ErrUnexpectedCode is returned when OSRM answers with a code other than "Ok".
var ErrUnexpectedCode = errors.New("osrm API returned unexpected code")

// NewOSRMProvider creates a new OSRM routing provider.
// An empty baseURL selects the public demo server; rateLimit <= 0 disables limiting.
func NewOSRMProvider(baseURL string, rateLimit int, timeout time.Duration, log *slog.Logger) *OSRMProvider {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), rateLimit)
	}

	return NewOSRMProviderWithClient(&http.Client{Timeout: timeout}, baseURL, limiter, log)
}

// NewOSRMProviderWithClient creates an OSRM provider with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewOSRMProviderWithClient(
	client HTTPClient,
	baseURL string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *OSRMProvider {
	if baseURL == "" {
		baseURL = OSRMBaseURL
	}

	return &OSRMProvider{
		client:    client,
		baseURL:   baseURL,
		log:       log,
		limiter:   limiter,
		userAgent: osrmUserAgent,
	}
}

// Route requests a foot route from start to end.
// OSRM takes coordinates as lon,lat; the returned geometry is converted back to lat,lon.
func (op *OSRMProvider) Route(ctx context.Context, start, end models.GeoPoint) (models.RoutePath, error) {
	if err := op.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	reqURL, err := op.routeURL(start, end)
	if err != nil {
		return nil, err
	}

	op.log.DebugContext(ctx, "OSRM request URL", "url", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", op.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := op.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute routing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// OSRM reports NoRoute and friends with a 400 and a JSON body, so the body is decoded first.
	var result osrmResponse
	if err = json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			op.log.ErrorContext(ctx, "OSRM API error", "status", resp.StatusCode, "body", string(body))
			return nil, fmt.Errorf("osrm API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to decode osrm response: %w", err)
	}

	return op.extractPath(ctx, resp.StatusCode, result)
}

func (op *OSRMProvider) routeURL(start, end models.GeoPoint) (string, error) {
	base, err := url.Parse(op.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	coords := fmt.Sprintf("%s,%s;%s,%s",
		formatCoord(start.Longitude), formatCoord(start.Latitude),
		formatCoord(end.Longitude), formatCoord(end.Latitude),
	)
	reqURL := base.JoinPath("route", "v1", osrmProfileFoot, coords)

	query := reqURL.Query()
	query.Set("overview", "full")
	query.Set("geometries", "geojson")
	reqURL.RawQuery = query.Encode()

	return reqURL.String(), nil
}

// extractPath validates the decoded response shape before trusting any of its fields.
func (op *OSRMProvider) extractPath(ctx context.Context, status int, result osrmResponse) (models.RoutePath, error) {
	const pairLength = 2

	if result.Code != osrmCodeOk {
		op.log.WarnContext(ctx, "OSRM returned no usable route",
			"status", status, "code", result.Code, "message", result.Message)
		if result.Code == "NoRoute" {
			return nil, ErrNoRoute
		}
		return nil, fmt.Errorf("%w: %q (status %d): %s", ErrUnexpectedCode, result.Code, status, result.Message)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("osrm API returned status %d", status)
	}
	if len(result.Routes) == 0 {
		return nil, ErrNoRoute
	}

	coords := result.Routes[0].Geometry.Coordinates
	if len(coords) < pairLength {
		return nil, fmt.Errorf("%w: %d coordinates", ErrInvalidGeometry, len(coords))
	}

	path := make(models.RoutePath, 0, len(coords))
	for idx, pair := range coords {
		if len(pair) != pairLength || !finite(pair[0]) || !finite(pair[1]) {
			return nil, fmt.Errorf("%w: coordinate %d is %v", ErrInvalidGeometry, idx, pair)
		}
		path = append(path, models.FromLonLat(pair[0], pair[1]))
	}

	op.log.DebugContext(ctx, "OSRM found route", "points", len(path))

	return path, nil
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
