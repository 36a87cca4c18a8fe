package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/UnknownOlympus/compass/internal/geo"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/planner"
	"github.com/go-chi/chi/v5"
)

// SessionHeader identifies a client whose overlapping route requests must not
// deliver out of order. Requests without it are planned independently.
const SessionHeader = "X-Client-Session"

const maxBodyBytes = 1 << 20

// endpointTolerance is how far, in meters, a client path may start or end from the requested points.
const endpointTolerance = 50.0

var errInvalidPoint = errors.New("coordinates must be finite, lat in [-90, 90] and lng in [-180, 180]")

// SessionSource plans routes within per-client sessions.
type SessionSource interface {
	Plan(ctx context.Context, key string, start, end models.GeoPoint) (models.Plan, error)
}

// PathHandler serves route planning and saved routes.
type PathHandler struct {
	log      *slog.Logger
	planner  planner.Planner
	sessions SessionSource
	store    Store
}

func NewPathHandler(log *slog.Logger, p planner.Planner, sessions SessionSource, store Store) *PathHandler {
	return &PathHandler{log: log, planner: p, sessions: sessions, store: store}
}

// FindRequest is the body of POST /api/paths/find.
type FindRequest struct {
	Start *models.GeoPoint `json:"start"`
	End   *models.GeoPoint `json:"end"`
}

// SaveRequest is the body of POST /api/paths/save. When Points is empty the route is planned first.
type SaveRequest struct {
	Name   string           `json:"name"`
	Type   string           `json:"type"`
	Start  *models.GeoPoint `json:"start"`
	End    *models.GeoPoint `json:"end"`
	Points models.RoutePath `json:"points"`
}

// Find handles POST /api/paths/find.
func (h *PathHandler) Find(w http.ResponseWriter, r *http.Request) {
	var req FindRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", map[string]any{"internal": err.Error()})
		return
	}
	if err := validateEndpoints(req.Start, req.End); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	plan, err := h.plan(r, *req.Start, *req.End)
	if errors.Is(err, planner.ErrSuperseded) {
		writeError(w, http.StatusConflict, "A newer route request replaced this one", nil)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// Save handles POST /api/paths/save.
func (h *PathHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", map[string]any{"internal": err.Error()})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.TrimSpace(req.Type)
	if req.Name == "" || req.Type == "" {
		writeError(w, http.StatusBadRequest, "name and type are required", nil)
		return
	}
	if err := validateEndpoints(req.Start, req.End); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	route := &models.SavedRoute{Name: req.Name, Type: req.Type, Start: *req.Start, End: *req.End}
	if len(req.Points) > 0 {
		for _, p := range req.Points {
			if !validPoint(p) {
				writeError(w, http.StatusBadRequest, errInvalidPoint.Error(), map[string]any{"field": "points"})
				return
			}
		}
		if geo.Haversine(req.Points[0], *req.Start) > endpointTolerance ||
			geo.Haversine(req.Points[len(req.Points)-1], *req.End) > endpointTolerance {
			writeError(w, http.StatusBadRequest, "points must run from start to end",
				map[string]any{"toleranceMeters": endpointTolerance})
			return
		}
		route.Path = req.Points
		route.Source = models.RouteSourceClient
		route.Metrics = geo.ComputeMetrics(req.Points)
	} else {
		plan := h.planner.Plan(r.Context(), *req.Start, *req.End)
		route.Path = plan.Path
		route.Source = plan.Source
		route.Metrics = plan.PathMetrics
	}

	if err := h.store.SaveRoute(r.Context(), route); err != nil {
		h.log.ErrorContext(r.Context(), "Failed to save route", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save route", nil)
		return
	}

	writeJSON(w, http.StatusCreated, route)
}

// ListSaved handles GET /api/paths/saved.
func (h *PathHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	routes, err := h.store.ListSavedRoutes(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to list saved routes", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve saved routes", nil)
		return
	}

	writeJSON(w, http.StatusOK, routes)
}

// ListSavedByType handles GET /api/paths/type/{type}.
func (h *PathHandler) ListSavedByType(w http.ResponseWriter, r *http.Request) {
	routeType := chi.URLParam(r, "type")

	routes, err := h.store.ListSavedRoutesByType(r.Context(), routeType)
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to list saved routes", "type", routeType, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve saved routes",
			map[string]any{"type": routeType})
		return
	}

	writeJSON(w, http.StatusOK, routes)
}

func (h *PathHandler) plan(r *http.Request, start, end models.GeoPoint) (models.Plan, error) {
	key := r.Header.Get(SessionHeader)
	if key == "" {
		return h.planner.Plan(r.Context(), start, end), nil
	}

	plan, err := h.sessions.Plan(r.Context(), key, start, end)
	if err != nil {
		h.log.DebugContext(r.Context(), "Discarding stale route", "session", key, "error", err)
	}

	return plan, err
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(dst)
}

func validateEndpoints(start, end *models.GeoPoint) error {
	if start == nil || end == nil {
		return errors.New("start and end are required")
	}
	if !validPoint(*start) || !validPoint(*end) {
		return errInvalidPoint
	}

	return nil
}

func validPoint(p models.GeoPoint) bool {
	return isFinite(p.Latitude) && isFinite(p.Longitude) &&
		p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
