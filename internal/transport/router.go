package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/occupancy"
	"github.com/UnknownOlympus/compass/internal/planner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthTimeout = 2 * time.Second

// Store is the persistence the API reads facilities from and saves routes to.
type Store interface {
	ListFacilities(ctx context.Context) ([]models.Facility, error)
	ListFacilitiesByType(ctx context.Context, facilityType models.FacilityType) ([]models.Facility, error)
	GetFacility(ctx context.Context, id string) (*models.Facility, error)
	SaveRoute(ctx context.Context, route *models.SavedRoute) error
	ListSavedRoutes(ctx context.Context) ([]models.SavedRoute, error)
	ListSavedRoutesByType(ctx context.Context, routeType string) ([]models.SavedRoute, error)
}

// SnapshotSource exposes the latest occupancy board.
type SnapshotSource interface {
	Snapshot() *occupancy.Snapshot
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps bundles everything the router dispatches to.
type Deps struct {
	Log         *slog.Logger
	Planner     planner.Planner
	Store       Store
	Occupancy   SnapshotSource
	DB          Pinger
	Registry    *prometheus.Registry
	Metrics     *metrics.Metrics
	CORSOrigins []string
}

// NewRouter wires the health, metrics and API endpoints.
func NewRouter(deps Deps) http.Handler {
	paths := NewPathHandler(deps.Log, deps.Planner, planner.NewSessions(deps.Planner), deps.Store)
	facilities := NewFacilityHandler(deps.Log, deps.Store)
	board := NewOccupancyHandler(deps.Occupancy)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", SessionHeader},
		MaxAge:         300,
	}))
	r.Use(countRequests(deps.Metrics))

	r.Get("/healthz", healthz(deps.DB))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/paths", func(r chi.Router) {
			r.Post("/find", paths.Find)
			r.Post("/save", paths.Save)
			r.Get("/saved", paths.ListSaved)
			r.Get("/type/{type}", paths.ListSavedByType)
		})
		r.Route("/facilities", func(r chi.Router) {
			r.Get("/", facilities.List)
			r.Get("/type/{type}", facilities.ListByType)
			r.Get("/nearby/{lng}/{lat}", facilities.Nearby)
			r.Get("/nearby/{lng}/{lat}/{maxDistance}", facilities.Nearby)
			r.Get("/{id}", facilities.Get)
		})
		r.Get("/occupancy", board.Get)
	})

	return r
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			http.Error(w, "Database connection failed", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func countRequests(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		})
	}
}
