package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const facilityColumns = `facility_id, code, name, type, max_count, latitude, longitude`

const savedRouteColumns = `route_id, name, type, start_lat, start_lng, end_lat, end_lng, path, source, ` +
	`distance_m, eta_min, created_at`

// ListFacilities retrieves every monitored facility ordered by code.
func (r *Repository) ListFacilities(ctx context.Context) ([]models.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities ORDER BY code ASC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query facilities: %w", err)
	}

	return r.collectFacilities(ctx, rows)
}

// ListFacilitiesByType retrieves the facilities of a single type ordered by code.
func (r *Repository) ListFacilitiesByType(
	ctx context.Context,
	facilityType models.FacilityType,
) ([]models.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE type = $1 ORDER BY code ASC;`

	rows, err := r.db.Query(ctx, query, string(facilityType))
	if err != nil {
		return nil, fmt.Errorf("failed to query facilities by type: %w", err)
	}

	return r.collectFacilities(ctx, rows)
}

// GetFacility retrieves a facility by its ID. It returns ErrNotFound if there is no such facility.
func (r *Repository) GetFacility(ctx context.Context, id string) (*models.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE facility_id = $1;`

	var facility models.Facility
	err := scanFacility(r.db.QueryRow(ctx, query, id), &facility)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get facility %s: %w", id, err)
	}

	return &facility, nil
}

// SaveRoute stores a planned route. A missing ID or creation time is filled in.
func (r *Repository) SaveRoute(ctx context.Context, route *models.SavedRoute) error {
	query := `
		INSERT INTO saved_routes (` + savedRouteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	if route.ID == "" {
		route.ID = uuid.NewString()
	}
	if route.CreatedAt.IsZero() {
		route.CreatedAt = time.Now().UTC()
	}

	path, err := json.Marshal(route.Path)
	if err != nil {
		return fmt.Errorf("failed to encode route path: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		route.ID, route.Name, route.Type,
		route.Start.Latitude, route.Start.Longitude, route.End.Latitude, route.End.Longitude,
		path, string(route.Source), route.Metrics.DistanceMeters, route.Metrics.ETAMinutes, route.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save route: %w", err)
	}

	r.log.DebugContext(ctx, "Route saved", "ID", route.ID, "type", route.Type)

	return nil
}

// ListSavedRoutes retrieves all saved routes, newest first.
func (r *Repository) ListSavedRoutes(ctx context.Context) ([]models.SavedRoute, error) {
	query := `SELECT ` + savedRouteColumns + ` FROM saved_routes ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved routes: %w", err)
	}

	return collectSavedRoutes(rows)
}

// ListSavedRoutesByType retrieves saved routes of a single travel type, newest first.
func (r *Repository) ListSavedRoutesByType(ctx context.Context, routeType string) ([]models.SavedRoute, error) {
	query := `SELECT ` + savedRouteColumns + ` FROM saved_routes WHERE type = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, routeType)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved routes by type: %w", err)
	}

	return collectSavedRoutes(rows)
}

func (r *Repository) collectFacilities(ctx context.Context, rows pgx.Rows) ([]models.Facility, error) {
	defer rows.Close()

	facilities := []models.Facility{}
	for rows.Next() {
		var facility models.Facility
		if errScan := scanFacility(rows, &facility); errScan != nil {
			return nil, fmt.Errorf("failed to scan facility: %w", errScan)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Facilities loaded", "count", len(facilities))

	return facilities, nil
}

func scanFacility(row pgx.Row, f *models.Facility) error {
	var facilityType string
	err := row.Scan(&f.ID, &f.Code, &f.Name, &facilityType, &f.MaxCount, &f.Location.Latitude, &f.Location.Longitude)
	f.Type = models.FacilityType(facilityType)

	return err
}

func collectSavedRoutes(rows pgx.Rows) ([]models.SavedRoute, error) {
	defer rows.Close()

	routes := []models.SavedRoute{}
	for rows.Next() {
		var (
			route  models.SavedRoute
			path   []byte
			source string
		)
		errScan := rows.Scan(
			&route.ID, &route.Name, &route.Type,
			&route.Start.Latitude, &route.Start.Longitude, &route.End.Latitude, &route.End.Longitude,
			&path, &source, &route.Metrics.DistanceMeters, &route.Metrics.ETAMinutes, &route.CreatedAt,
		)
		if errScan != nil {
			return nil, fmt.Errorf("failed to scan saved route: %w", errScan)
		}
		if err := json.Unmarshal(path, &route.Path); err != nil {
			return nil, fmt.Errorf("failed to decode path of saved route %s: %w", route.ID, err)
		}
		route.Source = models.RouteSource(source)
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return routes, nil
}
