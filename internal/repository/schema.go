package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/compass/internal/models"
)

const schemaQuery = `
	CREATE TABLE IF NOT EXISTS facilities (
		facility_id TEXT PRIMARY KEY,
		code        TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		type        TEXT NOT NULL,
		max_count   INTEGER NOT NULL CHECK (max_count > 0),
		latitude    DOUBLE PRECISION NOT NULL,
		longitude   DOUBLE PRECISION NOT NULL
	);
	CREATE TABLE IF NOT EXISTS saved_routes (
		route_id    UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		type        TEXT NOT NULL,
		start_lat   DOUBLE PRECISION NOT NULL,
		start_lng   DOUBLE PRECISION NOT NULL,
		end_lat     DOUBLE PRECISION NOT NULL,
		end_lng     DOUBLE PRECISION NOT NULL,
		path        JSONB NOT NULL,
		source      TEXT NOT NULL,
		distance_m  DOUBLE PRECISION NOT NULL,
		eta_min     DOUBLE PRECISION NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	);
`

const seedFacilityQuery = `
	INSERT INTO facilities (facility_id, code, name, type, max_count, latitude, longitude)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (facility_id) DO NOTHING;
`

// DefaultFacilities are the facilities shown on the campus board out of the box.
var DefaultFacilities = []models.Facility{
	{ID: "lib1", Code: "LIB-A", Name: "中心图书馆", Type: models.FacilityLibrary, MaxCount: 500,
		Location: models.GeoPoint{Latitude: 39.9068, Longitude: 116.4079}},
	{ID: "lib2", Code: "LIB-B", Name: "工学分馆", Type: models.FacilityLibrary, MaxCount: 200,
		Location: models.GeoPoint{Latitude: 39.9081, Longitude: 116.4102}},
	{ID: "lib3", Code: "LIB-C", Name: "医学分馆", Type: models.FacilityLibrary, MaxCount: 150,
		Location: models.GeoPoint{Latitude: 39.9049, Longitude: 116.4111}},
	{ID: "can1", Code: "CAN-1", Name: "第一食堂", Type: models.FacilityCanteen, MaxCount: 300,
		Location: models.GeoPoint{Latitude: 39.9057, Longitude: 116.4072}},
	{ID: "can2", Code: "CAN-2", Name: "第二食堂", Type: models.FacilityCanteen, MaxCount: 250,
		Location: models.GeoPoint{Latitude: 39.9075, Longitude: 116.4063}},
	{ID: "can3", Code: "CAN-3", Name: "教工食堂", Type: models.FacilityCanteen, MaxCount: 200,
		Location: models.GeoPoint{Latitude: 39.9044, Longitude: 116.4090}},
	{ID: "exp1", Code: "EXP-1", Name: "主楼快递点", Type: models.FacilityExpress, MaxCount: 100,
		Location: models.GeoPoint{Latitude: 39.9063, Longitude: 116.4095}},
	{ID: "exp2", Code: "EXP-2", Name: "宿舍快递点", Type: models.FacilityExpress, MaxCount: 150,
		Location: models.GeoPoint{Latitude: 39.9088, Longitude: 116.4081}},
}

// EnsureSchema creates the tables the service needs if they do not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaQuery); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedFacilities inserts the given facilities, leaving existing rows with the same ID untouched.
func (r *Repository) SeedFacilities(ctx context.Context, facilities []models.Facility) error {
	for _, f := range facilities {
		_, err := r.db.Exec(ctx, seedFacilityQuery,
			f.ID, f.Code, f.Name, string(f.Type), f.MaxCount, f.Location.Latitude, f.Location.Longitude)
		if err != nil {
			return fmt.Errorf("failed to seed facility %s: %w", f.ID, err)
		}
	}

	r.log.DebugContext(ctx, "Facilities seeded", "count", len(facilities))

	return nil
}
