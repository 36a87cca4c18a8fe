package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/compass/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	ListFacilities(ctx context.Context) ([]models.Facility, error)
	ListFacilitiesByType(ctx context.Context, facilityType models.FacilityType) ([]models.Facility, error)
	GetFacility(ctx context.Context, id string) (*models.Facility, error)
	SaveRoute(ctx context.Context, route *models.SavedRoute) error
	ListSavedRoutes(ctx context.Context) ([]models.SavedRoute, error)
	ListSavedRoutesByType(ctx context.Context, routeType string) ([]models.SavedRoute, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

var _ Interface = (*Repository)(nil)
