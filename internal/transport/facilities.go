package transport

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/compass/internal/geo"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/repository"
	"github.com/go-chi/chi/v5"
)

// FacilityHandler serves the facility registry.
type FacilityHandler struct {
	log   *slog.Logger
	store Store
}

func NewFacilityHandler(log *slog.Logger, store Store) *FacilityHandler {
	return &FacilityHandler{log: log, store: store}
}

// List handles GET /api/facilities.
func (h *FacilityHandler) List(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.store.ListFacilities(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to list facilities", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve facilities", nil)
		return
	}

	writeJSON(w, http.StatusOK, facilities)
}

// Get handles GET /api/facilities/{id}.
func (h *FacilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	facility, err := h.store.GetFacility(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Facility not found", map[string]any{"id": id})
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to get facility", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve facility", nil)
		return
	}

	writeJSON(w, http.StatusOK, facility)
}

// ListByType handles GET /api/facilities/type/{type}.
func (h *FacilityHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	facilityType := models.FacilityType(chi.URLParam(r, "type"))
	switch facilityType {
	case models.FacilityLibrary, models.FacilityCanteen, models.FacilityExpress:
	default:
		writeError(w, http.StatusBadRequest, "Unknown facility type",
			map[string]any{"type": string(facilityType)})
		return
	}

	facilities, err := h.store.ListFacilitiesByType(r.Context(), facilityType)
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to list facilities", "type", facilityType, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve facilities", nil)
		return
	}

	writeJSON(w, http.StatusOK, facilities)
}

// Nearby handles GET /api/facilities/nearby/{lng}/{lat}/{maxDistance}; the radius defaults to 1000 m.
func (h *FacilityHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	lng, errLng := strconv.ParseFloat(chi.URLParam(r, "lng"), 64)
	lat, errLat := strconv.ParseFloat(chi.URLParam(r, "lat"), 64)
	origin := models.GeoPoint{Latitude: lat, Longitude: lng}
	if errLng != nil || errLat != nil || !validPoint(origin) {
		writeError(w, http.StatusBadRequest, errInvalidPoint.Error(), nil)
		return
	}

	radius := geo.DefaultSearchRadius
	if raw := chi.URLParam(r, "maxDistance"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || !isFinite(parsed) || parsed < 0 {
			writeError(w, http.StatusBadRequest, "maxDistance must be a non-negative number of meters", nil)
			return
		}
		radius = parsed
	}

	facilities, err := h.store.ListFacilities(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to list facilities", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve facilities", nil)
		return
	}

	writeJSON(w, http.StatusOK, geo.Nearby(facilities, origin, radius))
}
