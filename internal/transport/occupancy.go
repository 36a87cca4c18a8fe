package transport

import (
	"net/http"

	"github.com/UnknownOlympus/compass/internal/occupancy"
)

type OccupancyHandler struct {
	source SnapshotSource
}

func NewOccupancyHandler(source SnapshotSource) *OccupancyHandler {
	return &OccupancyHandler{source: source}
}

// Get handles GET /api/occupancy. It answers 503 until the first refresh has completed.
func (h *OccupancyHandler) Get(w http.ResponseWriter, _ *http.Request) {
	snapshot := h.source.Snapshot()
	if snapshot == nil || snapshot.TakenAt.IsZero() {
		writeError(w, http.StatusServiceUnavailable, "Occupancy data is not available yet", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, snapshot)
}

var _ SnapshotSource = (*occupancy.Monitor)(nil)
