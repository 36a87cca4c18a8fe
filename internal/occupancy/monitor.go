package occupancy

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/models"
)

// DefaultInterval is the refresh cadence of the campus occupancy board.
const DefaultInterval = 3 * time.Second

// FacilityLister supplies the set of monitored facilities.
type FacilityLister interface {
	ListFacilities(ctx context.Context) ([]models.Facility, error)
}

// Entry is the classified occupancy of one facility.
type Entry struct {
	Facility models.Facility         `json:"facility"`
	Reading  models.OccupancyReading `json:"reading"`
	Ratio    float64                 `json:"ratio"`
	Status   Status                  `json:"status"`
	Label    string                  `json:"label"`
}

// Snapshot is an immutable set of entries taken at one refresh.
type Snapshot struct {
	Entries []Entry   `json:"entries"`
	TakenAt time.Time `json:"takenAt"`
}

// Monitor periodically samples every facility and publishes a fresh Snapshot.
// Readers never observe a partially updated snapshot: each refresh swaps the whole set.
type Monitor struct {
	log        *slog.Logger     // Logger for logging monitor activities
	facilities FacilityLister   // Source of monitored facilities
	sensor     Sensor           // Source of head counts
	metrics    *metrics.Metrics // Metrics for tracking occupancy
	interval   time.Duration    // Interval between refreshes
	snapshot   atomic.Pointer[Snapshot]
}

// NewMonitor creates a new Monitor. A non-positive interval selects DefaultInterval.
func NewMonitor(
	log *slog.Logger,
	facilities FacilityLister,
	sensor Sensor,
	metrics *metrics.Metrics,
	interval time.Duration,
) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}

	mon := &Monitor{
		log:        log,
		facilities: facilities,
		sensor:     sensor,
		metrics:    metrics,
		interval:   interval,
	}
	mon.snapshot.Store(&Snapshot{Entries: []Entry{}})

	return mon
}

// Run refreshes the snapshot once and then on every tick until ctx is canceled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.log.InfoContext(ctx, "Occupancy monitor started...", "interval", m.interval)
	m.refreshAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			m.log.InfoContext(ctx, "Occupancy monitor stopped.")
			return
		case <-ticker.C:
			m.refreshAndLog(ctx)
		}
	}
}

// Snapshot returns the latest published snapshot. It is never nil.
func (m *Monitor) Snapshot() *Snapshot {
	return m.snapshot.Load()
}

func (m *Monitor) refreshAndLog(ctx context.Context) {
	if err := m.Refresh(ctx); err != nil {
		m.log.ErrorContext(ctx, "Failed to refresh occupancy", "error", err)
	}
}

// Refresh samples every facility and publishes a new snapshot.
// On a facility listing error the previous snapshot stays in place.
// Facilities whose reading cannot be taken or classified are left out of the new snapshot.
func (m *Monitor) Refresh(ctx context.Context) error {
	facilities, err := m.facilities.ListFacilities(ctx)
	if err != nil {
		m.metrics.OccupancyRefreshes.WithLabelValues("failure").Inc()
		return err
	}

	entries := make([]Entry, 0, len(facilities))
	for _, facility := range facilities {
		count, err := m.sensor.Count(ctx, facility)
		if err != nil {
			m.log.WarnContext(ctx, "Failed to read occupancy", "facility", facility.ID, "error", err)
			continue
		}

		status, err := Classify(count, facility.MaxCount)
		if err != nil {
			m.log.WarnContext(ctx, "Skipping unclassifiable reading",
				"facility", facility.ID, "current", count, "max", facility.MaxCount, "error", err)
			continue
		}

		ratio := float64(count) / float64(facility.MaxCount)
		m.metrics.OccupancyRatio.WithLabelValues(facility.ID, string(facility.Type)).Set(ratio)

		entries = append(entries, Entry{
			Facility: facility,
			Reading: models.OccupancyReading{
				FacilityID:   facility.ID,
				CurrentCount: count,
				MaxCount:     facility.MaxCount,
			},
			Ratio:  ratio,
			Status: status,
			Label:  status.Label(),
		})
	}

	m.snapshot.Store(&Snapshot{Entries: entries, TakenAt: time.Now().UTC()})
	m.metrics.OccupancyRefreshes.WithLabelValues("success").Inc()
	m.log.DebugContext(ctx, "Occupancy refreshed", "facilities", len(entries))

	return nil
}
