package occupancy_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/occupancy"
	"github.com/UnknownOlympus/compass/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMonitor_Refresh(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := t.Context()
	library := models.Facility{ID: "lib1", Code: "LIB-A", Name: "中心图书馆", Type: models.FacilityLibrary, MaxCount: 500}
	canteen := models.Facility{ID: "can1", Code: "CAN-1", Name: "第一食堂", Type: models.FacilityCanteen, MaxCount: 300}

	t.Run("successful refresh", func(t *testing.T) {
		lister := mocks.NewFacilityLister(t)
		sensor := mocks.NewSensor(t)
		appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
		monitor := occupancy.NewMonitor(logger, lister, sensor, appMetrics, time.Second)

		lister.On("ListFacilities", ctx).Return([]models.Facility{library, canteen}, nil).Once()
		sensor.On("Count", ctx, library).Return(153, nil).Once()
		sensor.On("Count", ctx, canteen).Return(270, nil).Once()

		require.NoError(t, monitor.Refresh(ctx))

		snap := monitor.Snapshot()
		require.Len(t, snap.Entries, 2)
		assert.Equal(t, occupancy.StatusNormal, snap.Entries[0].Status)
		assert.Equal(t, "空闲", snap.Entries[0].Label)
		assert.InDelta(t, 0.306, snap.Entries[0].Ratio, 1e-9)
		assert.Equal(t, occupancy.StatusCrowded, snap.Entries[1].Status)
		assert.Equal(t, models.OccupancyReading{FacilityID: "can1", CurrentCount: 270, MaxCount: 300},
			snap.Entries[1].Reading)
		assert.False(t, snap.TakenAt.IsZero())
		assert.InDelta(t, 0.9, testutil.ToFloat64(appMetrics.OccupancyRatio.WithLabelValues("can1", "canteen")), 1e-9)
		assert.InDelta(t, 1.0, testutil.ToFloat64(appMetrics.OccupancyRefreshes.WithLabelValues("success")), 0)
	})

	t.Run("listing error keeps previous snapshot", func(t *testing.T) {
		lister := mocks.NewFacilityLister(t)
		sensor := mocks.NewSensor(t)
		appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
		monitor := occupancy.NewMonitor(logger, lister, sensor, appMetrics, time.Second)

		lister.On("ListFacilities", ctx).Return([]models.Facility{library}, nil).Once()
		sensor.On("Count", ctx, library).Return(400, nil).Once()
		require.NoError(t, monitor.Refresh(ctx))
		before := monitor.Snapshot()

		lister.On("ListFacilities", ctx).Return(nil, assert.AnError).Once()
		err := monitor.Refresh(ctx)

		require.ErrorIs(t, err, assert.AnError)
		assert.Same(t, before, monitor.Snapshot())
		assert.InDelta(t, 1.0, testutil.ToFloat64(appMetrics.OccupancyRefreshes.WithLabelValues("failure")), 0)
	})

	t.Run("bad readings are skipped", func(t *testing.T) {
		lister := mocks.NewFacilityLister(t)
		sensor := mocks.NewSensor(t)
		appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
		monitor := occupancy.NewMonitor(logger, lister, sensor, appMetrics, time.Second)
		broken := models.Facility{ID: "exp1", Type: models.FacilityExpress, MaxCount: 0}

		lister.On("ListFacilities", ctx).Return([]models.Facility{library, canteen, broken}, nil).Once()
		sensor.On("Count", ctx, library).Return(0, assert.AnError).Once()
		sensor.On("Count", ctx, canteen).Return(150, nil).Once()
		sensor.On("Count", ctx, broken).Return(3, nil).Once()

		require.NoError(t, monitor.Refresh(ctx))

		snap := monitor.Snapshot()
		require.Len(t, snap.Entries, 1)
		assert.Equal(t, "can1", snap.Entries[0].Facility.ID)
		assert.Equal(t, occupancy.StatusBusy, snap.Entries[0].Status)
	})

	t.Run("initial snapshot is empty", func(t *testing.T) {
		monitor := occupancy.NewMonitor(logger, mocks.NewFacilityLister(t), mocks.NewSensor(t),
			metrics.NewMetrics(prometheus.NewRegistry()), 0)

		require.NotNil(t, monitor.Snapshot())
		assert.Empty(t, monitor.Snapshot().Entries)
	})
}

func TestMonitor_Run(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	lister := mocks.NewFacilityLister(t)
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	monitor := occupancy.NewMonitor(logger, lister, occupancy.NewSimulatedSensor(1), appMetrics, 10*time.Millisecond)

	lister.On("ListFacilities", mock.Anything).
		Return([]models.Facility{{ID: "lib2", Type: models.FacilityLibrary, MaxCount: 200}}, nil)

	ctx, cancel := context.WithTimeout(t.Context(), 55*time.Millisecond)
	defer cancel()

	monitor.Run(ctx)

	require.Len(t, monitor.Snapshot().Entries, 1)
	assert.GreaterOrEqual(t, testutil.ToFloat64(appMetrics.OccupancyRefreshes.WithLabelValues("success")), 2.0)
}
