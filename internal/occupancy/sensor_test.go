package occupancy_test

import (
	"testing"

	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/occupancy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedSensor_Count(t *testing.T) {
	t.Parallel()

	sensor := occupancy.NewSimulatedSensor(42)
	facility := models.Facility{ID: "lib1", MaxCount: 500}

	for range 1000 {
		count, err := sensor.Count(t.Context(), facility)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 0)
		assert.Less(t, count, 500)
	}

	_, err := sensor.Count(t.Context(), models.Facility{ID: "broken"})
	require.ErrorIs(t, err, occupancy.ErrInvalidCapacity)
}

func TestSimulatedSensor_Reproducible(t *testing.T) {
	t.Parallel()

	facility := models.Facility{ID: "can1", MaxCount: 300}
	first, second := occupancy.NewSimulatedSensor(7), occupancy.NewSimulatedSensor(7)

	for range 20 {
		a, err := first.Count(t.Context(), facility)
		require.NoError(t, err)
		b, err := second.Count(t.Context(), facility)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
