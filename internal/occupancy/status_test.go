package occupancy_test

import (
	"testing"

	"github.com/UnknownOlympus/compass/internal/occupancy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		current  int
		maxCount int
		want     occupancy.Status
	}{
		{name: "empty", current: 0, maxCount: 500, want: occupancy.StatusNormal},
		{name: "ratio 0.2", current: 100, maxCount: 500, want: occupancy.StatusNormal},
		{name: "ratio 0.48", current: 240, maxCount: 500, want: occupancy.StatusNormal},
		{name: "ratio exactly 0.5", current: 250, maxCount: 500, want: occupancy.StatusBusy},
		{name: "ratio 0.798", current: 399, maxCount: 500, want: occupancy.StatusBusy},
		{name: "ratio exactly 0.8", current: 400, maxCount: 500, want: occupancy.StatusCrowded},
		{name: "full", current: 500, maxCount: 500, want: occupancy.StatusCrowded},
		{name: "over capacity", current: 650, maxCount: 500, want: occupancy.StatusCrowded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := occupancy.Classify(tc.current, tc.maxCount)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := occupancy.Classify(10, 0)
	require.ErrorIs(t, err, occupancy.ErrInvalidCapacity)

	_, err = occupancy.Classify(10, -5)
	require.ErrorIs(t, err, occupancy.ErrInvalidCapacity)

	_, err = occupancy.Classify(-1, 10)
	require.ErrorIs(t, err, occupancy.ErrNegativeCount)
}

func TestStatus_Labels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "空闲", occupancy.StatusNormal.Label())
	assert.Equal(t, "较忙", occupancy.StatusBusy.Label())
	assert.Equal(t, "拥挤", occupancy.StatusCrowded.Label())

	assert.Equal(t, "free", occupancy.StatusNormal.LabelEN())
	assert.Equal(t, "moderately busy", occupancy.StatusBusy.LabelEN())
	assert.Equal(t, "crowded", occupancy.StatusCrowded.LabelEN())

	assert.Equal(t, "busy", occupancy.StatusBusy.String())
	assert.Equal(t, "Status(7)", occupancy.Status(7).String())
	assert.Empty(t, occupancy.Status(7).Label())

	text, err := occupancy.StatusCrowded.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "crowded", string(text))
}
