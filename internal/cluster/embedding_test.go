package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

// gridOf builds a one-location grid from per-vessel dwell series.
func gridOf(series map[string][]float64, order []string) *models.TimeSeriesGrid {
	grid := &models.TimeSeriesGrid{
		Vessels:   order,
		Locations: []string{"loc_a"},
		Series:    make(map[string][]models.GridDay),
	}
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"}
	for _, vessel := range order {
		values := series[vessel]
		days := make([]models.GridDay, len(values))
		for i, dwell := range values {
			count := 0
			if dwell > 0 {
				count = 1
			}
			days[i] = models.GridDay{
				Date:  dates[i],
				Cells: []models.GridCell{{Count: count, Dwell: dwell}},
			}
		}
		grid.Series[vessel] = days
	}
	grid.Dates = dates[:len(series[order[0]])]
	return grid
}

func TestFeaturesNormalization(t *testing.T) {
	grid := gridOf(map[string][]float64{
		"vessel_1": {100, 200, 300, 400},
		"vessel_2": {5, 5, 5, 5},
	}, []string{"vessel_1", "vessel_2"})

	data := Features(grid)
	require.Len(t, data, 2)

	// Each channel is centered to mean zero across the time axis.
	for _, series := range data {
		require.Len(t, series, 4)
		for f := 0; f < 2; f++ {
			var sum float64
			for t := range series {
				sum += series[t][f]
			}
			assert.InDelta(t, 0, sum, 1e-9)
		}
	}

	// vessel_2's dwell channel has zero variance and stays at zero.
	for _, row := range data[1] {
		assert.Zero(t, row[1])
	}
}

func TestEmbedTooFewVessels(t *testing.T) {
	grid := gridOf(map[string][]float64{"vessel_1": {1, 2, 3, 4}}, []string{"vessel_1"})

	_, err := NewEmbedder().Embed(grid)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestEmbedAllZeroTensor(t *testing.T) {
	grid := gridOf(map[string][]float64{
		"vessel_1": {0, 0, 0, 0},
		"vessel_2": {0, 0, 0, 0},
	}, []string{"vessel_1", "vessel_2"})

	coords, err := NewEmbedder().Embed(grid)
	assert.ErrorIs(t, err, ErrDegenerate)
	assert.Nil(t, coords)
}

func TestEmbedIndistinguishableVessels(t *testing.T) {
	// Identical non-zero series are also degenerate: normalization maps them
	// to the same feature rows, so every pairwise distance collapses to zero.
	grid := gridOf(map[string][]float64{
		"vessel_1": {100, 200, 300, 400},
		"vessel_2": {100, 200, 300, 400},
		"vessel_3": {100, 200, 300, 400},
	}, []string{"vessel_1", "vessel_2", "vessel_3"})

	_, err := NewEmbedder().Embed(grid)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestEmbedKeepsVesselOrder(t *testing.T) {
	grid := gridOf(map[string][]float64{
		"vessel_1": {0, 3600, 0, 0},
		"vessel_2": {0, 0, 0, 7200},
		"vessel_3": {1800, 0, 1800, 0},
	}, []string{"vessel_1", "vessel_2", "vessel_3"})

	coords, err := NewEmbedder().Embed(grid)
	require.NoError(t, err)

	require.Len(t, coords, 3)
	assert.Equal(t, "vessel_1", coords[0].VesselID)
	assert.Equal(t, "vessel_2", coords[1].VesselID)
	assert.Equal(t, "vessel_3", coords[2].VesselID)
}

func TestEmbedSeparatesDistinctBehavior(t *testing.T) {
	// Two near-identical vessels and one very different: the twins must end
	// up closer to each other than to the outlier.
	grid := gridOf(map[string][]float64{
		"twin_a": {3600, 0, 3600, 0},
		"twin_b": {3600, 10, 3600, 0},
		"loner":  {0, 86400, 0, 86400},
	}, []string{"twin_a", "twin_b", "loner"})

	coords, err := NewEmbedder().Embed(grid)
	require.NoError(t, err)
	require.Len(t, coords, 3)

	d := func(a, b models.VesselCoordinate) float64 {
		dx, dy := a.X-b.X, a.Y-b.Y
		return dx*dx + dy*dy
	}
	assert.Less(t, d(coords[0], coords[1]), d(coords[0], coords[2]))
	assert.Less(t, d(coords[0], coords[1]), d(coords[1], coords[2]))
}
