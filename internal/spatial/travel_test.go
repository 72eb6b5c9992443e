package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

var testCoords = map[string]models.Coordinate{
	"port_a": {Latitude: 0, Longitude: 0},
	"port_b": {Latitude: 0, Longitude: 1},
}

func lookup(id string) (models.Coordinate, bool) {
	c, ok := testCoords[id]
	return c, ok
}

func TestHaversineDistance(t *testing.T) {
	// One degree of longitude at the equator is roughly 111.2 km.
	d := HaversineDistance(0, 0, 0, 1)
	assert.InDelta(t, 111195, d, 100)

	assert.Zero(t, HaversineDistance(39.5, -120.25, 39.5, -120.25))
}

func TestTravelDistance(t *testing.T) {
	oneDegree := HaversineDistance(0, 0, 0, 1)

	tests := []struct {
		name     string
		sequence []models.SequencePoint
		want     float64
	}{
		{"empty", nil, 0},
		{"single stop", []models.SequencePoint{{Date: "2024-01-01", LocationID: "port_a"}}, 0},
		{
			"one move",
			[]models.SequencePoint{
				{Date: "2024-01-01", LocationID: "port_a"},
				{Date: "2024-01-02", LocationID: "port_b"},
			},
			oneDegree,
		},
		{
			"repeated stop counted once",
			[]models.SequencePoint{
				{Date: "2024-01-01", LocationID: "port_a"},
				{Date: "2024-01-02", LocationID: "port_a"},
				{Date: "2024-01-03", LocationID: "port_b"},
			},
			oneDegree,
		},
		{
			"round trip",
			[]models.SequencePoint{
				{Date: "2024-01-01", LocationID: "port_a"},
				{Date: "2024-01-02", LocationID: "port_b"},
				{Date: "2024-01-03", LocationID: "port_a"},
			},
			2 * oneDegree,
		},
		{
			"unlocated stop skipped",
			[]models.SequencePoint{
				{Date: "2024-01-01", LocationID: "port_a"},
				{Date: "2024-01-02", LocationID: "open_sea"},
				{Date: "2024-01-03", LocationID: "port_b"},
			},
			oneDegree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TravelDistance(tt.sequence, lookup), 1e-6)
		})
	}
}
