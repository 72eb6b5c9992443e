package spatial

import (
	"github.com/oceanus/vessel-records-backend/internal/models"
)

// CoordinateLookup resolves a location id to coordinates.
type CoordinateLookup func(locationID string) (models.Coordinate, bool)

// TravelDistance sums the great-circle distance in meters along a vessel's
// date-ordered movement sequence, counting each move between two distinct
// located positions once. Steps touching an unlocated position are skipped.
func TravelDistance(sequence []models.SequencePoint, lookup CoordinateLookup) float64 {
	var total float64
	var prev *models.Coordinate
	prevLocation := ""
	for _, point := range sequence {
		if point.LocationID == prevLocation {
			continue
		}
		coord, ok := lookup(point.LocationID)
		if !ok {
			continue
		}
		if prev != nil {
			total += HaversineDistance(prev.Latitude, prev.Longitude, coord.Latitude, coord.Longitude)
		}
		c := coord
		prev = &c
		prevLocation = point.LocationID
	}
	return total
}
