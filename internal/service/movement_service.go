package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/oceanus/vessel-records-backend/internal/aggregate"
	"github.com/oceanus/vessel-records-backend/internal/catalog"
	"github.com/oceanus/vessel-records-backend/internal/cluster"
	"github.com/oceanus/vessel-records-backend/internal/ledger"
	"github.com/oceanus/vessel-records-backend/internal/models"
	"github.com/oceanus/vessel-records-backend/internal/spatial"
	"github.com/oceanus/vessel-records-backend/internal/timeseries"
)

// ErrValidation marks request validation failures, surfaced as 4xx.
var ErrValidation = errors.New("invalid request")

// MovementService answers the movement queries against the immutable catalog
// and ledger. It holds no per-request state; requests may run in parallel.
type MovementService struct {
	catalog  *catalog.Catalog
	ledger   *ledger.Ledger
	embedder *cluster.Embedder
}

// NewMovementService creates a new movement service.
func NewMovementService(cat *catalog.Catalog, led *ledger.Ledger) *MovementService {
	return &MovementService{
		catalog:  cat,
		ledger:   led,
		embedder: cluster.NewEmbedder(),
	}
}

// TransportMovements returns the cached transport ledger.
func (s *MovementService) TransportMovements() []models.MovementFragment {
	if s.ledger.Transport == nil {
		return []models.MovementFragment{}
	}
	return s.ledger.Transport
}

// HarborMovements returns the date-sorted harbor movement records.
func (s *MovementService) HarborMovements() []models.HarborMovement {
	if s.ledger.Harbor == nil {
		return []models.HarborMovement{}
	}
	return s.ledger.Harbor
}

// window validates the query and resolves its date range. Vessel and
// location ids must exist in the catalog; an empty catalog skips the id
// check so that queries degrade to empty results instead of failing.
func (s *MovementService) window(q *models.WindowQuery) (start, end time.Time, err error) {
	start, end, err = q.Window()
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(q.VesselIDs) == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: vessel_ids must not be empty", ErrValidation)
	}
	if len(q.LocationIDs) == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: location_ids must not be empty", ErrValidation)
	}
	if s.catalog.IsEmpty() {
		return start, end, nil
	}
	for _, id := range q.VesselIDs {
		if !s.catalog.IsVessel(id) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown vessel id %q", ErrValidation, id)
		}
	}
	for _, id := range q.LocationIDs {
		if !s.catalog.IsLocation(id) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown location id %q", ErrValidation, id)
		}
	}
	return start, end, nil
}

// Aggregate merges the matching raw intervals into the dominant-location
// timeline for the window.
func (s *MovementService) Aggregate(q *models.WindowQuery) ([]models.AggregatedSegment, error) {
	start, end, err := s.window(q)
	if err != nil {
		return nil, err
	}
	return aggregate.Aggregate(s.catalog.RawIntervals(), start, end, q.VesselIDs, q.LocationIDs)
}

// TimeSeries builds the dense per-day grid for the window.
func (s *MovementService) TimeSeries(q *models.WindowQuery) (*models.TimeSeriesGrid, error) {
	start, end, err := s.window(q)
	if err != nil {
		return nil, err
	}
	return timeseries.Build(s.ledger.Transport, start, end, q.VesselIDs, q.LocationIDs), nil
}

// Embedding computes the 2-D similarity embedding over the window's grid.
// Vessels without any matching ledger entry have no coordinate; an empty
// grid yields an empty result.
func (s *MovementService) Embedding(q *models.WindowQuery) ([]models.VesselCoordinate, error) {
	grid, err := s.TimeSeries(q)
	if err != nil {
		return nil, err
	}
	if len(grid.Vessels) == 0 {
		return []models.VesselCoordinate{}, nil
	}
	return s.embedder.Embed(grid)
}

// TravelDistances sums each requested vessel's great-circle travel distance
// in meters over its movement sequence within the window, restricted to the
// requested locations.
func (s *MovementService) TravelDistances(q *models.WindowQuery) (map[string]float64, error) {
	_, _, err := s.window(q)
	if err != nil {
		return nil, err
	}
	locationSet := make(map[string]bool, len(q.LocationIDs))
	for _, id := range q.LocationIDs {
		locationSet[id] = true
	}

	sequences := s.ledger.Sequences()
	out := make(map[string]float64, len(q.VesselIDs))
	for _, vessel := range q.VesselIDs {
		var sequence []models.SequencePoint
		for _, point := range sequences[vessel] {
			if point.Date < q.StartDate || point.Date > q.EndDate || !locationSet[point.LocationID] {
				continue
			}
			sequence = append(sequence, point)
		}
		out[vessel] = spatial.TravelDistance(sequence, s.catalog.Coordinate)
	}
	return out, nil
}
