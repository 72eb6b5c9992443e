package service

import (
	"fmt"

	"github.com/oceanus/vessel-records-backend/internal/catalog"
	"github.com/oceanus/vessel-records-backend/internal/ledger"
	"github.com/oceanus/vessel-records-backend/internal/models"
	"github.com/oceanus/vessel-records-backend/internal/reports"
)

// ReportService answers the commodity and location report queries.
type ReportService struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
}

// NewReportService creates a new report service.
func NewReportService(cat *catalog.Catalog, led *ledger.Ledger) *ReportService {
	return &ReportService{catalog: cat, ledger: led}
}

// Distributions returns one commodity distribution per delivery document.
func (s *ReportService) Distributions() []reports.CommodityDistribution {
	out := reports.Distributions(s.catalog)
	if out == nil {
		out = []reports.CommodityDistribution{}
	}
	return out
}

// CommodityLedger returns the dated commodity ledger filtered by direction
// ("all", "import" or "export").
func (s *ReportService) CommodityLedger(direction string) ([]reports.CommodityRecord, error) {
	switch reports.Direction(direction) {
	case reports.DirectionAll, reports.DirectionImport, reports.DirectionExport:
	default:
		return nil, fmt.Errorf("%w: direction must be all, import or export, got %q", ErrValidation, direction)
	}
	out := reports.Ledger(s.catalog, reports.Direction(direction))
	if out == nil {
		out = []reports.CommodityRecord{}
	}
	return out, nil
}

// VesselCommodityUnion joins the commodity ledger with the harbor movements
// by (date, location).
func (s *ReportService) VesselCommodityUnion() []reports.UnionEntry {
	return reports.VesselCommodityUnion(
		reports.Ledger(s.catalog, reports.DirectionAll),
		s.ledger.Harbor,
	)
}

// FishingLocations maps commodities to the regions where they are fished.
func (s *ReportService) FishingLocations() map[string][]string {
	return reports.FishingLocations(s.catalog)
}

// LocationInfo is one location entity with its coordinates, when known.
type LocationInfo struct {
	ID          string             `json:"id"`
	Type        models.EntityType  `json:"type"`
	Name        string             `json:"name,omitempty"`
	Coordinates *models.Coordinate `json:"coordinates,omitempty"`
}

// Locations lists all location entities.
func (s *ReportService) Locations() []LocationInfo {
	entities := s.catalog.EntitiesByTypePrefix(models.EntityLocation)
	out := make([]LocationInfo, 0, len(entities))
	for _, e := range entities {
		info := LocationInfo{ID: e.ID, Type: e.Type, Name: e.Name()}
		if coord, ok := s.catalog.Coordinate(e.ID); ok {
			c := coord
			info.Coordinates = &c
		}
		out = append(out, info)
	}
	return out
}
