// Package timeseries builds dense per-day (count, dwell) grids from the
// movement ledger. Grids are request-scoped: computed, serialized, discarded.
package timeseries

import (
	"time"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

type cell struct {
	count int
	dwell float64
}

// Build produces the dense vessel x date x location tensor for the requested
// window. Every vessel with at least one matching ledger fragment gets one
// entry per calendar day of [start, end], zeros where it has no activity.
// The location axis follows locationIDs exactly; vessels appear in the order
// they are first encountered in the ledger scan. The output is a pure
// function of the inputs and the ledger snapshot.
func Build(transport []models.MovementFragment, start, end time.Time, vesselIDs, locationIDs []string) *models.TimeSeriesGrid {
	var dates []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format(models.DateLayout))
	}

	locIndex := make(map[string]int, len(locationIDs))
	for i, id := range locationIDs {
		locIndex[id] = i
	}
	vesselSet := make(map[string]bool, len(vesselIDs))
	for _, id := range vesselIDs {
		vesselSet[id] = true
	}
	startDate := start.Format(models.DateLayout)
	endDate := end.Format(models.DateLayout)

	var vessels []string
	acc := make(map[string]map[string][]cell)
	for _, frag := range transport {
		if !vesselSet[frag.VesselID] {
			continue
		}
		loc, ok := locIndex[frag.LocationID]
		if !ok {
			continue
		}
		if frag.Date < startDate || frag.Date > endDate {
			continue
		}
		byDate, ok := acc[frag.VesselID]
		if !ok {
			byDate = make(map[string][]cell)
			acc[frag.VesselID] = byDate
			vessels = append(vessels, frag.VesselID)
		}
		cells, ok := byDate[frag.Date]
		if !ok {
			cells = make([]cell, len(locationIDs))
			byDate[frag.Date] = cells
		}
		cells[loc].count++
		cells[loc].dwell += frag.Dwell
	}

	series := make(map[string][]models.GridDay, len(vessels))
	for _, vessel := range vessels {
		days := make([]models.GridDay, 0, len(dates))
		for _, date := range dates {
			out := make([]models.GridCell, len(locationIDs))
			if cells, ok := acc[vessel][date]; ok {
				for i, c := range cells {
					out[i] = models.GridCell{Count: c.count, Dwell: c.dwell}
				}
			}
			days = append(days, models.GridDay{Date: date, Cells: out})
		}
		series[vessel] = days
	}

	return &models.TimeSeriesGrid{
		Vessels:   vessels,
		Dates:     dates,
		Locations: append([]string(nil), locationIDs...),
		Series:    series,
	}
}
