// Package ledger derives the dense per-day movement ledger from the sparse
// transponder and harbor events of the catalog. The ledger is built once at
// startup and shared read-only across requests.
package ledger

import (
	"time"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

const secondsPerDay = 24 * 3600

// Decompose splits a raw interval into one movement fragment per calendar
// day it touches. Fragments are chronological, contiguous across the span,
// and their dwell values sum to the interval's total dwell. A zero-length
// interval still yields one fragment with dwell 0.
func Decompose(iv models.RawInterval) []models.MovementFragment {
	startDay := startOfDay(iv.StartTime)
	endDay := startOfDay(iv.EndTime)

	var fragments []models.MovementFragment
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		var dwell float64
		switch {
		case day.Equal(startDay) && day.Equal(endDay):
			dwell = iv.EndTime.Sub(iv.StartTime).Seconds()
		case day.Equal(startDay):
			dwell = day.AddDate(0, 0, 1).Sub(iv.StartTime).Seconds()
		case day.Equal(endDay):
			dwell = iv.EndTime.Sub(day).Seconds()
		default:
			dwell = secondsPerDay
		}
		fragments = append(fragments, models.MovementFragment{
			Date:       day.Format(models.DateLayout),
			LocationID: iv.LocationID,
			VesselID:   iv.VesselID,
			Type:       "transport",
			Dwell:      dwell,
		})
	}
	return fragments
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
