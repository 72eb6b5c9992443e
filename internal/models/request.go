package models

import (
	"fmt"
	"time"
)

// WindowQuery is the common request body of the windowed movement endpoints.
type WindowQuery struct {
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	VesselIDs   []string `json:"vessel_ids" binding:"required"`
	LocationIDs []string `json:"location_ids" binding:"required"`
}

// Window parses and validates the date range. Dates must be YYYY-MM-DD and
// start must not be after end.
func (q *WindowQuery) Window() (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout, q.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date must be YYYY-MM-DD, got %q", q.StartDate)
	}
	end, err = time.Parse(DateLayout, q.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date must be YYYY-MM-DD, got %q", q.EndDate)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date %s is after end_date %s", q.StartDate, q.EndDate)
	}
	return start, end, nil
}
