// Package aggregate merges per-vessel transponder intervals into a single
// run-length-encoded "most likely location" timeline for a time window.
package aggregate

import (
	"errors"
	"sort"
	"time"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

// ErrInvalidWindow is returned when the window's start lies after its end.
var ErrInvalidWindow = errors.New("aggregate: window start is after end")

// AggregationVesselID marks segments of the merged timeline.
const AggregationVesselID = "aggregation"

// Aggregate runs a sweep line over the raw intervals that overlap
// [start, end] and match the vessel/location filters. Between each pair of
// consecutive interval endpoints it reports the dominant location: the one
// with the most covering intervals, ties broken by the location first
// encountered in scan order. Adjacent sub-windows with the same dominant
// location are merged, so the result is chronological, contiguous over
// [start, end], and never repeats a location in adjacent segments. With no
// matching interval the whole window is a single segment with a nil location.
func Aggregate(intervals []models.RawInterval, start, end time.Time, vesselIDs, locationIDs []string) ([]models.AggregatedSegment, error) {
	if start.After(end) {
		return nil, ErrInvalidWindow
	}

	vesselSet := make(map[string]bool, len(vesselIDs))
	for _, id := range vesselIDs {
		vesselSet[id] = true
	}
	locationSet := make(map[string]bool, len(locationIDs))
	for _, id := range locationIDs {
		locationSet[id] = true
	}

	var filtered []models.RawInterval
	for _, iv := range intervals {
		if iv.StartTime.After(end) || iv.EndTime.Before(start) {
			continue
		}
		if !vesselSet[iv.VesselID] || !locationSet[iv.LocationID] {
			continue
		}
		filtered = append(filtered, iv)
	}

	if len(filtered) == 0 || start.Equal(end) {
		return []models.AggregatedSegment{{
			StartTime: start,
			EndTime:   end,
			VesselID:  AggregationVesselID,
		}}, nil
	}

	breakpoints := breakpoints(filtered, start, end)

	var segments []models.AggregatedSegment
	for i := 0; i < len(breakpoints)-1; i++ {
		lo, hi := breakpoints[i], breakpoints[i+1]
		dominant := dominantLocation(filtered, lo, hi)

		if n := len(segments); n > 0 && sameLocation(segments[n-1].LocationID, dominant) {
			segments[n-1].EndTime = hi
			continue
		}
		segments = append(segments, models.AggregatedSegment{
			StartTime:  lo,
			EndTime:    hi,
			LocationID: dominant,
			VesselID:   AggregationVesselID,
		})
	}
	return segments, nil
}

// breakpoints collects the window boundaries and every interval endpoint
// inside the window, deduplicated and sorted.
func breakpoints(intervals []models.RawInterval, start, end time.Time) []time.Time {
	seen := map[time.Time]bool{start: true, end: true}
	points := []time.Time{start, end}
	add := func(t time.Time) {
		if t.Before(start) || t.After(end) || seen[t] {
			return
		}
		seen[t] = true
		points = append(points, t)
	}
	for _, iv := range intervals {
		add(iv.StartTime)
		add(iv.EndTime)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Before(points[j]) })
	return points
}

// dominantLocation counts, per location, the intervals strictly covering the
// open sub-window (lo, hi) and returns the location with the highest count.
// On a tie the location first encountered in scan order wins. Returns nil if
// nothing covers the sub-window.
func dominantLocation(intervals []models.RawInterval, lo, hi time.Time) *string {
	counts := make(map[string]int)
	var order []string
	for _, iv := range intervals {
		if iv.StartTime.Before(hi) && iv.EndTime.After(lo) {
			if _, ok := counts[iv.LocationID]; !ok {
				order = append(order, iv.LocationID)
			}
			counts[iv.LocationID]++
		}
	}
	if len(order) == 0 {
		return nil
	}
	best := order[0]
	for _, loc := range order[1:] {
		if counts[loc] > counts[best] {
			best = loc
		}
	}
	return &best
}

func sameLocation(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
