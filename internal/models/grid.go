package models

import "encoding/json"

// GridCell is the (visit count, total dwell) pair for one location on one day.
type GridCell struct {
	Count int
	Dwell float64
}

// MarshalJSON emits the cell as a [count, dwell] pair.
func (c GridCell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{float64(c.Count), c.Dwell})
}

// GridDay is one date's per-location vector. Cells follow the location order
// of the request exactly.
type GridDay struct {
	Date  string
	Cells []GridCell
}

// MarshalJSON emits the day as a [date, cells] pair.
func (d GridDay) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{d.Date, d.Cells})
}

// TimeSeriesGrid is the dense vessel x date x location tensor. Every vessel
// series has one entry per calendar day of the requested range. Vessels keeps
// the order in which vessels first appeared in the ledger scan; the cluster
// adapter relies on it to re-attach vessel ids to embedding coordinates.
type TimeSeriesGrid struct {
	Vessels   []string
	Dates     []string
	Locations []string
	Series    map[string][]GridDay
}

// MarshalJSON emits the vessel -> series mapping.
func (g TimeSeriesGrid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Series)
}

// VesselCoordinate is one vessel's point in the 2-D similarity embedding.
type VesselCoordinate struct {
	VesselID string
	X, Y     float64
}

// MarshalJSON emits the [vessel_id, [x, y]] pair shape.
func (v VesselCoordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{v.VesselID, [2]float64{v.X, v.Y}})
}
