package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp layouts accepted by the dataset. Pings come with and without
// fractional seconds.
const (
	TimeLayoutFrac  = "2006-01-02T15:04:05.999999"
	TimeLayoutPlain = "2006-01-02T15:04:05"
	DateLayout      = "2006-01-02"
)

// ParseEventTime parses a dataset timestamp, trying the fractional layout
// first and falling back to the plain one.
func ParseEventTime(s string) (time.Time, error) {
	if t, err := time.Parse(TimeLayoutFrac, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(TimeLayoutPlain, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
	}
	return t, nil
}

// RawInterval is one transponder ping: a vessel dwelling at a location for a
// contiguous span of time.
type RawInterval struct {
	VesselID   string
	LocationID string
	StartTime  time.Time
	EndTime    time.Time
}

// Dwell returns the interval length in seconds.
func (iv RawInterval) Dwell() float64 {
	return iv.EndTime.Sub(iv.StartTime).Seconds()
}

// UnmarshalJSON accepts the start/end form of the transport movements file
// as well as the start+dwell form of ping events.
func (iv *RawInterval) UnmarshalJSON(data []byte) error {
	var raw struct {
		VesselID   string   `json:"vessel_id"`
		LocationID string   `json:"location_id"`
		StartTime  string   `json:"start_time"`
		EndTime    string   `json:"end_time"`
		Dwell      *float64 `json:"dwell"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := ParseEventTime(raw.StartTime)
	if err != nil {
		return fmt.Errorf("interval start_time: %w", err)
	}
	iv.VesselID = raw.VesselID
	iv.LocationID = raw.LocationID
	iv.StartTime = start
	switch {
	case raw.EndTime != "":
		end, err := ParseEventTime(raw.EndTime)
		if err != nil {
			return fmt.Errorf("interval end_time: %w", err)
		}
		iv.EndTime = end
	case raw.Dwell != nil:
		iv.EndTime = start.Add(time.Duration(*raw.Dwell * float64(time.Second)))
	default:
		iv.EndTime = start
	}
	return nil
}

// MovementFragment is a day-bounded slice of a raw interval's dwell. The
// fragments of one interval are contiguous and their dwell values sum to the
// interval's total dwell.
type MovementFragment struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	LocationID string  `json:"location_id"`
	VesselID   string  `json:"vessel_id"`
	Type       string  `json:"type"` // "transport"
	Dwell      float64 `json:"dwell"`
}

// HarborMovement is one harbor-visit report resolved to a movement record.
type HarborMovement struct {
	Date       string `json:"date"` // YYYY-MM-DDT00:00:00
	LocationID string `json:"location_id"`
	VesselID   string `json:"vessel_id"`
	VesselType string `json:"vessel_type"`
	Type       string `json:"type"` // "harbor"
	MovementID string `json:"movement_id"`
	Key        string `json:"key"`
}

// SequencePoint is one step of a vessel's date-ordered location sequence.
type SequencePoint struct {
	Date       string `json:"date"`
	LocationID string `json:"location_id"`
}

// AggregatedSegment is one run of the merged multi-vessel timeline: the
// dominant location over [StartTime, EndTime). LocationID is nil when no
// interval covers the span. VesselID is always "aggregation".
type AggregatedSegment struct {
	StartTime  time.Time
	EndTime    time.Time
	LocationID *string
	VesselID   string
}

// MarshalJSON emits timestamps without a zone designator, matching the
// dataset's own timestamp style.
func (s AggregatedSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		StartTime  string  `json:"start_time"`
		EndTime    string  `json:"end_time"`
		LocationID *string `json:"location_id"`
		VesselID   string  `json:"vessel_id"`
	}{
		StartTime:  s.StartTime.Format(TimeLayoutPlain),
		EndTime:    s.EndTime.Format(TimeLayoutPlain),
		LocationID: s.LocationID,
		VesselID:   s.VesselID,
	})
}
