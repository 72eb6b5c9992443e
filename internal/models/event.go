package models

// EventType tags a dataset link.
type EventType string

// Event types present in the dataset
const (
	EventTransponderPing EventType = "Event.TransportEvent.TransponderPing"
	EventTransaction     EventType = "Event.Transaction"
	EventHarborReport    EventType = "Event.HarborReport"
)

// Event is a typed dataset link between two entities. Time-related fields
// depend on the event type: transponder pings carry time+dwell, transactions
// and harbor reports carry a calendar date. Immutable after load.
type Event struct {
	Type   EventType `json:"type"`
	Source string    `json:"source"`
	Target string    `json:"target"`

	// TransponderPing
	Time  string  `json:"time,omitempty"`
	Dwell float64 `json:"dwell,omitempty"`

	// Transaction / HarborReport
	Date string `json:"date,omitempty"`
}
