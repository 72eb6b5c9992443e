package ledger

import (
	"log"
	"sort"
	"time"

	"github.com/oceanus/vessel-records-backend/internal/catalog"
	"github.com/oceanus/vessel-records-backend/internal/models"
)

// Ledger is the derived movement ledger: transport fragments from transponder
// pings and harbor movement records from harbor reports. Immutable once built.
type Ledger struct {
	Transport []models.MovementFragment
	Harbor    []models.HarborMovement

	// Dropped counts ping events skipped because their timestamp matched
	// neither accepted layout.
	Dropped int
}

// Build derives the ledger from the catalog's events. An unparsable event
// timestamp drops that event, not the run. Transport fragments are appended
// in event order, chronological within each interval; callers sort by date
// when global order matters.
func Build(cat *catalog.Catalog) *Ledger {
	l := &Ledger{}

	for _, ev := range cat.EventsByType(models.EventTransponderPing) {
		start, err := models.ParseEventTime(ev.Time)
		if err != nil {
			log.Printf("[Ledger] dropping ping %s->%s: %v", ev.Source, ev.Target, err)
			l.Dropped++
			continue
		}
		// Pings link location (source) to vessel (target).
		iv := models.RawInterval{
			VesselID:   ev.Target,
			LocationID: ev.Source,
			StartTime:  start,
			EndTime:    start.Add(time.Duration(ev.Dwell * float64(time.Second))),
		}
		l.Transport = append(l.Transport, Decompose(iv)...)
	}

	for _, ev := range cat.EventsByType(models.EventHarborReport) {
		date, err := time.Parse(models.DateLayout, ev.Date)
		if err != nil {
			log.Printf("[Ledger] dropping harbor report %s->%s: %v", ev.Source, ev.Target, err)
			l.Dropped++
			continue
		}
		// Harbor reports link vessel (source) to location (target).
		vesselType := ""
		if vessel, ok := cat.Entity(ev.Source); ok {
			vesselType = string(vessel.Type)
		}
		stamp := date.Format(models.TimeLayoutPlain)
		key := ev.Source + "_" + ev.Target + "_" + stamp
		l.Harbor = append(l.Harbor, models.HarborMovement{
			Date:       stamp,
			LocationID: ev.Target,
			VesselID:   ev.Source,
			VesselType: vesselType,
			Type:       "harbor",
			MovementID: key,
			Key:        key,
		})
	}
	sort.SliceStable(l.Harbor, func(i, j int) bool {
		return l.Harbor[i].Date < l.Harbor[j].Date
	})

	log.Printf("[Ledger] built %d transport fragments, %d harbor movements (%d events dropped)",
		len(l.Transport), len(l.Harbor), l.Dropped)
	return l
}

// Sequences groups the transport ledger into per-vessel date-ordered
// (date, location) sequences.
func (l *Ledger) Sequences() map[string][]models.SequencePoint {
	sequences := make(map[string][]models.SequencePoint)
	for _, frag := range l.Transport {
		sequences[frag.VesselID] = append(sequences[frag.VesselID], models.SequencePoint{
			Date:       frag.Date,
			LocationID: frag.LocationID,
		})
	}
	for _, seq := range sequences {
		sort.SliceStable(seq, func(i, j int) bool { return seq[i].Date < seq[j].Date })
	}
	return sequences
}
