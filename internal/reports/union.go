package reports

import (
	"sort"
	"time"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

// UnionCommodity is the commodity side of a union entry.
type UnionCommodity struct {
	DocumentID  string  `json:"document_id"`
	CommodityID string  `json:"commodity_id"`
	QtyTons     float64 `json:"qty_tons"`
}

// UnionVessel is the vessel side of a union entry.
type UnionVessel struct {
	MovementID string `json:"movement_id"`
	VesselID   string `json:"vessel_id"`
	Key        string `json:"key"`
}

// UnionEntry joins the commodities delivered and the vessels present at one
// (date, location) key.
type UnionEntry struct {
	Date       string           `json:"date"` // YYYY-MM-DD
	LocationID string           `json:"location_id"`
	Commoditys []UnionCommodity `json:"commoditys"`
	Vessels    []UnionVessel    `json:"vessels"`
}

type unionKey struct {
	date     string
	location string
}

// VesselCommodityUnion performs a full outer join between the commodity
// ledger and the harbor movements, keyed by (date, location). Keys present
// on either side appear in the result; the missing side stays an empty
// slice. Entries are sorted by date, then location.
func VesselCommodityUnion(records []CommodityRecord, movements []models.HarborMovement) []UnionEntry {
	commodities := make(map[unionKey][]UnionCommodity)
	for _, rec := range records {
		key := unionKey{date: rec.Date, location: rec.LocationID}
		commodities[key] = append(commodities[key], UnionCommodity{
			DocumentID:  rec.DocumentID,
			CommodityID: rec.CommodityID,
			QtyTons:     rec.QtyTons,
		})
	}

	vessels := groupMovements(movements)

	keys := make(map[unionKey]bool, len(commodities)+len(vessels))
	for key := range commodities {
		keys[key] = true
	}
	for key := range vessels {
		keys[key] = true
	}

	out := make([]UnionEntry, 0, len(keys))
	for key := range keys {
		entry := UnionEntry{
			Date:       key.date,
			LocationID: key.location,
			Commoditys: commodities[key],
			Vessels:    vessels[key],
		}
		if entry.Commoditys == nil {
			entry.Commoditys = []UnionCommodity{}
		}
		if entry.Vessels == nil {
			entry.Vessels = []UnionVessel{}
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].LocationID < out[j].LocationID
	})
	return out
}

// RefreshUnions appends the vessels of the given movements to the matching
// (date, location) entries of an existing union. Entries are updated in
// place; keys absent from the union are ignored.
func RefreshUnions(original []UnionEntry, movements []models.HarborMovement) []UnionEntry {
	vessels := groupMovements(movements)
	for key, group := range vessels {
		for i := range original {
			if original[i].Date == key.date && original[i].LocationID == key.location {
				original[i].Vessels = append(original[i].Vessels, group...)
			}
		}
	}
	return original
}

// groupMovements buckets harbor movements by (date, location). Movement
// dates carry a midnight time component; it is stripped for the join key.
func groupMovements(movements []models.HarborMovement) map[unionKey][]UnionVessel {
	out := make(map[unionKey][]UnionVessel)
	for _, mv := range movements {
		stamp, err := time.Parse(models.TimeLayoutPlain, mv.Date)
		if err != nil {
			continue
		}
		key := unionKey{date: stamp.Format(models.DateLayout), location: mv.LocationID}
		out[key] = append(out[key], UnionVessel{
			MovementID: mv.MovementID,
			VesselID:   mv.VesselID,
			Key:        mv.Key,
		})
	}
	return out
}
