package reports

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

func harborMovement(vessel, location, date string) models.HarborMovement {
	key := vessel + "_" + location + "_" + date + "T00:00:00"
	return models.HarborMovement{
		Date:       date + "T00:00:00",
		LocationID: location,
		VesselID:   vessel,
		Type:       "harbor",
		MovementID: key,
		Key:        key,
	}
}

func TestVesselCommodityUnion(t *testing.T) {
	records := []CommodityRecord{
		{Date: "2024-01-02", CommodityID: "fish_salt", LocationID: "port_grove", QtyTons: 5, DocumentID: "doc_1"},
		{Date: "2024-01-05", CommodityID: "fish_reef", LocationID: "port_grove", QtyTons: 2, DocumentID: "doc_2"},
	}
	movements := []models.HarborMovement{
		harborMovement("vessel_1", "port_grove", "2024-01-02"),
		harborMovement("vessel_2", "port_grove", "2024-01-02"),
		harborMovement("vessel_1", "city_of_himark", "2024-01-03"),
	}

	union := VesselCommodityUnion(records, movements)

	require.Len(t, union, 3, "keys from either side must appear")
	assert.True(t, sort.SliceIsSorted(union, func(i, j int) bool { return union[i].Date <= union[j].Date }))

	// Matched key: both sides populated.
	matched := union[0]
	assert.Equal(t, "2024-01-02", matched.Date)
	assert.Equal(t, "port_grove", matched.LocationID)
	require.Len(t, matched.Commoditys, 1)
	assert.Equal(t, "doc_1", matched.Commoditys[0].DocumentID)
	require.Len(t, matched.Vessels, 2)
	assert.Equal(t, "vessel_1", matched.Vessels[0].VesselID)

	// Vessel-only key keeps an empty commodity list, not nil.
	vesselOnly := union[1]
	assert.Equal(t, "city_of_himark", vesselOnly.LocationID)
	assert.NotNil(t, vesselOnly.Commoditys)
	assert.Empty(t, vesselOnly.Commoditys)
	require.Len(t, vesselOnly.Vessels, 1)

	// Commodity-only key keeps an empty vessel list.
	commodityOnly := union[2]
	assert.Equal(t, "2024-01-05", commodityOnly.Date)
	assert.Empty(t, commodityOnly.Vessels)
	assert.NotNil(t, commodityOnly.Vessels)
}

func TestRefreshUnions(t *testing.T) {
	union := []UnionEntry{
		{Date: "2024-01-02", LocationID: "port_grove", Commoditys: []UnionCommodity{}, Vessels: []UnionVessel{
			{MovementID: "m1", VesselID: "vessel_1", Key: "m1"},
		}},
		{Date: "2024-01-03", LocationID: "port_grove", Commoditys: []UnionCommodity{}, Vessels: []UnionVessel{}},
	}
	extra := []models.HarborMovement{
		harborMovement("vessel_9", "port_grove", "2024-01-02"),
		harborMovement("vessel_9", "nowhere", "2024-01-09"), // no matching entry, ignored
	}

	out := RefreshUnions(union, extra)

	require.Len(t, out, 2)
	require.Len(t, out[0].Vessels, 2)
	assert.Equal(t, "vessel_9", out[0].Vessels[1].VesselID)
	assert.Empty(t, out[1].Vessels)
}
