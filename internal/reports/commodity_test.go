package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanus/vessel-records-backend/internal/catalog"
	"github.com/oceanus/vessel-records-backend/internal/models"
)

func testCatalog() *catalog.Catalog {
	entities := []models.Entity{
		{ID: "doc_1", Type: models.EntityDeliveryReport, Attrs: map[string]interface{}{"qty_tons": 12.5}},
		{ID: "doc_2", Type: models.EntityDeliveryReport, Attrs: map[string]interface{}{"qty_tons": -4.0}},
		{ID: "doc_3", Type: models.EntityDeliveryReport, Attrs: map[string]interface{}{"qty_tons": 3.0}},
		{ID: "fish_salt", Type: models.EntityCommodityFish, Attrs: map[string]interface{}{"name": "saltwater cod"}},
		{ID: "fish_reef", Type: models.EntityCommodityFish, Attrs: map[string]interface{}{"name": "reef perch"}},
		{ID: "region_north", Type: models.EntityLocationRegion, Attrs: map[string]interface{}{
			"fish_species_present": []interface{}{"saltwater cod"},
		}},
		{ID: "region_south", Type: models.EntityLocationRegion, Attrs: map[string]interface{}{
			"fish_species_present": []interface{}{"saltwater cod", "reef perch"},
		}},
		{ID: "port_grove", Type: models.EntityLocationPoint, Attrs: map[string]interface{}{}},
	}
	events := []models.Event{
		// Each document links to its commodity first, then its location.
		{Type: models.EventTransaction, Source: "doc_1", Target: "fish_salt", Date: "2024-01-03"},
		{Type: models.EventTransaction, Source: "doc_1", Target: "port_grove", Date: "2024-01-03"},
		{Type: models.EventTransaction, Source: "doc_2", Target: "fish_reef", Date: "2024-01-01"},
		{Type: models.EventTransaction, Source: "doc_2", Target: "port_grove", Date: "2024-01-01"},
		// doc_3 carries a single transaction only.
		{Type: models.EventTransaction, Source: "doc_3", Target: "fish_salt", Date: "2024-01-04"},
	}
	return catalog.New(entities, events, nil, nil)
}

func TestDistributions(t *testing.T) {
	out := Distributions(testCatalog())

	require.Len(t, out, 3)
	assert.Equal(t, "doc_1", out[0].DocumentID)
	assert.Equal(t, "fish_salt", out[0].CommodityID)
	require.NotNil(t, out[0].LocationID)
	assert.Equal(t, "port_grove", *out[0].LocationID)
	assert.Equal(t, "2024-01-03", out[0].Date)

	// Single-transaction documents report no location.
	assert.Equal(t, "doc_3", out[2].DocumentID)
	assert.Nil(t, out[2].LocationID)
}

func TestLedgerDirections(t *testing.T) {
	cat := testCatalog()

	all := Ledger(cat, DirectionAll)
	require.Len(t, all, 2, "single-transaction documents are excluded")

	imports := Ledger(cat, DirectionImport)
	require.Len(t, imports, 1)
	assert.Equal(t, "doc_1", imports[0].DocumentID)
	assert.Equal(t, 12.5, imports[0].QtyTons)

	exports := Ledger(cat, DirectionExport)
	require.Len(t, exports, 1)
	assert.Equal(t, "doc_2", exports[0].DocumentID)
	assert.Equal(t, -4.0, exports[0].QtyTons)
}

func TestFishingLocations(t *testing.T) {
	out := FishingLocations(testCatalog())

	assert.Equal(t, []string{"region_north", "region_south"}, out["fish_salt"])
	assert.Equal(t, []string{"region_south"}, out["fish_reef"])
}
