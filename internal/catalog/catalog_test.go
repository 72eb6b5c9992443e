package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

const datasetJSON = `{
	"nodes": [
		{"id": "vessel_1", "type": "Entity.Vessel.CargoVessel", "name": "Sea Dog"},
		{"id": "vessel_2", "type": "Entity.Vessel.Ferry.Passenger", "name": "Harbor Hopper"},
		{"id": "city_of_himark", "type": "Entity.Location.City"},
		{"id": "region_north", "type": "Entity.Location.Region", "fish_species_present": ["saltwater cod"]},
		{"id": "doc_1", "type": "Entity.Document.DeliveryReport", "qty_tons": 7.25}
	],
	"links": [
		{"type": "Event.TransportEvent.TransponderPing", "source": "city_of_himark", "target": "vessel_1", "time": "2024-01-01T10:00:00", "dwell": 600},
		{"type": "Event.HarborReport", "source": "vessel_2", "target": "city_of_himark", "date": "2024-01-02"}
	]
}`

const intervalsJSON = `[
	{"vessel_id": "vessel_1", "location_id": "city_of_himark", "start_time": "2024-01-01T10:00:00", "end_time": "2024-01-01T10:10:00"},
	{"vessel_id": "vessel_2", "location_id": "city_of_himark", "start_time": "2024-01-02T08:00:00.250000", "dwell": 1800}
]`

const coordinatesJSON = `{"city_of_himark": {"latitude": 39.5, "longitude": -120.25}}`

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileDataset), []byte(datasetJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileTransportMovements), []byte(intervalsJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileCoordinates), []byte(coordinatesJSON), 0o644))
	return dir
}

func TestLoadDataset(t *testing.T) {
	cat := LoadDataset(writeDataset(t))

	assert.False(t, cat.IsEmpty())
	assert.Len(t, cat.Entities(), 5)
	assert.Len(t, cat.Events(), 2)
	require.Len(t, cat.RawIntervals(), 2)

	// Attributes beyond id/type survive the load.
	vessel, ok := cat.Entity("vessel_1")
	require.True(t, ok)
	assert.Equal(t, "Sea Dog", vessel.Name())

	doc, ok := cat.Entity("doc_1")
	require.True(t, ok)
	qty, ok := doc.QtyTons()
	require.True(t, ok)
	assert.Equal(t, 7.25, qty)

	region, ok := cat.Entity("region_north")
	require.True(t, ok)
	assert.Equal(t, []string{"saltwater cod"}, region.FishSpecies())

	// The dwell form of an interval derives its end time.
	second := cat.RawIntervals()[1]
	assert.Equal(t, 1800.0, second.Dwell())

	coord, ok := cat.Coordinate("city_of_himark")
	require.True(t, ok)
	assert.Equal(t, 39.5, coord.Latitude)
}

func TestLoadDatasetSkipsMalformedIntervals(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileDataset), []byte(datasetJSON), 0o644))

	// The middle record has an unparsable start_time; only it is dropped.
	broken := `[
		{"vessel_id": "vessel_1", "location_id": "city_of_himark", "start_time": "2024-01-01T10:00:00", "end_time": "2024-01-01T10:10:00"},
		{"vessel_id": "vessel_1", "location_id": "city_of_himark", "start_time": "not-a-timestamp", "dwell": 600},
		{"vessel_id": "vessel_2", "location_id": "city_of_himark", "start_time": "2024-01-02T08:00:00", "dwell": 1800}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileTransportMovements), []byte(broken), 0o644))

	cat := LoadDataset(dir)

	require.Len(t, cat.RawIntervals(), 2)
	assert.Equal(t, "vessel_1", cat.RawIntervals()[0].VesselID)
	assert.Equal(t, "vessel_2", cat.RawIntervals()[1].VesselID)
}

func TestLoadDatasetMissingFiles(t *testing.T) {
	cat := LoadDataset(t.TempDir())

	assert.True(t, cat.IsEmpty())
	assert.Empty(t, cat.EventsByType(models.EventTransponderPing))
	assert.Empty(t, cat.RawIntervals())
}

func TestCatalogIndexes(t *testing.T) {
	cat := LoadDataset(writeDataset(t))

	assert.Len(t, cat.EventsByType(models.EventTransponderPing), 1)
	assert.Len(t, cat.EventsByType(models.EventHarborReport), 1)
	assert.Empty(t, cat.EventsByType(models.EventTransaction))

	assert.Len(t, cat.EntitiesByType(models.EntityLocationCity), 1)
	assert.Len(t, cat.EntitiesByTypePrefix(models.EntityVessel), 2)
	assert.Len(t, cat.EntitiesByTypePrefix(models.EntityLocation), 2)

	assert.True(t, cat.IsVessel("vessel_2"))
	assert.False(t, cat.IsVessel("city_of_himark"))
	assert.True(t, cat.IsLocation("region_north"))
	assert.False(t, cat.IsLocation("doc_1"))
	assert.False(t, cat.IsVessel("missing"))
}
